package storefront

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	"storefront.GO/config"
	"storefront.GO/core/notify"
	"storefront.GO/model/entity/selection"
	"storefront.GO/model/repository/storage"
	"storefront.GO/service/catalog"
)

type docs struct {
	mu    sync.Mutex
	files map[string]string
}

func (d *docs) set(name, body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.files[name] = body
}

func (d *docs) Fetch(_ context.Context, name string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	body, ok := d.files[name]
	if !ok {
		return nil, &catalog.LoadError{Resource: name, Reason: catalog.ErrBadStatus, Status: 404, Err: fmt.Errorf("not found")}
	}
	return []byte(body), nil
}

func testConfig() *config.Config {
	return &config.Config{
		CategoriesDocument: "categories.json",
		ProductsDocument:   "products.json",
		SettingsDocument:   "settings.json",
		PriceLocale:        "en",
	}
}

func newService(t *testing.T, files map[string]string) (*Service, *docs, *notify.Recorder) {
	t.Helper()
	d := &docs{files: files}
	rec := &notify.Recorder{}
	return New(context.Background(), testConfig(), d, storage.NewMemoryStorage(), rec), d, rec
}

const oneProduct = `[{"id":"1","name":"A","price":10,"mainImageUrl":"x","isAvailable":true}]`

func TestCart_AddTwiceTotalsTwenty(t *testing.T) {
	s, _, _ := newService(t, map[string]string{
		"products.json": oneProduct,
		"settings.json": `{"currency":"USD"}`,
	})
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := s.AddToCart(ctx, "1"); err != nil {
			t.Fatalf("AddToCart: %v", err)
		}
	}
	if got := s.Cart.GetAll(); !reflect.DeepEqual(got, selection.Ledger{{ID: "1", Name: "A", Quantity: 2}}) {
		t.Fatalf("ledger = %+v", got)
	}
	view := s.CartView(ctx)
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 2 {
		t.Fatalf("lines = %+v", view.Lines)
	}
	if view.Total != 20 || view.Count != 2 {
		t.Errorf("total = %v count = %d", view.Total, view.Count)
	}
	if !strings.HasPrefix(view.Message, "My order:\n2 × A") {
		t.Errorf("message = %q", view.Message)
	}
	if !strings.HasPrefix(view.Links.WhatsApp, "https://wa.me/201050043254?text=") {
		t.Errorf("links = %+v", view.Links)
	}
}

func TestCart_StaleEntryReappearsAfterReload(t *testing.T) {
	s, d, _ := newService(t, map[string]string{"products.json": oneProduct})
	ctx := context.Background()
	s.Cart.Add("2", "B")

	view := s.CartView(ctx)
	if len(view.Lines) != 0 || view.Total != 0 || view.Message != "" {
		t.Fatalf("view = %+v, want empty", view)
	}
	if !s.Cart.Contains("2") {
		t.Fatal("reconciliation removed the stale entry")
	}

	d.set("products.json", `[{"id":"1","name":"A","price":10,"mainImageUrl":"x"},{"id":2,"name":"B","price":4,"mainImageUrl":"y"}]`)
	view = s.CartView(ctx)
	if len(view.Lines) != 1 || view.Lines[0].Product.ID != "2" || view.Total != 4 {
		t.Errorf("after reload view = %+v", view)
	}
}

func TestCatalogUnavailable(t *testing.T) {
	s, _, rec := newService(t, map[string]string{})
	ctx := context.Background()

	if rec.Last() != "Failed to load settings, using the default settings" {
		t.Errorf("notification = %q", rec.Last())
	}
	if s.Settings.Currency != "EGP" {
		t.Errorf("currency = %q", s.Settings.Currency)
	}
	view := s.CatalogView(ctx)
	if view.Categories == nil || view.Products == nil || len(view.Products) != 0 {
		t.Errorf("view = %+v", view)
	}
	if err := s.AddToCart(ctx, "1"); !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("AddToCart err = %v", err)
	}
	if len(s.Cart.GetAll()) != 0 {
		t.Error("unknown product added")
	}
	if cv := s.CartView(ctx); cv.Lines == nil {
		t.Error("cart lines should be empty, not nil")
	}
}

func TestAddToCart_Unavailable(t *testing.T) {
	s, _, rec := newService(t, map[string]string{
		"products.json": `[{"id":"1","name":"A","price":10,"mainImageUrl":"x","isAvailable":false}]`,
	})
	if err := s.AddToCart(context.Background(), "1"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v", err)
	}
	if rec.Last() != "A is currently unavailable" {
		t.Errorf("notification = %q", rec.Last())
	}
}

func TestProductsView(t *testing.T) {
	s, _, _ := newService(t, map[string]string{
		"products.json": `[
			{"id":"1","name":"Black Abaya","price":10,"mainImageUrl":"x","categoryId":1},
			{"id":"2","name":"Scarf","price":4,"mainImageUrl":"y","categoryId":"2"},
			{"id":"3","name":"Open Abaya","price":4,"mainImageUrl":"y","categoryId":"2"}
		]`,
	})
	got := s.ProductsView(context.Background(), "2", "abaya")
	if len(got) != 1 || got[0].ID != "3" {
		t.Errorf("ProductsView = %+v", got)
	}
	if got := s.ProductsView(context.Background(), "1", ""); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("numeric category id should match: %+v", got)
	}
}

func TestProductDetailAndFavorites(t *testing.T) {
	s, d, _ := newService(t, map[string]string{"products.json": oneProduct})
	ctx := context.Background()

	in, err := s.ToggleFavorite(ctx, "1")
	if err != nil || !in {
		t.Fatalf("ToggleFavorite = %v, %v", in, err)
	}
	detail, ok := s.ProductDetail(ctx, "1")
	if !ok || !detail.IsFavorite || detail.InCart {
		t.Errorf("detail = %+v", detail)
	}
	if detail.Inquiry != "I want to order A" || !reflect.DeepEqual(detail.Images, []string{"x"}) {
		t.Errorf("detail = %+v", detail)
	}
	if _, ok := s.ProductDetail(ctx, "9"); ok {
		t.Error("unknown product found")
	}
	if favs := s.FavoritesView(ctx); len(favs) != 1 {
		t.Errorf("favorites = %+v", favs)
	}

	d.set("products.json", `[{"id":"5","name":"E","price":1,"mainImageUrl":"e"}]`)
	if favs := s.FavoritesView(ctx); len(favs) != 0 {
		t.Errorf("favorites after product removal = %+v", favs)
	}
	in, err = s.ToggleFavorite(ctx, "1")
	if err != nil || in {
		t.Errorf("toggle off a product gone from the catalog = %v, %v", in, err)
	}
	if _, favs := s.Counts(); favs != 0 {
		t.Errorf("favorites count = %d", favs)
	}
}
