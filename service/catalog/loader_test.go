package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"storefront.GO/core/notify"
	catalogEntity "storefront.GO/model/entity/catalog"
)

const productsDoc = `[
	{"id": 1, "name": "Abaya", "price": 450, "mainImageUrl": "a.jpg", "categoryId": 3, "colors": "أسود، بيج , ", "isAvailable": false},
	{"id": "2", "name": "Scarf", "price": "12", "mainImageUrl": "s.jpg"},
	{"id": "3", "name": "", "price": 10, "mainImageUrl": "x.jpg"},
	{"id": "4", "name": "Hijab", "price": 80.5, "mainImageUrl": "h.jpg", "colors": [" red ", "", "blue"]},
	{"name": "No id", "price": 5, "mainImageUrl": "n.jpg"},
	"not a record",
	{"id": "5", "name": "Dress", "price": 300, "mainImageUrl": "d.jpg", "isAvailable": null, "description": "Long"}
]`

func serve(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Cache-Control") != "no-cache, no-store" || r.Header.Get("Pragma") != "no-cache" {
			http.Error(w, "cache headers missing", http.StatusTeapot)
			return
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestLoader(t *testing.T, routes map[string]string) (*Loader, *notify.Recorder) {
	srv := serve(t, routes)
	rec := &notify.Recorder{}
	return NewLoader(NewFetcher(srv.URL, time.Second), rec, Documents{}), rec
}

func TestLoader_Products_FiltersAndNormalizes(t *testing.T) {
	l, rec := newTestLoader(t, map[string]string{"/products.json": productsDoc})

	snap, err := l.Products(context.Background())
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	var ids []string
	for _, p := range snap.Products() {
		ids = append(ids, p.ID.String())
	}
	if want := []string{"1", "4", "5"}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}

	abaya, _ := snap.Find("1")
	if want := []string{"أسود", "بيج"}; !reflect.DeepEqual(abaya.Colors, want) {
		t.Errorf("delimited colors = %q, want %q", abaya.Colors, want)
	}
	if abaya.IsAvailable {
		t.Error("explicit isAvailable=false must be kept")
	}
	if abaya.CategoryID != "3" {
		t.Errorf("numeric categoryId = %q, want \"3\"", abaya.CategoryID)
	}

	hijab, _ := snap.Find("4")
	if want := []string{"red", "blue"}; !reflect.DeepEqual(hijab.Colors, want) {
		t.Errorf("list colors = %q, want %q", hijab.Colors, want)
	}
	if hijab.Price != 80.5 {
		t.Errorf("price = %v", hijab.Price)
	}
	if !hijab.IsAvailable {
		t.Error("absent isAvailable should default to true")
	}

	dress, _ := snap.Find("5")
	if !dress.IsAvailable {
		t.Error("null isAvailable should default to true")
	}
	if dress.Colors == nil || len(dress.Colors) != 0 {
		t.Errorf("missing colors = %#v, want empty non-nil", dress.Colors)
	}
	if dress.Description != "Long" {
		t.Errorf("description = %q", dress.Description)
	}
	if len(rec.Messages) != 0 {
		t.Errorf("unexpected notifications: %v", rec.Messages)
	}
}

func TestLoader_Products_MistypedOptionalFieldsKeepRecord(t *testing.T) {
	doc := `[
		{"id": 1, "name": "Plain", "price": 10, "mainImageUrl": "p.jpg"},
		{"id": 2, "name": "Yes", "price": 10, "mainImageUrl": "y.jpg", "isAvailable": "yes"},
		{"id": 3, "name": "List", "price": 10, "mainImageUrl": "l.jpg", "description": ["a", "b"]},
		{"id": 4, "name": "Obj", "price": 10, "mainImageUrl": "o.jpg", "categoryId": {"x": 1}, "colors": {"c": "red"}},
		{"id": 5, "name": "Zero", "price": 10, "mainImageUrl": "z.jpg", "isAvailable": 0, "image2Url": 7},
		{"id": 0, "name": "Falsy id", "price": 10, "mainImageUrl": "f.jpg"},
		{"id": 6.0, "name": "Float id", "price": 10, "mainImageUrl": "f.jpg"}
	]`
	l, _ := newTestLoader(t, map[string]string{"/products.json": doc})

	snap, err := l.Products(context.Background())
	if err != nil {
		t.Fatalf("Products: %v", err)
	}
	var ids []string
	for _, p := range snap.Products() {
		ids = append(ids, p.ID.String())
	}
	if want := []string{"1", "2", "3", "4", "5", "6"}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}

	yes, _ := snap.Find("2")
	if !yes.IsAvailable {
		t.Error(`isAvailable "yes" should read as available`)
	}
	list, _ := snap.Find("3")
	if list.Description != "" {
		t.Errorf("list description = %q, want empty", list.Description)
	}
	obj, _ := snap.Find("4")
	if !obj.CategoryID.IsZero() || len(obj.Colors) != 0 {
		t.Errorf("object categoryId/colors = %q %q, want empty", obj.CategoryID, obj.Colors)
	}
	zero, _ := snap.Find("5")
	if zero.IsAvailable {
		t.Error("isAvailable 0 should read as unavailable")
	}
	if zero.Image2URL != "7" {
		t.Errorf("numeric image2Url = %q, want \"7\"", zero.Image2URL)
	}
}

func TestLoader_Products_Failures(t *testing.T) {
	cases := []struct {
		name   string
		routes map[string]string
		reason error
		notice string
	}{
		{"missing", map[string]string{}, ErrBadStatus, "Failed to load products.json"},
		{"empty body", map[string]string{"/products.json": "  "}, ErrEmpty, "Failed to load products.json"},
		{"null", map[string]string{"/products.json": "null"}, ErrEmpty, "Failed to load products.json"},
		{"empty array", map[string]string{"/products.json": "[]"}, ErrEmpty, "Failed to load products.json"},
		{"empty object", map[string]string{"/products.json": "{}"}, ErrEmpty, "Failed to load products.json"},
		{"object", map[string]string{"/products.json": `{"id":"1"}`}, ErrMalformed, "Failed to load products.json"},
		{"not json", map[string]string{"/products.json": "<html>"}, ErrMalformed, "Failed to load products.json"},
		{"all invalid", map[string]string{"/products.json": `[{"id":"1","name":"A"}]`}, ErrMalformed, "No valid products"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, rec := newTestLoader(t, tc.routes)
			snap, err := l.Products(context.Background())
			if snap == nil || snap.Len() != 0 {
				t.Fatalf("snapshot = %v, want empty non-nil", snap)
			}
			if !errors.Is(err, tc.reason) {
				t.Fatalf("err = %v, want %v", err, tc.reason)
			}
			if !strings.HasPrefix(rec.Last(), tc.notice) {
				t.Errorf("notification = %q, want prefix %q", rec.Last(), tc.notice)
			}
		})
	}
}

func TestLoader_BadStatusKeepsCode(t *testing.T) {
	l, _ := newTestLoader(t, map[string]string{})
	_, err := l.Products(context.Background())
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("err = %T, want *LoadError", err)
	}
	if le.Status != http.StatusNotFound || le.Resource != "products.json" {
		t.Errorf("LoadError = %+v", le)
	}
}

func TestLoader_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	rec := &notify.Recorder{}
	l := NewLoader(NewFetcher(url, time.Second), rec, Documents{})
	cats, err := l.Categories(context.Background())
	if cats != nil {
		t.Errorf("categories = %v, want nil", cats)
	}
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("err = %v, want ErrUnreachable", err)
	}
	if want := "Failed to load categories.json, check the path or your internet connection"; rec.Last() != want {
		t.Errorf("notification = %q, want %q", rec.Last(), want)
	}
}

func TestLoader_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(block)

	l := NewLoader(NewFetcher(srv.URL, 50*time.Millisecond), nil, Documents{})
	if _, err := l.Products(context.Background()); !errors.Is(err, ErrUnreachable) {
		t.Errorf("err = %v, want ErrUnreachable", err)
	}
}

func TestLoader_Categories(t *testing.T) {
	l, _ := newTestLoader(t, map[string]string{
		"/categories.json": `[{"id": 1, "name": "Abayas", "imageUrl": "c1.jpg"}, {"name": "no id"}, {"id": "2", "name": "Scarves"}]`,
	})
	res, err := l.Load(context.Background(), KindCategories)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []catalogEntity.Category{
		{ID: "1", Name: "Abayas", ImageURL: "c1.jpg"},
		{ID: "2", Name: "Scarves"},
	}
	if !reflect.DeepEqual(res.Categories, want) {
		t.Errorf("categories = %+v, want %+v", res.Categories, want)
	}
	if res.Products != nil {
		t.Error("categories result should not carry products")
	}
}

func TestLoader_Product(t *testing.T) {
	l, _ := newTestLoader(t, map[string]string{"/data/items.json": productsDoc})
	l.docs = Documents{Products: "data/items.json"}

	p, ok := l.Product(context.Background(), "4")
	if !ok || p.Name != "Hijab" {
		t.Errorf("Product(4) = %+v, %v", p, ok)
	}
	if _, ok := l.Product(context.Background(), "2"); ok {
		t.Error("invalid record must not be found")
	}
}

func TestLoader_FreshOnEveryCall(t *testing.T) {
	routes := map[string]string{"/products.json": `[{"id":"1","name":"A","price":10,"mainImageUrl":"x"}]`}
	l, _ := newTestLoader(t, routes)
	first, _ := l.Products(context.Background())
	routes["/products.json"] = `[{"id":"1","name":"A","price":12,"mainImageUrl":"x"},{"id":"2","name":"B","price":1,"mainImageUrl":"y"}]`
	second, _ := l.Products(context.Background())

	if first.Len() != 1 || second.Len() != 2 {
		t.Fatalf("lens = %d, %d", first.Len(), second.Len())
	}
	if p, _ := first.Find("1"); p.Price != 10 {
		t.Error("earlier snapshot must not change")
	}
}

func TestFetcher_LocalDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "products.json"), []byte(productsDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader(NewFetcher(dir, 0), nil, Documents{})
	snap, err := l.Products(context.Background())
	if err != nil || snap.Len() != 3 {
		t.Fatalf("Products = %d, %v", snap.Len(), err)
	}
	if _, err := l.Categories(context.Background()); !errors.Is(err, ErrUnreachable) {
		t.Errorf("missing file err = %v, want ErrUnreachable", err)
	}
}
