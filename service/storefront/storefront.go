// Package storefront wires catalog loading, the visitor's selections and order
// building into the flows behind each storefront page.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"storefront.GO/config"
	"storefront.GO/core/notify"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/model/entity/selection"
	"storefront.GO/model/repository/storage"
	"storefront.GO/service/catalog"
	"storefront.GO/service/order"
	"storefront.GO/service/reconcile"
	selectionService "storefront.GO/service/selection"
	"storefront.GO/service/settings"
)

// ErrUnknownProduct is returned when an id is not in the current catalog.
var ErrUnknownProduct = errors.New("product not found")

// ErrUnavailable is returned when adding a product marked unavailable.
var ErrUnavailable = errors.New("product unavailable")

// Service is one visitor's storefront.
type Service struct {
	Loader    *catalog.Loader
	Settings  settings.Settings
	Cart      *selectionService.Store
	Favorites *selectionService.Store
	Orders    *order.Builder
	Notifier  notify.Notifier
}

// New builds a Service. Settings are read once; the catalog is read fresh by every flow.
func New(ctx context.Context, cfg *config.Config, fetcher catalog.DocumentFetcher, st storage.Storage, n notify.Notifier) *Service {
	if n == nil {
		n = notify.Discard
	}
	s, _ := settings.Load(ctx, fetcher, cfg.SettingsDocument, n)
	return &Service{
		Loader: catalog.NewLoader(fetcher, n, catalog.Documents{
			Categories: cfg.CategoriesDocument,
			Products:   cfg.ProductsDocument,
		}),
		Settings:  s,
		Cart:      selectionService.NewCart(st, n),
		Favorites: selectionService.NewFavorites(st, n),
		Orders:    order.NewBuilder(s, cfg.PriceLocale),
		Notifier:  n,
	}
}

// CatalogView is the home page: categories and every product.
type CatalogView struct {
	Categories []catalogEntity.Category `json:"categories"`
	Products   []catalogEntity.Product  `json:"products"`
}

// CatalogView loads categories and products concurrently. Failures leave the
// corresponding list empty.
func (s *Service) CatalogView(ctx context.Context) CatalogView {
	var view CatalogView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cats, _ := s.Loader.Categories(gctx)
		view.Categories = cats
		return nil
	})
	g.Go(func() error {
		snap, _ := s.Loader.Products(gctx)
		view.Products = snap.Products()
		return nil
	})
	_ = g.Wait()
	if view.Categories == nil {
		view.Categories = []catalogEntity.Category{}
	}
	return view
}

// ProductsView is the category page with an optional name search.
func (s *Service) ProductsView(ctx context.Context, categoryID catalogEntity.ID, query string) []catalogEntity.Product {
	snap, _ := s.Loader.Products(ctx)
	return catalog.Filter(snap.Products(), categoryID, query)
}

// ProductDetail is the product page.
type ProductDetail struct {
	Product    catalogEntity.Product `json:"product"`
	Images     []string              `json:"images"`
	InCart     bool                  `json:"inCart"`
	IsFavorite bool                  `json:"isFavorite"`
	Inquiry    string                `json:"inquiry"`
	Links      order.Links           `json:"links"`
}

func (s *Service) ProductDetail(ctx context.Context, id catalogEntity.ID) (ProductDetail, bool) {
	p, ok := s.Loader.Product(ctx, id)
	if !ok {
		return ProductDetail{}, false
	}
	msg, links := s.Orders.ProductInquiry(p)
	return ProductDetail{
		Product:    p,
		Images:     p.Images(),
		InCart:     s.Cart.Contains(id),
		IsFavorite: s.Favorites.Contains(id),
		Inquiry:    msg,
		Links:      links,
	}, true
}

// CartView is the cart page.
type CartView struct {
	Lines          []reconcile.LineItem `json:"lines"`
	Total          float64              `json:"total"`
	FormattedTotal string               `json:"formattedTotal"`
	Message        string               `json:"message"`
	Links          order.Links          `json:"links"`
	Count          int                  `json:"count"`
}

func (s *Service) CartView(ctx context.Context) CartView {
	snap, _ := s.Loader.Products(ctx)
	ledger := s.Cart.GetAll()
	lines := reconcile.Materialize(ledger, snap)
	if missing := reconcile.Missing(ledger, snap); len(missing) > 0 {
		log.Printf("storefront: %d cart entries not in catalog: %v", len(missing), missing)
	}
	summary := s.Orders.Summarize(lines)
	view := CartView{
		Lines:          summary.Lines,
		Total:          summary.Total,
		FormattedTotal: s.Orders.FormatPrice(summary.Total),
		Count:          s.Cart.Count(),
	}
	if len(lines) > 0 {
		view.Message = s.Orders.RenderMessage(lines)
		view.Links = s.Orders.Links(view.Message)
	}
	return view
}

// FavoritesView lists the favorite products still in the catalog.
func (s *Service) FavoritesView(ctx context.Context) []catalogEntity.Product {
	snap, _ := s.Loader.Products(ctx)
	lines := reconcile.Materialize(s.Favorites.GetAll(), snap)
	out := make([]catalogEntity.Product, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Product)
	}
	return out
}

func (s *Service) resolve(ctx context.Context, id catalogEntity.ID) (catalogEntity.Product, error) {
	p, ok := s.Loader.Product(ctx, id)
	if !ok {
		s.Notifier.Notify("Product not found")
		return catalogEntity.Product{}, fmt.Errorf("%w: %s", ErrUnknownProduct, id)
	}
	return p, nil
}

// AddToCart adds a product from the current catalog to the cart.
func (s *Service) AddToCart(ctx context.Context, id catalogEntity.ID) error {
	p, err := s.resolve(ctx, id)
	if err != nil {
		return err
	}
	if !p.IsAvailable {
		s.Notifier.Notify(fmt.Sprintf("%s is currently unavailable", p.Name))
		return fmt.Errorf("%w: %s", ErrUnavailable, id)
	}
	return s.Cart.Add(p.ID, p.Name)
}

// AddToFavorites adds a product from the current catalog to favorites.
func (s *Service) AddToFavorites(ctx context.Context, id catalogEntity.ID) error {
	p, err := s.resolve(ctx, id)
	if err != nil {
		return err
	}
	return s.Favorites.Add(p.ID, p.Name)
}

// ToggleFavorite flips id in favorites. Removing does not need the product to still
// be in the catalog.
func (s *Service) ToggleFavorite(ctx context.Context, id catalogEntity.ID) (bool, error) {
	if s.Favorites.Contains(id) {
		return false, s.Favorites.Remove(id)
	}
	if err := s.AddToFavorites(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

// Counts are the header badges.
func (s *Service) Counts() (cart, favorites int) {
	return s.Cart.Count(), s.Favorites.Count()
}

// Ledgers exposes the raw selections, including entries the catalog no longer knows.
func (s *Service) Ledgers() (cart, favorites selection.Ledger) {
	return s.Cart.GetAll(), s.Favorites.GetAll()
}
