package graphqlserver

import (
	"context"
	"encoding/json"
	"fmt"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"storefront.GO/graphql"
	gqlmodels "storefront.GO/graphql/models"
	"storefront.GO/graphql/registry"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/storefront"
)

// RootResolver resolves Query and Mutation fields against one storefront.
type RootResolver struct {
	Store *storefront.Service
}

func (r *RootResolver) format(v float64) string {
	return r.Store.Orders.FormatPrice(v)
}

func (r *RootResolver) cart(ctx context.Context) *gqlmodels.Cart {
	return gqlmodels.NewCart(r.Store.CartView(ctx), r.format)
}

func (r *RootResolver) favorites(ctx context.Context) []*gqlmodels.Product {
	return gqlmodels.NewProducts(r.Store.FavoritesView(ctx), r.format)
}

// --- Query ---

func (r *RootResolver) Categories(ctx context.Context) ([]*gqlmodels.Category, error) {
	cats, _ := r.Store.Loader.Categories(ctx)
	return gqlmodels.NewCategories(cats), nil
}

func (r *RootResolver) Products(ctx context.Context, args graphql.ProductsArgs) ([]*gqlmodels.Product, error) {
	var categoryID catalogEntity.ID
	if args.CategoryID != nil {
		categoryID = catalogEntity.ID(*args.CategoryID)
	}
	var q string
	if args.Search != nil {
		q = *args.Search
	}
	return gqlmodels.NewProducts(r.Store.ProductsView(ctx, categoryID, q), r.format), nil
}

func (r *RootResolver) Product(ctx context.Context, args graphql.IDArgs) (*gqlmodels.Product, error) {
	p, ok := r.Store.Loader.Product(ctx, catalogEntity.ID(args.ID))
	if !ok {
		return nil, nil
	}
	return gqlmodels.NewProduct(p, r.format), nil
}

func (r *RootResolver) Cart(ctx context.Context) (*gqlmodels.Cart, error) {
	return r.cart(ctx), nil
}

func (r *RootResolver) Favorites(ctx context.Context) ([]*gqlmodels.Product, error) {
	return r.favorites(ctx), nil
}

func (r *RootResolver) Settings() *gqlmodels.Settings {
	return gqlmodels.NewSettings(r.Store.Settings)
}

func (r *RootResolver) Extension(ctx context.Context, args graphql.ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		if err := json.Unmarshal([]byte(*args.Args), &m); err != nil {
			return nil, fmt.Errorf("_extension %s: args must be a JSON object: %w", args.Name, err)
		}
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(graphql.WithStore(ctx, r.Store), args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// --- Mutation ---

func (r *RootResolver) AddToCart(ctx context.Context, args graphql.IDArgs) (*gqlmodels.Cart, error) {
	if err := r.Store.AddToCart(ctx, catalogEntity.ID(args.ID)); err != nil {
		return nil, err
	}
	return r.cart(ctx), nil
}

func (r *RootResolver) UpdateCartQuantity(ctx context.Context, args graphql.QuantityArgs) (*gqlmodels.Cart, error) {
	if err := r.Store.Cart.UpdateQuantity(catalogEntity.ID(args.ID), int(args.Quantity)); err != nil {
		return nil, err
	}
	return r.cart(ctx), nil
}

func (r *RootResolver) RemoveFromCart(ctx context.Context, args graphql.IDArgs) (*gqlmodels.Cart, error) {
	if err := r.Store.Cart.Remove(catalogEntity.ID(args.ID)); err != nil {
		return nil, err
	}
	return r.cart(ctx), nil
}

func (r *RootResolver) ClearCart(ctx context.Context) (*gqlmodels.Cart, error) {
	if err := r.Store.Cart.Clear(); err != nil {
		return nil, err
	}
	return r.cart(ctx), nil
}

func (r *RootResolver) ToggleFavorite(ctx context.Context, args graphql.IDArgs) (bool, error) {
	return r.Store.ToggleFavorite(ctx, catalogEntity.ID(args.ID))
}

func (r *RootResolver) RemoveFavorite(ctx context.Context, args graphql.IDArgs) ([]*gqlmodels.Product, error) {
	if err := r.Store.Favorites.Remove(catalogEntity.ID(args.ID)); err != nil {
		return nil, err
	}
	return r.favorites(ctx), nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(store *storefront.Service) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Store: store}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
