// Package custom holds storefront extensions registered at init: GraphQL _extension
// resolvers that are not part of the base schema.
package custom

import (
	"context"
	"errors"

	"storefront.GO/graphql"
	gqlregistry "storefront.GO/graphql/registry"
)

var errNoStore = errors.New("custom: no storefront in context")

func init() {
	// _extension(name: "badges") -> {"cart": 3, "favorites": 1}
	gqlregistry.Register("badges", func(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
		s := graphql.StoreFromContext(ctx)
		if s == nil {
			return nil, errNoStore
		}
		cart, favorites := s.Counts()
		return map[string]int{"cart": cart, "favorites": favorites}, nil
	})

	// _extension(name: "orderMessage") -> the cart order message and its links
	gqlregistry.Register("orderMessage", func(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
		s := graphql.StoreFromContext(ctx)
		if s == nil {
			return nil, errNoStore
		}
		view := s.CartView(ctx)
		return map[string]interface{}{"message": view.Message, "links": view.Links}, nil
	})

	// _extension(name: "formatPrice", args: "{\"amount\": 12.5}")
	gqlregistry.Register("formatPrice", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		s := graphql.StoreFromContext(ctx)
		if s == nil {
			return nil, errNoStore
		}
		amount, _ := args["amount"].(float64)
		return s.Orders.FormatPrice(amount), nil
	})
}
