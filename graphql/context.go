package graphql

import (
	"context"

	"storefront.GO/service/storefront"
)

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeyStore contextKey = "storefront"

// StoreFromContext returns the storefront serving the current request, or nil.
func StoreFromContext(ctx context.Context) *storefront.Service {
	if v, ok := ctx.Value(CtxKeyStore).(*storefront.Service); ok {
		return v
	}
	return nil
}

// WithStore attaches the storefront to ctx.
func WithStore(ctx context.Context, s *storefront.Service) context.Context {
	return context.WithValue(ctx, CtxKeyStore, s)
}
