// Package apitest builds an in-memory storefront for handler tests.
package apitest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"storefront.GO/api"
	"storefront.GO/config"
	"storefront.GO/core/cache"
	"storefront.GO/core/notify"
	"storefront.GO/model/repository/storage"
	"storefront.GO/service/catalog"
	"storefront.GO/service/storefront"
)

// Documents serves catalog documents from memory.
type Documents struct {
	mu    sync.Mutex
	files map[string]string
}

func (d *Documents) Set(name, body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.files[name] = body
}

func (d *Documents) Fetch(_ context.Context, name string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	body, ok := d.files[name]
	if !ok {
		return nil, &catalog.LoadError{Resource: name, Reason: catalog.ErrBadStatus, Status: 404, Err: fmt.Errorf("not found")}
	}
	return []byte(body), nil
}

// Products is a small valid catalog.
const Products = `[
	{"id": "1", "name": "Black Abaya", "price": 10, "mainImageUrl": "a.jpg", "categoryId": "1", "colors": "black, navy"},
	{"id": 2, "name": "Silk Scarf", "price": 4, "mainImageUrl": "s.jpg", "categoryId": "2"},
	{"id": "3", "name": "Sold out", "price": 9, "mainImageUrl": "x.jpg", "categoryId": "2", "isAvailable": false},
	{"id": "4", "name": "broken"}
]`

// Categories matches Products.
const Categories = `[{"id": 1, "name": "Abayas", "imageUrl": "c1.jpg"}, {"id": "2", "name": "Scarves", "imageUrl": "c2.jpg"}]`

// NewDeps returns deps over the given documents, in-memory storage and a fresh feed.
// A nil files map gets the default catalog.
func NewDeps(files map[string]string) (*api.Deps, *Documents) {
	if files == nil {
		files = map[string]string{
			"products.json":   Products,
			"categories.json": Categories,
			"settings.json":   `{"currency": "USD", "whatsappNumber": "201000000000"}`,
		}
	}
	docs := &Documents{files: files}
	cfg := &config.Config{
		CategoriesDocument: "categories.json",
		ProductsDocument:   "products.json",
		SettingsDocument:   "settings.json",
		PriceLocale:        "en",
	}
	feed := notify.NewFeed(cache.NewCache(), time.Minute)
	svc := storefront.New(context.Background(), cfg, docs, storage.NewMemoryStorage(), feed)
	return &api.Deps{Store: svc, Feed: feed}, docs
}
