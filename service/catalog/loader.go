// Package catalog loads the published category and product documents, validates and
// normalizes their records, and derives filtered views over a product snapshot.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"

	"storefront.GO/core/notify"
	catalogEntity "storefront.GO/model/entity/catalog"
)

// Kind names a catalog document.
type Kind string

const (
	KindCategories Kind = "categories"
	KindProducts   Kind = "products"
)

// Documents are the document names relative to the fetcher's base.
type Documents struct {
	Categories string
	Products   string
}

func (d Documents) name(kind Kind) string {
	switch kind {
	case KindCategories:
		if d.Categories != "" {
			return d.Categories
		}
		return "categories.json"
	default:
		if d.Products != "" {
			return d.Products
		}
		return "products.json"
	}
}

// Result is the outcome of Load. Exactly one of Categories/Products is populated.
type Result struct {
	Kind       Kind
	Categories []catalogEntity.Category
	Products   *catalogEntity.Snapshot
}

// Loader fetches catalog documents fresh on every call. Failures are reported to the
// notifier and logged; callers always receive a usable, possibly empty, value.
type Loader struct {
	fetcher  DocumentFetcher
	notifier notify.Notifier
	docs     Documents
}

func NewLoader(fetcher DocumentFetcher, notifier notify.Notifier, docs Documents) *Loader {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &Loader{fetcher: fetcher, notifier: notifier, docs: docs}
}

// Load fetches the document of the given kind.
func (l *Loader) Load(ctx context.Context, kind Kind) (Result, error) {
	if kind == KindCategories {
		cats, err := l.Categories(ctx)
		return Result{Kind: kind, Categories: cats}, err
	}
	snap, err := l.Products(ctx)
	return Result{Kind: KindProducts, Products: snap}, err
}

func (l *Loader) records(ctx context.Context, kind Kind) ([]interface{}, error) {
	name := l.docs.name(kind)
	log.Printf("catalog: loading %s", name)
	body, err := l.fetcher.Fetch(ctx, name)
	if err == nil {
		var records []interface{}
		records, err = parseDocument(name, body)
		if err == nil {
			return records, nil
		}
	}
	var le *LoadError
	if !errors.As(err, &le) {
		err = loadError(name, ErrUnreachable, err)
	}
	log.Printf("catalog: error loading %s: %v", name, err)
	l.notifier.Notify(fmt.Sprintf("Failed to load %s, check the path or your internet connection", path.Base(name)))
	return nil, err
}

// Categories returns the published categories, or nil on failure.
func (l *Loader) Categories(ctx context.Context) ([]catalogEntity.Category, error) {
	records, err := l.records(ctx, KindCategories)
	if err != nil {
		return nil, err
	}
	cats := decodeCategories(records)
	log.Printf("catalog: loaded %d categories", len(cats))
	return cats, nil
}

// Products returns a fresh snapshot of the valid products. The snapshot is never nil;
// on failure it is empty and the error says why.
func (l *Loader) Products(ctx context.Context) (*catalogEntity.Snapshot, error) {
	records, err := l.records(ctx, KindProducts)
	if err != nil {
		return catalogEntity.NewSnapshot(nil), err
	}
	products := decodeProducts(records)
	if len(products) == 0 {
		name := l.docs.name(KindProducts)
		log.Printf("catalog: no valid products found in %s", name)
		l.notifier.Notify(fmt.Sprintf("No valid products found in %s, check the product data", path.Base(name)))
		return catalogEntity.NewSnapshot(nil), loadError(name, ErrMalformed, fmt.Errorf("none of %d records is valid", len(records)))
	}
	log.Printf("catalog: loaded %d valid products (%d records)", len(products), len(records))
	return catalogEntity.NewSnapshot(products), nil
}

// Product looks id up in a fresh snapshot. ok is false when the product is absent or the
// catalog could not be loaded.
func (l *Loader) Product(ctx context.Context, id catalogEntity.ID) (catalogEntity.Product, bool) {
	snap, _ := l.Products(ctx)
	p, ok := snap.Find(id)
	if !ok {
		log.Printf("catalog: product with id %s not found", id)
	}
	return p, ok
}
