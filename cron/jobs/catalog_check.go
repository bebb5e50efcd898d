// Package jobs holds the storefront's scheduled jobs. Importing it registers them.
package jobs

import (
	"context"
	"log"
	"time"

	"storefront.GO/config"
	"storefront.GO/core/notify"
	"storefront.GO/cron"
	"storefront.GO/service/catalog"
	"storefront.GO/service/settings"
)

// CatalogCheckSchedule is how often the published documents are verified.
const CatalogCheckSchedule = "@every 15m"

func init() {
	cron.Register("catalogcheck", CatalogCheckSchedule, func(args ...string) {
		config.LoadAppConfig()
		cfg := config.AppConfig
		CheckCatalog(context.Background(), catalog.NewFetcher(cfg.CatalogBaseURL, cfg.FetchTimeout), cfg)
	})
}

// Report is the outcome of one catalog check.
type Report struct {
	Categories  int
	Products    int
	Unavailable int
	Errors      []error
}

// OK reports whether every document loaded.
func (r Report) OK() bool { return len(r.Errors) == 0 }

// CheckCatalog loads every published document fresh and logs what it found.
func CheckCatalog(ctx context.Context, fetcher catalog.DocumentFetcher, cfg *config.Config) Report {
	start := time.Now()
	loader := catalog.NewLoader(fetcher, notify.Logger{}, catalog.Documents{
		Categories: cfg.CategoriesDocument,
		Products:   cfg.ProductsDocument,
	})

	var r Report
	cats, err := loader.Categories(ctx)
	if err != nil {
		r.Errors = append(r.Errors, err)
	}
	r.Categories = len(cats)

	snap, err := loader.Products(ctx)
	if err != nil {
		r.Errors = append(r.Errors, err)
	}
	for _, p := range snap.Products() {
		r.Products++
		if !p.IsAvailable {
			r.Unavailable++
		}
	}

	if _, err := settings.Load(ctx, fetcher, cfg.SettingsDocument, notify.Discard); err != nil {
		r.Errors = append(r.Errors, err)
	}

	log.Printf("catalogcheck: %d categories, %d products (%d unavailable), %d errors in %s",
		r.Categories, r.Products, r.Unavailable, len(r.Errors), time.Since(start))
	return r
}
