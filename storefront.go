//go:build !cli
// +build !cli

package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storefront.GO/api"
	_ "storefront.GO/api/cart"
	_ "storefront.GO/api/catalog"
	_ "storefront.GO/api/favorites"
	_ "storefront.GO/api/graphql"
	_ "storefront.GO/api/health"
	_ "storefront.GO/api/notifications"
	"storefront.GO/config"
	"storefront.GO/core/cache"
	"storefront.GO/core/notify"
	"storefront.GO/html"
	"storefront.GO/model/repository/storage"
	"storefront.GO/service/catalog"
	"storefront.GO/service/storefront"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	cfg := config.AppConfig

	res, err := storage.FromConfig(cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	log.Printf("Selections stored with the %s driver.", res.Driver)

	feed := notify.NewFeed(cache.GetInstance(), cfg.NotificationTTL)
	fetcher := catalog.NewFetcher(cfg.CatalogBaseURL, cfg.FetchTimeout)
	store := storefront.New(context.Background(), cfg, fetcher, res.Storage, notify.Multi{feed, notify.Logger{}})
	log.Printf("Catalog documents read from %s", cfg.CatalogBaseURL)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			if cfg.Debug {
				log.Printf("Request duration: %d ms", duration)
			}
			return err
		}
	})

	deps := &api.Deps{Store: store, Feed: feed}
	html.RegisterStorefrontHTMLRoutes(e, deps)
	api.ApplyRoutes(e, deps)
	api.ApplyModules(e.Group("/api"), deps)

	log.Printf("%s running on :%s", cfg.AppName, cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
