// Standalone GraphQL server. Run with: go run ./cmd/graphql
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	_ "storefront.GO/api/graphql"
	_ "storefront.GO/api/health"
	"storefront.GO/config"
	"storefront.GO/core/cache"
	"storefront.GO/core/notify"
	"storefront.GO/model/repository/storage"
	"storefront.GO/service/catalog"
	"storefront.GO/service/storefront"
)

func main() {
	_ = godotenv.Load()
	config.LoadAppConfig()
	cfg := config.AppConfig

	res, err := storage.FromConfig(cfg)
	if err != nil {
		log.Fatal("storage:", err)
	}
	feed := notify.NewFeed(cache.GetInstance(), cfg.NotificationTTL)
	store := storefront.New(context.Background(), cfg,
		catalog.NewFetcher(cfg.CatalogBaseURL, cfg.FetchTimeout), res.Storage, notify.Multi{feed, notify.Logger{}})

	// Only root routes: /graphql, /playground and /health.
	e := echo.New()
	api.ApplyRoutes(e, &api.Deps{Store: store, Feed: feed})

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "univers", "doom", "larry3d", "puffy", "rectangles", "bigchief", "cosmic"}
	fig := figure.NewFigure("Storefront GQL ->", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", cfg.Port, cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
