package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	"storefront.GO/core/notify"
	"storefront.GO/model/repository/storage"
	"storefront.GO/service/catalog"
	"storefront.GO/service/storefront"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront catalog, cart and favorites from the command line",
}

// Execute applies registered commands and runs the root command.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newStorefront opens the configured storage and builds a storefront whose
// notifications are printed to the command's output.
var newStorefront = func(c *cobra.Command) (*storefront.Service, error) {
	config.LoadAppConfig()
	cfg := config.AppConfig
	res, err := storage.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	fetcher := catalog.NewFetcher(cfg.CatalogBaseURL, cfg.FetchTimeout)
	n := notify.Printer{W: c.OutOrStdout()}
	return storefront.New(context.Background(), cfg, fetcher, res.Storage, n), nil
}
