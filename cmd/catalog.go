package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/catalog"
	"storefront.GO/service/storefront"
)

var (
	categoryFlag string
	searchFlag   string
)

func printProducts(w io.Writer, s *storefront.Service, products []catalogEntity.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found")
		return
	}
	for _, p := range products {
		status := ""
		if !p.IsAvailable {
			status = " (unavailable)"
		}
		fmt.Fprintf(w, "%-6s %-40s %s%s\n", p.ID, p.Name, s.Orders.FormatPrice(p.Price), status)
	}
}

var catalogCategoriesCmd = &cobra.Command{
	Use:   "catalog:categories",
	Short: "List the published categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStorefront(cmd)
		if err != nil {
			return err
		}
		cats, _ := s.Loader.Categories(cmd.Context())
		for _, c := range cats {
			fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s\n", c.ID, c.Name)
		}
		return nil
	},
}

var catalogProductsCmd = &cobra.Command{
	Use:   "catalog:products",
	Short: "List products, optionally filtered by category and name",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStorefront(cmd)
		if err != nil {
			return err
		}
		products := s.ProductsView(cmd.Context(), catalogEntity.ID(categoryFlag), searchFlag)
		printProducts(cmd.OutOrStdout(), s, products)
		return nil
	},
}

var catalogProductCmd = &cobra.Command{
	Use:   "catalog:product <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStorefront(cmd)
		if err != nil {
			return err
		}
		d, ok := s.ProductDetail(cmd.Context(), catalogEntity.ID(args[0]))
		if !ok {
			return fmt.Errorf("product %s not found", args[0])
		}
		w := cmd.OutOrStdout()
		p := d.Product
		fmt.Fprintf(w, "%s\n%s\n", p.Name, s.Orders.FormatPrice(p.Price))
		if p.Description != "" {
			fmt.Fprintln(w, p.Description)
		}
		if len(p.Colors) > 0 {
			fmt.Fprintf(w, "Colors: %s\n", strings.Join(p.Colors, ", "))
		}
		fmt.Fprintf(w, "Available: %t  In cart: %t  Favorite: %t\n", p.IsAvailable, d.InCart, d.IsFavorite)
		for _, img := range d.Images {
			fmt.Fprintln(w, img)
		}
		fmt.Fprintf(w, "WhatsApp: %s\nTelegram: %s\n", d.Links.WhatsApp, d.Links.Telegram)
		return nil
	},
}

// catalog:browse reads search queries line by line. Queries arriving faster than the
// debounce interval collapse into the last one.
var catalogBrowseCmd = &cobra.Command{
	Use:   "catalog:browse",
	Short: "Interactive name search over the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStorefront(cmd)
		if err != nil {
			return err
		}
		snap, _ := s.Loader.Products(cmd.Context())
		products := catalog.FilterByCategory(snap.Products(), catalogEntity.ID(categoryFlag))

		var outMu sync.Mutex
		w := cmd.OutOrStdout()
		show := func(q string) func() {
			return func() {
				outMu.Lock()
				defer outMu.Unlock()
				fmt.Fprintf(w, "-- %q\n", q)
				printProducts(w, s, catalog.FilterByText(products, q))
			}
		}

		config.LoadAppConfig()
		d := catalog.NewDebouncer(config.AppConfig.SearchDebounce)

		show("")()
		in := bufio.NewScanner(cmd.InOrStdin())
		for in.Scan() {
			d.Trigger(show(in.Text()))
		}
		// input ended: show the last query instead of dropping it
		d.Flush()
		return in.Err()
	},
}

func init() {
	catalogProductsCmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "Category id")
	catalogProductsCmd.Flags().StringVarP(&searchFlag, "search", "s", "", "Name contains")
	catalogBrowseCmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "Category id")
	rootCmd.AddCommand(catalogCategoriesCmd, catalogProductsCmd, catalogProductCmd, catalogBrowseCmd)
}
