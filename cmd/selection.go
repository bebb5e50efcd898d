package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	catalogEntity "storefront.GO/model/entity/catalog"
)

var cartShowCmd = &cobra.Command{
	Use:   "cart:show",
	Short: "Show the cart reconciled against the current catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStorefront(cmd)
		if err != nil {
			return err
		}
		view := s.CartView(cmd.Context())
		w := cmd.OutOrStdout()
		if len(view.Lines) == 0 {
			fmt.Fprintln(w, "Your cart is empty")
			return nil
		}
		for _, l := range view.Lines {
			fmt.Fprintf(w, "%-6s %3d × %-34s %s\n", l.Product.ID, l.Quantity, l.Product.Name, s.Orders.FormatPrice(l.Subtotal()))
		}
		fmt.Fprintf(w, "Total: %s (%d items)\n", view.FormattedTotal, view.Count)
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "cart:add <id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStorefront(cmd)
		if err != nil {
			return err
		}
		return s.AddToCart(cmd.Context(), catalogEntity.ID(args[0]))
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "cart:remove <id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStorefront(cmd)
		if err != nil {
			return err
		}
		return s.Cart.Remove(catalogEntity.ID(args[0]))
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "cart:update <id> <quantity>",
	Short: "Set the quantity of a cart entry (values below 1 are ignored)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		s, err := newStorefront(cmd)
		if err != nil {
			return err
		}
		return s.Cart.UpdateQuantity(catalogEntity.ID(args[0]), qty)
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "cart:clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStorefront(cmd)
		if err != nil {
			return err
		}
		return s.Cart.Clear()
	},
}

var orderMessageCmd = &cobra.Command{
	Use:   "order:message",
	Short: "Print the order message and messaging links for the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStorefront(cmd)
		if err != nil {
			return err
		}
		view := s.CartView(cmd.Context())
		if view.Message == "" {
			return fmt.Errorf("the cart has no products from the current catalog")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n\nWhatsApp: %s\nTelegram: %s\n", view.Message, view.Links.WhatsApp, view.Links.Telegram)
		return nil
	},
}

var favoritesShowCmd = &cobra.Command{
	Use:   "favorites:show",
	Short: "List favorite products still in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStorefront(cmd)
		if err != nil {
			return err
		}
		printProducts(cmd.OutOrStdout(), s, s.FavoritesView(cmd.Context()))
		return nil
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "favorites:add <id>",
	Short: "Add a product to favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStorefront(cmd)
		if err != nil {
			return err
		}
		return s.AddToFavorites(cmd.Context(), catalogEntity.ID(args[0]))
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "favorites:remove <id>",
	Short: "Remove a product from favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStorefront(cmd)
		if err != nil {
			return err
		}
		return s.Favorites.Remove(catalogEntity.ID(args[0]))
	},
}

var favoritesToggleCmd = &cobra.Command{
	Use:   "favorites:toggle <id>",
	Short: "Add or remove a product from favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStorefront(cmd)
		if err != nil {
			return err
		}
		_, err = s.ToggleFavorite(cmd.Context(), catalogEntity.ID(args[0]))
		return err
	},
}

func init() {
	rootCmd.AddCommand(
		cartShowCmd, cartAddCmd, cartRemoveCmd, cartUpdateCmd, cartClearCmd,
		orderMessageCmd,
		favoritesShowCmd, favoritesAddCmd, favoritesRemoveCmd, favoritesToggleCmd,
	)
}
