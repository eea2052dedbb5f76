package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goalquest/internal/shop"
	"goalquest/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the shop, buy and equip items",
	}
	cmd.AddCommand(
		newShopListCmd(),
		newShopBuyCmd(),
		newShopInventoryCmd(),
		newShopEquipCmd(),
		newShopUnequipCmd(),
	)
	return cmd
}

func newShopListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := a.svc.Player(ctx)
			if err != nil {
				return err
			}

			items := shop.Catalog
			if category != "" {
				items = shop.ItemsByCategory(category)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Shop"))
			fmt.Fprintln(out, ui.LabelValue("Your gold", fmt.Sprintf("%s %d", ui.IconGold, p.CurrentGold)))
			fmt.Fprintln(out, "")
			for i := range items {
				it := &items[i]
				price := fmt.Sprintf("%d gold", it.Price.Gold)
				if it.Price.Crystals > 0 {
					price = fmt.Sprintf("%d crystals", it.Price.Crystals)
				}
				line := fmt.Sprintf("%s %s [%s] — %s", it.Icon, it.Name, ui.RarityText(it.Rarity), price)
				if !shop.MeetsLevelRequirement(p.Level, it) {
					line += " " + ui.Bad.Render(fmt.Sprintf("(level %d)", it.RequiredLevel))
				} else if !shop.CanAfford(p.CurrentGold, it) {
					line += " " + ui.Warn.Render("(can't afford)")
				}
				fmt.Fprintln(out, line)
				fmt.Fprintln(out, ui.Muted.Render("   "+it.ID+" — "+it.Description))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category (consumable|equipment|cosmetic)")
	return cmd
}

func newShopBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy one unit of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			it, err := a.shop.Purchase(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Bought %s %s for %d gold.\n", ui.IconShop, it.Icon, it.Name, it.Price.Gold)
			return nil
		},
	}
}

func newShopInventoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "Show owned items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			owned, err := a.shop.ListOwned(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("🎒", "Inventory"))
			if len(owned) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
				return nil
			}
			for _, o := range owned {
				qty := ""
				if o.Quantity > 1 {
					qty = fmt.Sprintf(" x%d", o.Quantity)
				}
				fmt.Fprintf(out, "%s %s%s %s\n", o.Item.Icon, o.Item.Name, qty, ui.Muted.Render("("+o.Item.ID+")"))
			}
			return nil
		},
	}
}

func newShopEquipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equip <item-id>",
		Short: "Equip an owned item into its slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			it := shop.ItemByID(args[0])
			if it == nil {
				return fmt.Errorf("unknown item %q", args[0])
			}
			if err := a.shop.Equip(ctx, it.ID, it.Slot); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Equipped %s %s (%s).\n", it.Icon, it.Name, it.Slot)
			return nil
		},
	}
}

func newShopUnequipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unequip <slot>",
		Short: "Clear an equipment slot (weapon|armor|ring|amulet|head)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.shop.Unequip(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Slot %s cleared.\n", args[0])
			return nil
		},
	}
}
