package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goalquest/internal/engine"
	"goalquest/internal/shop"
	"goalquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, gold, stats and equipment",
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Player Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", ui.XPBar(p.CurrentXP, engine.XPToNextLevel(p.Level), 24)))
			fmt.Fprintln(out, ui.LabelValue("Total XP", p.TotalXP))
			fmt.Fprintln(out, ui.LabelValue("Gold", fmt.Sprintf("%s %d (lifetime %d)", ui.IconGold, p.CurrentGold, p.LifetimeGold)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Attributes"))
			fmt.Fprintf(out, "- 💪 STR: %d\n", p.Strength)
			fmt.Fprintf(out, "- 🧠 INT: %d\n", p.Intelligence)
			fmt.Fprintf(out, "- ❤️ VIT: %d\n", p.Vitality)
			fmt.Fprintf(out, "- 🏃 AGI: %d\n", p.Agility)
			fmt.Fprintf(out, "- 👁️ SEN: %d\n", p.Sense)
			fmt.Fprintf(out, "- 🔥 WIL: %d\n", p.Willpower)
			fmt.Fprintln(out, "")

			eq, err := a.svc.Inventory().GetEquipment(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.H2.Render("⚔️ Equipment"))
			fmt.Fprintln(out, "- "+ui.LabelValue("Weapon", slotName(eq.WeaponID)))
			fmt.Fprintln(out, "- "+ui.LabelValue("Armor", slotName(eq.ArmorID)))
			fmt.Fprintln(out, "- "+ui.LabelValue("Ring", slotName(eq.RingID)))
			fmt.Fprintln(out, "- "+ui.LabelValue("Amulet", slotName(eq.AmuletID)))
			fmt.Fprintln(out, "- "+ui.LabelValue("Head", slotName(eq.HeadID)))
			return nil
		},
	}
}

func slotName(itemID *string) string {
	if itemID == nil {
		return ui.Muted.Render("(empty)")
	}
	if it := shop.ItemByID(*itemID); it != nil {
		return it.Icon + " " + it.Name
	}
	return *itemID
}
