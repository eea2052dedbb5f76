package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goalquest/internal/ui"
)

func newMotdCmd() *cobra.Command {
	var habitContext string

	cmd := &cobra.Command{
		Use:   "motd",
		Short: "Show today's motivation (same quote all day)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			m, err := a.svc.DailyMotivation(ctx, habitContext)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuote, "Daily Motivation"))
			fmt.Fprintln(out, ui.Panel.Render(ui.Title.Render(m.Quote)+"\n\n"+m.Philosophy))
			fmt.Fprintln(out, ui.Muted.Render("— "+m.Tradition+" tradition"))
			return nil
		},
	}

	cmd.Flags().StringVar(&habitContext, "context", "", "Bias the quote toward a theme (e.g. resilience)")
	return cmd
}
