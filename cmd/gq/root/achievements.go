package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"goalquest/internal/ui"
)

func newAchievementsCmd() *cobra.Command {
	var unlockedOnly bool

	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := a.svc.Achievements().List(ctx, unlockedOnly)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Achievements"))
			unlocked := 0
			for _, ach := range list {
				if ach.UnlockedAt != nil {
					unlocked++
				}
			}
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d of %d unlocked", unlocked, len(list))))
			fmt.Fprintln(out, "")

			for _, ach := range list {
				if ach.UnlockedAt != nil {
					fmt.Fprintf(out, "%s %s %s\n", ach.Icon, ui.Good.Render(ach.Title),
						ui.Muted.Render(ach.UnlockedAt.Format("2006-01-02")))
				} else {
					fmt.Fprintf(out, "🔒 %s %s\n", ach.Title, ui.Muted.Render("— "+ach.Description))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&unlockedOnly, "unlocked", "u", false, "Only show unlocked achievements")
	return cmd
}
