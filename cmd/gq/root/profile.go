package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"goalquest/internal/storage"
	"goalquest/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
	}
	cmd.AddCommand(newProfileShowCmd(), newProfileSetCmd())
	return cmd
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := a.svc.Profiles().Get(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("📜", "Profile"))
			name := p.DisplayName
			if name == "" {
				name = ui.Muted.Render("(unset)")
			}
			fmt.Fprintln(out, ui.LabelValue("Name", name))
			fmt.Fprintln(out, ui.LabelValue("Tradition", p.Tradition))
			fmt.Fprintln(out, ui.LabelValue("Timezone", p.Timezone))
			if len(p.FocusAreas) > 0 {
				fmt.Fprintln(out, ui.LabelValue("Focus", strings.Join(p.FocusAreas, ", ")))
			}
			return nil
		},
	}
}

func newProfileSetCmd() *cobra.Command {
	var name, tradition, timezone string
	var focus []string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var u storage.ProfileUpdate
			if cmd.Flags().Changed("name") {
				u.DisplayName = &name
			}
			if cmd.Flags().Changed("tradition") {
				u.Tradition = &tradition
			}
			if cmd.Flags().Changed("timezone") {
				u.Timezone = &timezone
			}
			if cmd.Flags().Changed("focus") {
				u.FocusAreas = &focus
			}

			if _, err := a.svc.UpdateProfile(ctx, u); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&tradition, "tradition", "", "Quote tradition (esoteric|stoic|samurai|eastern)")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone")
	cmd.Flags().StringSliceVar(&focus, "focus", nil, "Focus area (repeatable)")
	return cmd
}
