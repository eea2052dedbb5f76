package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"goalquest/internal/engine"
	"goalquest/internal/ui"
)

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage long-term goals",
	}
	cmd.AddCommand(
		newGoalAddCmd(),
		newGoalListCmd(),
		newGoalProgressCmd(),
		newGoalStepsCmd(),
		newGoalRemoveCmd(),
	)
	return cmd
}

func newGoalAddCmd() *cobra.Command {
	var description, category, deadline string
	var steps []string
	var priority bool

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Set a goal (difficulty tier is assessed for you)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.CreateGoalInput{
				Title:       args[0],
				Description: description,
				Category:    category,
				Priority:    priority,
				Steps:       steps,
			}
			if deadline != "" {
				in.Deadline = &deadline
			}
			g, err := a.svc.CreateGoal(ctx, in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconGoal, "Goal set"))
			fmt.Fprintln(out, ui.LabelValue("ID", g.ID))
			fmt.Fprintln(out, ui.LabelValue("Title", g.Title))
			fmt.Fprintln(out, ui.LabelValue("Reward", fmt.Sprintf("+%d XP, +%d gold on completion", g.XPReward, g.GoldReward)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "d", "", "Description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&steps, "step", nil, "Step toward the goal (repeatable)")
	cmd.Flags().BoolVarP(&priority, "priority", "p", false, "Mark as priority")
	return cmd
}

func newGoalListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			var filter *bool
			if !all {
				open := false
				filter = &open
			}
			goals, err := a.svc.Goals().List(ctx, filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconGoal, "Goals"))
			if len(goals) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for _, g := range goals {
				state := fmt.Sprintf("%d%%", g.Progress)
				if g.Completed {
					state = ui.Good.Render("done")
				}
				line := fmt.Sprintf("%d. %s %s", g.ID, g.Title, state)
				if g.Deadline != nil {
					line += " " + ui.Muted.Render("due "+*g.Deadline)
				}
				fmt.Fprintln(out, line)
				for _, st := range g.Steps {
					fmt.Fprintln(out, ui.Muted.Render("   - "+st))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed goals")
	return cmd
}

func newGoalProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <percent>",
		Short: "Update progress (100 completes the goal and pays its reward)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be an integer")
			}
			pct, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("percent must be an integer")
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := a.svc.UpdateGoalProgress(ctx, id, pct)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.LabelValue("Progress", fmt.Sprintf("%d%%", res.Goal.Progress)))
			if res.JustCompleted {
				fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s Goal complete! +%d XP, +%d gold", ui.IconTrophy, res.Goal.XPReward, res.Goal.GoldReward)))
			}
			if res.LeveledUp {
				fmt.Fprintln(out, ui.BadgeLevelUp)
			}
			return nil
		},
	}
}

func newGoalStepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "steps <id> <step>...",
		Short: "Replace a goal's step list",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be an integer")
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.svc.UpdateGoalSteps(ctx, id, args[1:]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Steps updated (%d).\n", len(args)-1)
			return nil
		},
	}
}

func newGoalRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("id must be an integer")
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.svc.DeleteGoal(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goal deleted.")
			return nil
		},
	}
}
