package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"goalquest/internal/engine"
	"goalquest/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits",
	}
	cmd.AddCommand(
		newHabitAddCmd(),
		newHabitListCmd(),
		newHabitDoneCmd(),
		newHabitUndoCmd(),
		newHabitArchiveCmd(),
		newHabitRemoveCmd(),
	)
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var description, category, frequency string
	var days []string
	var priority bool

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a habit (difficulty and rewards are assessed for you)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := a.svc.CreateHabit(ctx, engine.CreateHabitInput{
				Name:          args[0],
				Description:   description,
				Category:      category,
				Priority:      priority,
				Frequency:     frequency,
				FrequencyDays: days,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHabit, "Habit created"))
			fmt.Fprintln(out, ui.LabelValue("ID", h.ID))
			fmt.Fprintln(out, ui.LabelValue("Name", h.Name))
			fmt.Fprintln(out, ui.LabelValue("Rewards", fmt.Sprintf("+%d XP, +%d gold", h.XPReward, h.GoldReward)))
			fmt.Fprintln(out, ui.Muted.Render(h.Rationale))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "d", "", "Description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category")
	cmd.Flags().StringVar(&frequency, "frequency", "daily", "Frequency (daily|weekly|custom)")
	cmd.Flags().StringSliceVar(&days, "days", nil, "Days for custom frequency (mon,tue,...)")
	cmd.Flags().BoolVarP(&priority, "priority", "p", false, "Mark as priority")
	return cmd
}

func newHabitListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits with streaks and today's state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			habits, err := a.svc.ListHabits(ctx, !all)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHabit, "Habits"))
			if len(habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none — add one with `gq habit add`)"))
				return nil
			}
			for _, h := range habits {
				mark := "[ ]"
				if h.DoneToday {
					mark = ui.Good.Render("[x]")
				}
				line := fmt.Sprintf("%s %d. %s %s", mark, h.ID, h.Name, ui.Muted.Render(fmt.Sprintf("+%dxp", h.XPReward)))
				if h.Streak > 0 {
					line += " " + ui.Warn.Render(fmt.Sprintf("%s%d", ui.IconStreak, h.Streak))
				}
				if !h.Active {
					line += " " + ui.Muted.Render("(archived)")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include archived habits")
	return cmd
}

func newHabitDoneCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Log a habit completion",
		Args:  habitIDArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := a.svc.CompleteHabit(ctx, id, date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.AlreadyCompleted {
				fmt.Fprintln(out, ui.Muted.Render("Already completed for that day."))
				return nil
			}
			fmt.Fprintf(out, "%s %s: %s\n", ui.IconDone, res.Habit.Name,
				ui.Good.Render(fmt.Sprintf("+%d XP, +%d gold", res.Habit.XPReward, res.Habit.GoldReward)))
			if res.Streak > 1 {
				fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("%s %d day streak!", ui.IconStreak, res.Streak)))
			}
			if res.LeveledUp {
				fmt.Fprintln(out, ui.BadgeLevelUp)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to log (YYYY-MM-DD, default today)")
	return cmd
}

func newHabitUndoCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Remove a logged completion",
		Args:  habitIDArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			if err := a.svc.UncompleteHabit(ctx, id, date); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Completion removed.")
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to unlog (YYYY-MM-DD, default today)")
	return cmd
}

func newHabitArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Hide a habit from the active list, keeping its history",
		Args:  habitIDArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			if err := a.svc.DeactivateHabit(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Habit archived.")
			return nil
		},
	}
}

func newHabitRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a habit and its completion history",
		Args:  habitIDArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			if err := a.svc.DeleteHabit(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Habit deleted.")
			return nil
		},
	}
}

func habitIDArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("id is required")
	}
	if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
		return errors.New("id must be an integer")
	}
	return nil
}
