package root

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"goalquest/internal/engine"
	"goalquest/internal/ui"
)

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}
	cmd.AddCommand(
		newNoteAddCmd(),
		newNoteListCmd(),
		newNoteShowCmd(),
		newNotePinCmd(),
		newNoteSummarizeCmd(),
		newNoteRemoveCmd(),
	)
	return cmd
}

func newNoteAddCmd() *cobra.Command {
	var content, category string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Write a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			n, err := a.svc.CreateNote(ctx, engine.CreateNoteInput{
				Title:    args[0],
				Content:  content,
				Category: category,
				Tags:     tags,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Note %d saved.\n", ui.IconNote, n.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&content, "content", "c", "", "Note body")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tag (repeatable)")
	return cmd
}

func newNoteListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes, pinned first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			notes, err := a.svc.Notes().List(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconNote, "Notes"))
			if len(notes) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for _, n := range notes {
				pin := ""
				if n.Pinned {
					pin = "📌 "
				}
				line := fmt.Sprintf("%d. %s%s", n.ID, pin, n.Title)
				if len(n.Tags) > 0 {
					line += " " + ui.Muted.Render("#"+strings.Join(n.Tags, " #"))
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func newNoteShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a note with its summary",
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

			n, err := a.svc.Notes().Get(ctx, id)
			if err != nil {
				return err
			}
			if n == nil {
				return fmt.Errorf("note %d not found", id)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconNote, n.Title))
			if n.Content != "" {
				fmt.Fprintln(out, n.Content)
			}
			if n.AISummary != nil {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("Summary"))
				fmt.Fprintln(out, *n.AISummary)
			}
			return nil
		},
	}
}

func newNotePinCmd() *cobra.Command {
	var unpin bool

	cmd := &cobra.Command{
		Use:   "pin <id>",
		Short: "Pin a note to the top of the list",
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

			if err := a.svc.PinNote(ctx, id, !unpin); err != nil {
				return err
			}
			if unpin {
				fmt.Fprintln(cmd.OutOrStdout(), "Note unpinned.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Note pinned.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unpin, "unpin", false, "Unpin instead")
	return cmd
}

func newNoteSummarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <id>",
		Short: "Generate and store a summary of the note",
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

			summary, err := a.svc.SummarizeNote(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}

func newNoteRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
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

			if err := a.svc.DeleteNote(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Note deleted.")
			return nil
		},
	}
}
