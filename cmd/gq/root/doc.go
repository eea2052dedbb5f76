package root

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"goalquest/internal/ui"
)

func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Store reference documents",
	}
	cmd.AddCommand(newDocAddCmd(), newDocListCmd(), newDocShowCmd(), newDocRemoveCmd())
	return cmd
}

func newDocAddCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Import a document from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			d, err := a.svc.ImportDocument(ctx, args[0], string(data))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Document %d stored.\n", d.ID)
			if len(d.KeyConcepts) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Concepts: "+strings.Join(d.KeyConcepts, ", ")))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the document text")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newDocListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			docs, err := a.svc.Documents().List(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("📚", "Documents"))
			if len(docs) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for _, d := range docs {
				line := fmt.Sprintf("%d. %s", d.ID, d.Title)
				if len(d.KeyConcepts) > 0 {
					line += " " + ui.Muted.Render("("+strings.Join(d.KeyConcepts, ", ")+")")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func newDocShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a document",
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

			d, err := a.svc.Documents().Get(ctx, id)
			if err != nil {
				return err
			}
			if d == nil {
				return fmt.Errorf("document %d not found", id)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("📚", d.Title))
			fmt.Fprintln(out, d.Content)
			return nil
		},
	}
}

func newDocRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a document",
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

			if err := a.svc.DeleteDocument(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Document deleted.")
			return nil
		},
	}
}
