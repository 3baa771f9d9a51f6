package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"catalog-backend/internal/catalog"
	"catalog-backend/internal/store"

	"github.com/spf13/cobra"
)

var categoryFlag string

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Inspect and remove gallery entries",
}

var listEntriesCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		table, release, err := openTable(ctx)
		if err != nil {
			return err
		}
		defer release()

		items, err := table.ListByCategory(ctx, categoryFlag)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
		printEntries(cmd, items)
		return nil
	},
}

var deleteEntryCmd = &cobra.Command{
	Use:   "delete [entry-id]",
	Short: "Delete an entry by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(args[0])
		ctx := cmd.Context()
		table, release, err := openTable(ctx)
		if err != nil {
			return err
		}
		defer release()

		err = table.Delete(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("entry not found: %s", id)
		}
		if err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "entry %s deleted\n", id)
		return nil
	},
}

func printEntries(cmd *cobra.Command, items []catalog.Entry) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCREATED\tCATEGORY\tKIND\tTITLE\tMEDIA")
	for _, e := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			e.ID,
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Category,
			e.Kind(),
			e.DisplayTitle(),
			len(e.Media()),
		)
	}
	w.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "%d entries\n", len(items))
}

func init() {
	listEntriesCmd.Flags().StringVar(&categoryFlag, "category", "", "only list entries of this category")
	entriesCmd.AddCommand(listEntriesCmd)
	entriesCmd.AddCommand(deleteEntryCmd)
}
