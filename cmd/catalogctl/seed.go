package main

import (
	"fmt"

	"catalog-backend/internal/catalog"

	"github.com/spf13/cobra"
)

type seedEntry struct {
	Title       string
	Description string
	URL         string
	Category    string
	Media       []string
}

var seedEntries = []seedEntry{
	{
		Title:       "Portfolio Site",
		Description: "Personal site with an editable project gallery.",
		URL:         "https://github.com/",
		Category:    catalog.CategoryProject,
	},
	{
		Title:       "Curriculum Vitae",
		Description: "Latest resume as a PDF.",
		Category:    catalog.CategoryResume,
	},
	{
		Title:       "Riverside Pavilion",
		Description: "Concept sketches for a small public pavilion.",
		Category:    catalog.CategoryArchitecture,
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample entries that are not present yet",
	Long:  `Insert sample gallery entries. Entries are matched by title, so running seed twice inserts nothing the second time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		table, release, err := openTable(ctx)
		if err != nil {
			return err
		}
		defer release()

		existing, err := table.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}
		titles := make(map[string]struct{}, len(existing))
		for _, e := range existing {
			titles[e.DisplayTitle()] = struct{}{}
		}

		inserted := 0
		for _, s := range seedEntries {
			if _, ok := titles[s.Title]; ok {
				continue
			}
			if _, err := table.Insert(ctx, s.fields()); err != nil {
				return fmt.Errorf("seed error for %s: %w", s.Title, err)
			}
			inserted++
		}

		fmt.Fprintf(cmd.OutOrStdout(), "seed completed: %d inserted, %d already present\n", inserted, len(seedEntries)-inserted)
		return nil
	},
}

func (s seedEntry) fields() catalog.Fields {
	return catalog.Fields{
		URL:         optional(s.URL),
		Title:       optional(s.Title),
		Description: optional(s.Description),
		ImageURL:    catalog.EncodeMedia(s.Media),
		Category:    s.Category,
	}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
