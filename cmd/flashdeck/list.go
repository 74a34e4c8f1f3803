package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/flashdeck/pkg/core"
	"github.com/aretw0/flashdeck/pkg/transfer"
)

func newListCmd(a *app) *cobra.Command {
	var (
		category string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards, optionally filtered by category",
		Long: `List cards in insertion order. Each card is shown with its position,
which "flashdeck delete" accepts as well as the card id.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := core.Category(category)
			if c != core.CategoryAll && !c.Valid() {
				return fmt.Errorf("unknown category %q", category)
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			if asJSON {
				return transfer.Export(out, store.Filter(c), transfer.FormatJSON)
			}

			shown := 0
			for i, e := range store.Entries() {
				if c != core.CategoryAll && e.Category != c {
					continue
				}
				shown++
				fmt.Fprintf(out, "#%d [%s] %s -> %s", i+1, e.Category, e.Front, e.Back)
				if len(e.Tags) > 0 {
					fmt.Fprintf(out, " #%s", strings.Join(e.Tags, " #"))
				}
				fmt.Fprintf(out, "  (%s)\n", e.ID)
			}
			if shown == 0 {
				fmt.Fprintln(out, "No cards.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", string(core.CategoryAll), "Show only this category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
