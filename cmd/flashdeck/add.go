package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/flashdeck/pkg/core"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		front    string
		back     string
		category string
		tags     []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a card to the collection",
		Long: `Add a card with a question (front), an answer (back), a category and
optional tags. Repeated tags are stored once.`,
		Example: `  flashdeck add --front "Capital of France?" --back Paris --category Study --tag geo`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := core.Category(category)
			if !c.Valid() {
				return fmt.Errorf("unknown category %q (choose one of %v)", category, core.Categories())
			}

			store, err := a.openWritable()
			if err != nil {
				return err
			}
			defer store.Close()

			draft := core.NewDraft()
			draft.Front = front
			draft.Back = back
			draft.Category = c
			for _, t := range tags {
				draft.AddTag(t)
			}

			added, err := draft.Submit(cmd.Context(), store)
			if err != nil {
				return err
			}
			if !added {
				return errors.New("front and back must not be empty")
			}

			entries := store.Entries()
			last := entries[len(entries)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "Added card #%d (%s)\n", len(entries), last.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&front, "front", "", "Question side of the card")
	cmd.Flags().StringVar(&back, "back", "", "Answer side of the card")
	cmd.Flags().StringVarP(&category, "category", "c", string(core.CategoryGeneral), "Category")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "Tag (repeatable)")
	return cmd
}
