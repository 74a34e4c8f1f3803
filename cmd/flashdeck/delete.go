package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <position|id>",
		Short: "Delete a card",
		Long: `Delete a card by its position as shown by "flashdeck list" (starting
at 1) or by its id. Positions shift after every deletion.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openWritable()
			if err != nil {
				return err
			}
			defer store.Close()

			target := args[0]
			var removed bool
			if pos, convErr := strconv.Atoi(target); convErr == nil {
				removed, err = store.Delete(cmd.Context(), pos-1)
			} else {
				removed, err = store.DeleteByID(cmd.Context(), target)
			}
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no card matches %q", target)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted card %s\n", target)
			return nil
		},
	}
}
