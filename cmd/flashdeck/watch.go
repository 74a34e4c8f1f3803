package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aretw0/flashdeck/pkg/core"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Report changes made to the collection by other processes",
		Long: `Watch follows the storage slot and prints a line every time the
collection is rewritten or removed, until interrupted. Only the fs
adapter supports watching.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			events, err := store.Watch(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Watching %q (%d cards). Press Ctrl+C to stop.\n", a.cfg.Key, store.Len())
			for event := range events {
				fmt.Fprintf(out, "%s %s\n", event, describe(ctx, store.Slot(), event))
			}
			return nil
		},
	}
}

// describe reports the size of the collection after an event.
func describe(ctx context.Context, slot core.Slot, event core.Event) string {
	if event.Type == core.EventDelete {
		return "(removed)"
	}
	data, err := slot.Load(ctx, event.Key)
	if err != nil {
		return fmt.Sprintf("(unreadable: %v)", err)
	}
	entries, err := core.DecodeCollection(data)
	if err != nil {
		return "(invalid data)"
	}
	return fmt.Sprintf("(%d cards)", len(entries))
}
