package main

import (
	"encoding/json"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/flashdeck/internal/config"
)

type stateReport struct {
	Config *config.Config `json:"config"`
	Store  any            `json:"store"`
	Slot   any            `json:"slot,omitempty"`
}

func newStateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Print the internal state of the store and its slot as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			report := stateReport{Config: a.cfg, Store: store.State()}
			if slot, ok := store.Slot().(introspection.Introspectable); ok {
				report.Slot = slot.State()
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(report)
		},
	}
}
