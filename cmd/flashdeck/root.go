package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/flashdeck"
	"github.com/aretw0/flashdeck/internal/config"
	"github.com/aretw0/flashdeck/pkg/core"
)

// app carries the global flags and the resolved configuration shared by
// all subcommands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	adapter string
	path    string
	key     string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "flashdeck",
		Short: "A small flashcard manager",
		Long: `flashdeck keeps a single collection of question/answer cards,
filed under categories and tagged with free-form labels.
Every change is written through to the configured storage slot.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Config file (default: ./flashdeck.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&a.adapter, "adapter", "", "Storage adapter: fs, sqlite or memory")
	flags.StringVarP(&a.path, "path", "p", "", "Data directory or database file")
	flags.StringVar(&a.key, "key", "", "Slot key the collection is stored under")

	rootCmd.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newCategoriesCmd(),
		newWatchCmd(a),
		newStateCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("adapter") {
		cfg.Adapter = a.adapter
	}
	if cmd.Flags().Changed("path") {
		cfg.Path = a.path
	}
	if cmd.Flags().Changed("key") {
		cfg.Key = a.key
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := cfg.Level()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(a.logger)
	a.cfg = cfg
	return nil
}

// openStore opens the configured collection. Without an explicit path the
// collection lives in the enclosing project's .flashdeck directory or the
// user data directory.
func (a *app) openStore() (*core.Store, error) {
	path := a.cfg.Path
	if path == "" && a.cfg.Adapter != "memory" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		path = flashdeck.DefaultDataDir(wd)
	}

	store, err := flashdeck.New(path,
		flashdeck.WithAdapter(a.cfg.Adapter),
		flashdeck.WithKey(a.cfg.Key),
		flashdeck.WithLogger(a.logger),
		flashdeck.WithDevSafety(a.cfg.DevSafety),
		flashdeck.WithReadOnly(a.cfg.ReadOnly),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection: %w", err)
	}
	return store, nil
}

// openWritable opens the collection for a mutating command. A collection
// that could not be loaded is not overwritten.
func (a *app) openWritable() (*core.Store, error) {
	store, err := a.openStore()
	if err != nil {
		return nil, err
	}
	if store.Degraded() {
		_ = store.Close()
		return nil, fmt.Errorf("%w: the collection could not be loaded, refusing to modify it", core.ErrStorageUnavailable)
	}
	return store, nil
}
