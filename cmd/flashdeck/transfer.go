package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/flashdeck/pkg/core"
	"github.com/aretw0/flashdeck/pkg/transfer"
)

func newExportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the collection to a file",
		Long: `Export writes the whole collection as a pretty-printed JSON array
(or YAML for .yaml/.yml files) to the given file, flashcards.json by
default. Use "-" to write to standard output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := transfer.DefaultFilename
			if len(args) == 1 {
				target = args[0]
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			entries := store.Entries()
			if target == "-" {
				f, err := transfer.ParseFormat(format)
				if err != nil {
					return err
				}
				return transfer.Export(cmd.OutOrStdout(), entries, f)
			}

			if err := transfer.ExportFile(target, entries); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d cards to %s\n", len(entries), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(transfer.FormatJSON), "Format for standard output: json or yaml")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the collection with the contents of a file",
		Long: `Import parses the given file and, only if it is valid, replaces the
whole collection with its cards and saves it. Use "-" to read from
standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				entries []core.Entry
				err     error
			)
			if args[0] == "-" {
				f, ferr := transfer.ParseFormat(format)
				if ferr != nil {
					return ferr
				}
				entries, err = transfer.Import(cmd.InOrStdin(), f)
			} else {
				entries, err = transfer.ImportFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			store, err := a.openWritable()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := transfer.Apply(cmd.Context(), store, entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cards\n", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(transfer.FormatJSON), "Format for standard input: json or yaml")
	return cmd
}
