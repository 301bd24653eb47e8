package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/deckops/deckops/domain/model"
	"github.com/deckops/deckops/usecase/dashboard"
)

func newCmdLayout() *cobra.Command {
	c := &cobra.Command{
		Use:                "layout",
		Aliases:            []string{"l"},
		Short:              "Layout snapshot commands",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	c.AddCommand(newCmdLayoutList())
	c.AddCommand(newCmdLayoutSave())
	c.AddCommand(newCmdLayoutLoad())
	c.AddCommand(newCmdLayoutRename())
	c.AddCommand(newCmdLayoutDelete())
	c.AddCommand(newCmdLayoutExport())
	c.AddCommand(newCmdLayoutImport())
	return c
}

func newCmdLayoutList() *cobra.Command {
	return &cobra.Command{
		Use:                "list",
		Short:              "List stored layout snapshots",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.ListLayouts(ctx, &dashboard.ListLayoutsInput{})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, it := range out.Layouts {
				if err := enc.Encode(it); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newCmdLayoutSave() *cobra.Command {
	var overwrite bool
	c := &cobra.Command{
		Use:                "save <name>",
		Short:              "Save the current arrangement as a named snapshot",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "layout.save", args[0])
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.SaveLayout(ctx, &dashboard.SaveLayoutInput{Name: args[0], Overwrite: overwrite})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Snapshot)
		},
	}
	c.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing snapshot of the same name")
	return c
}

func newCmdLayoutLoad() *cobra.Command {
	var mode string
	c := &cobra.Command{
		Use:                "load <name>",
		Short:              "Apply a stored snapshot to the active dashboard",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "layout.load", args[0])
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.LoadLayout(ctx, &dashboard.LoadLayoutInput{Name: args[0], Mode: model.ApplyMode(mode)})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	c.Flags().StringVar(&mode, "mode", "replace", "Apply mode (replace|append)")
	return c
}

func newCmdLayoutRename() *cobra.Command {
	return &cobra.Command{
		Use:                "rename <name> <new-name>",
		Short:              "Rename a stored snapshot",
		Args:               cobra.ExactArgs(2),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "layout.rename", args[0])
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			if _, err = store.RenameLayout(ctx, &dashboard.RenameLayoutInput{Name: args[0], NewName: args[1]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "renamed %q to %q\n", args[0], args[1])
			return nil
		},
	}
}

func newCmdLayoutDelete() *cobra.Command {
	return &cobra.Command{
		Use:                "delete <name>",
		Short:              "Delete a stored snapshot",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "layout.delete", args[0])
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			if _, err = store.DeleteLayout(ctx, &dashboard.DeleteLayoutInput{Name: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %q\n", args[0])
			return nil
		},
	}
}

func newCmdLayoutExport() *cobra.Command {
	var outPath string
	c := &cobra.Command{
		Use:                "export <name>",
		Short:              "Export a stored snapshot to a portable file",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "layout.export", args[0])
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.ExportLayout(ctx, &dashboard.ExportLayoutInput{Name: args[0]})
			if err != nil {
				return err
			}
			return writeExport(cmd, outPath, out.Filename, out.Data)
		},
	}
	c.Flags().StringVarP(&outPath, "output", "o", "", "Output file ('-' stdout, default: suggested filename)")
	return c
}

func newCmdLayoutImport() *cobra.Command {
	var (
		inPath    string
		overwrite bool
	)
	c := &cobra.Command{
		Use:                "import",
		Short:              "Import a portable snapshot file and apply it",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			data, err := readImport(cmd, inPath)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "layout.import", inPath)
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.ImportLayout(ctx, &dashboard.ImportLayoutInput{Data: data, Overwrite: overwrite})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	c.Flags().StringVarP(&inPath, "file", "f", "", "Input file ('-' stdin)")
	c.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing snapshot of the same name")
	return c
}

// readImport reads a payload from a file path or stdin ("-").
func readImport(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("input file required (-f)")
	}
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// writeExport writes a payload to the given path, the suggested filename
// when the path is empty, or stdout ("-").
func writeExport(cmd *cobra.Command, path, suggested string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if path == "" {
		path = suggested
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
