package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/deckops/deckops/usecase/dashboard"
)

func newCmdWorkspace() *cobra.Command {
	c := &cobra.Command{
		Use:                "workspace",
		Aliases:            []string{"ws"},
		Short:              "Workspace document commands",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	c.AddCommand(newCmdWorkspaceShow())
	c.AddCommand(newCmdWorkspaceExport())
	c.AddCommand(newCmdWorkspaceImport())
	return c
}

func newCmdWorkspaceShow() *cobra.Command {
	return &cobra.Command{
		Use:                "show",
		Short:              "Show the workspace document",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(store.Workspace())
		},
	}
}

func newCmdWorkspaceExport() *cobra.Command {
	var outPath string
	c := &cobra.Command{
		Use:                "export",
		Short:              "Export the workspace to a portable file",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "workspace.export", "")
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.ExportWorkspace(ctx, &dashboard.ExportWorkspaceInput{})
			if err != nil {
				return err
			}
			return writeExport(cmd, outPath, out.Filename, out.Data)
		},
	}
	c.Flags().StringVarP(&outPath, "output", "o", "", "Output file ('-' stdout, default: suggested filename)")
	return c
}

func newCmdWorkspaceImport() *cobra.Command {
	var (
		inPath    string
		overwrite bool
	)
	c := &cobra.Command{
		Use:                "import",
		Short:              "Import a portable workspace file",
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
			ctx, cleanup := withCmdRunLogger(ctx, "workspace.import", inPath)
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.ImportWorkspace(ctx, &dashboard.ImportWorkspaceInput{Data: data, Overwrite: overwrite})
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
		},
	}
	c.Flags().StringVarP(&inPath, "file", "f", "", "Input file ('-' stdin)")
	c.Flags().BoolVar(&overwrite, "overwrite", false, "Replace the stored workspace (validate only without it)")
	return c
}
