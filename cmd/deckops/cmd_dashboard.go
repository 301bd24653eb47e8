package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/deckops/deckops/usecase/dashboard"
)

func newCmdDashboard() *cobra.Command {
	c := &cobra.Command{
		Use:                "dashboard",
		Aliases:            []string{"db"},
		Short:              "Dashboard commands",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	c.AddCommand(newCmdDashboardList())
	c.AddCommand(newCmdDashboardCreate())
	c.AddCommand(newCmdDashboardRename())
	c.AddCommand(newCmdDashboardDelete())
	c.AddCommand(newCmdDashboardDuplicate())
	c.AddCommand(newCmdDashboardActivate())
	return c
}

func newCmdDashboardList() *cobra.Command {
	return &cobra.Command{
		Use:                "list",
		Short:              "List dashboards",
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
			out, err := store.ListDashboards(ctx, &dashboard.ListDashboardsInput{})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, it := range out.Dashboards {
				if err := enc.Encode(it); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newCmdDashboardCreate() *cobra.Command {
	var name string
	c := &cobra.Command{
		Use:                "create",
		Short:              "Create an empty dashboard",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "dashboard.create", name)
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.CreateDashboard(ctx, &dashboard.CreateDashboardInput{Name: name})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Dashboard)
		},
	}
	c.Flags().StringVar(&name, "name", "", "Dashboard name (untitled default when empty)")
	return c
}

func newCmdDashboardRename() *cobra.Command {
	return &cobra.Command{
		Use:                "rename <dashboard-id> <name>",
		Short:              "Rename a dashboard",
		Args:               cobra.ExactArgs(2),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "dashboard.rename", args[0])
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.RenameDashboard(ctx, &dashboard.RenameDashboardInput{DashboardID: args[0], Name: args[1]})
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
		},
	}
}

func newCmdDashboardDelete() *cobra.Command {
	return &cobra.Command{
		Use:                "delete <dashboard-id>",
		Short:              "Delete a dashboard (the last one is kept)",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "dashboard.delete", args[0])
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.DeleteDashboard(ctx, &dashboard.DeleteDashboardInput{DashboardID: args[0]})
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
		},
	}
}

func newCmdDashboardDuplicate() *cobra.Command {
	return &cobra.Command{
		Use:                "duplicate <dashboard-id>",
		Short:              "Duplicate a dashboard and activate the copy",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "dashboard.duplicate", args[0])
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.DuplicateDashboard(ctx, &dashboard.DuplicateDashboardInput{DashboardID: args[0]})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func newCmdDashboardActivate() *cobra.Command {
	return &cobra.Command{
		Use:                "activate <dashboard-id>",
		Short:              "Switch the active dashboard",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "dashboard.activate", args[0])
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.ActivateDashboard(ctx, &dashboard.ActivateDashboardInput{DashboardID: args[0]})
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
		},
	}
}
