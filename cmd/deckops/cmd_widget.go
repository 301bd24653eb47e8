package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/deckops/deckops/usecase/dashboard"
)

func newCmdWidget() *cobra.Command {
	c := &cobra.Command{
		Use:                "widget",
		Aliases:            []string{"w"},
		Short:              "Widget commands for the active dashboard",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	c.AddCommand(newCmdWidgetAdd())
	c.AddCommand(newCmdWidgetClose())
	c.AddCommand(newCmdWidgetReopen())
	c.AddCommand(newCmdWidgetList())
	return c
}

func newCmdWidgetAdd() *cobra.Command {
	return &cobra.Command{
		Use:                "add <widget-id>",
		Short:              "Add a widget instance to the active dashboard",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "widget.add", args[0])
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.AddWidget(ctx, &dashboard.AddWidgetInput{WidgetID: args[0]})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func newCmdWidgetClose() *cobra.Command {
	return &cobra.Command{
		Use:                "close <instance-id>",
		Short:              "Close a widget instance (soft delete)",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "widget.close", args[0])
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.CloseWidget(ctx, &dashboard.CloseWidgetInput{InstanceID: args[0]})
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
		},
	}
}

func newCmdWidgetReopen() *cobra.Command {
	return &cobra.Command{
		Use:                "reopen <instance-id>",
		Short:              "Reopen a closed widget instance",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ctx, cleanup := withCmdRunLogger(ctx, "widget.reopen", args[0])
			defer func() { cleanup(err) }()
			store, err := buildDashboardStore(cmd)
			if err != nil {
				return err
			}
			out, err := store.ReopenWidget(ctx, &dashboard.ReopenWidgetInput{InstanceID: args[0]})
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
		},
	}
}

func newCmdWidgetList() *cobra.Command {
	var includeClosed bool
	c := &cobra.Command{
		Use:                "list",
		Short:              "List widget instances of the active dashboard",
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
			out, err := store.ListWidgets(ctx, &dashboard.ListWidgetsInput{IncludeClosed: includeClosed})
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, it := range out.Items {
				if err := enc.Encode(it); err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.Flags().BoolVar(&includeClosed, "all", false, "Include closed instances")
	return c
}
