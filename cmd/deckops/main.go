package main

import (
	"context"
	"os"

	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/deckops/deckops/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deckops",
		Short:   "Deckops dashboard workspace CLI",
		Long:    "Deckops manages dashboards, widget arrangements, and named layout snapshots for one workspace.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultDB := os.Getenv("DECKOPS_DB_URL")
	if defaultDB == "" {
		defaultDB = "sqlite:deckops.db"
	}
	cmd.PersistentFlags().String("db-url", defaultDB, "Database URL (env DECKOPS_DB_URL) (sqlite:/path/to.db | mem:)")
	cmd.PersistentFlags().String("registry", os.Getenv("DECKOPS_REGISTRY"), "Widget catalog YAML (env DECKOPS_REGISTRY); built-in catalog when empty")
	cmd.PersistentFlags().String("tenant", envOr("DECKOPS_TENANT", "default"), "Workspace tenant (env DECKOPS_TENANT)")
	cmd.PersistentFlags().String("user", envOr("DECKOPS_USER", "default"), "Workspace user (env DECKOPS_USER)")
	cmd.PersistentFlags().String("log-format", "human", "Log format (human|text|json) (env DECKOPS_LOG_FORMAT)")
	cmd.PersistentFlags().String("log-output", "-", "Log output ('-' stderr | none | file path)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		if env := os.Getenv("DECKOPS_LOG_FORMAT"); env != "" { // env overrides flag
			format = env
		}
		output, _ := c.Flags().GetString("log-output")
		lf, err := logging.NewLogFile(output)
		if err != nil {
			return err
		}
		l, err := logging.NewWithWriter(format, slog.LevelInfo, lf.Writer())
		if err != nil {
			return err
		}
		l = l.With("runId", uuid.NewString())
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdWidget())
	cmd.AddCommand(newCmdDashboard())
	cmd.AddCommand(newCmdLayout())
	cmd.AddCommand(newCmdWorkspace())
	cmd.AddCommand(newCmdRegistry())
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
