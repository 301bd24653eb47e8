package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/deckops/deckops/adapters/store/inmem"
	"github.com/deckops/deckops/adapters/store/rdb"
	"github.com/deckops/deckops/domain"
	"github.com/deckops/deckops/domain/model"
	"github.com/deckops/deckops/models/widgetcfg"
	"github.com/deckops/deckops/usecase/dashboard"
)

// findFlag recursively searches parents for a flag.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

// getDBURL extracts the db-url flag value from command hierarchy.
func getDBURL(cmd *cobra.Command) string {
	f := findFlag(cmd, "db-url")
	if f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return "sqlite:deckops.db"
}

// buildRepos creates repositories based on db-url. The `mem:` scheme backs
// an ephemeral in-memory store, mainly for experiments and tests.
func buildRepos(cmd *cobra.Command) (*domain.Repositories, error) {
	dbURL := getDBURL(cmd)

	switch {
	case dbURL == "mem:" || dbURL == "mem":
		return inmem.NewStore().Repositories(), nil

	case strings.HasPrefix(dbURL, "sqlite:") || strings.HasPrefix(dbURL, "sqlite3:"):
		db, err := rdb.OpenFromURL(dbURL)
		if err != nil {
			return nil, err
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, err
		}
		return &domain.Repositories{
			Workspace: rdb.NewWorkspaceRepository(db),
			Layout:    rdb.NewLayoutRepository(db),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
}

// buildRegistry loads the widget catalog from the --registry flag, falling
// back to the built-in catalog.
func buildRegistry(cmd *cobra.Command) (model.Registry, error) {
	path := ""
	if f := findFlag(cmd, "registry"); f != nil {
		path = f.Value.String()
	}
	if path == "" {
		return widgetcfg.Builtin().ToRegistry(), nil
	}
	cfg, err := widgetcfg.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg.ToRegistry(), nil
}

// workspaceKey extracts the (tenant, user) workspace key from flags.
func workspaceKey(cmd *cobra.Command) model.WorkspaceKey {
	key := model.WorkspaceKey{Tenant: "default", User: "default"}
	if f := findFlag(cmd, "tenant"); f != nil && f.Value.String() != "" {
		key.Tenant = f.Value.String()
	}
	if f := findFlag(cmd, "user"); f != nil && f.Value.String() != "" {
		key.User = f.Value.String()
	}
	return key
}

// buildDashboardStore wires registry, repositories, and workspace key, and
// opens the store (load-or-seed) so commands start from a Ready state.
func buildDashboardStore(cmd *cobra.Command) (*dashboard.Store, error) {
	reg, err := buildRegistry(cmd)
	if err != nil {
		return nil, err
	}
	repos, err := buildRepos(cmd)
	if err != nil {
		return nil, err
	}
	store := dashboard.NewStore(&dashboard.Repos{
		Workspace: repos.Workspace,
		Layout:    repos.Layout,
	}, reg, workspaceKey(cmd))
	if err := store.Open(cmd.Context()); err != nil {
		return nil, err
	}
	return store, nil
}
