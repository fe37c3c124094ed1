package main

import (
	"context"
	"fmt"
	"io"

	"github.com/JonMunkholm/dashboard/internal/config"
	"github.com/JonMunkholm/dashboard/internal/core"
	"github.com/JonMunkholm/dashboard/internal/logging"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	databaseURL string
	memory      bool
	seed        bool
}

// app holds what the subcommands need once the store is open.
type app struct {
	cfg     *config.Config
	service *core.Service
	close   func()
}

// Close releases the store. Safe to call before open.
func (a *app) Close() {
	if a.close != nil {
		a.close()
		a.close = nil
	}
}

func (a *app) open(ctx context.Context, stderr io.Writer, flags *globalFlags) error {
	cfg, err := config.LoadWith(func(c *config.Config) {
		if flags.databaseURL != "" {
			c.Database.URL = flags.databaseURL
		}
		if flags.memory {
			c.Store.Kind = config.StoreMemory
		}
		if flags.seed {
			c.Store.Seed = true
		}
	})
	if err != nil {
		return err
	}

	// Logs go to stderr so stdout carries only tables and CSV.
	logging.SetupWriter(stderr, cfg.Logging.Level, cfg.Logging.Format)

	overrides, err := config.LoadViewOverrides(cfg.View.File)
	if err != nil {
		return err
	}
	if err := core.ApplyViewConfig(cfg.View.PageSize, overrides); err != nil {
		return err
	}

	store, closeStore, err := core.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	a.close = closeStore

	service, err := core.NewService(store)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.service = service
	return nil
}

// view resolves a view key given on the command line.
func (a *app) view(key string) (core.ListView, error) {
	v, ok := core.Get(key)
	if !ok {
		return core.ListView{}, fmt.Errorf("unknown view %q (see 'dashctl views')", key)
	}
	return v, nil
}

func newRootCmd() (*cobra.Command, *app) {
	flags := &globalFlags{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dashctl",
		Short: "Query and export admin dashboard views",
		Long: `dashctl runs the same search, filter, sort and pagination as the
dashboard web UI against the configured store.

Configuration is read from the environment (and .env) like the server;
flags override it.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			return a.open(cmd.Context(), cmd.ErrOrStderr(), flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.databaseURL, "database-url", "", "PostgreSQL connection string (overrides DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVar(&flags.memory, "memory", false, "Use an in-memory store instead of PostgreSQL")
	rootCmd.PersistentFlags().BoolVar(&flags.seed, "seed", false, "Load demo applicants into an empty store")

	rootCmd.AddCommand(newViewsCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newExportCmd(a))

	return rootCmd, a
}
