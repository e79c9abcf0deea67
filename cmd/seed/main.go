package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"secretarium/internal/config"
	"secretarium/internal/infrastructure/kv"
	kvmemory "secretarium/internal/infrastructure/kv/memory"
	kvpostgres "secretarium/internal/infrastructure/kv/postgres"
	kvsqlite "secretarium/internal/infrastructure/kv/sqlite"
	"secretarium/internal/seed"
	"secretarium/internal/utils/logger"
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load demo workspaces and records into the configured store",
	Long: `Seed creates the demo workspaces and one representative record of
every kind. It goes through the same resource services as the API and is
idempotent: existing records are left alone.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	store, err := openStore(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	created, err := seed.New(store, log).Run(cmd.Context())
	if err != nil {
		return err
	}

	if len(created) == 0 {
		color.Yellow("Demo data already present, nothing to do")
		return nil
	}
	for _, item := range created {
		color.Green("created %s", item)
	}
	fmt.Printf("Seeded %d records\n", len(created))
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (kv.Store, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		return kvpostgres.New(ctx, cfg, log)
	case config.DriverMemory:
		return kvmemory.New(), nil
	default:
		return kvsqlite.New(cfg, log)
	}
}
