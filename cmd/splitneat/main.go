// Command splitneat runs the SplitNeat bill splitter: a web page and RPC
// API (serve), a terminal UI (tui), or a one-off listing (friends).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mmynk/splitneat/internal/config"
	"github.com/mmynk/splitneat/internal/ledger"
	"github.com/mmynk/splitneat/internal/metrics"
	"github.com/mmynk/splitneat/internal/storage"
	"github.com/mmynk/splitneat/internal/storage/memory"
	"github.com/mmynk/splitneat/internal/storage/sqlite"
)

var (
	// Global flags
	configPath string
	logLevel   string
	storeName  string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "splitneat",
	Short: "SplitNeat - split bills with friends",
	Long: `SplitNeat keeps a running balance with each of your friends.

Pick a friend, enter the bill, your share and who paid, and the friend's
balance moves by the other person's share. State lives in memory and is
reset to the seed friends on every start.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG"), "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&storeName, "store", "", "friend store: memory or sqlite")

	rootCmd.AddCommand(serveCmd, tuiCmd, friendsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("store") {
		cfg.Store = storeName
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = addr
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func openStore(name string) (storage.Store, error) {
	switch name {
	case config.StoreSQLite:
		store, err := sqlite.NewInMemory()
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return store, nil
	case config.StoreMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown store %q", name)
	}
}

// openLedger builds the ledger over the configured store and seeds it.
// The caller closes the returned store.
func openLedger(ctx context.Context, cfg config.Config, reg prometheus.Registerer) (*ledger.Ledger, *metrics.Metrics, storage.Store, error) {
	store, err := openStore(cfg.Store)
	if err != nil {
		return nil, nil, nil, err
	}

	seeds, err := cfg.SeedFriends()
	if err != nil {
		store.Close()
		return nil, nil, nil, err
	}

	var m *metrics.Metrics
	if reg != nil {
		m = metrics.New(reg)
	}

	l := ledger.New(store, ledger.WithMetrics(m))
	if err := l.Seed(ctx, seeds); err != nil {
		store.Close()
		return nil, nil, nil, fmt.Errorf("failed to seed friends: %w", err)
	}

	slog.Info("Ledger ready", "store", cfg.Store, "friends", len(seeds))
	return l, m, store, nil
}
