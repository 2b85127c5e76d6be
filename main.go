package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pacer/internal/config"
	"pacer/internal/logging"
	"pacer/internal/report"
	"pacer/internal/session"
	"pacer/internal/store"
	"pacer/internal/tui"
)

type rootFlags struct {
	configPath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "pacer",
		Short: "Plan interval splits and the resulting average pace",
		Long: `Pacer splits a race distance into weighted intervals, each with its own
target split, and works out the distance-weighted average split and the
projected finish time. Without a subcommand it opens the interactive planner.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default ~/.pacer/config.json)")

	rootCmd.AddCommand(newCalcCmd(flags))
	rootCmd.AddCommand(newShowCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newForgetCmd(flags))

	return rootCmd
}

// loadConfig reads and validates the config. A missing file means defaults.
func loadConfig(path string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFrom(path)
	}

	if errors.Is(err, config.ErrNoConfig) {
		defaults := config.DefaultConfig()
		cfg, err = &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openSession restores the persisted session from cfg.Storage.Path
func openSession(cfg *config.Config, logger *zap.Logger, notifier session.Notifier) (*session.Session, *store.DB, error) {
	db, err := store.Open(cfg.Storage.Path, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	s := session.New(session.Options{
		Slots:           db,
		Notifier:        notifier,
		Logger:          logger,
		UndoLimit:       cfg.Plan.UndoLimit,
		SplitUnit:       cfg.Plan.SplitUnit,
		DefaultDistance: cfg.Plan.DefaultDistance,
		DefaultTheme:    session.Theme(cfg.Display.Theme),
	})
	return s, db, nil
}

func runTUI(cfg *config.Config) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	changes := &session.Broadcaster{}
	s, db, err := openSession(cfg, logger, changes)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("starting planner",
		zap.String("storage", cfg.Storage.Path),
		zap.Float64("distance", s.Distance()),
	)

	// Launch TUI
	app := tui.NewApp(s, changes, report.NewUnits(cfg.Display.DistanceUnit), logger)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
