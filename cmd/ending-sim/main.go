package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/ending-sim/internal/config"
	"github.com/danielpatrickdp/ending-sim/internal/logging"
	"github.com/danielpatrickdp/ending-sim/internal/session"
	"github.com/danielpatrickdp/ending-sim/internal/store"
)

// #region main
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region root
type playFlags struct {
	configPath     string
	pacing         time.Duration
	dbPath         string
	logLevel       string
	affinityPolicy string
}

func newRootCmd() *cobra.Command {
	var f playFlags
	root := &cobra.Command{
		Use:   "ending-sim",
		Short: "Play the route and ending simulator",
		Long: `ending-sim plays one story session on the terminal: pick a story mode,
answer the prologue, hand out hearts, then pick a final choice and see
which ending the highest-affinity character reaches.

Run without a subcommand to play.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, f)
		},
	}
	root.Flags().StringVar(&f.configPath, "config", "", "path to a YAML config file")
	root.Flags().DurationVar(&f.pacing, "pacing", 0, "pause between story beats (0 disables)")
	root.Flags().StringVar(&f.dbPath, "db", "", "archive finished sessions to this SQLite file")
	root.Flags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	root.Flags().StringVar(&f.affinityPolicy, "affinity-policy", "", "skip or retry invalid heart amounts")

	root.AddCommand(newReplayCmd(), newInspectCmd(), newExportCmd())
	return root
}

// #endregion root

// #region play
func resolveConfig(cmd *cobra.Command, f playFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("pacing") {
		cfg.Pacing = f.pacing
	}
	if flags.Changed("db") {
		cfg.DBPath = f.dbPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("affinity-policy") {
		cfg.AffinityPolicy = f.affinityPolicy
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, f playFlags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := session.Options{
		Pacer:          session.DelayPacer{Delay: cfg.Pacing},
		AffinityPolicy: cfg.Policy(),
		Logger:         logger,
	}
	if cfg.DBPath != "" {
		st, err := store.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()
		opts.Recorder = session.StoreRecorder{Store: st}
		logger.Debug("archiving sessions", zap.String("db", cfg.DBPath))
	}

	out := cmd.OutOrStdout()
	banner := lipgloss.NewRenderer(out).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		Padding(0, 1)
	fmt.Fprintln(out, banner.Render("Route & Ending Simulator"))

	con := session.NewConsole(cmd.InOrStdin(), out)
	_, err = session.New(con, opts).Run(cmd.Context())
	switch {
	case errors.Is(err, session.ErrInputClosed):
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Input closed. Goodbye.")
		return nil
	case errors.Is(err, context.Canceled):
		return nil
	}
	return err
}

// #endregion play
