package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sky-flux/leitner/internal/config"
	"github.com/sky-flux/leitner/internal/deck"
	"github.com/sky-flux/leitner/internal/platform/logger"
	"github.com/sky-flux/leitner/internal/store"
)

// app holds what every subcommand needs: the --config flag and, once
// loaded, the configuration and logger.
type app struct {
	cfgPath string
	cfg     config.Config
	log     *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "leitner",
		Short: "A Leitner-box flashcard scheduler",
		Long: `leitner schedules flashcard practice with the Leitner system:
cards move up a bucket when answered correctly and back to bucket 0 when
missed, and bucket i is practiced every 2^i days.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "path to a YAML config file")

	rootCmd.AddCommand(
		newServeCmd(a),
		newAddCmd(a),
		newDueCmd(a),
		newAnswerCmd(a),
		newHintCmd(a),
		newStatsCmd(a),
		newNextDayCmd(a),
		newForecastCmd(a),
		newAuditCmd(a),
	)
	return rootCmd
}

func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "leitner:", err)
		os.Exit(1)
	}
}

func (a *app) load() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.cfg, a.log = cfg, log
	return nil
}

// openDeck opens the configured store and wraps it in a deck service. The
// returned close func releases the store and flushes the logger.
func (a *app) openDeck() (*deck.Service, func(), error) {
	st, err := store.Open(a.cfg.Storage, a.log)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := st.Close(); err != nil {
			a.log.Warn("closing store", "error", err)
		}
		a.log.Sync()
	}
	return deck.NewService(st, a.log), closeFn, nil
}

// dayFlag returns the --day value when it was given on the command line.
func dayFlag(cmd *cobra.Command, day int) *int {
	if !cmd.Flags().Changed("day") {
		return nil
	}
	return &day
}
