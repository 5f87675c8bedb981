package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aureus/cardiosim/internal/app"
	"github.com/aureus/cardiosim/internal/bank"
	"github.com/aureus/cardiosim/internal/config"
	"github.com/aureus/cardiosim/internal/feedback"
	"github.com/aureus/cardiosim/internal/llm"
	"github.com/aureus/cardiosim/internal/logging"
	"github.com/aureus/cardiosim/internal/session"
	"github.com/aureus/cardiosim/internal/sink"
	"github.com/aureus/cardiosim/internal/store"
)

// runApp loads the bank, opens the store, builds dependencies, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	b, err := bank.Load(cfg.Bank.Path)
	if err != nil {
		return err
	}
	logger.Info("question bank loaded", zap.String("source", b.Source), zap.Int("questions", b.Count()))

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	sk, err := newSink(ctx, cfg, st)
	if err != nil {
		return err
	}

	s := session.New(session.Options{
		Bank:    b,
		Advisor: newAdvisor(ctx, cfg, st, logger),
		Sink:    sk,
		Logger:  logger,
	})

	return app.Run(app.Options{
		Session: s,
		Results: st.ResultRepo(),
		Logger:  logger,
	})
}

// newAdvisor builds the feedback advisor. Without a usable provider it
// runs offline; the app still works.
func newAdvisor(ctx context.Context, cfg *config.Config, st *store.Store, logger *zap.Logger) *feedback.Advisor {
	fc := feedback.DefaultConfig()
	fc.Structured = cfg.LLM.StructuredVerdict

	lc, ok := cfg.LLMProvider()
	if !ok {
		logger.Info("no LLM provider configured, feedback offline")
		return feedback.NewAdvisor(nil, fc, logger)
	}
	fc.Timeout = lc.Timeout

	provider, err := llm.NewProvider(ctx, lc, st.EventRepo(), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI feedback will be unavailable.")
		logger.Warn("LLM provider init failed", zap.Error(err))
		return feedback.NewAdvisor(nil, fc, logger)
	}
	logger.Info("LLM provider ready", zap.String("provider", lc.Provider), zap.String("model", provider.ModelID()))
	return feedback.NewAdvisor(provider, fc, logger)
}

// newSink selects where finished results are delivered.
func newSink(ctx context.Context, cfg *config.Config, st *store.Store) (sink.Sink, error) {
	local := sink.NewSQLite(st.ResultRepo())

	sheets := func() (sink.Sink, error) {
		sc := cfg.Sink.Sheets
		s, err := sink.NewSheets(ctx, sink.SheetsConfig{
			SpreadsheetID: sc.SpreadsheetID,
			Range:         sc.Range,
		}, sc.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("sheets sink: %w", err)
		}
		return s, nil
	}

	switch cfg.Sink.Kind {
	case config.SinkNone:
		return sink.Nop{}, nil
	case config.SinkSheets:
		return sheets()
	case config.SinkBoth:
		remote, err := sheets()
		if err != nil {
			return nil, err
		}
		return sink.Fanout{local, remote}, nil
	default:
		return local, nil
	}
}
