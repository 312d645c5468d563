package main

import (
	"fmt"
	"path/filepath"

	"github.com/dshills/pcoscare/internal/advice"
	"github.com/dshills/pcoscare/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// globalFlags are shared by every subcommand. Empty values fall back to the environment.
type globalFlags struct {
	envFile     string
	historyFile string
	guide       string
	logFile     string
	verbose     bool
}

func (g *globalFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&g.envFile, "env-file", ".env", "Optional dotenv file")
	flags.StringVar(&g.historyFile, "history", "", "History log path (env PCOSCARE_HISTORY_FILE)")
	flags.StringVar(&g.guide, "guide", "", "Built-in guidance to show (env PCOSCARE_GUIDE)")
	flags.StringVar(&g.logFile, "log-file", "", "Operator log path (env PCOSCARE_LOG_FILE)")
	flags.BoolVar(&g.verbose, "verbose", false, "Debug-level operator logging")
}

// settings is the merged view of flags and environment.
type settings struct {
	historyFile string
	guide       *advice.Guide
	logFile     string
	debug       bool
}

func (g *globalFlags) resolve() (*settings, error) {
	cfg, err := config.Load(g.envFile)
	if err != nil {
		return nil, exitError(3, "failed to load config: %v", err)
	}

	s := &settings{
		historyFile: cfg.HistoryFile,
		logFile:     cfg.LogFile,
		debug:       cfg.Debug || g.verbose,
	}
	if g.historyFile != "" {
		s.historyFile = g.historyFile
	}
	if g.logFile != "" {
		s.logFile = g.logFile
	}

	name := cfg.Guide
	if g.guide != "" {
		name = g.guide
	}
	s.guide, err = advice.LoadBuiltin(name)
	if err != nil {
		return nil, exitError(3, "failed to load guide: %v", err)
	}
	return s, nil
}

// DefaultWizardLog is the operator log used by the wizard when none is configured.
// It is created next to the history file.
const DefaultWizardLog = "pcoscare.log"

// operatorLogPath returns where the operator log goes. An empty result means stderr,
// which is only allowed when stderr is not owned by the terminal UI.
func operatorLogPath(s *settings, stderrOK bool) string {
	if s.logFile != "" || stderrOK {
		return s.logFile
	}
	return filepath.Join(filepath.Dir(s.historyFile), DefaultWizardLog)
}

// newLogger builds the operator log. Without a log file it writes to stderr,
// or to DefaultWizardLog when stderr belongs to the terminal UI.
func newLogger(s *settings, stderrOK bool) (*zap.Logger, error) {
	path := operatorLogPath(s, stderrOK)

	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true
	if s.debug {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if path != "" {
		zc.OutputPaths = []string{path}
		zc.ErrorOutputPaths = []string{path}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// syncLogger flushes buffered entries. Sync on a terminal stderr can return EINVAL.
func syncLogger(l *zap.Logger) {
	_ = l.Sync()
}
