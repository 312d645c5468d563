package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dshills/pcoscare/internal/flow"
	"github.com/dshills/pcoscare/internal/history"
	"github.com/dshills/pcoscare/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive assessment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(g)
		},
	}
}

func runWizard(g *globalFlags) error {
	s, err := g.resolve()
	if err != nil {
		return err
	}
	logger, err := newLogger(s, false)
	if err != nil {
		return exitError(3, "%v", err)
	}
	defer syncLogger(logger)

	session := flow.NewSession(history.NewFileSink(s.historyFile), flow.WithLogger(logger))
	logger.Info("wizard started", zap.String("history", s.historyFile), zap.String("guide", s.guide.Name))

	p := tea.NewProgram(tui.New(session, s.guide), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run wizard: %w", err)
	}
	return nil
}
