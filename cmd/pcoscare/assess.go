package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dshills/pcoscare/internal/assessment"
	"github.com/dshills/pcoscare/internal/history"
	"github.com/dshills/pcoscare/internal/intake"
	"github.com/dshills/pcoscare/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type assessFlags struct {
	answers   string
	format    string
	out       string
	noHistory bool
}

func newAssessCmd(g *globalFlags) *cobra.Command {
	f := &assessFlags{}

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score an answers file without the interactive wizard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.resolve()
			if err != nil {
				return err
			}
			logger, err := newLogger(s, true)
			if err != nil {
				return exitError(3, "%v", err)
			}
			defer syncLogger(logger)

			var sink history.Sink = history.NewFileSink(s.historyFile)
			if f.noHistory {
				sink = history.Discard{}
			}
			return runAssess(f, s, sink, logger, time.Now(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.answers, "answers", "", "YAML file with the nine answers (required)")
	flags.StringVar(&f.format, "format", "text", "Output format: text, md or json")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.BoolVar(&f.noHistory, "no-history", false, "Do not append the score to the history log")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

func runAssess(f *assessFlags, s *settings, sink history.Sink, logger *zap.Logger, now time.Time, stdout io.Writer) error {
	switch f.format {
	case "json", "md", "text", "":
	default:
		return exitError(3, "unknown format: %s", f.format)
	}

	logger.Debug("loading answers", zap.String("path", f.answers))
	raw, err := intake.LoadFile(f.answers)
	if err != nil {
		return exitError(3, "failed to load answers: %v", err)
	}

	answers, err := intake.Validate(raw)
	if err != nil {
		return exitError(3, "invalid answers: %v", err)
	}

	rec := assessment.Evaluate(answers, now)
	if err := sink.Append(rec.Timestamp, rec.Score); err != nil {
		logger.Warn("history append failed",
			zap.Error(err),
			zap.String("record_id", rec.ID.String()),
			zap.Int("score", rec.Score))
	}
	logger.Debug("assessment scored", zap.String("record_id", rec.ID.String()), zap.Int("score", rec.Score), zap.String("tier", string(rec.Tier)))

	report := render.NewReport(version, answers, rec, s.guide)

	var output string
	switch f.format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		output = render.Markdown(report)
	default:
		output = render.Text(report)
	}

	if f.out != "" {
		logger.Debug("writing report", zap.String("path", f.out))
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = io.WriteString(stdout, output)
	return err
}
