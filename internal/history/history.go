// Package history appends assessment scores to a plaintext log.
package history

import (
	"fmt"
	"os"
	"time"
)

// DefaultPath is the log file used when none is configured.
const DefaultPath = "pcos_assessment_history.txt"

// TimestampLayout renders local time with microseconds, e.g. "2025-03-01 10:04:05.123456".
const TimestampLayout = "2006-01-02 15:04:05.000000"

// Sink records one score per submission.
type Sink interface {
	Append(ts time.Time, score int) error
}

// FormatLine returns the log line for a submission, including the trailing newline.
func FormatLine(ts time.Time, score int) string {
	return fmt.Sprintf("%s | Score: %d\n", ts.Format(TimestampLayout), score)
}

// FileSink appends to a file, opening and closing it on every call.
type FileSink struct {
	Path string
}

// NewFileSink returns a sink writing to path, or DefaultPath when path is empty.
func NewFileSink(path string) *FileSink {
	if path == "" {
		path = DefaultPath
	}
	return &FileSink{Path: path}
}

// Append writes a single line. The file is created if needed.
func (s *FileSink) Append(ts time.Time, score int) (err error) {
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("history.FileSink.Append: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("history.FileSink.Append: close: %w", cerr)
		}
	}()

	if _, err := f.WriteString(FormatLine(ts, score)); err != nil {
		return fmt.Errorf("history.FileSink.Append: %w", err)
	}
	return nil
}

// Discard drops every entry. Used when history is disabled.
type Discard struct{}

func (Discard) Append(time.Time, int) error { return nil }
