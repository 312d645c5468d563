package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLine(t *testing.T) {
	ts := time.Date(2025, 3, 1, 9, 5, 7, 123456000, time.Local)
	assert.Equal(t, "2025-03-01 09:05:07.123456 | Score: 8\n", FormatLine(ts, 8))
}

func TestFileSinkAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	sink := NewFileSink(path)

	ts := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)
	require.NoError(t, sink.Append(ts, 3))
	require.NoError(t, sink.Append(ts.Add(time.Minute), 10))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2025-03-01 09:00:00.000000 | Score: 3", lines[0])
	assert.Equal(t, "2025-03-01 09:01:00.000000 | Score: 10", lines[1])
}

func TestFileSinkKeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	require.NoError(t, os.WriteFile(path, []byte("earlier\n"), 0644))

	require.NoError(t, NewFileSink(path).Append(time.Now(), 1))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "earlier\n"))
	assert.Equal(t, 2, strings.Count(string(data), "\n"))
}

func TestFileSinkError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "history.txt")
	err := NewFileSink(path).Append(time.Now(), 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.FileSink.Append")
}

func TestNewFileSinkDefault(t *testing.T) {
	assert.Equal(t, DefaultPath, NewFileSink("").Path)
}

func TestDiscard(t *testing.T) {
	var s Sink = Discard{}
	assert.NoError(t, s.Append(time.Now(), 5))
}
