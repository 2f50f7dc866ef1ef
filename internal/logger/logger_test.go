package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAppendsToMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cubefield.txt")
	l := New(path)
	l.now = func() time.Time { return time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC) }

	l.Log("window opened")
	l.Logf("field attached %dx%d", 800, 600)

	want := []string{
		"[2026-10-14 09:30:00] window opened",
		"[2026-10-14 09:30:00] field attached 800x600",
	}
	assert.Equal(t, want, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want[0]+"\n"+want[1]+"\n", string(data))
}

func TestLinesIsACopy(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "log.txt"))
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}

func TestUnwritablePathKeepsLines(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the file makes every open fail.
	path := filepath.Join(dir, "log.txt")
	require.NoError(t, os.Mkdir(path, 0755))
	l := New(path)
	l.Log("still here")
	assert.Len(t, l.Lines(), 1)
}
