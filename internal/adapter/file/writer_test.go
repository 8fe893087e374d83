package file

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWriter(path string) *Writer {
	return NewWriter(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWriter_Publish(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "map.html")
	w := testWriter(path)

	require.NoError(t, w.Publish(context.Background(), []byte("<html>first</html>")))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>first</html>", string(got))

	require.NoError(t, w.Publish(context.Background(), []byte("<html>second</html>")))
	got, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>second</html>", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriter_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	w := testWriter(filepath.Join(dir, "map.html"))

	require.NoError(t, w.Publish(context.Background(), []byte("page")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "map.html", entries[0].Name())
}

func TestWriter_CanceledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.html")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := testWriter(path).Publish(ctx, []byte("page"))
	require.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriter_Path(t *testing.T) {
	assert.Equal(t, "quakemap.html", testWriter("quakemap.html").Path())
}
