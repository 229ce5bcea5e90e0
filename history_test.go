package dialog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryAdd(t *testing.T) {
	t.Parallel()

	t.Run("entries accumulate most recent last", func(t *testing.T) {
		t.Parallel()

		h := NewHistory(HistoryConfig{})
		h.Add("one")
		h.Add("two")
		assert.Equal(t, []string{"one", "two"}, h.Entries())
	})

	t.Run("empty lines are skipped", func(t *testing.T) {
		t.Parallel()

		h := NewHistory(HistoryConfig{})
		h.Add("")
		h.Add("one")
		assert.Equal(t, []string{"one"}, h.Entries())
	})

	t.Run("consecutive duplicates collapse", func(t *testing.T) {
		t.Parallel()

		h := NewHistory(HistoryConfig{})
		h.Add("one")
		h.Add("one")
		h.Add("two")
		h.Add("one")
		assert.Equal(t, []string{"one", "two", "one"}, h.Entries())
	})

	t.Run("the store trims to MaxEntries", func(t *testing.T) {
		t.Parallel()

		h := NewHistory(HistoryConfig{MaxEntries: 2})
		h.Add("one")
		h.Add("two")
		h.Add("three")
		assert.Equal(t, []string{"two", "three"}, h.Entries())
	})

	t.Run("Entries returns a copy", func(t *testing.T) {
		t.Parallel()

		h := NewHistory(HistoryConfig{})
		h.Add("one")
		h.Entries()[0] = "mutated"
		assert.Equal(t, []string{"one"}, h.Entries())
	})
}

func TestHistoryClear(t *testing.T) {
	t.Parallel()

	h := NewHistory(HistoryConfig{})
	h.Add("one")
	h.Clear()
	assert.Empty(t, h.Entries())
}

func TestHistorySaveAndLoad(t *testing.T) {
	t.Parallel()

	t.Run("round trip through a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "history")
		h := NewHistory(HistoryConfig{File: path})
		h.Add("first")
		h.Add("second")
		require.NoError(t, h.Save())

		loaded := NewHistory(HistoryConfig{File: path})
		require.NoError(t, loaded.Load())
		assert.Equal(t, []string{"first", "second"}, loaded.Entries())
	})

	t.Run("memory-only stores save and load nothing", func(t *testing.T) {
		t.Parallel()

		h := NewHistory(HistoryConfig{})
		h.Add("one")
		require.NoError(t, h.Save())
		require.NoError(t, h.Load())
		assert.Equal(t, []string{"one"}, h.Entries())
	})

	t.Run("loading a missing file is not an error", func(t *testing.T) {
		t.Parallel()

		h := NewHistory(HistoryConfig{File: filepath.Join(t.TempDir(), "nope")})
		require.NoError(t, h.Load())
		assert.Empty(t, h.Entries())
	})

	t.Run("saving creates missing directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "deep", "nested", "history")
		h := NewHistory(HistoryConfig{File: path})
		h.Add("one")
		require.NoError(t, h.Save())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "one\n", string(data))
	})

	t.Run("load respects MaxEntries", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "history")
		require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\nd\n"), 0600))

		h := NewHistory(HistoryConfig{File: path, MaxEntries: 2})
		require.NoError(t, h.Load())
		assert.Equal(t, []string{"c", "d"}, h.Entries())
	})
}

func TestHistoryRotation(t *testing.T) {
	t.Parallel()

	t.Run("an oversized file rotates to a backup", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "history")
		big := strings.Repeat("x\n", 100)
		require.NoError(t, os.WriteFile(path, []byte(big), 0600))

		h := NewHistory(HistoryConfig{File: path, MaxFileSize: 10, MaxBackups: 3})
		h.Add("fresh")
		require.NoError(t, h.Save())

		backup, err := os.ReadFile(path + ".1")
		require.NoError(t, err)
		assert.Equal(t, big, string(backup))

		current, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "fresh\n", string(current))
	})

	t.Run("existing backups shift down", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "history")
		require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("a\n", 20)), 0600))
		require.NoError(t, os.WriteFile(path+".1", []byte("old backup\n"), 0600))

		h := NewHistory(HistoryConfig{File: path, MaxFileSize: 10, MaxBackups: 3})
		h.Add("fresh")
		require.NoError(t, h.Save())

		shifted, err := os.ReadFile(path + ".2")
		require.NoError(t, err)
		assert.Equal(t, "old backup\n", string(shifted))
	})

	t.Run("zero backups truncates in place", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "history")
		require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("a\n", 20)), 0600))

		h := NewHistory(HistoryConfig{File: path, MaxFileSize: 10, MaxBackups: 0})
		h.Add("fresh")
		require.NoError(t, h.Save())

		assert.NoFileExists(t, path+".1")
	})

	t.Run("a small file is left alone", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "history")
		require.NoError(t, os.WriteFile(path, []byte("a\n"), 0600))

		h := NewHistory(HistoryConfig{File: path})
		h.Add("b")
		require.NoError(t, h.Save())

		assert.NoFileExists(t, path+".1")
	})
}
