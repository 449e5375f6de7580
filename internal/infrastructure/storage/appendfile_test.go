package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendLineCreatesAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	require.NoError(t, AppendLine(path, "first"))
	require.NoError(t, AppendLine(path, "second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestForEachLineVisitsInFileOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, AppendLine(path, "a"))
	require.NoError(t, AppendLine(path, "b"))
	require.NoError(t, AppendLine(path, "c"))

	var got []string
	var nums []int
	err := ForEachLine(path, func(n int, line []byte) error {
		nums = append(nums, n)
		got = append(got, string(line))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, []int{1, 2, 3}, nums)
}

func TestForEachLineVisitsUnterminatedFinalLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb"), 0644))

	var got []string
	err := ForEachLine(path, func(n int, line []byte) error {
		got = append(got, string(line))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestForEachLineMissingFileIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")

	calls := 0
	err := ForEachLine(path, func(int, []byte) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestEnsureDirIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))
	assert.True(t, Exists(dir))
}
