package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var got string
	cmd := newRootCmd(func(ctx context.Context, path string) error {
		got = path
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return got, cmd.Execute()
}

func TestRootCmd_FileFlag(t *testing.T) {
	path, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, defaultSeedFilePath, path)

	path, err = execute(t, "--file", "/tmp/quizzes.json")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/quizzes.json", path)

	path, err = execute(t, "-f", "other.json")
	require.NoError(t, err)
	assert.Equal(t, "other.json", path)

	_, err = execute(t, "extra")
	assert.Error(t, err)
}

func TestRootCmd_RunErrorIsReturned(t *testing.T) {
	cmd := newRootCmd(func(ctx context.Context, path string) error {
		return errors.New("2 quizzes failed to seed")
	})
	cmd.SetArgs(nil)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	assert.EqualError(t, cmd.Execute(), "2 quizzes failed to seed")
}

func TestLoadSeedFile(t *testing.T) {
	quizzes, err := loadSeedFile(filepath.Join("..", "..", "configs", "seed_data", "sample_quizzes.json"))
	require.NoError(t, err)
	assert.Len(t, quizzes, 6)

	_, err = loadSeedFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"title":"x","unknown":1}]`), 0o600))
	_, err = loadSeedFile(bad)
	assert.Error(t, err)
}
