//go:build unit

package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psessford/srcsync/internal/domain/entities"
	"github.com/psessford/srcsync/internal/infrastructure/repositories/filesystem"
)

func TestRequirementsRead(t *testing.T) {
	t.Parallel()

	t.Run("should read an existing manifest in order", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "requirements.txt")
		require.NoError(t, os.WriteFile(path, []byte("requests==2.0\nsix==1.1\n"), 0o644))
		repo := filesystem.NewRequirementsRepository()

		// when
		reqs, exists, err := repo.Read(context.Background(), path)

		// then
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, []entities.Requirement{
			{Raw: "requests==2.0"}, {Raw: "six==1.1"},
		}, reqs)
	})

	t.Run("should report a missing manifest without error", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "requirements.txt")
		repo := filesystem.NewRequirementsRepository()

		// when
		reqs, exists, err := repo.Read(context.Background(), path)

		// then
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Empty(t, reqs)
	})
}

func TestRequirementsWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("should create the manifest when absent", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "requirements.txt")
		repo := filesystem.NewRequirementsRepository()

		// when
		err := repo.WriteAtomic(context.Background(), path, []entities.Requirement{
			{Raw: "requests==2.0"},
		})

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "requests==2.0\n", string(content))
	})

	t.Run("should replace existing content completely", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "requirements.txt")
		require.NoError(t, os.WriteFile(path, []byte("old==0.1\n"), 0o644))
		repo := filesystem.NewRequirementsRepository()

		// when
		err := repo.WriteAtomic(context.Background(), path, []entities.Requirement{
			{Raw: "new==1.0"},
		})

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "new==1.0\n", string(content))
	})

	t.Run("should write an empty manifest for no declarations", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "requirements.txt")
		repo := filesystem.NewRequirementsRepository()

		// when
		err := repo.WriteAtomic(context.Background(), path, nil)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Empty(t, content)
	})

	t.Run("should leave no temp debris behind", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "requirements.txt")
		repo := filesystem.NewRequirementsRepository()

		// when
		err := repo.WriteAtomic(context.Background(), path, []entities.Requirement{
			{Raw: "requests==2.0"},
		})

		// then
		require.NoError(t, err)
		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		require.Len(t, entries, 1)
		assert.Equal(t, "requirements.txt", entries[0].Name())
	})
}
