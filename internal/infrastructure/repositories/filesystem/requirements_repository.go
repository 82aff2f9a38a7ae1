package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/psessford/srcsync/internal/domain/entities"
	"github.com/psessford/srcsync/internal/domain/repositories"
)

// RequirementsRepository implements repositories.RequirementsRepository
// against the local filesystem.
type RequirementsRepository struct{}

var _ repositories.RequirementsRepository = (*RequirementsRepository)(nil)

// NewRequirementsRepository creates a new filesystem-backed
// RequirementsRepository.
func NewRequirementsRepository() *RequirementsRepository {
	return &RequirementsRepository{}
}

// Read returns the ordered declarations of the manifest at path. A missing
// file is reported as exists == false, not as an error.
func (it *RequirementsRepository) Read(
	_ context.Context,
	path string,
) ([]entities.Requirement, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return entities.ParseManifest(string(data)), true, nil
}

// WriteAtomic writes the declarations to a temp file next to the target and
// renames it into place, so no partial-merge state is ever observable.
func (it *RequirementsRepository) WriteAtomic(
	_ context.Context,
	path string,
	reqs []entities.Requirement,
) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp manifest: %w", err)
	}

	if _, writeErr := tmp.WriteString(entities.RenderManifest(reqs)); writeErr != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp manifest: %w", writeErr)
	}
	if closeErr := tmp.Close(); closeErr != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp manifest: %w", closeErr)
	}

	if renameErr := os.Rename(tmp.Name(), path); renameErr != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", path, renameErr)
	}
	return nil
}
