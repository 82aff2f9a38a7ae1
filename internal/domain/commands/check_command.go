package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/psessford/srcsync/internal/domain/entities"
	"github.com/psessford/srcsync/internal/domain/repositories"
)

// Check is the interface for the validation-only mode.
type Check interface {
	Execute(ctx context.Context, opts entities.CheckOptions) error
}

// CheckCommand verifies that a repo satisfies the sharing preconditions
// (exactly one public directory, small enough) without copying anything.
type CheckCommand struct {
	directories repositories.DirectoryRepository
}

// NewCheckCommand creates a new CheckCommand.
func NewCheckCommand(directories repositories.DirectoryRepository) *CheckCommand {
	return &CheckCommand{directories: directories}
}

// Execute runs the shareability checks against a single repo.
func (it *CheckCommand) Execute(ctx context.Context, opts entities.CheckOptions) error {
	repo, err := entities.NewRepoReference(opts.RepoDir, entities.RepoRoleInput)
	if err != nil {
		return err
	}
	if validateErr := repo.Validate(); validateErr != nil {
		return validateErr
	}

	names, listErr := it.directories.ListChildDirectories(ctx, repo.Path)
	if listErr != nil {
		return fmt.Errorf("failed to list repo: %w", listErr)
	}

	candidates := entities.ClassifyDirectories(names, opts.ReservedDirectories)
	publicName, locateErr := entities.LocatePublicDirectory(repo.Path, candidates)
	if locateErr != nil {
		return locateErr
	}

	srcDir := filepath.Join(repo.Path, publicName)
	size, measureErr := it.directories.MeasureUsage(ctx, srcDir)
	if measureErr != nil {
		return fmt.Errorf("failed to measure directory: %w", measureErr)
	}

	maxBytes := entities.GigabytesToBytes(opts.MaxGigabytes)
	if size > maxBytes {
		return &entities.DirectorySizeError{Path: srcDir, SizeBytes: size, MaxBytes: maxBytes}
	}

	logger.Infof(
		"repo is shareable: public directory %s uses %d of %d bytes",
		publicName, size, maxBytes,
	)
	return nil
}
