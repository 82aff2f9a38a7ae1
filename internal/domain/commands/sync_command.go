package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/psessford/srcsync/internal/domain/entities"
	"github.com/psessford/srcsync/internal/domain/repositories"
)

// readOnlyAdvisory is shown after every successful copy. The copied directory
// is a mirror: edits belong in the input repo, where every consumer of the
// shared code can pick them up.
const readOnlyAdvisory = "NOTE: the copied directory should (almost always) be treated as " +
	"READ-ONLY, just like an external package. Make additions and edits in the " +
	"input repo so that every repo sharing the code benefits from them."

// Sync is the interface for the sync command (copy + requirements merge).
type Sync interface {
	Execute(ctx context.Context, opts entities.SyncOptions) error
}

// SyncCommand copies the single public directory of the input repo into the
// root of the output repo and reconciles the requirements manifests.
//
// The pipeline is strictly ordered: resolve paths, locate the public
// directory, size-check it, copy, merge requirements, optionally record a
// commit. A failure in locating or size-checking aborts before anything is
// written to the output repo. A copy failure propagates without rollback;
// whatever partial copy the filesystem produced stays in place.
type SyncCommand struct {
	directories  repositories.DirectoryRepository
	requirements repositories.RequirementsRepository
	recorder     repositories.SyncRecorderRepository
}

// NewSyncCommand creates a new SyncCommand.
func NewSyncCommand(
	directories repositories.DirectoryRepository,
	requirements repositories.RequirementsRepository,
	recorder repositories.SyncRecorderRepository,
) *SyncCommand {
	return &SyncCommand{
		directories:  directories,
		requirements: requirements,
		recorder:     recorder,
	}
}

// Execute runs the full sync pipeline.
func (it *SyncCommand) Execute(ctx context.Context, opts entities.SyncOptions) error {
	input, err := entities.NewRepoReference(opts.InputRepo, entities.RepoRoleInput)
	if err != nil {
		return err
	}
	output, err := entities.NewRepoReference(opts.OutputRepo, entities.RepoRoleOutput)
	if err != nil {
		return err
	}
	logger.Infof("input repo: %s", input.Path)
	logger.Infof("output repo: %s", output.Path)

	if validateErr := input.Validate(); validateErr != nil {
		return validateErr
	}

	srcDir, locateErr := it.locatePublicDirectory(ctx, input, opts.ReservedDirectories)
	if locateErr != nil {
		return locateErr
	}

	if guardErr := it.guardSize(ctx, srcDir, opts.MaxGigabytes); guardErr != nil {
		return guardErr
	}

	if opts.DryRun {
		logger.Infof("[DRY RUN] would copy %s into %s", srcDir, output.Path)
		return nil
	}

	if validateErr := output.Validate(); validateErr != nil {
		return validateErr
	}

	dstDir, copyErr := it.directories.CopyTree(ctx, srcDir, output.Path, opts.OverwritePolicy)
	if copyErr != nil {
		return fmt.Errorf("failed to copy directory: %w", copyErr)
	}
	logger.Infof("finished copying directory from %s to %s", srcDir, dstDir)
	logger.Warn(readOnlyAdvisory)

	if mergeErr := it.mergeRequirements(ctx, input.Path, output.Path, opts.RequirementsFile); mergeErr != nil {
		return mergeErr
	}

	if opts.Commit {
		return it.recordSync(ctx, input, output, filepath.Base(dstDir), opts)
	}
	return nil
}

// locatePublicDirectory enumerates the input repo's immediate child
// directories and applies the visibility rules to find the single shareable
// one.
func (it *SyncCommand) locatePublicDirectory(
	ctx context.Context,
	input entities.RepoReference,
	reserved []string,
) (string, error) {
	logger.Infof("locating single public directory in %s", filepath.Base(input.Path))

	names, err := it.directories.ListChildDirectories(ctx, input.Path)
	if err != nil {
		return "", fmt.Errorf("failed to list input repo: %w", err)
	}

	candidates := entities.ClassifyDirectories(names, reserved)
	publicName, locateErr := entities.LocatePublicDirectory(input.Path, candidates)
	if locateErr != nil {
		return "", locateErr
	}

	srcDir := filepath.Join(input.Path, publicName)
	logger.Infof("found public directory %s", srcDir)
	return srcDir, nil
}

// guardSize rejects directories whose on-disk footprint exceeds the ceiling.
// The deliberately tiny default forces input repos to stay narrow in scope.
func (it *SyncCommand) guardSize(ctx context.Context, dir string, maxGigabytes float64) error {
	logger.Infof("checking that directory is small enough to share (%s)", filepath.Base(dir))

	size, err := it.directories.MeasureUsage(ctx, dir)
	if err != nil {
		return fmt.Errorf("failed to measure directory: %w", err)
	}

	maxBytes := entities.GigabytesToBytes(maxGigabytes)
	if size > maxBytes {
		return &entities.DirectorySizeError{Path: dir, SizeBytes: size, MaxBytes: maxBytes}
	}

	logger.Infof("size check passed: %d of %d bytes", size, maxBytes)
	return nil
}

// mergeRequirements adds declarations present in the input repo's manifest
// but absent (by package name) from the output repo's. Missing input
// manifest: nothing to merge. Missing output manifest: created, then merged
// into.
func (it *SyncCommand) mergeRequirements(
	ctx context.Context,
	inputRepo, outputRepo, manifestName string,
) error {
	inputReqs, inputExists, err := it.requirements.Read(ctx, filepath.Join(inputRepo, manifestName))
	if err != nil {
		return fmt.Errorf("failed to read input requirements: %w", err)
	}
	if !inputExists {
		logger.Info("no requirements file found in input repo")
		return nil
	}

	outputPath := filepath.Join(outputRepo, manifestName)
	outputReqs, outputExists, err := it.requirements.Read(ctx, outputPath)
	if err != nil {
		return fmt.Errorf("failed to read output requirements: %w", err)
	}
	if !outputExists {
		logger.Infof("making %s file in output repo", manifestName)
		if writeErr := it.requirements.WriteAtomic(ctx, outputPath, nil); writeErr != nil {
			return fmt.Errorf("failed to create output requirements: %w", writeErr)
		}
	}

	merged, added := entities.MergeRequirements(inputReqs, outputReqs)
	if len(added) == 0 {
		logger.Info("no requirements found to add to output repo")
		return nil
	}

	logger.Infof("adding requirements to output repo: %v", entities.RequirementNames(added))
	if writeErr := it.requirements.WriteAtomic(ctx, outputPath, merged); writeErr != nil {
		return fmt.Errorf("failed to write output requirements: %w", writeErr)
	}
	return nil
}

// recordSync commits the copied directory and the manifest in the output
// repo. An output repo without git history is a skip, not a failure.
func (it *SyncCommand) recordSync(
	ctx context.Context,
	input, output entities.RepoReference,
	dirName string,
	opts entities.SyncOptions,
) error {
	message := opts.CommitMessage
	if message == "" {
		message = fmt.Sprintf(
			"chore(sync): copied %s from %s", dirName, filepath.Base(input.Path),
		)
	}

	paths := []string{dirName, opts.RequirementsFile}
	err := it.recorder.RecordSync(ctx, output.Path, message, paths)
	if errors.Is(err, entities.ErrNotAGitRepository) {
		logger.Warnf("output repo has no git history, skipping sync commit")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to record sync commit: %w", err)
	}

	logger.Infof("recorded sync commit in output repo: %q", message)
	return nil
}
