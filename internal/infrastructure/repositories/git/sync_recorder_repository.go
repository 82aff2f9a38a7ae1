package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/psessford/srcsync/internal/domain/entities"
	"github.com/psessford/srcsync/internal/domain/repositories"
)

const (
	commitAuthorName  = "srcsync"
	commitAuthorEmail = "srcsync@localhost"
)

// SyncRecorderRepository implements repositories.SyncRecorderRepository on
// top of go-git.
type SyncRecorderRepository struct{}

var _ repositories.SyncRecorderRepository = (*SyncRecorderRepository)(nil)

// NewSyncRecorderRepository creates a new go-git-backed recorder.
func NewSyncRecorderRepository() *SyncRecorderRepository {
	return &SyncRecorderRepository{}
}

// RecordSync stages the given paths in the repository at repoDir and commits
// them. Paths that do not exist in the worktree are skipped, since a sync
// does not always produce a manifest. A clean worktree is a no-op.
func (it *SyncRecorderRepository) RecordSync(
	_ context.Context,
	repoDir, message string,
	paths []string,
) error {
	repo, err := gogit.PlainOpen(repoDir)
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return entities.ErrNotAGitRepository
	}
	if err != nil {
		return fmt.Errorf("failed to open repository %s: %w", repoDir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}

	for _, path := range paths {
		if _, statErr := os.Stat(filepath.Join(repoDir, path)); os.IsNotExist(statErr) {
			continue
		}
		if _, addErr := worktree.Add(path); addErr != nil {
			return fmt.Errorf("failed to stage %s: %w", path, addErr)
		}
	}

	status, err := worktree.Status()
	if err != nil {
		return fmt.Errorf("failed to read worktree status: %w", err)
	}
	if status.IsClean() {
		return nil
	}

	_, err = worktree.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  commitAuthorName,
			Email: commitAuthorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to commit sync: %w", err)
	}
	return nil
}
