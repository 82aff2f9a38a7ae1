package repositories

import (
	"context"
)

// SyncRecorderRepository records a completed sync in the output repository's
// version history.
type SyncRecorderRepository interface {
	// RecordSync stages the given paths (relative to repoDir) and commits
	// them with the given message. When repoDir is not under version
	// control it returns entities.ErrNotAGitRepository; when the working
	// tree is already clean it is a no-op.
	RecordSync(ctx context.Context, repoDir, message string, paths []string) error
}
