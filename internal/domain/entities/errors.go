package entities

import (
	"errors"
	"fmt"
)

// ErrNotAGitRepository signals that an output repository has no git history
// to record a sync into. Callers treat it as a skip, not a failure.
var ErrNotAGitRepository = errors.New("not a git repository")

// DirectoryResolutionError reports that a repository root does not contain
// exactly one public child directory. It carries the offending candidate
// names (empty when none were found). This is a structural precondition
// violation: the repo must be reorganized, retrying cannot help.
type DirectoryResolutionError struct {
	RepoPath   string
	Candidates []string
}

func (e *DirectoryResolutionError) Error() string {
	return fmt.Sprintf(
		"single public directory not found in %s (candidates: %v)",
		e.RepoPath, e.Candidates,
	)
}

// DirectorySizeError reports that the located public directory exceeds the
// configured size ceiling. It is fatal before any copy happens.
type DirectorySizeError struct {
	Path      string
	SizeBytes int64
	MaxBytes  int64
}

func (e *DirectorySizeError) Error() string {
	return fmt.Sprintf(
		"input directory %s too large: %d bytes (maximum %d bytes)",
		e.Path, e.SizeBytes, e.MaxBytes,
	)
}
