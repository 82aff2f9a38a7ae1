package entities

import (
	"fmt"
	"os"
	"path/filepath"
)

// RepoRole identifies which side of a sync a repository is on.
type RepoRole string

const (
	// RepoRoleInput is the repository whose public directory is shared.
	RepoRoleInput RepoRole = "input"
	// RepoRoleOutput is the repository receiving the copy.
	RepoRoleOutput RepoRole = "output"
)

// RepoReference is an absolute path to a repository root tagged with its role.
type RepoReference struct {
	Path string
	Role RepoRole
}

// NewRepoReference resolves a possibly-relative path argument and tags it with
// the given role. Absolute paths pass through untouched; relative paths are
// resolved against the working directory at invocation time. No existence
// check happens here; that is deferred to Validate.
func NewRepoReference(raw string, role RepoRole) (RepoReference, error) {
	path, err := filepath.Abs(raw)
	if err != nil {
		return RepoReference{}, fmt.Errorf("invalid %s repo path %q: %w", role, raw, err)
	}
	return RepoReference{Path: path, Role: role}, nil
}

// Validate checks that the referenced path exists and is a directory.
func (r RepoReference) Validate() error {
	info, err := os.Stat(r.Path)
	if err != nil {
		return fmt.Errorf("%s repo is not accessible: %w", r.Role, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s repo is not a directory: %s", r.Role, r.Path)
	}
	return nil
}
