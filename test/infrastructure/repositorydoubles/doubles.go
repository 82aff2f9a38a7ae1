// Package repositorydoubles provides test doubles (spies, stubs) for the
// domain repository interfaces. These are hand-crafted implementations, no
// mock frameworks.
package repositorydoubles

import (
	"context"
	"path/filepath"

	"github.com/psessford/srcsync/internal/domain/entities"
	"github.com/psessford/srcsync/internal/domain/repositories"
)

// ---------------------------------------------------------------------------
// SpyDirectoryRepository
// ---------------------------------------------------------------------------

// CopyCall records a single invocation of CopyTree.
type CopyCall struct {
	Dir     string
	DstRoot string
	Policy  entities.OverwritePolicy
}

// SpyDirectoryRepository implements repositories.DirectoryRepository as a
// configurable spy. Configure the response fields for the methods your test
// exercises, then inspect the call-tracking fields to verify behavior.
type SpyDirectoryRepository struct {
	// --- ListChildDirectories ---
	ChildNames map[string][]string // root -> child directory names
	ListErr    error
	// spy: roots that were listed
	ListedRoots []string

	// --- MeasureUsage ---
	Usage      map[string]int64 // dir -> size in bytes
	MeasureErr error
	// spy: dirs that were measured
	MeasuredDirs []string

	// --- CopyTree ---
	CopyErr error
	// spy: calls received
	CopyCalls []CopyCall
}

var _ repositories.DirectoryRepository = (*SpyDirectoryRepository)(nil)

func (r *SpyDirectoryRepository) ListChildDirectories(
	_ context.Context,
	root string,
) ([]string, error) {
	r.ListedRoots = append(r.ListedRoots, root)
	if r.ChildNames != nil {
		return r.ChildNames[root], r.ListErr
	}
	return nil, r.ListErr
}

func (r *SpyDirectoryRepository) MeasureUsage(
	_ context.Context,
	dir string,
) (int64, error) {
	r.MeasuredDirs = append(r.MeasuredDirs, dir)
	if r.Usage != nil {
		return r.Usage[dir], r.MeasureErr
	}
	return 0, r.MeasureErr
}

func (r *SpyDirectoryRepository) CopyTree(
	_ context.Context,
	dir, dstRoot string,
	policy entities.OverwritePolicy,
) (string, error) {
	r.CopyCalls = append(r.CopyCalls, CopyCall{Dir: dir, DstRoot: dstRoot, Policy: policy})
	if r.CopyErr != nil {
		return "", r.CopyErr
	}
	return filepath.Join(dstRoot, filepath.Base(dir)), nil
}

// ---------------------------------------------------------------------------
// SpyRequirementsRepository
// ---------------------------------------------------------------------------

// SpyRequirementsRepository implements repositories.RequirementsRepository as
// a configurable spy over an in-memory manifest map.
type SpyRequirementsRepository struct {
	// Manifests maps path -> declarations. A path not present in the map is
	// reported as a missing file.
	Manifests map[string][]entities.Requirement

	ReadErr  error
	WriteErr error

	// spy: writes received, in order
	Written map[string][]entities.Requirement
}

var _ repositories.RequirementsRepository = (*SpyRequirementsRepository)(nil)

func (r *SpyRequirementsRepository) Read(
	_ context.Context,
	path string,
) ([]entities.Requirement, bool, error) {
	if r.ReadErr != nil {
		return nil, false, r.ReadErr
	}
	reqs, ok := r.Manifests[path]
	return reqs, ok, nil
}

func (r *SpyRequirementsRepository) WriteAtomic(
	_ context.Context,
	path string,
	reqs []entities.Requirement,
) error {
	if r.WriteErr != nil {
		return r.WriteErr
	}
	if r.Written == nil {
		r.Written = make(map[string][]entities.Requirement)
	}
	r.Written[path] = reqs
	if r.Manifests == nil {
		r.Manifests = make(map[string][]entities.Requirement)
	}
	r.Manifests[path] = reqs
	return nil
}

// ---------------------------------------------------------------------------
// SpySyncRecorderRepository
// ---------------------------------------------------------------------------

// RecordCall records a single invocation of RecordSync.
type RecordCall struct {
	RepoDir string
	Message string
	Paths   []string
}

// SpySyncRecorderRepository implements repositories.SyncRecorderRepository
// as a configurable spy.
type SpySyncRecorderRepository struct {
	RecordErr error
	// spy: calls received
	RecordCalls []RecordCall
}

var _ repositories.SyncRecorderRepository = (*SpySyncRecorderRepository)(nil)

func (r *SpySyncRecorderRepository) RecordSync(
	_ context.Context,
	repoDir, message string,
	paths []string,
) error {
	r.RecordCalls = append(r.RecordCalls, RecordCall{
		RepoDir: repoDir,
		Message: message,
		Paths:   paths,
	})
	return r.RecordErr
}
