package repositories

import (
	"context"

	"github.com/psessford/srcsync/internal/domain/entities"
)

// DirectoryRepository abstracts filesystem access to repository trees, so the
// locate/guard/copy pipeline stays testable without touching a real disk.
type DirectoryRepository interface {
	// ListChildDirectories returns the names of the immediate child
	// directories of root, in directory order.
	ListChildDirectories(ctx context.Context, root string) ([]string, error)

	// MeasureUsage returns the total size in bytes of all regular files
	// under dir, recursively.
	MeasureUsage(ctx context.Context, dir string) (int64, error)

	// CopyTree recursively copies dir into dstRoot, creating a top-level
	// entry named after dir's own base name. The overwrite policy decides
	// what happens when that entry already exists. It returns the path of
	// the new directory.
	CopyTree(
		ctx context.Context,
		dir, dstRoot string,
		policy entities.OverwritePolicy,
	) (string, error)
}
