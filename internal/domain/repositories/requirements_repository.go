package repositories

import (
	"context"

	"github.com/psessford/srcsync/internal/domain/entities"
)

// RequirementsRepository abstracts requirements-manifest I/O. The merge
// algorithm itself is a pure function over entities.Requirement sequences;
// this interface is only the thin boundary around it.
type RequirementsRepository interface {
	// Read returns the ordered declarations of the manifest at path.
	// A missing file is not an error: it is reported as exists == false.
	Read(ctx context.Context, path string) (reqs []entities.Requirement, exists bool, err error)

	// WriteAtomic replaces the manifest at path with the given declarations
	// in one step: either the file holds the full new content afterwards,
	// or it is left untouched. The file is created if absent.
	WriteAtomic(ctx context.Context, path string, reqs []entities.Requirement) error
}
