package filesystem

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/psessford/srcsync/internal/domain/entities"
	"github.com/psessford/srcsync/internal/domain/repositories"
)

// DirectoryRepository implements repositories.DirectoryRepository against the
// local filesystem.
type DirectoryRepository struct{}

var _ repositories.DirectoryRepository = (*DirectoryRepository)(nil)

// NewDirectoryRepository creates a new filesystem-backed DirectoryRepository.
func NewDirectoryRepository() *DirectoryRepository {
	return &DirectoryRepository{}
}

// ListChildDirectories returns the names of the immediate child directories
// of root.
func (it *DirectoryRepository) ListChildDirectories(
	_ context.Context,
	root string,
) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", root, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// MeasureUsage returns the total size in bytes of all regular files under
// dir. Directory entries and symlinks contribute nothing; the sum reflects
// what a copy would actually replicate.
func (it *DirectoryRepository) MeasureUsage(ctx context.Context, dir string) (int64, error) {
	var total int64

	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to measure %s: %w", dir, err)
	}
	return total, nil
}

// CopyTree recursively copies dir into dstRoot/<base(dir)>, preserving
// structure and file permissions.
func (it *DirectoryRepository) CopyTree(
	ctx context.Context,
	dir, dstRoot string,
	policy entities.OverwritePolicy,
) (string, error) {
	dst := filepath.Join(dstRoot, filepath.Base(dir))

	if err := applyOverwritePolicy(dst, policy); err != nil {
		return "", err
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			return copyDirEntry(path, target)
		case d.Type()&fs.ModeSymlink != 0:
			return copySymlink(path, target)
		case d.Type().IsRegular():
			return copyFile(path, target)
		default:
			return nil // sockets, devices and the like are not copied
		}
	})
	if err != nil {
		return "", err
	}
	return dst, nil
}

// applyOverwritePolicy prepares the destination path according to the
// configured policy when it already exists.
func applyOverwritePolicy(dst string, policy entities.OverwritePolicy) error {
	_, err := os.Stat(dst)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to inspect destination %s: %w", dst, err)
	}

	switch policy {
	case entities.OverwriteFail:
		return fmt.Errorf("destination %s already exists", dst)
	case entities.OverwriteReplace:
		if removeErr := os.RemoveAll(dst); removeErr != nil {
			return fmt.Errorf("failed to replace destination %s: %w", dst, removeErr)
		}
	case entities.OverwriteMerge:
		// existing entries are overlaid in place
	}
	return nil
}

func copyDirEntry(src, target string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if mkErr := os.MkdirAll(target, info.Mode().Perm()); mkErr != nil {
		return mkErr
	}
	return nil
}

func copySymlink(src, target string) error {
	linkTarget, err := os.Readlink(src)
	if err != nil {
		return err
	}
	// a stale entry from a previous copy would make Symlink fail
	if removeErr := os.Remove(target); removeErr != nil && !os.IsNotExist(removeErr) {
		return removeErr
	}
	return os.Symlink(linkTarget, target)
}

func copyFile(src, target string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, copyErr := io.Copy(out, in); copyErr != nil {
		out.Close()
		return copyErr
	}
	if closeErr := out.Close(); closeErr != nil {
		return closeErr
	}

	// the target may have pre-existed with different permissions
	return os.Chmod(target, info.Mode().Perm())
}
