package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/psessford/srcsync/internal/domain/repositories"
	"github.com/psessford/srcsync/internal/infrastructure/repositories/filesystem"
	"github.com/psessford/srcsync/internal/infrastructure/repositories/git"
)

// RegisterProviders registers all infrastructure repository providers with
// the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register repository constructors
	if err := container.Provide(filesystem.NewDirectoryRepository); err != nil {
		return err
	}
	if err := container.Provide(filesystem.NewRequirementsRepository); err != nil {
		return err
	}
	if err := container.Provide(git.NewSyncRecorderRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *filesystem.DirectoryRepository) domainRepos.DirectoryRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *filesystem.RequirementsRepository) domainRepos.RequirementsRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *git.SyncRecorderRepository) domainRepos.SyncRecorderRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
