package controllers

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/psessford/srcsync/config"
	"github.com/psessford/srcsync/internal/domain/commands"
	"github.com/psessford/srcsync/internal/domain/entities"
)

// SyncController handles the main mode: copy the input repo's public
// directory into the output repo and merge the requirements manifests.
type SyncController struct {
	command commands.Sync
}

// NewSyncController creates a new SyncController.
func NewSyncController(command commands.Sync) *SyncController {
	return &SyncController{command: command}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sync <input_repo> <output_repo>",
		Short: "Copy a repo's public directory into another repo",
		Long: `Copy the single public source directory of the input repo into the
root of the output repo, so the shared code can be used as a
pseudo-dependency without packaging or a private registry.

Requirements declared in the input repo but missing (by package name)
from the output repo are merged into the output repo's manifest.`,
	}
}

// AddFlags registers the sync-specific flags on a command.
func (it *SyncController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Float64(
		"max-gigabytes", config.DefaultMaxGigabytes,
		"Maximum size of the shared directory in gigabytes",
	)
	cmd.Flags().String(
		"overwrite-policy", config.DefaultOverwritePolicy,
		"What to do when the destination directory exists (merge, fail, replace)",
	)
	cmd.Flags().Bool(
		"commit", false,
		"Record the sync as a git commit in the output repo",
	)
	cmd.Flags().String(
		"commit-message", "",
		"Override the sync commit message",
	)
}

// Execute runs the sync mode. Any failure terminates the process with a
// non-zero status and a message naming the violation.
func (it *SyncController) Execute(cmd *cobra.Command, args []string) {
	opts, err := buildSyncOptions(cmd, args)
	if err != nil {
		logger.Fatalf("Sync failed: %s", err)
	}

	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if execErr := it.command.Execute(context.Background(), opts); execErr != nil {
		logger.Fatalf("Sync failed: %s", execErr)
	}
}

// buildSyncOptions merges configuration file values with command-line flags;
// flags win when explicitly set.
func buildSyncOptions(cmd *cobra.Command, args []string) (entities.SyncOptions, error) {
	if len(args) != 2 { //nolint:mnd // input_repo + output_repo
		return entities.SyncOptions{}, errors.New(
			"expected two arguments: <input_repo> <output_repo>",
		)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return entities.SyncOptions{}, err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	maxGigabytes := cfg.MaxGigabytes
	if cmd.Flags().Changed("max-gigabytes") {
		maxGigabytes, _ = cmd.Flags().GetFloat64("max-gigabytes")
	}

	policyRaw := cfg.OverwritePolicy
	if cmd.Flags().Changed("overwrite-policy") {
		policyRaw, _ = cmd.Flags().GetString("overwrite-policy")
	}
	policy, policyErr := entities.ParseOverwritePolicy(policyRaw)
	if policyErr != nil {
		return entities.SyncOptions{}, policyErr
	}

	commit := cfg.Commit
	if cmd.Flags().Changed("commit") {
		commit, _ = cmd.Flags().GetBool("commit")
	}

	commitMessage := cfg.CommitMessage
	if cmd.Flags().Changed("commit-message") {
		commitMessage, _ = cmd.Flags().GetString("commit-message")
	}

	return entities.SyncOptions{
		InputRepo:           args[0],
		OutputRepo:          args[1],
		DryRun:              dryRun,
		Verbose:             verbose,
		MaxGigabytes:        maxGigabytes,
		ReservedDirectories: cfg.ReservedDirectories,
		RequirementsFile:    cfg.RequirementsFile,
		OverwritePolicy:     policy,
		Commit:              commit,
		CommitMessage:       commitMessage,
	}, nil
}

// loadConfig resolves the configuration: the --config flag wins, then the
// standard file locations, then built-in defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		found, findErr := config.FindConfigFile()
		if findErr != nil {
			logger.Debug("no config file found, using defaults")
			return config.Default(), nil
		}
		path = found
	}

	logger.Infof("using config file: %s", path)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
