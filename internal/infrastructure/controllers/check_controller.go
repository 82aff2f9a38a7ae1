package controllers

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/psessford/srcsync/config"
	"github.com/psessford/srcsync/internal/domain/commands"
	"github.com/psessford/srcsync/internal/domain/entities"
)

// CheckController handles the "check" subcommand (validation-only mode).
type CheckController struct {
	command commands.Check
}

// NewCheckController creates a new CheckController.
func NewCheckController(command commands.Check) *CheckController {
	return &CheckController{command: command}
}

// GetBind returns the Cobra command metadata for the check controller.
func (it *CheckController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "check <input_repo>",
		Short: "Check that a repo satisfies the sharing preconditions",
		Long: `Check that a repo can be shared: it must contain exactly one public
directory (not hidden, not private, not a reserved test directory) and
that directory must be small enough. Nothing is copied.`,
	}
}

// AddFlags registers the check-specific flags on a command.
func (it *CheckController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Float64(
		"max-gigabytes", config.DefaultMaxGigabytes,
		"Maximum size of the shared directory in gigabytes",
	)
}

// Execute runs the validation-only mode.
func (it *CheckController) Execute(cmd *cobra.Command, args []string) {
	opts, err := buildCheckOptions(cmd, args)
	if err != nil {
		logger.Fatalf("Check failed: %s", err)
	}

	if execErr := it.command.Execute(context.Background(), opts); execErr != nil {
		logger.Fatalf("Check failed: %s", execErr)
	}
}

// buildCheckOptions merges configuration file values with command-line flags.
func buildCheckOptions(cmd *cobra.Command, args []string) (entities.CheckOptions, error) {
	if len(args) != 1 {
		return entities.CheckOptions{}, errors.New("expected one argument: <input_repo>")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return entities.CheckOptions{}, err
	}

	maxGigabytes := cfg.MaxGigabytes
	if cmd.Flags().Changed("max-gigabytes") {
		maxGigabytes, _ = cmd.Flags().GetFloat64("max-gigabytes")
	}

	return entities.CheckOptions{
		RepoDir:             args[0],
		MaxGigabytes:        maxGigabytes,
		ReservedDirectories: cfg.ReservedDirectories,
	}, nil
}
