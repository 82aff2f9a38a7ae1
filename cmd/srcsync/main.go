package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/psessford/srcsync/internal"
	"github.com/psessford/srcsync/internal/infrastructure/controllers"
)

func buildRootCommand(syncController *controllers.SyncController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "srcsync <input_repo> <output_repo>",
		Short: "Share a narrow source directory between repositories",
		Long: `A CLI tool that copies the single public source directory of one repo
(the "input repo") into the root of another repo (the "output repo"),
so narrow functionality can be reused as a pseudo-dependency without
packaging or a private registry.

The input repo must contain exactly one public directory: not hidden
(".*"), not private ("_*"), and not a reserved test directory. The
directory must also be small, since narrow-scope sharing is the point.
Requirements declared in the input repo but missing from the output
repo's manifest are merged in.

Usage modes:
  srcsync ../shared-auth ../my-app   Copy and merge (main mode)
  srcsync check ../shared-auth       Validate a repo without copying`,
		Args: cobra.MaximumNArgs(2), //nolint:mnd // input_repo + output_repo
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			syncController.Execute(command, args)
			return nil
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	syncController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		switch c := ctrl.(type) {
		case *controllers.SyncController:
			c.AddFlags(subCmd)
		case *controllers.CheckController:
			c.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	syncController := injectSyncController()
	cobraRoot := buildRootCommand(syncController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'srcsync': %s", err)
	}
}
