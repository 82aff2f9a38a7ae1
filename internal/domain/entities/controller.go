package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind holds the Cobra command metadata a controller binds to.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is implemented by all CLI controllers.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string)
}
