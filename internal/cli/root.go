package cli

import (
	"github.com/apricot12/concierge/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Assistant service.AssistantService
	Events    service.EventService

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "concierge" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "concierge",
		Short: "Conversational calendar assistant",
	}

	root.AddCommand(
		newServeCmd(app),
		newChatCmd(app),
	)

	return root
}
