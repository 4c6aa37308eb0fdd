package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	stylePrompt = lipgloss.NewStyle().Foreground(lipgloss.Color("#83a598")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934"))
)

func newChatCmd(app *App) *cobra.Command {
	var sessionKey string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the assistant from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if sessionKey == "" {
				sessionKey = uuid.NewString()
			}

			interactive := app.IsInteractive != nil && app.IsInteractive()
			if interactive {
				fmt.Fprintln(cmd.OutOrStdout(), styleDim.Render("Type a message, or \"exit\" to quit."))
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				if interactive {
					fmt.Fprint(cmd.OutOrStdout(), stylePrompt.Render("you> "))
				}
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					break
				}

				result, err := app.Assistant.HandleChat(context.Background(), sessionKey, line)
				if err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), styleError.Render(fmt.Sprintf("error: %v", err)))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Response)
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&sessionKey, "session", "", "Session key (defaults to a fresh random key)")

	return cmd
}
