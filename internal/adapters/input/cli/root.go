package cli

import (
	"fmt"

	"github.com/sopeal/AskYourFeed/internal/domain"
	"github.com/sopeal/AskYourFeed/internal/ports/input"

	"github.com/spf13/cobra"
)

// Handler struct - Input adapter exposing the application services as a
// command tree.
type Handler struct {
	auth    input.AuthService
	qa      input.QAService
	history input.HistoryService
	sync    input.SyncService
}

// New builds the root command with all subcommands wired to the services.
func New(auth input.AuthService, qa input.QAService, history input.HistoryService, sync input.SyncService) *cobra.Command {
	h := &Handler{
		auth:    auth,
		qa:      qa,
		history: history,
		sync:    sync,
	}

	rootCmd := &cobra.Command{
		Use:   "askyourfeed",
		Short: "Ask natural-language questions about your X feed",
		Long: `AskYourFeed client.

Ask questions about your own social-media feed and browse the history of
past questions and answers.

Examples:
  askyourfeed register --email me@example.com --x-username my_handle
  askyourfeed login --email me@example.com
  askyourfeed ask "What did people say about Go generics this week?"
  askyourfeed history list
  askyourfeed status`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		h.registerCmd(),
		h.loginCmd(),
		h.logoutCmd(),
		h.askCmd(),
		h.historyCmd(),
		h.statusCmd(),
	)
	return rootCmd
}

// guardProtected applies the navigation gate for commands that need a valid
// session. A denied decision short-circuits before any API call.
func (h *Handler) guardProtected() error {
	decision := h.auth.Decide(domain.RouteProtected)
	if !decision.Allowed {
		return fmt.Errorf("you are not logged in; run 'askyourfeed %s' first", decision.RedirectTo)
	}
	return nil
}

// guardAuthOnly applies the gate for login/register commands.
func (h *Handler) guardAuthOnly() error {
	decision := h.auth.Decide(domain.RouteAuthOnly)
	if !decision.Allowed {
		return fmt.Errorf("already logged in; run 'askyourfeed logout' first")
	}
	return nil
}
