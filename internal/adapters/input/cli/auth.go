package cli

import (
	"errors"
	"fmt"

	"github.com/sopeal/AskYourFeed/internal/domain"

	"github.com/spf13/cobra"
)

func (h *Handler) registerCmd() *cobra.Command {
	var cmd domain.RegisterCommand

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create an AskYourFeed account",
		Long: `Create an account linked to an existing X username.

Examples:
  askyourfeed register --email me@example.com --x-username my_handle \
      --password 'S3cret!pass' --password-confirmation 'S3cret!pass'`,
		RunE: func(c *cobra.Command, args []string) error {
			if err := h.guardAuthOnly(); err != nil {
				return err
			}

			result, err := h.auth.Register(c.Context(), cmd)
			if err != nil {
				return describeFieldError(err)
			}

			fmt.Printf("Account created for %s (X: @%s, %s)\n", result.Email, result.XUsername, result.XDisplayName)
			fmt.Println("Run 'askyourfeed login' to start a session.")
			return nil
		},
	}

	registerCmd.Flags().StringVar(&cmd.Email, "email", "", "account email address")
	registerCmd.Flags().StringVar(&cmd.Password, "password", "", "account password")
	registerCmd.Flags().StringVar(&cmd.PasswordConfirmation, "password-confirmation", "", "repeat the password")
	registerCmd.Flags().StringVar(&cmd.XUsername, "x-username", "", "your X username, without the @")
	return registerCmd
}

func (h *Handler) loginCmd() *cobra.Command {
	var cmd domain.LoginCommand

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store a session",
		RunE: func(c *cobra.Command, args []string) error {
			if err := h.guardAuthOnly(); err != nil {
				return err
			}

			session, err := h.auth.Login(c.Context(), cmd)
			if err != nil {
				return describeFieldError(err)
			}

			fmt.Printf("Logged in as %s (session valid until %s)\n",
				session.Email, session.ExpiresAt.Local().Format("2006-01-02 15:04"))
			return nil
		},
	}

	loginCmd.Flags().StringVar(&cmd.Email, "email", "", "account email address")
	loginCmd.Flags().StringVar(&cmd.Password, "password", "", "account password")
	return loginCmd
}

func (h *Handler) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session",
		RunE: func(c *cobra.Command, args []string) error {
			if err := h.auth.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

// describeFieldError prefixes field-scoped failures with the input they
// belong to, so the terminal output mirrors inline form errors.
func describeFieldError(err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return fmt.Errorf("invalid --%s: %s", flagName(vErr.Field), vErr.Message)
	}
	var cErr *domain.ConflictError
	if errors.As(err, &cErr) {
		return fmt.Errorf("--%s: %s", flagName(cErr.Field), cErr.Message)
	}
	var nErr *domain.NotFoundError
	if errors.As(err, &nErr) {
		return fmt.Errorf("--%s: %s", flagName(nErr.Field), nErr.Message)
	}
	return err
}

func flagName(field string) string {
	switch field {
	case "password_confirmation":
		return "password-confirmation"
	case "x_username":
		return "x-username"
	case "date_from":
		return "from"
	case "date_to":
		return "to"
	default:
		return field
	}
}
