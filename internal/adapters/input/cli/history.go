package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func (h *Handler) historyCmd() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Browse and manage your question history",
		Long: `Question history commands.

Examples:
  askyourfeed history list
  askyourfeed history list --all
  askyourfeed history show 01J9QZ...
  askyourfeed history delete 01J9QZ...
  askyourfeed history clear --yes`,
	}

	historyCmd.AddCommand(
		h.historyListCmd(),
		h.historyShowCmd(),
		h.historyDeleteCmd(),
		h.historyClearCmd(),
	)
	return historyCmd
}

func (h *Handler) historyListCmd() *cobra.Command {
	var all bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List past questions, newest first",
		RunE: func(c *cobra.Command, args []string) error {
			if err := h.guardProtected(); err != nil {
				return err
			}

			if err := h.history.FetchFirstPage(c.Context()); err != nil {
				return err
			}
			for all && h.history.HasMore() {
				if err := h.history.FetchNextPage(c.Context()); err != nil {
					return err
				}
			}

			items := h.history.Items()
			if len(items) == 0 {
				fmt.Println("No history yet. Ask your first question with 'askyourfeed ask'.")
				return nil
			}

			for _, item := range items {
				fmt.Printf("%s  %s\n    %s (%d sources)\n",
					item.CreatedAt.Local().Format("2006-01-02 15:04"),
					item.ID,
					truncate(item.Question, 80),
					item.SourcesCount)
			}
			if !all && h.history.HasMore() {
				fmt.Println("\nMore entries available; rerun with --all.")
			}
			return nil
		},
	}

	listCmd.Flags().BoolVar(&all, "all", false, "follow the cursor through every page")
	return listCmd
}

func (h *Handler) historyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full answer and sources for one entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := h.guardProtected(); err != nil {
				return err
			}

			detail, err := h.history.Detail(c.Context(), args[0])
			if err != nil {
				return err
			}
			printDetail(detail)
			return nil
		},
	}
}

func (h *Handler) historyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := h.guardProtected(); err != nil {
				return err
			}

			if err := h.history.DeleteItem(c.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Entry deleted.")
			return nil
		},
	}
}

func (h *Handler) historyClearCmd() *cobra.Command {
	var yes bool

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the entire history",
		RunE: func(c *cobra.Command, args []string) error {
			if err := h.guardProtected(); err != nil {
				return err
			}

			if !yes && !confirm("Delete the entire question history?") {
				fmt.Println("Aborted.")
				return nil
			}

			count, err := h.history.DeleteAll(c.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d entries.\n", count)
			return nil
		},
	}

	clearCmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return clearCmd
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
