package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/sopeal/AskYourFeed/internal/domain"

	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func (h *Handler) askCmd() *cobra.Command {
	var fromFlag, toFlag string

	askCmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question about your feed",
		Long: `Submit a natural-language question about your feed.

The optional date flags bound the feed window the answer draws from.

Examples:
  askyourfeed ask "What did people say about Go generics this week?"
  askyourfeed ask "Summarize the AI discourse" --from 2026-08-01 --to 2026-08-31`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := h.guardProtected(); err != nil {
				return err
			}

			cmd := domain.CreateQACommand{
				Question: strings.Join(args, " "),
			}
			var err error
			if cmd.DateFrom, err = parseDateFlag(fromFlag); err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			if cmd.DateTo, err = parseDateFlag(toFlag); err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}

			detail, err := h.qa.Submit(c.Context(), cmd)
			if err != nil {
				return describeFieldError(err)
			}

			printDetail(detail)
			return nil
		},
	}

	askCmd.Flags().StringVar(&fromFlag, "from", "", "start of the feed window (YYYY-MM-DD)")
	askCmd.Flags().StringVar(&toFlag, "to", "", "end of the feed window (YYYY-MM-DD)")
	return askCmd
}

func parseDateFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("expected YYYY-MM-DD: %w", err)
	}
	return &t, nil
}

func printDetail(detail *domain.QADetail) {
	fmt.Printf("Q: %s\n\n%s\n", detail.Question, detail.Answer)
	if len(detail.Sources) > 0 {
		fmt.Printf("\nSources (%d):\n", len(detail.Sources))
		for _, src := range detail.Sources {
			text := src.TextPreview
			if text == "" {
				text = src.Text
			}
			fmt.Printf("  @%s (%s): %s\n    %s\n",
				src.AuthorHandle,
				src.PublishedAt.Local().Format(dateLayout),
				text,
				src.URL)
		}
	}
}
