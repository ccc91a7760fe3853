package cli

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sopeal/AskYourFeed/internal/domain"

	"github.com/spf13/cobra"
)

func (h *Handler) statusCmd() *cobra.Command {
	var watch bool

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the feed sync status",
		Long: `Show when the feed was last synchronized and any run in progress.

With --watch the status is polled on the configured interval until
interrupted.`,
		RunE: func(c *cobra.Command, args []string) error {
			if err := h.guardProtected(); err != nil {
				return err
			}

			if !watch {
				status, err := h.sync.PollOnce(c.Context())
				if err != nil {
					return err
				}
				printStatus(status, false)
				return nil
			}

			h.sync.Start()
			defer h.sync.Stop()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt)
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()

			for {
				select {
				case <-sig:
					fmt.Println()
					return nil
				case <-ticker.C:
					status, degraded := h.sync.Status()
					printStatus(status, degraded)
				}
			}
		},
	}

	statusCmd.Flags().BoolVar(&watch, "watch", false, "keep polling until interrupted")
	return statusCmd
}

func printStatus(status *domain.IngestStatus, degraded bool) {
	if status == nil {
		fmt.Println("Sync status unavailable.")
		return
	}

	if status.LastSyncAt != nil {
		fmt.Printf("Last sync: %s", status.LastSyncAt.Local().Format("2006-01-02 15:04:05"))
	} else {
		fmt.Print("Last sync: never")
	}
	if degraded {
		fmt.Print(" (status may be out of date)")
	}
	fmt.Println()

	if status.CurrentRun != nil {
		fmt.Printf("Current run: %s, started %s, %d posts fetched\n",
			status.CurrentRun.Status,
			status.CurrentRun.StartedAt.Local().Format("15:04:05"),
			status.CurrentRun.FetchedCount)
	}
}
