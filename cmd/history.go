package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

// History command flags.
var (
	historyFlagLimit int
	historyFlagDays  int
	historyFlagStats bool
)

// historyCmd shows fired reminders.
var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"log", "events"},
	Short:   "Show fired reminders",
	Long: `Show the most recent fired reminders, newest first.

Examples:
  restup history
  restup history --limit 50
  restup history --stats --days 7`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyFlagLimit, "limit", "n", 20,
		"Number of events to show")
	historyCmd.Flags().IntVar(&historyFlagDays, "days", 7,
		"Days to cover for --stats")
	historyCmd.Flags().BoolVar(&historyFlagStats, "stats", false,
		"Show per-reminder counts instead of the event list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyFlagStats {
		since := time.Now().AddDate(0, 0, -historyFlagDays)
		counts, err := ctx.EventRepo.CountByKind(since)
		if err != nil {
			return err
		}

		if ctx.IsJSON() {
			return ctx.Formatter.JSON(counts)
		}
		ctx.CLIFormatter().PrintEventCounts(counts, since)
		return nil
	}

	events, err := ctx.EventRepo.ListRecent(historyFlagLimit)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintEvents(events)
	}
	ctx.CLIFormatter().PrintEvents(events)
	return nil
}
