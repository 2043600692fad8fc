package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/restup/restup/internal/daemon"
	"github.com/restup/restup/internal/reminder"
	"github.com/restup/restup/internal/tui"
)

// startCmd runs the reminders in the foreground with the live dashboard.
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the reminders with a live dashboard",
	Long: `Run the reminder timers in the foreground with a live countdown
dashboard. When a reminder fires, a full-screen break prompt takes over
until you press a key or the rest period ends.

For a background process without a dashboard, use 'restup daemon start'.`,
	RunE: runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	d := daemon.NewDaemon(nil, Version)
	if d.IsRunning() {
		status := d.GetStatus()
		return fmt.Errorf("daemon is already running (PID: %d), stop it first with 'restup daemon stop'", status.PID)
	}

	if err := initContext(); err != nil {
		return err
	}
	svc, err := reminder.NewService(ctx.DB)
	if err != nil {
		return err
	}

	return tui.Run(tui.DashboardConfig{
		Service: svc,
		Version: Version,
	})
}

func init() {
	rootCmd.AddCommand(startCmd)
}
