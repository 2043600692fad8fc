package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/restup/restup/internal/parser"
)

// pauseCmd pauses the reminders, optionally until a point in time.
var pauseCmd = &cobra.Command{
	Use:   "pause [until <time>]",
	Short: "Pause the reminders",
	Long: `Pause all reminders. Without arguments the pause lasts until
'restup resume'. With 'until', the reminders come back on their own.

Examples:
  restup pause
  restup pause until 15:00
  restup pause until +45m
  restup pause until "tomorrow 9am"`,
	RunE: runPause,
}

// resumeCmd resumes paused reminders.
var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume the reminders",
	RunE:  runResume,
}

func init() {
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
}

func runPause(cmd *cobra.Command, args []string) error {
	var until time.Time

	if len(args) > 0 {
		input := strings.Join(args, " ")
		input = strings.TrimPrefix(input, "until ")

		parsed, err := parser.ParseUntil(input)
		if err != nil {
			return err
		}
		until = parsed
	}

	state, err := ctx.StateRepo.Pause(until)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(state)
	}
	if until.IsZero() {
		ctx.Formatter.Println("Reminders paused. Resume with: restup resume")
	} else {
		ctx.Formatter.Printf("Reminders paused until %s\n", until.Format("Mon 15:04"))
	}
	return nil
}

func runResume(cmd *cobra.Command, args []string) error {
	if err := ctx.StateRepo.Resume(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "resumed"})
	}
	ctx.Formatter.Println("Reminders resumed")
	return nil
}
