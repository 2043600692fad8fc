// Package cmd provides the CLI commands for Restup.
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/restup/restup/internal/daemon"
	"github.com/restup/restup/internal/errors"
	"github.com/restup/restup/internal/logging"
	"github.com/restup/restup/internal/output"
	"github.com/restup/restup/internal/runtime"
	"github.com/restup/restup/internal/timer"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "restup",
	Short: "Break reminders for people who forget to take them",
	Long: `Restup runs three countdown reminders while you work: rest your
eyes, drink water and stand up. Each timer fires on its own interval and
restarts automatically.

Examples:
  restup start                  # foreground dashboard
  restup daemon start           # run in the background
  restup config set water 45m
  restup pause until 15:00
  restup history`,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the reminder status.
		return runStatus(cmd, args)
	},
}

// The pre-run hook references rootCmd itself, so it is attached in init
// to avoid an initialization cycle.
func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}
		if flagDebug {
			logging.InitDebug()
		}
		// Daemon management must not grab the database lock held by a
		// running daemon. Only a foreground start needs the database.
		// Status reads the daemon snapshot and opens the database lazily.
		if cmd.Parent() != nil && (cmd.Parent().Name() == "daemon" || cmd.Name() == "daemon") {
			if cmd.Name() != "start" || !daemonStartFlagForeground {
				return nil
			}
		}
		if cmd == rootCmd || cmd == startCmd || cmd.Name() == "status" {
			return nil
		}
		return initContext()
	}
}

// parsedFormat maps the format flag to an output format.
func parsedFormat() output.Format {
	switch flagFormat {
	case "json":
		return output.FormatJSON
	case "plain":
		return output.FormatPlain
	default:
		return output.FormatCLI
	}
}

// parsedColorMode maps the color flag to a color mode.
func parsedColorMode() output.ColorMode {
	switch flagColor {
	case "always":
		return output.ColorAlways
	case "never":
		return output.ColorNever
	default:
		return output.ColorAuto
	}
}

// newStandaloneFormatter builds a formatter honoring the global flags
// without opening the database.
func newStandaloneFormatter() *output.Formatter {
	f := output.NewFormatter()
	f.Format = parsedFormat()
	f.ColorMode = parsedColorMode()
	return f
}

// initContext opens the database and builds the shared runtime context.
func initContext() error {
	if ctx != nil {
		return nil
	}

	opts := runtime.DefaultOptions()
	opts.Format = parsedFormat()
	opts.ColorMode = parsedColorMode()
	opts.Debug = flagDebug

	var err error
	ctx, err = runtime.New(opts)
	return err
}

// statusCmd shows the reminder timers.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the reminder timers",
	RunE:  runStatus,
}

// runStatus prints the current timer statuses. When the daemon runs, the
// snapshot comes from its state file; otherwise the configured intervals
// are shown.
func runStatus(cmd *cobra.Command, args []string) error {
	var statuses []timer.Status
	var pausedUntil time.Time

	d := daemon.NewDaemon(nil, Version)
	if ds := d.GetStatus(); ds.Running && len(ds.Timers) > 0 {
		statuses = ds.Timers
		pausedUntil = ds.PausedUntil
	} else {
		if err := initContext(); err != nil {
			return err
		}
		settings, err := ctx.SettingsRepo.GetAll()
		if err != nil {
			return err
		}
		mgr := timer.NewManager(settings)
		state, err := ctx.StateRepo.GetPause()
		if err != nil {
			return err
		}
		if state.Active() {
			pausedUntil = state.Until
		}
		statuses = mgr.Snapshot()
	}

	f := newStandaloneFormatter()
	if f.Format == output.FormatJSON {
		return output.NewJSONFormatter(f).PrintStatuses(statuses, pausedUntil)
	}
	output.NewCLIFormatter(f).PrintStatuses(statuses, pausedUntil)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("restup %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError("error", err.Error(), errors.Suggestion(err))
	} else {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		if s := errors.Suggestion(err); s != "" {
			os.Stderr.WriteString("Hint: " + s + "\n")
		}
	}
	os.Exit(1)
}
