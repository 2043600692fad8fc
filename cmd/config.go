package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/restup/restup/internal/errors"
	"github.com/restup/restup/internal/model"
	"github.com/restup/restup/internal/parser"
)

// configCmd manages reminder settings.
var configCmd = &cobra.Command{
	Use:     "config [command]",
	Aliases: []string{"cfg", "settings"},
	Short:   "Show and change reminder settings",
	Long: `Show and change the per-reminder settings: the interval and
whether the reminder is enabled.

Reminder names: eyes (eye rest), water, stand (stand up).

Examples:
  restup config show
  restup config set water 45m
  restup config set eyes 20
  restup config enable stand
  restup config disable water
  restup config reset eyes`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <reminder> <interval>",
	Short: "Set a reminder interval",
	Long: `Set the interval of one reminder. Bare numbers are minutes;
'30m', '1h' and '1h30m' also work.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configEnableCmd = &cobra.Command{
	Use:   "enable <reminder>",
	Short: "Enable a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(args[0], true)
	},
}

var configDisableCmd = &cobra.Command{
	Use:   "disable <reminder>",
	Short: "Disable a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(args[0], false)
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset <reminder>",
	Short: "Restore a reminder to its default settings",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configEnableCmd)
	configCmd.AddCommand(configDisableCmd)
	configCmd.AddCommand(configResetCmd)

	rootCmd.AddCommand(configCmd)
}

// resolveKind maps user-facing reminder names to kinds.
func resolveKind(name string) (model.ReminderKind, error) {
	switch strings.ToLower(name) {
	case "eyes", "eye", "eye_rest", "eye-rest":
		return model.KindEyeRest, nil
	case "water", "drink":
		return model.KindWater, nil
	case "stand", "standup", "stand_up", "stand-up":
		return model.KindStandUp, nil
	}
	return "", errors.NewUserErrorWithField("reminder", name,
		fmt.Sprintf("unknown reminder '%s'", name),
		"Use one of: eyes, water, stand")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings, err := ctx.SettingsRepo.GetAll()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSettings(settings)
	}
	ctx.CLIFormatter().PrintSettings(settings)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	kind, err := resolveKind(args[0])
	if err != nil {
		return err
	}

	minutes, err := parser.ParseInterval(args[1])
	if err != nil {
		return err
	}

	settings, err := ctx.SettingsRepo.SetInterval(kind, minutes)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(settings)
	}
	ctx.Formatter.Printf("%s interval set to %dm\n", kind.Label(), minutes)
	return nil
}

func setEnabled(name string, enabled bool) error {
	kind, err := resolveKind(name)
	if err != nil {
		return err
	}

	settings, err := ctx.SettingsRepo.SetEnabled(kind, enabled)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(settings)
	}
	if enabled {
		ctx.Formatter.Printf("%s enabled (every %dm)\n", kind.Label(), settings.IntervalMinutes)
	} else {
		ctx.Formatter.Printf("%s disabled\n", kind.Label())
	}
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	kind, err := resolveKind(args[0])
	if err != nil {
		return err
	}

	if err := ctx.SettingsRepo.Reset(kind); err != nil {
		return err
	}

	defaults := model.DefaultSettings(kind)
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(defaults)
	}
	ctx.Formatter.Printf("%s reset to defaults (every %dm)\n", kind.Label(), defaults.IntervalMinutes)
	return nil
}
