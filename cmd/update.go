package cmd

import (
	"github.com/spf13/cobra"

	"github.com/restup/restup/internal/update"
)

// updateCmd checks for a newer release.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release",
	Long: `Fetch the release manifest and compare it against the running
version. Nothing is downloaded; the manifest points at the release.`,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	checker := update.NewChecker()

	result, err := checker.Check(cmd.Context(), Version)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(result)
	}
	ctx.Formatter.Println(update.Describe(result))
	return nil
}
