package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/restup/restup/internal/errors"
	"github.com/restup/restup/internal/model"
	"github.com/restup/restup/internal/notify"
)

// Webhook command flags.
var (
	webhookAddFlagTemplate string
	webhookAddFlagDisabled bool
)

// webhookCmd manages notification webhooks.
var webhookCmd = &cobra.Command{
	Use:     "webhook [command]",
	Aliases: []string{"wh", "webhooks"},
	Short:   "Manage notification webhooks",
	Long: `Manage webhooks that receive a JSON payload whenever a reminder
fires.

Examples:
  restup webhook add slack https://hooks.slack.com/services/XXX
  restup webhook list
  restup webhook test slack
  restup webhook remove slack`,
	RunE: runWebhookList,
}

var webhookAddCmd = &cobra.Command{
	Use:   "add <name> <url>",
	Short: "Add a webhook",
	Args:  cobra.ExactArgs(2),
	RunE:  runWebhookAdd,
}

var webhookListCmd = &cobra.Command{
	Use:   "list",
	Short: "List webhooks",
	RunE:  runWebhookList,
}

var webhookRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a webhook",
	Args:    cobra.ExactArgs(1),
	RunE:    runWebhookRemove,
}

var webhookTestCmd = &cobra.Command{
	Use:   "test <name>",
	Short: "Send a test notification to a webhook",
	Args:  cobra.ExactArgs(1),
	RunE:  runWebhookTest,
}

func init() {
	webhookAddCmd.Flags().StringVar(&webhookAddFlagTemplate, "template", "",
		"Go text/template for the payload body")
	webhookAddCmd.Flags().BoolVar(&webhookAddFlagDisabled, "disabled", false,
		"Create the webhook disabled")

	webhookCmd.AddCommand(webhookAddCmd)
	webhookCmd.AddCommand(webhookListCmd)
	webhookCmd.AddCommand(webhookRemoveCmd)
	webhookCmd.AddCommand(webhookTestCmd)

	rootCmd.AddCommand(webhookCmd)
}

func runWebhookAdd(cmd *cobra.Command, args []string) error {
	name, rawURL := args[0], args[1]

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.NewUserErrorWithField("url", rawURL,
			"invalid webhook URL",
			"Use a full URL like https://hooks.example.com/path")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.NewUserErrorWithField("url", rawURL,
			fmt.Sprintf("unsupported scheme '%s'", parsed.Scheme),
			"Webhook URLs must use http or https")
	}

	if existing, err := ctx.WebhookRepo.Get(name); err == nil && existing != nil {
		return errors.NewUserError(
			fmt.Sprintf("webhook '%s' already exists", name),
			"Remove it first with: restup webhook remove "+name)
	}

	webhook := model.NewWebhook(name, rawURL)
	webhook.Template = webhookAddFlagTemplate
	webhook.Enabled = !webhookAddFlagDisabled

	if err := ctx.WebhookRepo.Create(webhook); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(webhook)
	}
	ctx.Formatter.Printf("Webhook '%s' added (%s)\n", name, webhook.MaskedURL())
	return nil
}

func runWebhookList(cmd *cobra.Command, args []string) error {
	webhooks, err := ctx.WebhookRepo.List()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(webhooks)
	}

	if len(webhooks) == 0 {
		ctx.Formatter.Println("No webhooks configured.")
		ctx.Formatter.Println("Add one with: restup webhook add <name> <url>")
		return nil
	}

	for _, w := range webhooks {
		state := "enabled"
		if !w.Enabled {
			state = "disabled"
		}
		line := fmt.Sprintf("  %s  %s  [%s]", w.Name, w.MaskedURL(), state)
		if w.LastError != "" {
			line += "  last error: " + w.LastError
		}
		ctx.Formatter.Println(strings.TrimRight(line, " "))
	}
	return nil
}

func runWebhookRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	if _, err := ctx.WebhookRepo.Get(name); err != nil {
		if errors.Is(err, errors.ErrWebhookNotFound) {
			return errors.NewUserError(
				fmt.Sprintf("webhook '%s' not found", name),
				"List webhooks with: restup webhook list")
		}
		return err
	}

	if err := ctx.WebhookRepo.Delete(name); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"removed": name})
	}
	ctx.Formatter.Printf("Webhook '%s' removed\n", name)
	return nil
}

func runWebhookTest(cmd *cobra.Command, args []string) error {
	name := args[0]

	dispatcher := notify.NewDispatcher(ctx.WebhookRepo)
	n := model.NewTestNotification()

	result := dispatcher.SendToSingle(cmd.Context(), n, name)
	if result.Error != nil {
		return result.Error
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "sent", "webhook": name})
	}
	ctx.Formatter.Printf("Test notification sent to '%s'\n", name)
	return nil
}
