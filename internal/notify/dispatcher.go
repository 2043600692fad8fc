package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/restup/restup/internal/logging"
	"github.com/restup/restup/internal/model"
	"github.com/restup/restup/internal/storage"
)

// Dispatcher sends notifications to the desktop, the terminal bell, and all
// enabled webhooks.
type Dispatcher struct {
	webhookRepo *storage.WebhookRepo
	httpClient  *HTTPClient
	desktop     *Desktop
	bell        *Bell
}

// NewDispatcher creates a notification dispatcher.
func NewDispatcher(webhookRepo *storage.WebhookRepo) *Dispatcher {
	return &Dispatcher{
		webhookRepo: webhookRepo,
		httpClient:  NewHTTPClient(),
		desktop:     NewDesktop(),
		bell:        NewBell(),
	}
}

// SetDesktop replaces the desktop notifier. A nil desktop disables desktop
// notifications.
func (d *Dispatcher) SetDesktop(desktop *Desktop) {
	d.desktop = desktop
}

// SetBell replaces the terminal bell sink. A nil bell disables it.
func (d *Dispatcher) SetBell(bell *Bell) {
	d.bell = bell
}

// DispatchResult contains the result of dispatching to a single target.
type DispatchResult struct {
	Target     string
	Success    bool
	StatusCode int
	Duration   time.Duration
	Error      error
}

// Dispatch sends a notification to the desktop and all enabled webhooks.
func (d *Dispatcher) Dispatch(ctx context.Context, n *model.Notification) []DispatchResult {
	var results []DispatchResult

	if d.desktop != nil && d.desktop.Supported() {
		result := DispatchResult{Target: "desktop"}
		if err := d.desktop.Notify(n.Title, n.Message); err != nil {
			result.Error = err
			logging.Warn("desktop notification failed", "error", err)
		} else {
			result.Success = true
		}
		results = append(results, result)
	}

	if d.bell != nil && d.bell.Supported() {
		result := DispatchResult{Target: "bell"}
		if err := d.bell.Ring(); err != nil {
			result.Error = err
			logging.Warn("terminal bell failed", "error", err)
		} else {
			result.Success = true
		}
		results = append(results, result)
	}

	results = append(results, d.sendToWebhooks(ctx, n)...)
	return results
}

// sendToWebhooks fans the notification out to all enabled webhooks
// concurrently.
func (d *Dispatcher) sendToWebhooks(ctx context.Context, n *model.Notification) []DispatchResult {
	webhooks, err := d.webhookRepo.ListEnabled()
	if err != nil {
		return []DispatchResult{{
			Target: "webhooks",
			Error:  fmt.Errorf("failed to list webhooks: %w", err),
		}}
	}
	if len(webhooks) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	results := make([]DispatchResult, len(webhooks))

	for i, webhook := range webhooks {
		wg.Add(1)
		go func(idx int, wh *model.Webhook) {
			defer wg.Done()
			results[idx] = d.sendToWebhook(ctx, n, wh)
		}(i, webhook)
	}

	wg.Wait()
	return results
}

// sendToWebhook sends a notification to a single webhook.
func (d *Dispatcher) sendToWebhook(ctx context.Context, n *model.Notification, webhook *model.Webhook) DispatchResult {
	result := DispatchResult{Target: webhook.Name}

	formatter := &JSONFormatter{Template: webhook.Template}
	payload, err := formatter.Format(n)
	if err != nil {
		result.Error = fmt.Errorf("failed to format notification: %w", err)
		d.updateWebhookStatus(webhook.Name, result.Error)
		return result
	}

	sendResult := d.httpClient.Send(ctx, webhook.URL, formatter.ContentType(), payload)

	result.StatusCode = sendResult.StatusCode
	result.Duration = sendResult.Duration
	result.Error = sendResult.Error
	result.Success = sendResult.Error == nil

	d.updateWebhookStatus(webhook.Name, sendResult.Error)
	return result
}

// updateWebhookStatus updates the last used timestamp and error for a webhook.
func (d *Dispatcher) updateWebhookStatus(name string, err error) {
	// Ignore errors from updating status - it's not critical
	_ = d.webhookRepo.UpdateLastUsed(name, err)
}

// SendToSingle sends a notification to a single webhook by name.
func (d *Dispatcher) SendToSingle(ctx context.Context, n *model.Notification, webhookName string) DispatchResult {
	webhook, err := d.webhookRepo.Get(webhookName)
	if err != nil {
		return DispatchResult{
			Target: webhookName,
			Error:  fmt.Errorf("webhook not found: %w", err),
		}
	}
	return d.sendToWebhook(ctx, n, webhook)
}
