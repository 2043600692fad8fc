package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restup/restup/internal/model"
	"github.com/restup/restup/internal/storage"
)

func setupTestDB(t *testing.T) *storage.DB {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestJSONFormatter(t *testing.T) {
	formatter := &JSONFormatter{}

	t.Run("content_type", func(t *testing.T) {
		assert.Equal(t, "application/json", formatter.ContentType())
	})

	t.Run("format_notification", func(t *testing.T) {
		n := model.NewReminderNotification(model.KindWater)

		payload, err := formatter.Format(n)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.Equal(t, "reminder", decoded["type"])
		assert.Equal(t, "water", decoded["kind"])
		assert.Equal(t, "Drink Water", decoded["title"])
	})

	t.Run("custom_template", func(t *testing.T) {
		f := &JSONFormatter{Template: `{"text": "{{.Title}}: {{.Message}}"}`}
		n := model.NewNotification(model.NotifyTest, "Hello", "World")

		payload, err := f.Format(n)
		require.NoError(t, err)
		assert.Equal(t, `{"text": "Hello: World"}`, string(payload))
	})

	t.Run("bad_template", func(t *testing.T) {
		f := &JSONFormatter{Template: `{{.Broken`}
		_, err := f.Format(model.NewNotification(model.NotifyTest, "a", "b"))
		assert.Error(t, err)
	})
}

func TestHTTPClientSend(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var received atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received.Add(1)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewHTTPClient()
		result := client.Send(context.Background(), srv.URL, "application/json", []byte(`{}`))

		assert.NoError(t, result.Error)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		assert.Equal(t, 1, result.Attempts)
		assert.Equal(t, int32(1), received.Load())
	})

	t.Run("client_error_no_retry", func(t *testing.T) {
		var received atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		client := NewHTTPClient()
		result := client.Send(context.Background(), srv.URL, "application/json", []byte(`{}`))

		assert.Error(t, result.Error)
		assert.Equal(t, http.StatusBadRequest, result.StatusCode)
		assert.Equal(t, int32(1), received.Load())
	})

	t.Run("cancelled_context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewHTTPClient()
		result := client.Send(ctx, srv.URL, "application/json", []byte(`{}`))
		assert.Error(t, result.Error)
	})
}

func TestDispatcherWebhookFanout(t *testing.T) {
	var bodies atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bodies.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	db := setupTestDB(t)
	repo := storage.NewWebhookRepo(db)
	require.NoError(t, repo.Create(model.NewWebhook("one", srv.URL)))
	require.NoError(t, repo.Create(model.NewWebhook("two", srv.URL)))

	disabled := model.NewWebhook("off", srv.URL)
	disabled.Enabled = false
	require.NoError(t, repo.Create(disabled))

	d := NewDispatcher(repo)
	d.SetDesktop(nil)
	d.SetBell(nil)

	results := d.Dispatch(context.Background(), model.NewReminderNotification(model.KindEyeRest))
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Success, "target %s: %v", r.Target, r.Error)
	}
	assert.Equal(t, int32(2), bodies.Load())

	// Delivery status recorded on the webhook.
	wh, err := repo.Get("one")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), wh.LastUsed, 5*time.Second)
	assert.Empty(t, wh.LastError)
}

func TestDispatcherNoWebhooks(t *testing.T) {
	db := setupTestDB(t)
	d := NewDispatcher(storage.NewWebhookRepo(db))
	d.SetDesktop(nil)
	d.SetBell(nil)

	results := d.Dispatch(context.Background(), model.NewReminderNotification(model.KindWater))
	assert.Empty(t, results)
}

func TestBell(t *testing.T) {
	t.Run("ring_writes_bel", func(t *testing.T) {
		var buf bytes.Buffer
		bell := NewBellWriter(&buf)

		assert.True(t, bell.Supported())
		require.NoError(t, bell.Ring())
		assert.Equal(t, "\a", buf.String())
	})

	t.Run("no_tty", func(t *testing.T) {
		bell := &Bell{out: &bytes.Buffer{}, tty: false}
		assert.False(t, bell.Supported())
	})
}

func TestDispatcherBell(t *testing.T) {
	db := setupTestDB(t)
	d := NewDispatcher(storage.NewWebhookRepo(db))
	d.SetDesktop(nil)

	var buf bytes.Buffer
	d.SetBell(NewBellWriter(&buf))

	results := d.Dispatch(context.Background(), model.NewReminderNotification(model.KindStandUp))
	require.Len(t, results, 1)
	assert.Equal(t, "bell", results[0].Target)
	assert.True(t, results[0].Success)
	assert.Equal(t, "\a", buf.String())
}

func TestDispatcherSendToSingle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	db := setupTestDB(t)
	repo := storage.NewWebhookRepo(db)
	require.NoError(t, repo.Create(model.NewWebhook("target", srv.URL)))

	d := NewDispatcher(repo)
	result := d.SendToSingle(context.Background(), model.NewReminderNotification(model.KindStandUp), "target")
	assert.True(t, result.Success)

	result = d.SendToSingle(context.Background(), model.NewReminderNotification(model.KindStandUp), "missing")
	assert.Error(t, result.Error)
}
