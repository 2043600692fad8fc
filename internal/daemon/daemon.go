package daemon

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/restup/restup/internal/config"
	"github.com/restup/restup/internal/logging"
	"github.com/restup/restup/internal/reminder"
	"github.com/restup/restup/internal/scheduler"
	"github.com/restup/restup/internal/storage"
	"github.com/restup/restup/internal/timer"
	"github.com/restup/restup/internal/update"
)

// Daemon manages the background reminder process.
type Daemon struct {
	pidFile   *PIDFile
	db        *storage.DB
	scheduler *scheduler.Scheduler
	service   *reminder.Service
	version   string
	startedAt time.Time
	debug     bool
}

// Status represents the daemon status.
type Status struct {
	Running     bool           `json:"running"`
	PID         int            `json:"pid,omitempty"`
	StartedAt   time.Time      `json:"started_at,omitempty"`
	Uptime      string         `json:"uptime,omitempty"`
	Version     string         `json:"version,omitempty"`
	Timers      []timer.Status `json:"timers,omitempty"`
	PausedUntil time.Time      `json:"paused_until,omitempty"`
}

// State is the persisted daemon state file. The running daemon refreshes
// the timer snapshot so status queries from other processes stay current.
type State struct {
	StartedAt   time.Time      `json:"started_at"`
	Version     string         `json:"version,omitempty"`
	Timers      []timer.Status `json:"timers,omitempty"`
	PausedUntil time.Time      `json:"paused_until,omitempty"`
}

// NewDaemon creates a new daemon manager.
func NewDaemon(db *storage.DB, version string) *Daemon {
	return &Daemon{
		pidFile: NewPIDFile(),
		db:      db,
		version: version,
	}
}

// SetDebug enables debug mode.
func (d *Daemon) SetDebug(debug bool) {
	d.debug = debug
}

// GetStatus returns the current daemon status.
func (d *Daemon) GetStatus() *Status {
	status := &Status{}

	pid := d.pidFile.GetRunningPID()
	if pid > 0 {
		status.Running = true
		status.PID = pid

		if state, err := d.readState(); err == nil {
			status.StartedAt = state.StartedAt
			status.Uptime = formatUptime(time.Since(state.StartedAt))
			status.Version = state.Version
			status.Timers = state.Timers
			status.PausedUntil = state.PausedUntil
		}
	}

	return status
}

// IsRunning returns true if the daemon is running.
func (d *Daemon) IsRunning() bool {
	return d.pidFile.IsRunning()
}

// Start runs the daemon in the foreground: reminder timers plus the cron
// scheduler, until a shutdown signal arrives.
func (d *Daemon) Start(ctx context.Context) error {
	if d.IsRunning() {
		return ErrAlreadyRunning
	}

	if err := d.pidFile.Write(); err != nil {
		return err
	}

	d.startedAt = time.Now()
	if err := d.writeState(&State{StartedAt: d.startedAt, Version: d.version}); err != nil {
		d.pidFile.Remove()
		return err
	}

	var err error
	d.service, err = reminder.NewService(d.db)
	if err != nil {
		d.pidFile.Remove()
		return err
	}

	d.scheduler = scheduler.NewScheduler(d.db)
	d.scheduler.SetUpdateChecker(update.NewChecker(), d.version)
	if err := d.scheduler.Start(); err != nil {
		d.pidFile.Remove()
		return err
	}

	// Pick up settings and pause changes made through the CLI, and
	// publish a fresh timer snapshot for status queries.
	if _, err := d.scheduler.AddJob("*/5 * * * * *", func() {
		if err := d.service.Refresh(); err != nil {
			logging.Warn("settings refresh failed", "error", err)
		}
		state := &State{
			StartedAt:   d.startedAt,
			Version:     d.version,
			Timers:      d.service.Snapshot(),
			PausedUntil: d.service.Manager().PausedUntil(),
		}
		if err := d.writeState(state); err != nil {
			logging.Warn("failed to write daemon state", "error", err)
		}
	}); err != nil {
		d.pidFile.Remove()
		return err
	}

	// Drive the timers until shutdown.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	runDone := make(chan error, 1)
	go func() {
		runDone <- d.service.Run(runCtx)
	}()

	sigHandler := NewSignalHandler()
	sigHandler.Setup()
	defer sigHandler.Cleanup()

	logging.Info("daemon started", "pid", os.Getpid(), "version", d.version)

	select {
	case sig := <-waitSignal(sigHandler, ctx):
		if sig != "" {
			logging.Info("received signal", "signal", sig)
		}
	case err := <-runDone:
		if err != nil && ctx.Err() == nil {
			logging.Error("reminder service stopped", "error", err)
		}
	}

	cancel()
	d.scheduler.Stop()
	d.pidFile.Remove()
	d.removeState()

	return nil
}

// waitSignal adapts SignalHandler.Wait to a channel for select.
func waitSignal(h *SignalHandler, ctx context.Context) <-chan string {
	ch := make(chan string, 1)
	go func() {
		sig := h.Wait(ctx)
		if sig != nil {
			ch <- sig.String()
		} else {
			ch <- ""
		}
	}()
	return ch
}

// StartBackground starts the daemon as a detached background process.
func (d *Daemon) StartBackground() (int, error) {
	if d.IsRunning() {
		return d.pidFile.GetRunningPID(), ErrAlreadyRunning
	}

	executable, err := os.Executable()
	if err != nil {
		return 0, fmt.Errorf("failed to get executable path: %w", err)
	}

	args := []string{"daemon", "start", "--foreground"}
	if d.debug {
		args = append(args, "--debug")
	}

	cmd := exec.Command(executable, args...)
	cmd.Stdin = nil

	logPath := GetLogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err == nil {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			cmd.Stdout = logFile
			cmd.Stderr = logFile
		}
	}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start daemon: %w", err)
	}

	// Wait a moment for the process to start and write its PID
	time.Sleep(config.Global.Daemon.StartupWait)

	if !d.pidFile.IsRunning() {
		if errMsg := d.readLastLogError(); errMsg != "" {
			return 0, fmt.Errorf("daemon failed to start: %s", errMsg)
		}
		return 0, fmt.Errorf("daemon failed to start (check logs: %s)", logPath)
	}

	return cmd.Process.Pid, nil
}

// readLastLogError reads the last few lines of the log file to find error messages.
func (d *Daemon) readLastLogError() string {
	data, err := os.ReadFile(GetLogPath())
	if err != nil {
		return ""
	}

	lines := strings.Split(string(data), "\n")
	start := len(lines) - 10
	if start < 0 {
		start = 0
	}

	for i := len(lines) - 1; i >= start; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.Contains(strings.ToLower(line), "error") ||
			strings.Contains(line, "failed to") {
			return line
		}
	}
	return ""
}

// Stop stops the running daemon.
func (d *Daemon) Stop() error {
	pid := d.pidFile.GetRunningPID()
	if pid == 0 {
		return ErrNotRunning
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process: %w", err)
	}

	if err := process.Signal(os.Interrupt); err != nil {
		if err := process.Kill(); err != nil {
			return fmt.Errorf("failed to stop daemon: %w", err)
		}
	}

	// Wait for the process to exit, force kill on timeout.
	deadline := time.Now().Add(config.Global.Daemon.KillTimeout)
	for time.Now().Before(deadline) {
		if !IsProcessRunning(pid) {
			d.pidFile.Remove()
			d.removeState()
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}

	if err := process.Kill(); err != nil {
		return fmt.Errorf("failed to force stop daemon: %w", err)
	}
	d.pidFile.Remove()
	d.removeState()
	return nil
}

// statePath returns the path of the daemon state file.
func statePath() string {
	return filepath.Join(xdg.StateHome, AppName, "daemon.json")
}

// writeState persists the daemon state file.
func (d *Daemon) writeState(state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(statePath()), 0755); err != nil {
		return err
	}
	return os.WriteFile(statePath(), data, 0644)
}

// readState reads the daemon state file.
func (d *Daemon) readState() (*State, error) {
	data, err := os.ReadFile(statePath())
	if err != nil {
		return nil, err
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// removeState removes the daemon state file.
func (d *Daemon) removeState() {
	_ = os.Remove(statePath())
}

// formatUptime formats an uptime duration.
func formatUptime(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
