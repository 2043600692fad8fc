package daemon

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempPIDFile(t *testing.T) *PIDFile {
	t.Helper()
	return &PIDFile{path: filepath.Join(t.TempDir(), "restup.pid")}
}

func TestPIDFileWriteRead(t *testing.T) {
	p := tempPIDFile(t)

	require.NoError(t, p.WritePID(12345))
	assert.True(t, p.Exists())

	pid, err := p.Read()
	require.NoError(t, err)
	assert.Equal(t, 12345, pid)

	require.NoError(t, p.Remove())
	assert.False(t, p.Exists())
}

func TestPIDFileReadMissing(t *testing.T) {
	p := tempPIDFile(t)
	_, err := p.Read()
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestPIDFileReadInvalid(t *testing.T) {
	p := tempPIDFile(t)
	require.NoError(t, os.WriteFile(p.path, []byte("garbage"), 0644))
	_, err := p.Read()
	assert.Error(t, err)
}

func TestPIDFileRemoveMissing(t *testing.T) {
	p := tempPIDFile(t)
	assert.NoError(t, p.Remove())
}

func TestIsProcessRunning(t *testing.T) {
	assert.True(t, IsProcessRunning(os.Getpid()))
	assert.False(t, IsProcessRunning(0))
	assert.False(t, IsProcessRunning(-1))
}

func TestPIDFileIsRunning(t *testing.T) {
	p := tempPIDFile(t)
	assert.False(t, p.IsRunning())

	require.NoError(t, p.WritePID(os.Getpid()))
	assert.True(t, p.IsRunning())
	assert.Equal(t, os.Getpid(), p.GetRunningPID())
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "45s", formatUptime(45*time.Second))
	assert.Equal(t, "2m5s", formatUptime(2*time.Minute+5*time.Second))
	assert.Equal(t, "3h15m", formatUptime(3*time.Hour+15*time.Minute))
}
