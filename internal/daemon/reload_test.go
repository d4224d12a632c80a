package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/encounter/internal/encounter"
)

func writeConfig(t *testing.T, path, socket string, notificationEnabled bool, sink string) {
	t.Helper()
	content := fmt.Sprintf(`encounter:
  feature:
    notification_enabled: %t
    dismiss_enabled: true
  notify:
    sink: %s
    max_per_second: 0
  ingest:
    socket: %s
  metrics:
    enabled: false
`, notificationEnabled, sink, socket)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestReloadDisablesNotifications(t *testing.T) {
	dir := tempDir(t)
	socket := filepath.Join(dir, "ingest.sock")
	path := filepath.Join(dir, "config.yml")
	writeConfig(t, path, socket, true, "console")

	out := &syncBuffer{}
	d, err := New(path, "")
	require.NoError(t, err)
	d.out = out
	require.NoError(t, d.Start())
	defer d.Stop()

	send(t, socket, encounterFrame(t))
	assert.Eventually(t, func() bool { return out.Count("+ ") == 1 }, 2*time.Second, 10*time.Millisecond)

	writeConfig(t, path, socket, false, "console")
	require.NoError(t, d.Reload())
	assert.False(t, d.Config().Feature.NotificationEnabled)
	assert.Equal(t, encounter.StateRunning, d.Feature().State())

	send(t, socket, encounterFrame(t))
	assert.Never(t, func() bool { return out.Count("+ ") > 1 }, 300*time.Millisecond, 20*time.Millisecond)
}

func TestReloadSwitchesSink(t *testing.T) {
	dir := tempDir(t)
	socket := filepath.Join(dir, "ingest.sock")
	path := filepath.Join(dir, "config.yml")
	writeConfig(t, path, socket, true, "console")

	out := &syncBuffer{}
	d, err := New(path, "")
	require.NoError(t, err)
	d.out = out
	require.NoError(t, d.Start())
	defer d.Stop()

	writeConfig(t, path, socket, true, "log")
	require.NoError(t, d.Reload())
	assert.Equal(t, "log", d.Config().Notify.Sink)

	send(t, socket, encounterFrame(t))
	assert.Never(t, func() bool { return strings.Contains(out.String(), "Snorlax") }, 300*time.Millisecond, 20*time.Millisecond)
}

func TestReloadKeepsConfigOnInvalidFile(t *testing.T) {
	dir := tempDir(t)
	socket := filepath.Join(dir, "ingest.sock")
	path := filepath.Join(dir, "config.yml")
	writeConfig(t, path, socket, true, "console")

	d, err := New(path, "")
	require.NoError(t, err)
	d.out = &syncBuffer{}
	require.NoError(t, d.Start())
	defer d.Stop()

	writeConfig(t, path, socket, true, "pager")
	assert.Error(t, d.Reload())
	assert.Equal(t, "console", d.Config().Notify.Sink)
}

func TestReloadWithoutConfigPath(t *testing.T) {
	d := NewWithConfig(testConfig(tempDir(t)), "", "", &syncBuffer{})
	assert.Error(t, d.Reload())
}

func TestReloadAfterStopIsIgnored(t *testing.T) {
	dir := tempDir(t)
	socket := filepath.Join(dir, "ingest.sock")
	path := filepath.Join(dir, "config.yml")
	writeConfig(t, path, socket, true, "console")

	d, err := New(path, "")
	require.NoError(t, err)
	d.out = &syncBuffer{}
	require.NoError(t, d.Start())
	d.Stop()

	require.NoError(t, d.Reload())
	assert.Equal(t, encounter.StateStopped, d.Feature().State())
}
