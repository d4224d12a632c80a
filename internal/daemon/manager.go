package daemon

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// StopDaemon asks the daemon recorded in pidFile to shut down and waits for it to exit.
func StopDaemon(pidFile string, timeout time.Duration) error {
	pid, err := readPidFile(pidFile)
	if err != nil {
		return fmt.Errorf("daemon not running: %w", err)
	}

	if err := signalProcess(pid, syscall.SIGTERM); err != nil {
		return err
	}

	// 等待进程退出
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if !processAlive(pid) {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("daemon %d still running after %s", pid, timeout)
}

// ReloadDaemon sends SIGHUP to the daemon recorded in pidFile.
func ReloadDaemon(pidFile string) error {
	pid, err := readPidFile(pidFile)
	if err != nil {
		return fmt.Errorf("daemon not running: %w", err)
	}
	return signalProcess(pid, syscall.SIGHUP)
}

func signalProcess(pid int, sig syscall.Signal) error {
	process, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	if err := process.Signal(sig); err != nil {
		return fmt.Errorf("failed to signal daemon %d: %w", pid, err)
	}
	return nil
}

func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

func readPidFile(pidFile string) (int, error) {
	data, err := os.ReadFile(pidFile)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID file %s: %w", pidFile, err)
	}
	return pid, nil
}
