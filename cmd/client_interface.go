package cmd

import (
	"context"
	"time"

	"firestige.xyz/encounter/internal/daemon"
)

// ControlClient 定义 stop / reload 命令需要的客户端方法
type ControlClient interface {
	Stop(ctx context.Context) error
	Reload(ctx context.Context) error
}

// pidClient 通过 PID 文件向守护进程发送信号
type pidClient struct {
	pidFile string
	timeout time.Duration
}

func newPIDClient(pidFile string) ControlClient {
	return &pidClient{pidFile: pidFile, timeout: 10 * time.Second}
}

func (c *pidClient) Stop(ctx context.Context) error {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	return daemon.StopDaemon(c.pidFile, timeout)
}

func (c *pidClient) Reload(ctx context.Context) error {
	return daemon.ReloadDaemon(c.pidFile)
}
