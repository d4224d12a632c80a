package eventbus

import (
	"context"
)

// Event 事件结构
type Event struct {
	Topic   string      `json:"topic"`
	Key     string      `json:"key"` // 分区键，为空时按 Topic 分区，保证同一主题内有序
	Payload interface{} `json:"payload"`
}

// Handler 事件处理器
type Handler func(event *Event) error

// partition 分区结构
type partition struct {
	id     int
	queue  chan *Event
	ctx    context.Context
	cancel context.CancelFunc
}
