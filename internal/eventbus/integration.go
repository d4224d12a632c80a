package eventbus

import (
	"firestige.xyz/encounter/internal/core"
)

// 主题定义
const (
	TopicInterceptedMessage = "intercepted_message"
	TopicCaptureOutcome     = "capture_outcome"
)

// EncounterBus 遭遇事件总线封装，为截获消息与捕捉结果提供类型化的发布订阅
type EncounterBus struct {
	bus EventBus
}

// NewEncounterBus 创建遭遇事件总线
func NewEncounterBus(partitionCount, queueSize int) *EncounterBus {
	return &EncounterBus{
		bus: NewInMemoryEventBus(partitionCount, queueSize),
	}
}

// PublishMessage 发布截获消息，同一主题的消息按发布顺序投递
func (s *EncounterBus) PublishMessage(msg core.InterceptedMessage) error {
	return s.bus.Publish(&Event{
		Topic:   TopicInterceptedMessage,
		Payload: msg,
	})
}

// SubscribeMessages 订阅截获消息
func (s *EncounterBus) SubscribeMessages(handler func(core.InterceptedMessage)) (core.Subscription, error) {
	sub, err := s.bus.Subscribe(TopicInterceptedMessage, func(event *Event) error {
		msg, ok := event.Payload.(core.InterceptedMessage)
		if !ok {
			return nil
		}
		handler(msg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// PublishOutcome 发布捕捉结果事件
func (s *EncounterBus) PublishOutcome(ev core.CaptureOutcomeEvent) error {
	return s.bus.Publish(&Event{
		Topic:   TopicCaptureOutcome,
		Payload: ev,
	})
}

// SubscribeOutcomes 订阅捕捉结果事件
func (s *EncounterBus) SubscribeOutcomes(handler func(core.CaptureOutcomeEvent)) (core.Subscription, error) {
	sub, err := s.bus.Subscribe(TopicCaptureOutcome, func(event *Event) error {
		ev, ok := event.Payload.(core.CaptureOutcomeEvent)
		if !ok {
			return nil
		}
		handler(ev)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Close 关闭事件总线
func (s *EncounterBus) Close() error {
	return s.bus.Close()
}

// GetStats 获取统计信息
func (s *EncounterBus) GetStats() *Stats {
	return s.bus.GetStats()
}
