package eventbus

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/serialx/hashring"

	"firestige.xyz/encounter/internal/core"
	"firestige.xyz/encounter/internal/log"
	"firestige.xyz/encounter/internal/metrics"
)

// EventBus 事件总线接口
type EventBus interface {
	Publish(event *Event) error
	Subscribe(topic string, handler Handler) (*Subscription, error)
	Close() error
	GetStats() *Stats
}

// Stats 统计信息
type Stats struct {
	PublishedCount int64
	ProcessedCount int64
	DroppedCount   int64
	PartitionCount int
	QueuedCount    []int
	Subscribers    map[string]int
}

// InMemoryEventBus 基于内存的事件总线实现
type InMemoryEventBus struct {
	partitions     []*partition
	partitionCount int
	queueSize      int
	subscribers    map[string]map[uint64]*Subscription
	mu             sync.RWMutex
	closed         bool
	hashRing       *hashring.HashRing // 一致性哈希环
	partitionNodes map[string]int     // 节点标识 → 分区ID
	wg             sync.WaitGroup

	nextID uint64

	// 统计信息
	publishedCount int64
	processedCount int64
	droppedCount   int64
}

// NewInMemoryEventBus 创建新的内存事件总线
func NewInMemoryEventBus(partitionCount, queueSize int) *InMemoryEventBus {
	if partitionCount < 1 {
		partitionCount = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	bus := &InMemoryEventBus{
		partitionCount: partitionCount,
		queueSize:      queueSize,
		subscribers:    make(map[string]map[uint64]*Subscription),
		partitions:     make([]*partition, partitionCount),
		partitionNodes: make(map[string]int, partitionCount),
	}

	// 初始化分区节点标识
	nodes := make([]string, partitionCount)
	for i := 0; i < partitionCount; i++ {
		nodes[i] = "partition-" + strconv.Itoa(i)
		bus.partitionNodes[nodes[i]] = i
	}

	// 创建一致性哈希环
	bus.hashRing = hashring.New(nodes)

	// 初始化分区
	for i := 0; i < partitionCount; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		bus.partitions[i] = &partition{
			id:     i,
			queue:  make(chan *Event, queueSize),
			ctx:    ctx,
			cancel: cancel,
		}
		bus.wg.Add(1)
		go bus.runPartition(bus.partitions[i])
	}

	return bus
}

// Publish 发布事件，队列满时立即返回错误而不阻塞
func (b *InMemoryEventBus) Publish(event *Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return core.ErrBusClosed
	}

	partitionID := b.getPartitionID(event)
	partition := b.partitions[partitionID]

	select {
	case partition.queue <- event:
		atomic.AddInt64(&b.publishedCount, 1)
		metrics.EventBusPublishedTotal.WithLabelValues(event.Topic).Inc()
		return nil
	default:
		atomic.AddInt64(&b.droppedCount, 1)
		metrics.EventBusDroppedTotal.WithLabelValues(event.Topic).Inc()
		return fmt.Errorf("partition %d: %w", partitionID, core.ErrQueueFull)
	}
}

// Subscribe 订阅主题，同一主题允许多个订阅者
func (b *InMemoryEventBus) Subscribe(topic string, handler Handler) (*Subscription, error) {
	if handler == nil {
		return nil, fmt.Errorf("subscribe %s: nil handler", topic)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, core.ErrBusClosed
	}

	b.nextID++
	sub := &Subscription{
		id:      b.nextID,
		topic:   topic,
		handler: handler,
		bus:     b,
		active:  true,
	}

	subs, ok := b.subscribers[topic]
	if !ok {
		subs = make(map[uint64]*Subscription)
		b.subscribers[topic] = subs
	}
	subs[sub.id] = sub

	log.GetLogger().WithField("topic", topic).Debugf("Subscribed to topic, subscriber %d", sub.id)
	return sub, nil
}

// remove 从订阅表中移除订阅者
func (b *InMemoryEventBus) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if subs, ok := b.subscribers[sub.topic]; ok {
		delete(subs, sub.id)
		if len(subs) == 0 {
			delete(b.subscribers, sub.topic)
		}
	}
	log.GetLogger().WithField("topic", sub.topic).Debugf("Unsubscribed subscriber %d", sub.id)
}

// Close 关闭事件总线，等待所有分区退出
func (b *InMemoryEventBus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true

	// 关闭所有分区
	for _, partition := range b.partitions {
		partition.cancel()
		close(partition.queue)
	}
	b.mu.Unlock()

	b.wg.Wait()
	log.GetLogger().Info("Event bus closed")
	return nil
}

// GetStats 获取统计信息
func (b *InMemoryEventBus) GetStats() *Stats {
	stats := &Stats{
		PublishedCount: atomic.LoadInt64(&b.publishedCount),
		ProcessedCount: atomic.LoadInt64(&b.processedCount),
		DroppedCount:   atomic.LoadInt64(&b.droppedCount),
		PartitionCount: b.partitionCount,
		QueuedCount:    make([]int, b.partitionCount),
		Subscribers:    make(map[string]int),
	}

	for i, partition := range b.partitions {
		stats.QueuedCount[i] = len(partition.queue)
	}

	b.mu.RLock()
	for topic, subs := range b.subscribers {
		stats.Subscribers[topic] = len(subs)
	}
	b.mu.RUnlock()

	return stats
}

// getPartitionID 使用一致性哈希算法计算分区ID
func (b *InMemoryEventBus) getPartitionID(event *Event) int {
	key := event.Key
	if key == "" {
		key = event.Topic
	}

	node, ok := b.hashRing.GetNode(key)
	if !ok {
		return 0
	}
	return b.partitionNodes[node]
}

// snapshot 获取主题当前的订阅者列表，按订阅顺序排列
func (b *InMemoryEventBus) snapshot(topic string) []*Subscription {
	b.mu.RLock()
	defer b.mu.RUnlock()

	subs := b.subscribers[topic]
	out := make([]*Subscription, 0, len(subs))
	for _, sub := range subs {
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// dispatch 将事件分发给主题的所有订阅者，单个处理器的错误或 panic 不影响其他订阅者
func (b *InMemoryEventBus) dispatch(p *partition, event *Event) {
	logger := log.GetLogger()

	for _, sub := range b.snapshot(event.Topic) {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.WithField("topic", event.Topic).Errorf("Handler panicked in partition %d: %v", p.id, r)
				}
			}()

			delivered, err := sub.deliver(event)
			if err != nil {
				logger.WithField("topic", event.Topic).Errorf("Failed to handle event in partition %d: %v", p.id, err)
				return
			}
			if delivered {
				atomic.AddInt64(&b.processedCount, 1)
			}
		}()
	}
}

// runPartition 运行分区消费者
func (b *InMemoryEventBus) runPartition(p *partition) {
	defer b.wg.Done()

	logger := log.GetLogger()
	logger.Debugf("Partition %d started", p.id)

	defer func() {
		logger.Debugf("Partition %d stopped", p.id)
	}()

	for {
		select {
		case <-p.ctx.Done():
			return

		case event, ok := <-p.queue:
			if !ok {
				return
			}
			b.dispatch(p, event)
		}
	}
}
