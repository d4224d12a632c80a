package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"firestige.xyz/encounter/internal/config"
	"firestige.xyz/encounter/internal/log"
	"firestige.xyz/encounter/internal/metrics"
)

const resultStale = "stale"

// KafkaConsumer reads frames from a Kafka topic, one JSON frame per message value, and
// publishes them like the socket server does.
type KafkaConsumer struct {
	cfg       config.KafkaIngestConfig
	reader    *kafka.Reader
	publisher Publisher
	now       func() time.Time
}

// NewKafkaConsumer creates a consumer for cfg. Nothing is fetched until Start.
func NewKafkaConsumer(cfg config.KafkaIngestConfig, publisher Publisher) (*KafkaConsumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("brokers is required")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if cfg.GroupID == "" {
		return nil, fmt.Errorf("group_id is required")
	}

	// Determine start offset
	var startOffset int64
	switch cfg.StartOffset {
	case "earliest":
		startOffset = kafka.FirstOffset
	case "", "latest":
		startOffset = kafka.LastOffset
	default:
		return nil, fmt.Errorf("invalid start_offset %q (must be earliest/latest)", cfg.StartOffset)
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        cfg.GroupID,
		StartOffset:    startOffset,
		MinBytes:       1,
		MaxBytes:       maxFrameSize,
		CommitInterval: time.Second,
		MaxWait:        500 * time.Millisecond,
	})

	return &KafkaConsumer{
		cfg:       cfg,
		reader:    reader,
		publisher: publisher,
		now:       time.Now,
	}, nil
}

// Start consumes until ctx is cancelled.
func (c *KafkaConsumer) Start(ctx context.Context) error {
	logger := log.GetLogger()
	logger.WithFields(map[string]interface{}{
		"brokers":  c.cfg.Brokers,
		"topic":    c.cfg.Topic,
		"group_id": c.cfg.GroupID,
		"max_age":  c.cfg.MaxAge,
	}).Info("kafka ingest consumer started")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				logger.WithField("reason", ctx.Err()).Info("kafka ingest consumer stopped")
				return ctx.Err()
			}
			logger.WithError(err).Error("failed to fetch kafka message")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(5 * time.Second):
				continue
			}
		}

		c.processMessage(msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			logger.WithError(err).Error("failed to commit kafka message")
		}
	}
}

// processMessage publishes one message. Refused frames are counted and logged but still
// committed; a replay would only show an outdated encounter.
func (c *KafkaConsumer) processMessage(msg kafka.Message) Ack {
	if c.cfg.MaxAge > 0 && !msg.Time.IsZero() {
		if age := c.now().Sub(msg.Time); age > c.cfg.MaxAge {
			metrics.IngestFramesTotal.WithLabelValues("unknown", resultStale).Inc()
			log.GetLogger().WithFields(map[string]interface{}{
				"partition": msg.Partition,
				"offset":    msg.Offset,
				"age":       age.String(),
			}).Debug("skipping stale kafka frame")
			return Ack{Error: "stale frame"}
		}
	}

	return handleFrame(c.publisher, msg.Value)
}

// Stop closes the reader. Safe to call more than once.
func (c *KafkaConsumer) Stop() error {
	if c.reader == nil {
		return nil
	}
	reader := c.reader
	c.reader = nil
	log.GetLogger().Info("closing kafka ingest consumer")
	if err := reader.Close(); err != nil {
		return fmt.Errorf("failed to close kafka reader: %w", err)
	}
	return nil
}
