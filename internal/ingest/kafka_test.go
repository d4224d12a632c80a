package ingest

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/encounter/internal/config"
	"firestige.xyz/encounter/internal/core"
)

func TestNewKafkaConsumer(t *testing.T) {
	tests := []struct {
		name    string
		config  config.KafkaIngestConfig
		wantErr bool
	}{
		{
			name: "valid config",
			config: config.KafkaIngestConfig{
				Brokers: []string{"localhost:9092"},
				Topic:   "encounters",
				GroupID: "encounter",
			},
		},
		{
			name: "earliest offset",
			config: config.KafkaIngestConfig{
				Brokers:     []string{"localhost:9092"},
				Topic:       "encounters",
				GroupID:     "encounter",
				StartOffset: "earliest",
			},
		},
		{
			name:    "missing brokers",
			config:  config.KafkaIngestConfig{Topic: "encounters", GroupID: "encounter"},
			wantErr: true,
		},
		{
			name:    "missing topic",
			config:  config.KafkaIngestConfig{Brokers: []string{"localhost:9092"}, GroupID: "encounter"},
			wantErr: true,
		},
		{
			name:    "missing group_id",
			config:  config.KafkaIngestConfig{Brokers: []string{"localhost:9092"}, Topic: "encounters"},
			wantErr: true,
		},
		{
			name: "invalid start_offset",
			config: config.KafkaIngestConfig{
				Brokers:     []string{"localhost:9092"},
				Topic:       "encounters",
				GroupID:     "encounter",
				StartOffset: "middle",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumer, err := NewKafkaConsumer(tt.config, &recordingPublisher{})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, consumer)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, consumer)
			assert.NoError(t, consumer.Stop())
			assert.NoError(t, consumer.Stop())
		})
	}
}

func kafkaMessage(t *testing.T, f Frame, at time.Time) kafka.Message {
	t.Helper()
	value, err := json.Marshal(f)
	require.NoError(t, err)
	return kafka.Message{Topic: "encounters", Value: value, Time: at}
}

func TestKafkaConsumerProcessMessage(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	pub := &recordingPublisher{}
	c := &KafkaConsumer{
		cfg:       config.KafkaIngestConfig{MaxAge: 30 * time.Second},
		publisher: pub,
		now:       func() time.Time { return now },
	}

	outcome := OutcomeFrame(core.CaptureOutcomeEvent{Status: core.CatchSuccess})
	message := MessageFrame(core.InterceptedMessage{Kind: core.RequestKindEncounter, Payload: []byte{1}})

	assert.True(t, c.processMessage(kafkaMessage(t, message, now.Add(-time.Second))).OK)
	assert.True(t, c.processMessage(kafkaMessage(t, outcome, time.Time{})).OK)

	stale := c.processMessage(kafkaMessage(t, outcome, now.Add(-time.Minute)))
	assert.False(t, stale.OK)
	assert.Equal(t, "stale frame", stale.Error)

	invalid := c.processMessage(kafka.Message{Value: []byte("not json"), Time: now})
	assert.False(t, invalid.OK)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.messages, 1)
	assert.Equal(t, core.RequestKindEncounter, pub.messages[0].Kind)
	require.Len(t, pub.outcomes, 1)
	assert.Equal(t, core.CatchSuccess, pub.outcomes[0].Status)
}

func TestKafkaConsumerNoMaxAge(t *testing.T) {
	pub := &recordingPublisher{}
	c := &KafkaConsumer{publisher: pub, now: time.Now}

	old := time.Now().Add(-24 * time.Hour)
	ack := c.processMessage(kafkaMessage(t, OutcomeFrame(core.CaptureOutcomeEvent{Status: core.CatchFlee}), old))
	assert.True(t, ack.OK)
}
