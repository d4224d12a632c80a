package notify

import (
	"strings"

	"firestige.xyz/encounter/internal/core"
	"firestige.xyz/encounter/internal/log"
)

// LogOptions configures the log sink.
type LogOptions struct {
	Level string `mapstructure:"level"` // info | warn
}

// LogSink emits notifications as structured log entries.
type LogSink struct {
	warn bool
}

// NewLogSink creates a log sink.
func NewLogSink(opts LogOptions) *LogSink {
	return &LogSink{warn: strings.EqualFold(opts.Level, "warn")}
}

func (l *LogSink) Show(n core.Notification) {
	entry := log.GetLogger().WithFields(map[string]interface{}{
		"kind":      n.Kind.String(),
		"number":    n.Number,
		"name":      n.Name,
		"iv":        n.IVPercent,
		"cp":        n.CP,
		"level":     n.Level,
		"flee":      n.FleeRatePercent,
		"pokeball":  n.Pokeball,
		"greatball": n.Greatball,
		"ultraball": n.Ultraball,
	})
	if l.warn {
		entry.Warn("encounter")
		return
	}
	entry.Info("encounter")
}

func (l *LogSink) Cancel() {
	log.GetLogger().Debug("encounter dismissed")
}
