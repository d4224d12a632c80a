package encounter

import (
	"errors"
	"time"

	"firestige.xyz/encounter/internal/core"
	"firestige.xyz/encounter/internal/log"
	"firestige.xyz/encounter/internal/metrics"
	"firestige.xyz/encounter/internal/protocol"
)

// Router decodes encounter messages and forwards the assembled notification to the sink.
// A failure on one message never affects the next.
type Router struct {
	decode    DecodeFunc
	assembler *Assembler
	sink      Sink
}

// NewRouter creates a Router that decodes with protocol.Decode.
func NewRouter(assembler *Assembler, sink Sink) *Router {
	return &Router{decode: protocol.Decode, assembler: assembler, sink: sink}
}

// WithDecoder replaces the payload decoder.
func (r *Router) WithDecoder(decode DecodeFunc) *Router {
	r.decode = decode
	return r
}

// Attach subscribes to src. enabled is consulted for every encounter message; while it is
// closed messages are dropped but the subscription stays alive.
func (r *Router) Attach(src MessageSource, enabled Gate) (core.Subscription, error) {
	return src.SubscribeMessages(func(msg core.InterceptedMessage) {
		r.handle(msg, enabled)
	})
}

func (r *Router) handle(msg core.InterceptedMessage, enabled Gate) {
	kind := msg.Kind.String()

	if !msg.Kind.IsEncounter() {
		metrics.MessagesTotal.WithLabelValues(kind, metrics.ResultIgnored).Inc()
		return
	}
	if !enabled.open() {
		metrics.MessagesTotal.WithLabelValues(kind, metrics.ResultGated).Inc()
		return
	}

	defer func() {
		if v := recover(); v != nil {
			metrics.MessagesTotal.WithLabelValues(kind, metrics.ResultPanic).Inc()
			log.GetLogger().WithField("kind", kind).Errorf("encounter handler panicked: %v", v)
		}
	}()

	start := time.Now()
	defer func() {
		metrics.MessageHandleSeconds.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}()

	rec, err := r.decode(msg.Kind, msg.Payload)
	if err != nil {
		metrics.MessagesTotal.WithLabelValues(kind, metrics.ResultDecodeError).Inc()
		logDecodeError(kind, err)
		return
	}

	n, ok := r.assembler.Assemble(msg.Kind, rec)
	if !ok {
		metrics.MessagesTotal.WithLabelValues(kind, metrics.ResultUnresolved).Inc()
		var species int32
		if rec.Pokemon != nil {
			species = rec.Pokemon.PokemonID
		}
		log.GetLogger().WithFields(map[string]interface{}{
			"kind":    kind,
			"species": species,
		}).Debugf("dropping encounter: %v", core.ErrCreatureUnresolved)
		return
	}

	r.sink.Show(n)

	metrics.MessagesTotal.WithLabelValues(kind, metrics.ResultShown).Inc()
}

func logDecodeError(kind string, err error) {
	fields := map[string]interface{}{"kind": kind}

	var de *protocol.DecodeError
	if errors.As(err, &de) {
		fields["reason"] = de.Reason.Error()
		if de.Field != "" {
			fields["field"] = de.Field
		}
	} else {
		fields["reason"] = err.Error()
	}

	log.GetLogger().WithFields(fields).WithError(err).Warn("dropping undecodable encounter")
}
