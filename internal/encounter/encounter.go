// Package encounter turns intercepted encounter responses into notifications and retracts
// them when the capture attempt resolves.
//
// Two independent subscriptions make up the feature: a Router on the intercepted message
// stream and a DismissCoordinator on the capture outcome stream. They share nothing but the
// Sink. Feature owns both and rebuilds them on every Start.
package encounter

import (
	"firestige.xyz/encounter/internal/core"
	"firestige.xyz/encounter/internal/pokemon"
	"firestige.xyz/encounter/internal/protocol"
)

// Gate is a live boolean read once per event. A nil Gate is always open.
type Gate func() bool

func (g Gate) open() bool {
	return g == nil || g()
}

// Sink receives notifications. Implementations must tolerate Show and Cancel being called
// concurrently from different streams, and Cancel with nothing shown is a no-op.
type Sink interface {
	Show(n core.Notification)
	Cancel()
}

// MessageSource is a subscribable stream of intercepted messages.
type MessageSource interface {
	SubscribeMessages(handler func(core.InterceptedMessage)) (core.Subscription, error)
}

// OutcomeSource is a subscribable stream of capture outcome events.
type OutcomeSource interface {
	SubscribeOutcomes(handler func(core.CaptureOutcomeEvent)) (core.Subscription, error)
}

// CreatureResolver resolves a raw creature record. It reports false for records that do
// not describe a known creature.
type CreatureResolver interface {
	Resolve(raw *protocol.PokemonData) (*pokemon.Pokemon, bool)
}

// ProbabilityResolver resolves a raw probability record. It never fails.
type ProbabilityResolver interface {
	Resolve(raw *protocol.CaptureProbability) pokemon.Probability
}

// DecodeFunc decodes one payload for a request kind.
type DecodeFunc func(kind core.RequestKind, payload []byte) (*protocol.EncounterRecord, error)
