package encounter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"firestige.xyz/encounter/internal/core"
	"firestige.xyz/encounter/internal/pokemon"
	"firestige.xyz/encounter/internal/protocol"
)

// stream is a synchronous source: Emit runs every live handler on the caller's goroutine.
type stream[T any] struct {
	mu       sync.Mutex
	next     int
	handlers map[int]func(T)
	err      error
	attaches int
}

func newStream[T any]() *stream[T] {
	return &stream[T]{handlers: make(map[int]func(T))}
}

func (s *stream[T]) subscribe(h func(T)) (core.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	s.attaches++
	s.next++
	id := s.next
	s.handlers[id] = h

	return &fakeSubscription{release: func() {
		s.mu.Lock()
		delete(s.handlers, id)
		s.mu.Unlock()
	}}, nil
}

func (s *stream[T]) Emit(v T) {
	s.mu.Lock()
	hs := make([]func(T), 0, len(s.handlers))
	for _, h := range s.handlers {
		hs = append(hs, h)
	}
	s.mu.Unlock()

	for _, h := range hs {
		h(v)
	}
}

func (s *stream[T]) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handlers)
}

func (s *stream[T]) Attaches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attaches
}

type fakeSubscription struct {
	once    sync.Once
	release func()
}

func (f *fakeSubscription) Unsubscribe() {
	f.once.Do(f.release)
}

type messageStream struct{ *stream[core.InterceptedMessage] }

func newMessageStream() *messageStream {
	return &messageStream{newStream[core.InterceptedMessage]()}
}

func (m *messageStream) SubscribeMessages(h func(core.InterceptedMessage)) (core.Subscription, error) {
	return m.subscribe(h)
}

type outcomeStream struct{ *stream[core.CaptureOutcomeEvent] }

func newOutcomeStream() *outcomeStream {
	return &outcomeStream{newStream[core.CaptureOutcomeEvent]()}
}

func (o *outcomeStream) SubscribeOutcomes(h func(core.CaptureOutcomeEvent)) (core.Subscription, error) {
	return o.subscribe(h)
}

// recordingSink keeps every call.
type recordingSink struct {
	mu      sync.Mutex
	shown   []core.Notification
	cancels int
}

func (r *recordingSink) Show(n core.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown = append(r.shown, n)
}

func (r *recordingSink) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancels++
}

func (r *recordingSink) Shown() []core.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Notification(nil), r.shown...)
}

func (r *recordingSink) Cancels() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancels
}

// mockSink is a testify mock of Sink.
type mockSink struct {
	mock.Mock
}

func (m *mockSink) Show(n core.Notification) {
	m.Called(n)
}

func (m *mockSink) Cancel() {
	m.Called()
}

// countingProbabilities counts resolutions on top of the real factory.
type countingProbabilities struct {
	mu    sync.Mutex
	calls int
	inner *pokemon.ProbabilityFactory
}

func (c *countingProbabilities) Resolve(raw *protocol.CaptureProbability) pokemon.Probability {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.inner.Resolve(raw)
}

func snorlax() *protocol.PokemonData {
	return &protocol.PokemonData{
		PokemonID:         143,
		CP:                1820,
		StaminaMax:        201,
		Move1:             221,
		Move2:             90,
		HeightM:           2.31,
		WeightKg:          512.5,
		IndividualAttack:  15,
		IndividualDefense: 10,
		IndividualStamina: 5,
		CPMultiplier:      0.6121573,
		Display:           protocol.PokemonDisplay{Gender: protocol.GenderMale},
	}
}

func probability() *protocol.CaptureProbability {
	return &protocol.CaptureProbability{
		BallTypes:     []int32{protocol.ItemPokeBall, protocol.ItemGreatBall, protocol.ItemUltraBall},
		Probabilities: []float32{0.25, 0.375, 0.5},
	}
}

func payload(t *testing.T, kind core.RequestKind, p *protocol.PokemonData) []byte {
	t.Helper()
	b, err := protocol.Encode(&protocol.EncounterRecord{Kind: kind, Pokemon: p, Probability: probability()})
	require.NoError(t, err)
	return b
}

func message(t *testing.T, kind core.RequestKind) core.InterceptedMessage {
	return core.InterceptedMessage{Kind: kind, Payload: payload(t, kind, snorlax())}
}

func newTestRouter(sink Sink) *Router {
	return NewRouter(NewAssembler(pokemon.NewFactory(nil), pokemon.NewProbabilityFactory()), sink)
}

// switchGate is a Gate backed by a mutable flag.
type switchGate struct {
	mu sync.Mutex
	on bool
}

func (g *switchGate) Set(on bool) {
	g.mu.Lock()
	g.on = on
	g.mu.Unlock()
}

func (g *switchGate) Open() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.on
}
