package encounter

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/encounter/internal/core"
	"firestige.xyz/encounter/internal/metrics"
	"firestige.xyz/encounter/internal/protocol"
)

func TestRouterShowsEveryEncounterKind(t *testing.T) {
	for _, kind := range []core.RequestKind{
		core.RequestKindEncounter,
		core.RequestKindDiskEncounter,
		core.RequestKindIncenseEncounter,
	} {
		t.Run(kind.String(), func(t *testing.T) {
			src := newMessageStream()
			sink := &recordingSink{}

			sub, err := newTestRouter(sink).Attach(src, nil)
			require.NoError(t, err)
			defer sub.Unsubscribe()

			src.Emit(message(t, kind))

			shown := sink.Shown()
			require.Len(t, shown, 1)
			assert.Equal(t, kind, shown[0].Kind)
			assert.InDelta(t, 30.0/45.0*100, shown[0].IVPercent, 1e-9)
			assert.InDelta(t, 0.09*100, shown[0].FleeRatePercent, 1e-9)
		})
	}
}

func TestRouterIgnoresOtherKinds(t *testing.T) {
	src := newMessageStream()
	sink := &recordingSink{}

	_, err := newTestRouter(sink).Attach(src, nil)
	require.NoError(t, err)

	valid := payload(t, core.RequestKindEncounter, snorlax())
	src.Emit(core.InterceptedMessage{Kind: core.RequestKindCatchPokemon, Payload: valid})
	src.Emit(core.InterceptedMessage{Kind: core.RequestKind(4), Payload: valid})

	assert.Empty(t, sink.Shown())
}

func TestRouterSurvivesDecodeFailure(t *testing.T) {
	src := newMessageStream()
	sink := &recordingSink{}

	_, err := newTestRouter(sink).Attach(src, nil)
	require.NoError(t, err)

	valid := payload(t, core.RequestKindEncounter, snorlax())
	src.Emit(core.InterceptedMessage{Kind: core.RequestKindEncounter, Payload: []byte{0xff, 0xff, 0xff, 0xff}})
	src.Emit(core.InterceptedMessage{Kind: core.RequestKindEncounter, Payload: valid[:len(valid)-3]})
	assert.Empty(t, sink.Shown())

	src.Emit(core.InterceptedMessage{Kind: core.RequestKindEncounter, Payload: valid})
	assert.Len(t, sink.Shown(), 1)
	assert.Equal(t, 1, src.Live())
}

func TestRouterShowsWithoutProbability(t *testing.T) {
	src := newMessageStream()
	sink := &recordingSink{}

	_, err := newTestRouter(sink).Attach(src, nil)
	require.NoError(t, err)

	b, err := protocol.Encode(&protocol.EncounterRecord{Kind: core.RequestKindDiskEncounter, Pokemon: snorlax()})
	require.NoError(t, err)
	src.Emit(core.InterceptedMessage{Kind: core.RequestKindDiskEncounter, Payload: b})

	shown := sink.Shown()
	require.Len(t, shown, 1)
	assert.Equal(t, core.RequestKindDiskEncounter, shown[0].Kind)
	assert.Equal(t, "Snorlax", shown[0].Name)
	assert.Zero(t, shown[0].Pokeball)
	assert.Zero(t, shown[0].Greatball)
	assert.Zero(t, shown[0].Ultraball)
}

func TestRouterDropsUnresolvedCreature(t *testing.T) {
	src := newMessageStream()
	sink := &recordingSink{}

	_, err := newTestRouter(sink).Attach(src, nil)
	require.NoError(t, err)

	unknown := snorlax()
	unknown.PokemonID = 9999
	src.Emit(core.InterceptedMessage{Kind: core.RequestKindIncenseEncounter, Payload: payload(t, core.RequestKindIncenseEncounter, unknown)})

	invalid := snorlax()
	invalid.IndividualAttack = 16
	src.Emit(core.InterceptedMessage{Kind: core.RequestKindIncenseEncounter, Payload: payload(t, core.RequestKindIncenseEncounter, invalid)})

	assert.Empty(t, sink.Shown())
}

func handleSamples(t *testing.T, kind core.RequestKind) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, metrics.MessageHandleSeconds.WithLabelValues(kind.String()).(prometheus.Metric).Write(&m))
	return m.GetHistogram().GetSampleCount()
}

func TestRouterTimesEveryDecodedAttempt(t *testing.T) {
	src := newMessageStream()
	sink := &recordingSink{}

	_, err := newTestRouter(sink).Attach(src, nil)
	require.NoError(t, err)

	kind := core.RequestKindIncenseEncounter
	before := handleSamples(t, kind)

	unknown := snorlax()
	unknown.PokemonID = 9999
	src.Emit(core.InterceptedMessage{Kind: kind, Payload: []byte{0xff, 0xff}})
	src.Emit(core.InterceptedMessage{Kind: kind, Payload: payload(t, kind, unknown)})
	src.Emit(core.InterceptedMessage{Kind: kind, Payload: payload(t, kind, snorlax())})

	assert.Len(t, sink.Shown(), 1)
	assert.Equal(t, before+3, handleSamples(t, kind))
}

func TestRouterGateIsLive(t *testing.T) {
	src := newMessageStream()
	sink := &recordingSink{}
	gate := &switchGate{}

	_, err := newTestRouter(sink).Attach(src, gate.Open)
	require.NoError(t, err)

	src.Emit(message(t, core.RequestKindEncounter))
	src.Emit(message(t, core.RequestKindDiskEncounter))
	assert.Empty(t, sink.Shown())

	gate.Set(true)
	src.Emit(message(t, core.RequestKindEncounter))
	assert.Len(t, sink.Shown(), 1)
	assert.Equal(t, 1, src.Attaches(), "flipping the gate must not resubscribe")

	gate.Set(false)
	src.Emit(message(t, core.RequestKindEncounter))
	assert.Len(t, sink.Shown(), 1)
}

func TestRouterRecoversFromPanic(t *testing.T) {
	src := newMessageStream()
	sink := &recordingSink{}

	calls := 0
	router := newTestRouter(sink).WithDecoder(func(kind core.RequestKind, b []byte) (*protocol.EncounterRecord, error) {
		calls++
		if calls == 1 {
			panic("decoder bug")
		}
		return protocol.Decode(kind, b)
	})

	_, err := router.Attach(src, nil)
	require.NoError(t, err)

	assert.NotPanics(t, func() { src.Emit(message(t, core.RequestKindEncounter)) })
	src.Emit(message(t, core.RequestKindEncounter))

	assert.Len(t, sink.Shown(), 1)
}

func TestRouterAttachError(t *testing.T) {
	src := newMessageStream()
	src.err = core.ErrBusClosed

	sub, err := newTestRouter(&recordingSink{}).Attach(src, nil)
	assert.True(t, errors.Is(err, core.ErrBusClosed))
	assert.Nil(t, sub)
}

func TestRouterPreservesOrder(t *testing.T) {
	src := newMessageStream()
	sink := &recordingSink{}

	_, err := newTestRouter(sink).Attach(src, nil)
	require.NoError(t, err)

	kinds := []core.RequestKind{
		core.RequestKindIncenseEncounter,
		core.RequestKindEncounter,
		core.RequestKindDiskEncounter,
		core.RequestKindEncounter,
	}
	for _, k := range kinds {
		src.Emit(message(t, k))
	}

	shown := sink.Shown()
	require.Len(t, shown, len(kinds))
	for i, k := range kinds {
		assert.Equal(t, k, shown[i].Kind)
	}
}
