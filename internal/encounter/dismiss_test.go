package encounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/encounter/internal/core"
)

func TestDismissCancelsOnTerminalOutcome(t *testing.T) {
	for _, status := range []core.CatchStatus{core.CatchSuccess, core.CatchFlee} {
		t.Run(status.String(), func(t *testing.T) {
			src := newOutcomeStream()
			sink := &mockSink{}
			sink.On("Cancel").Return().Once()

			sub, err := NewDismissCoordinator(sink).Attach(src, nil)
			require.NoError(t, err)
			defer sub.Unsubscribe()

			src.Emit(core.CaptureOutcomeEvent{Status: status})

			sink.AssertExpectations(t)
			sink.AssertNumberOfCalls(t, "Cancel", 1)
		})
	}
}

func TestDismissIgnoresNonTerminalOutcome(t *testing.T) {
	src := newOutcomeStream()
	sink := &mockSink{}

	_, err := NewDismissCoordinator(sink).Attach(src, nil)
	require.NoError(t, err)

	for _, status := range []core.CatchStatus{core.CatchError, core.CatchEscape, core.CatchMissed, core.CatchStatus(42)} {
		src.Emit(core.CaptureOutcomeEvent{Status: status})
	}

	sink.AssertNotCalled(t, "Cancel")
}

func TestDismissGateIsLive(t *testing.T) {
	src := newOutcomeStream()
	sink := &recordingSink{}
	gate := &switchGate{}

	_, err := NewDismissCoordinator(sink).Attach(src, gate.Open)
	require.NoError(t, err)

	src.Emit(core.CaptureOutcomeEvent{Status: core.CatchFlee})
	assert.Zero(t, sink.Cancels())

	gate.Set(true)
	src.Emit(core.CaptureOutcomeEvent{Status: core.CatchSuccess})
	assert.Equal(t, 1, sink.Cancels())
	assert.Equal(t, 1, src.Attaches())
}

func TestDismissWithoutShownNotification(t *testing.T) {
	src := newOutcomeStream()
	sink := &recordingSink{}

	_, err := NewDismissCoordinator(sink).Attach(src, nil)
	require.NoError(t, err)

	src.Emit(core.CaptureOutcomeEvent{Status: core.CatchFlee})
	src.Emit(core.CaptureOutcomeEvent{Status: core.CatchFlee})

	assert.Equal(t, 2, sink.Cancels())
	assert.Empty(t, sink.Shown())
}
