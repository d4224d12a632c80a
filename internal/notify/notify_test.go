package notify

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/encounter/internal/config"
	"firestige.xyz/encounter/internal/core"
)

func sampleNotification() core.Notification {
	return core.Notification{
		Kind:            core.RequestKindDiskEncounter,
		Number:          143,
		Name:            "Snorlax",
		Gender:          "♀",
		IVPercent:       66.6666,
		IVAttack:        15,
		IVDefense:       10,
		IVStamina:       5,
		CP:              1820,
		Level:           26.5,
		HP:              201,
		Weight:          512.5,
		Height:          2.31,
		MoveFast:        "Tackle",
		MoveCharge:      "Sludge Bomb",
		FleeRatePercent: 9,
		Pokeball:        0.25,
		Greatball:       0.375,
		Ultraball:       0.5,
		Type1:           "Normal",
		Class:           "Normal",
	}
}

func TestFormat(t *testing.T) {
	symbols := map[string]Symbol{
		"name": {Value: "Snorlax", Color: "yellow"},
		"iv":   {Value: "100.0"},
	}

	tests := []struct {
		name     string
		template string
		want     string
		spans    []Span
	}{
		{"plain", "no symbols", "no symbols", nil},
		{"replaced", "{name} IV {iv}%", "Snorlax IV 100.0%", []Span{{0, 7, "yellow"}, {11, 16, ""}}},
		{"unknown key", "{name} {nope}", "Snorlax {nope}", []Span{{0, 7, "yellow"}}},
		{"unterminated", "{name} {iv", "Snorlax {iv", []Span{{0, 7, "yellow"}}},
		{"repeated", "{iv}{iv}", "100.0100.0", []Span{{0, 5, ""}, {5, 10, ""}}},
		{"empty key", "{}x", "{}x", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, spans := Format(tt.template, symbols)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.spans, spans)
		})
	}
}

func TestSymbols(t *testing.T) {
	s := Symbols(sampleNotification())

	assert.Equal(t, "[Disk]", s["label"].Value)
	assert.Equal(t, "66.7", s["iv"].Value)
	assert.Equal(t, "26.5", s["level"].Value)
	assert.Equal(t, "9.0", s["flee"].Value)
	assert.Equal(t, "25.0", s["pokeball"].Value)
	assert.Equal(t, "37.5", s["greatball"].Value)
	assert.Equal(t, "50.0", s["ultraball"].Value)
	assert.Equal(t, "Normal", s["type"].Value)
	assert.Equal(t, " ♀", s["gender"].Value)
}

func TestConsoleShowAndCancel(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, ConsoleOptions{})

	c.Cancel()
	assert.Empty(t, out.String(), "cancel with nothing visible is a no-op")

	c.Show(sampleNotification())
	id := c.Visible()
	require.NotEqual(t, uuid.Nil, id)

	text := out.String()
	assert.Contains(t, text, "[Disk] #143 Snorlax ♀ IV 66.7% (15/10/5) CP 1820 LV 26.5")
	assert.Contains(t, text, "Tackle / Sludge Bomb")
	assert.Contains(t, text, id.String())
	assert.NotContains(t, text, "\x1b[")

	c.Cancel()
	assert.Equal(t, uuid.Nil, c.Visible())
	assert.Contains(t, out.String(), "dismissed ["+id.String()+"]")

	before := out.Len()
	c.Cancel()
	assert.Equal(t, before, out.Len())
}

func TestConsoleColors(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(&out, ConsoleOptions{Title: "{name}", Content: "{cp}", Color: true})

	c.Show(sampleNotification())
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "Snorlax")
}

type countingSink struct {
	mu      sync.Mutex
	shows   int
	cancels int
}

func (c *countingSink) Show(core.Notification) { c.mu.Lock(); c.shows++; c.mu.Unlock() }
func (c *countingSink) Cancel()                { c.mu.Lock(); c.cancels++; c.mu.Unlock() }

func TestThrottle(t *testing.T) {
	next := &countingSink{}
	th := NewThrottle(next, 0.001, 2)

	for i := 0; i < 5; i++ {
		th.Show(sampleNotification())
		th.Cancel()
	}

	assert.Equal(t, 2, next.shows)
	assert.Equal(t, 5, next.cancels)
}

func TestThrottleUnlimited(t *testing.T) {
	next := &countingSink{}
	th := NewThrottle(next, 0, 0)

	for i := 0; i < 100; i++ {
		th.Show(sampleNotification())
	}
	assert.Equal(t, 100, next.shows)
}

func TestSwitch(t *testing.T) {
	a, b := &countingSink{}, &countingSink{}
	s := NewSwitch(a)

	s.Show(sampleNotification())
	s.Set(b)
	s.Show(sampleNotification())
	s.Cancel()
	s.Set(nil)
	s.Show(sampleNotification())

	assert.Equal(t, 1, a.shows)
	assert.Equal(t, 1, b.shows)
	assert.Equal(t, 1, b.cancels)
}

func TestNew(t *testing.T) {
	var out bytes.Buffer

	sink, err := New(config.NotifyConfig{
		Sink:    "console",
		Options: map[string]interface{}{"title": "{name}!", "color": "false"},
	}, &out)
	require.NoError(t, err)
	require.IsType(t, &Console{}, sink)

	sink.Show(sampleNotification())
	assert.True(t, strings.HasPrefix(out.String(), "+ Snorlax! ["))

	sink, err = New(config.NotifyConfig{Sink: "log", MaxPerSecond: 2}, &out)
	require.NoError(t, err)
	assert.IsType(t, &Throttle{}, sink)
}

func TestNewRejectsBadOptions(t *testing.T) {
	_, err := New(config.NotifyConfig{Sink: "console", Options: map[string]interface{}{"colour": true}}, &bytes.Buffer{})
	assert.ErrorIs(t, err, core.ErrConfigInvalid)

	_, err = New(config.NotifyConfig{Sink: "toast"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, core.ErrConfigInvalid)
}
