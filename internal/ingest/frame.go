// Package ingest receives intercepted messages and capture outcomes from the interception
// layer over a unix socket and publishes them onto the encounter event bus.
package ingest

import (
	"fmt"

	"firestige.xyz/encounter/internal/core"
)

// Frame types.
const (
	FrameMessage = "message"
	FrameOutcome = "outcome"
)

// Frame is one newline-delimited JSON request. Payload is base64 on the wire.
type Frame struct {
	Type        string `json:"type"`
	RequestKind string `json:"request_kind,omitempty"`
	Payload     []byte `json:"payload,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Ack answers every frame.
type Ack struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// MessageFrame builds a frame for an intercepted message.
func MessageFrame(msg core.InterceptedMessage) Frame {
	return Frame{Type: FrameMessage, RequestKind: msg.Kind.String(), Payload: msg.Payload}
}

// OutcomeFrame builds a frame for a capture outcome.
func OutcomeFrame(ev core.CaptureOutcomeEvent) Frame {
	return Frame{Type: FrameOutcome, Status: ev.Status.String()}
}

// Publisher accepts decoded frames. eventbus.EncounterBus implements it.
type Publisher interface {
	PublishMessage(msg core.InterceptedMessage) error
	PublishOutcome(ev core.CaptureOutcomeEvent) error
}

// Dispatch validates f and hands it to p.
func Dispatch(p Publisher, f Frame) error {
	switch f.Type {
	case FrameMessage:
		kind, err := core.ParseRequestKind(f.RequestKind)
		if err != nil {
			return err
		}
		return p.PublishMessage(core.InterceptedMessage{Kind: kind, Payload: f.Payload})
	case FrameOutcome:
		status, err := core.ParseCatchStatus(f.Status)
		if err != nil {
			return err
		}
		return p.PublishOutcome(core.CaptureOutcomeEvent{Status: status})
	default:
		return fmt.Errorf("unknown frame type %q", f.Type)
	}
}
