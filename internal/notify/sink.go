// Package notify presents encounter notifications.
package notify

import (
	"sync/atomic"

	"golang.org/x/time/rate"

	"firestige.xyz/encounter/internal/core"
	"firestige.xyz/encounter/internal/metrics"
)

// Sink shows and cancels notifications. Implementations are safe for concurrent use.
type Sink interface {
	Show(n core.Notification)
	Cancel()
}

// Throttle drops shows above a rate without blocking. Cancels always pass.
type Throttle struct {
	next    Sink
	limiter *rate.Limiter
}

// NewThrottle limits next to perSecond shows with the given burst. perSecond <= 0 means no limit.
func NewThrottle(next Sink, perSecond float64, burst int) *Throttle {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &Throttle{next: next, limiter: rate.NewLimiter(limit, burst)}
}

func (t *Throttle) Show(n core.Notification) {
	if !t.limiter.Allow() {
		metrics.NotificationsThrottledTotal.Inc()
		return
	}
	t.next.Show(n)
}

func (t *Throttle) Cancel() {
	t.next.Cancel()
}

// Switch forwards to a sink that can be replaced while in use.
type Switch struct {
	current atomic.Pointer[sinkHolder]
}

type sinkHolder struct {
	sink Sink
}

// NewSwitch creates a Switch forwarding to initial.
func NewSwitch(initial Sink) *Switch {
	s := &Switch{}
	s.Set(initial)
	return s
}

// Set replaces the target sink. A nil sink discards notifications.
func (s *Switch) Set(sink Sink) {
	s.current.Store(&sinkHolder{sink: sink})
}

func (s *Switch) Show(n core.Notification) {
	if h := s.current.Load(); h.sink != nil {
		h.sink.Show(n)
	}
}

func (s *Switch) Cancel() {
	if h := s.current.Load(); h.sink != nil {
		h.sink.Cancel()
	}
}
