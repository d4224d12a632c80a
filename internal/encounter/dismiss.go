package encounter

import (
	"firestige.xyz/encounter/internal/core"
	"firestige.xyz/encounter/internal/log"
	"firestige.xyz/encounter/internal/metrics"
)

// DismissCoordinator cancels the visible notification once a capture attempt ends in
// success or flee. It does not correlate outcomes with shown encounters.
type DismissCoordinator struct {
	sink Sink
}

// NewDismissCoordinator creates a DismissCoordinator.
func NewDismissCoordinator(sink Sink) *DismissCoordinator {
	return &DismissCoordinator{sink: sink}
}

// Attach subscribes to src. dismiss is consulted for every terminal outcome.
func (d *DismissCoordinator) Attach(src OutcomeSource, dismiss Gate) (core.Subscription, error) {
	return src.SubscribeOutcomes(func(ev core.CaptureOutcomeEvent) {
		d.handle(ev, dismiss)
	})
}

func (d *DismissCoordinator) handle(ev core.CaptureOutcomeEvent, dismiss Gate) {
	status := ev.Status.String()

	if !ev.Status.IsTerminal() {
		metrics.OutcomesTotal.WithLabelValues(status, metrics.ResultIgnored).Inc()
		return
	}
	if !dismiss.open() {
		metrics.OutcomesTotal.WithLabelValues(status, metrics.ResultGated).Inc()
		return
	}

	defer func() {
		if v := recover(); v != nil {
			metrics.OutcomesTotal.WithLabelValues(status, metrics.ResultPanic).Inc()
			log.GetLogger().WithField("status", status).Errorf("dismiss handler panicked: %v", v)
		}
	}()

	d.sink.Cancel()
	metrics.OutcomesTotal.WithLabelValues(status, metrics.ResultDismissed).Inc()
}
