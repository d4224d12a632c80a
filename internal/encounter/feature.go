package encounter

import (
	"sync"

	"firestige.xyz/encounter/internal/core"
	"firestige.xyz/encounter/internal/log"
	"firestige.xyz/encounter/internal/metrics"
)

// State is the lifecycle state of a Feature.
type State int

const (
	StateStopped State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	default:
		return "STOPPED"
	}
}

// FeatureConfig wires a Feature.
type FeatureConfig struct {
	Router   *Router
	Dismiss  *DismissCoordinator
	Messages MessageSource
	Outcomes OutcomeSource

	NotificationEnabled Gate
	DismissEnabled      Gate
}

// Feature owns the router and dismiss subscriptions. Start and Stop may be called from any
// goroutine, any number of times.
type Feature struct {
	cfg FeatureConfig

	mu         sync.Mutex
	routerSub  core.Subscription
	dismissSub core.Subscription
}

// NewFeature creates a stopped Feature.
func NewFeature(cfg FeatureConfig) *Feature {
	return &Feature{cfg: cfg}
}

// Start releases any live subscriptions and attaches fresh ones. If a source refuses the
// subscription, whatever was attached is released and the feature stays stopped.
func (f *Feature) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopLocked()

	if err := f.attachLocked(); err != nil {
		f.stopLocked()
		log.GetLogger().WithError(err).Error("encounter feature failed to start")
		return
	}

	metrics.FeatureRunning.Set(1)
	log.GetLogger().Debug("encounter feature started")
}

// Stop releases both subscriptions. When it returns no handler is running or will run.
func (f *Feature) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopLocked()
}

// State reports whether the feature currently holds its subscriptions.
func (f *Feature) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.routerSub != nil && f.dismissSub != nil {
		return StateRunning
	}
	return StateStopped
}

func (f *Feature) attachLocked() error {
	if f.routerSub != nil || f.dismissSub != nil {
		return core.ErrSubscriptionConflict
	}

	sub, err := f.cfg.Router.Attach(f.cfg.Messages, f.cfg.NotificationEnabled)
	if err != nil {
		return err
	}
	f.routerSub = sub

	sub, err = f.cfg.Dismiss.Attach(f.cfg.Outcomes, f.cfg.DismissEnabled)
	if err != nil {
		return err
	}
	f.dismissSub = sub

	return nil
}

func (f *Feature) stopLocked() {
	if f.routerSub != nil {
		f.routerSub.Unsubscribe()
		f.routerSub = nil
	}
	if f.dismissSub != nil {
		f.dismissSub.Unsubscribe()
		f.dismissSub = nil
	}
	metrics.FeatureRunning.Set(0)
}
