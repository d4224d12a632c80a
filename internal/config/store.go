package config

import (
	"sync/atomic"
)

// Store holds the live configuration. Readers always observe the latest
// value passed to Set.
type Store struct {
	current atomic.Pointer[GlobalConfig]
}

// NewStore creates a store seeded with cfg, or with Default() when cfg is nil.
func NewStore(cfg *GlobalConfig) *Store {
	if cfg == nil {
		cfg = Default()
	}
	s := &Store{}
	s.current.Store(cfg)
	return s
}

// Load returns the current configuration.
func (s *Store) Load() *GlobalConfig {
	return s.current.Load()
}

// Set replaces the current configuration.
func (s *Store) Set(cfg *GlobalConfig) {
	if cfg == nil {
		return
	}
	s.current.Store(cfg)
}

// NotificationEnabled is the gate for showing encounter notifications.
func (s *Store) NotificationEnabled() bool {
	return s.current.Load().Feature.NotificationEnabled
}

// DismissEnabled is the gate for auto-dismiss on flee or capture.
func (s *Store) DismissEnabled() bool {
	return s.current.Load().Feature.DismissEnabled
}
