// Package daemon implements the daemon lifecycle manager.
package daemon

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"reflect"
	"strconv"
	"sync"
	"syscall"
	"time"

	"firestige.xyz/encounter/internal/config"
	"firestige.xyz/encounter/internal/encounter"
	"firestige.xyz/encounter/internal/eventbus"
	"firestige.xyz/encounter/internal/ingest"
	"firestige.xyz/encounter/internal/log"
	"firestige.xyz/encounter/internal/metrics"
	"firestige.xyz/encounter/internal/notify"
	"firestige.xyz/encounter/internal/pokemon"
)

// Daemon manages the encounter daemon process lifecycle.
type Daemon struct {
	// Configuration
	store      *config.Store
	configPath string
	pidFile    string
	out        io.Writer // console sink output

	// Core components
	creatures     *pokemon.Factory
	bus           *eventbus.EncounterBus
	sink          *notify.Switch
	feature       *encounter.Feature
	ingestServer  *ingest.Server        // nil if socket ingest disabled
	kafkaConsumer *ingest.KafkaConsumer // nil if kafka ingest disabled
	kafkaCancel   context.CancelFunc
	kafkaDone     chan struct{}
	metricsServer *metrics.Server // nil if metrics disabled

	// Lifecycle management
	ctx          context.Context
	cancel       context.CancelFunc
	shutdownChan chan struct{}
	sigChan      chan os.Signal

	mu      sync.Mutex // serializes reloads with Stop
	stopped bool
}

// New creates a new Daemon instance from a config file.
func New(configPath, pidFile string) (*Daemon, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(cfg, configPath, pidFile, os.Stdout), nil
}

// NewWithConfig creates a Daemon from an already loaded configuration. An empty configPath
// disables reloading.
func NewWithConfig(cfg *config.GlobalConfig, configPath, pidFile string, out io.Writer) *Daemon {
	d := &Daemon{
		store:        config.NewStore(cfg),
		configPath:   configPath,
		pidFile:      pidFile,
		out:          out,
		shutdownChan: make(chan struct{}, 1),
	}
	d.ctx, d.cancel = context.WithCancel(context.Background())
	return d
}

// Start initializes and starts all daemon components.
func (d *Daemon) Start() error {
	cfg := d.store.Load()

	// 1. Initialize logging system
	if err := log.Init(cfg.Log); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	log.GetLogger().WithFields(map[string]interface{}{
		"config": d.configPath,
		"socket": cfg.Ingest.Socket,
	}).Info("starting encounter daemon")

	// 2. Write PID file
	if err := d.writePIDFile(); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}

	// 3. Start metrics server
	if err := d.startMetrics(cfg.Metrics); err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}

	// 4. Species catalog and notification sink
	catalog, err := pokemon.LoadCatalog(cfg.Pokemon.SpeciesFile)
	if err != nil {
		return fmt.Errorf("failed to load species catalog: %w", err)
	}
	d.creatures = pokemon.NewFactory(catalog)

	sink, err := notify.New(cfg.Notify, d.out)
	if err != nil {
		return fmt.Errorf("failed to create notification sink: %w", err)
	}
	d.sink = notify.NewSwitch(sink)

	// 5. Event bus and the feature on top of it
	d.bus = eventbus.NewEncounterBus(cfg.EventBus.Partitions, cfg.EventBus.QueueSize)
	assembler := encounter.NewAssembler(d.creatures, pokemon.NewProbabilityFactory())
	d.feature = encounter.NewFeature(encounter.FeatureConfig{
		Router:              encounter.NewRouter(assembler, d.sink),
		Dismiss:             encounter.NewDismissCoordinator(d.sink),
		Messages:            d.bus,
		Outcomes:            d.bus,
		NotificationEnabled: d.store.NotificationEnabled,
		DismissEnabled:      d.store.DismissEnabled,
	})
	d.feature.Start()

	// 6. Start ingest server for the interception layer
	if cfg.Ingest.Socket != "" {
		d.ingestServer = ingest.NewServer(cfg.Ingest.Socket, cfg.Ingest.MaxConnections, d.bus)
		if err := d.ingestServer.Listen(); err != nil {
			return fmt.Errorf("failed to start ingest server: %w", err)
		}
	} else {
		log.GetLogger().Info("ingest server disabled")
	}
	if cfg.Ingest.Kafka.Enabled {
		if err := d.startKafka(cfg.Ingest.Kafka); err != nil {
			return fmt.Errorf("failed to start kafka ingest: %w", err)
		}
	}

	// 7. Watch the config file for live edits
	if d.configPath != "" {
		if err := config.Watch(d.configPath, d.apply, func(err error) {
			log.GetLogger().WithError(err).Warn("ignoring invalid config change")
		}); err != nil {
			log.GetLogger().WithError(err).Warn("config watch disabled")
		}
	}

	log.GetLogger().Info("daemon started successfully")
	return nil
}

// Stop performs graceful shutdown of all daemon components.
func (d *Daemon) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	d.mu.Unlock()

	logger := log.GetLogger()
	logger.Info("initiating graceful shutdown")

	// 1. Stop ingest server (no new frames)
	if d.ingestServer != nil {
		logger.Info("stopping ingest server")
		d.ingestServer.Stop()
	}
	if d.kafkaConsumer != nil {
		logger.Info("stopping kafka ingest consumer")
		d.kafkaCancel()
		<-d.kafkaDone
		if err := d.kafkaConsumer.Stop(); err != nil {
			logger.WithError(err).Error("error stopping kafka ingest consumer")
		}
	}

	// 2. Release the feature subscriptions, then drain the bus
	if d.feature != nil {
		d.feature.Stop()
	}
	if d.bus != nil {
		d.bus.Close()
	}

	// 3. Stop metrics server
	if d.metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := d.metricsServer.Stop(shutdownCtx); err != nil {
			logger.WithError(err).Error("error stopping metrics server")
		}
	}

	// 4. Cancel context to signal all goroutines
	d.cancel()

	// 5. Unregister signal handler to prevent goroutine leak
	if d.sigChan != nil {
		signal.Stop(d.sigChan)
	}

	// 6. Remove PID file
	if err := d.removePIDFile(); err != nil {
		logger.WithError(err).Error("error removing PID file")
	}

	logger.Info("daemon stopped gracefully")
}

// Run runs the daemon main loop, blocking until shutdown is triggered.
// Shutdown can be triggered by:
//  1. OS signals (SIGTERM, SIGINT)
//  2. TriggerShutdown
//  3. SIGHUP triggers config reload
func (d *Daemon) Run() error {
	d.sigChan = make(chan os.Signal, 1)
	signal.Notify(d.sigChan, syscall.SIGTERM, syscall.SIGINT, syscall.SIGHUP)

	log.GetLogger().Info("daemon running, waiting for signals")

	for {
		select {
		case sig := <-d.sigChan:
			switch sig {
			case syscall.SIGTERM, syscall.SIGINT:
				log.GetLogger().WithField("signal", sig.String()).Info("received shutdown signal")
				d.Stop()
				return nil

			case syscall.SIGHUP:
				log.GetLogger().Info("received reload signal")
				if err := d.Reload(); err != nil {
					log.GetLogger().WithError(err).Error("failed to reload config")
				}
			}

		case <-d.shutdownChan:
			log.GetLogger().Info("shutdown triggered")
			d.Stop()
			return nil

		case <-d.ctx.Done():
			log.GetLogger().WithError(d.ctx.Err()).Info("context cancelled")
			d.Stop()
			return d.ctx.Err()
		}
	}
}

// Reload reloads the configuration file and restarts the feature with it.
// Hot-reloadable: log, feature gates, notify, species catalog.
// Cold (requires restart): ingest socket, event bus sizes, metrics listen address.
func (d *Daemon) Reload() error {
	if d.configPath == "" {
		return fmt.Errorf("no config file to reload")
	}

	log.GetLogger().WithField("path", d.configPath).Info("reloading configuration")

	newConfig, err := config.Load(d.configPath)
	if err != nil {
		return fmt.Errorf("failed to load new config: %w", err)
	}

	d.apply(newConfig)
	return nil
}

// apply makes newConfig current and rebuilds the feature's subscriptions.
func (d *Daemon) apply(newConfig *config.GlobalConfig) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	oldConfig := d.store.Load()
	d.store.Set(newConfig)

	// 1. Re-initialize logging with new config
	if err := log.Init(newConfig.Log); err != nil {
		log.GetLogger().WithError(err).Error("failed to reinitialize logging")
	}
	logger := log.GetLogger()

	// 2. Species catalog
	if catalog, err := pokemon.LoadCatalog(newConfig.Pokemon.SpeciesFile); err != nil {
		logger.WithError(err).Error("failed to reload species catalog, keeping the previous one")
	} else {
		d.creatures.SetCatalog(catalog)
	}

	// 3. Notification sink
	if sink, err := notify.New(newConfig.Notify, d.out); err != nil {
		logger.WithError(err).Error("failed to rebuild notification sink, keeping the previous one")
	} else {
		d.sink.Set(sink)
	}

	// 4. Warn about cold-reload items that changed
	requiresRestart := []string{}
	if !reflect.DeepEqual(newConfig.Ingest, oldConfig.Ingest) {
		requiresRestart = append(requiresRestart, "ingest")
	}
	if newConfig.EventBus != oldConfig.EventBus {
		requiresRestart = append(requiresRestart, "eventbus")
	}
	if newConfig.Metrics != oldConfig.Metrics {
		requiresRestart = append(requiresRestart, "metrics")
	}

	// 5. Rebuild subscriptions
	d.feature.Start()

	logger.WithFields(map[string]interface{}{
		"notification_enabled": newConfig.Feature.NotificationEnabled,
		"dismiss_enabled":      newConfig.Feature.DismissEnabled,
		"requires_restart":     requiresRestart,
		"feature":              d.feature.State().String(),
	}).Info("configuration reloaded")
}

// TriggerShutdown triggers graceful shutdown from an external caller.
func (d *Daemon) TriggerShutdown() {
	select {
	case d.shutdownChan <- struct{}{}:
	default:
	}
}

// Feature exposes the encounter feature.
func (d *Daemon) Feature() *encounter.Feature {
	return d.feature
}

// Config returns the live configuration.
func (d *Daemon) Config() *config.GlobalConfig {
	return d.store.Load()
}

// startMetrics starts the metrics HTTP server if enabled.
func (d *Daemon) startMetrics(cfg config.MetricsConfig) error {
	if !cfg.Enabled {
		log.GetLogger().Info("metrics server disabled")
		return nil
	}

	d.metricsServer = metrics.NewServer(cfg.Listen, cfg.Path)
	return d.metricsServer.Start(d.ctx)
}

// startKafka consumes frames from Kafka until Stop.
func (d *Daemon) startKafka(cfg config.KafkaIngestConfig) error {
	consumer, err := ingest.NewKafkaConsumer(cfg, d.bus)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(d.ctx)
	d.kafkaConsumer = consumer
	d.kafkaCancel = cancel
	d.kafkaDone = make(chan struct{})

	go func() {
		defer close(d.kafkaDone)
		consumer.Start(ctx)
	}()
	return nil
}

// writePIDFile writes the current process ID to the PID file.
func (d *Daemon) writePIDFile() error {
	if d.pidFile == "" {
		return nil
	}

	pid := os.Getpid()
	data := []byte(strconv.Itoa(pid) + "\n")

	if err := os.WriteFile(d.pidFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write PID file %s: %w", d.pidFile, err)
	}

	log.GetLogger().WithFields(map[string]interface{}{"path": d.pidFile, "pid": pid}).Debug("PID file written")
	return nil
}

// removePIDFile removes the PID file.
func (d *Daemon) removePIDFile() error {
	if d.pidFile == "" {
		return nil
	}

	if err := os.Remove(d.pidFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file %s: %w", d.pidFile, err)
	}
	return nil
}
