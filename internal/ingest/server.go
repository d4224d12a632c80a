package ingest

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"

	"golang.org/x/net/netutil"

	"firestige.xyz/encounter/internal/core"
	"firestige.xyz/encounter/internal/log"
	"firestige.xyz/encounter/internal/metrics"
)

const (
	initialBufferSize = 64 * 1024
	maxFrameSize      = 4 * 1024 * 1024
)

// Frame results.
const (
	resultAccepted = "accepted"
	resultInvalid  = "invalid"
	resultRejected = "rejected"
)

// Server accepts newline-delimited JSON frames over a Unix Domain Socket.
type Server struct {
	socketPath string
	maxConns   int
	publisher  Publisher
	listener   net.Listener

	mu      sync.Mutex
	conns   map[net.Conn]struct{}
	wg      sync.WaitGroup
	stopped bool
}

// NewServer creates a new ingest server. maxConns <= 0 means no connection limit.
func NewServer(socketPath string, maxConns int, publisher Publisher) *Server {
	return &Server{
		socketPath: socketPath,
		maxConns:   maxConns,
		publisher:  publisher,
		conns:      make(map[net.Conn]struct{}),
	}
}

// Listen binds the socket and accepts connections in the background.
func (s *Server) Listen() error {
	// Remove existing socket file if it exists
	if err := os.RemoveAll(s.socketPath); err != nil {
		return fmt.Errorf("failed to remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to listen on socket %s: %w", s.socketPath, err)
	}

	// Set socket permissions (0600 - owner only)
	if err := os.Chmod(s.socketPath, 0600); err != nil {
		listener.Close()
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	if s.maxConns > 0 {
		listener = netutil.LimitListener(listener, s.maxConns)
	}
	s.listener = listener

	log.GetLogger().WithField("socket", s.socketPath).Info("ingest server started")

	go s.acceptLoop()
	return nil
}

// Start listens and blocks until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	<-ctx.Done()
	log.GetLogger().WithField("reason", ctx.Err()).Info("ingest server stopping")

	return s.Stop()
}

// acceptLoop accepts incoming connections.
func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.mu.Lock()
			stopped := s.stopped
			s.mu.Unlock()

			if stopped || errors.Is(err, net.ErrClosed) {
				return
			}

			log.GetLogger().WithError(err).Error("failed to accept connection")
			continue
		}

		// Track connection
		s.mu.Lock()
		if s.stopped {
			s.mu.Unlock()
			conn.Close()
			return
		}
		s.conns[conn] = struct{}{}
		s.wg.Add(1)
		s.mu.Unlock()

		go s.handleConnection(conn)
	}
}

// handleConnection reads frames until the peer closes.
func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	logger := log.GetLogger()
	logger.Debug("ingest connection established")

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, initialBufferSize), maxFrameSize)
	encoder := json.NewEncoder(conn)

	for scanner.Scan() {
		ack := handleFrame(s.publisher, scanner.Bytes())
		if err := encoder.Encode(ack); err != nil {
			logger.WithError(err).Error("failed to send ack")
			return
		}
	}

	if err := scanner.Err(); err != nil {
		logger.WithError(err).Error("ingest connection error")
	}

	logger.Debug("ingest connection closed")
}

// handleFrame parses one frame and publishes it.
func handleFrame(p Publisher, line []byte) Ack {
	var f Frame
	if err := json.Unmarshal(line, &f); err != nil {
		metrics.IngestFramesTotal.WithLabelValues("unknown", resultInvalid).Inc()
		return Ack{Error: fmt.Sprintf("parse error: %v", err)}
	}

	if err := Dispatch(p, f); err != nil {
		result := resultInvalid
		if errors.Is(err, core.ErrQueueFull) || errors.Is(err, core.ErrBusClosed) {
			result = resultRejected
		}
		metrics.IngestFramesTotal.WithLabelValues(f.Type, result).Inc()
		log.GetLogger().WithField("type", f.Type).WithError(err).Warn("ingest frame refused")
		return Ack{Error: err.Error()}
	}

	metrics.IngestFramesTotal.WithLabelValues(f.Type, resultAccepted).Inc()
	return Ack{OK: true}
}

// Stop stops the ingest server.
func (s *Server) Stop() error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	s.mu.Unlock()

	// Close listener
	if s.listener != nil {
		s.listener.Close()
	}

	// Close all active connections
	s.mu.Lock()
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	// Wait for all handlers to finish
	s.wg.Wait()

	os.RemoveAll(s.socketPath)

	log.GetLogger().Info("ingest server stopped")
	return nil
}
