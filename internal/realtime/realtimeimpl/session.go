package realtimeimpl

import (
	"context"
	"encoding/json"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/content-scheduler/internal/realtime"
	"github.com/orgball2608/content-scheduler/pkg/errors"
	"github.com/orgball2608/content-scheduler/pkg/logger"
)

const defaultDialTimeout = 10 * time.Second

type Options struct {
	Endpoint    string
	Policy      Policy
	Handler     realtime.Handler
	Dialer      Dialer
	Clock       clockwork.Clock
	Logger      logger.Logger
	DialTimeout time.Duration
}

// Session is the websocket implementation of realtime.Session.
//
// Every transition happens under mu. Each connection cycle gets a generation
// number; dial results, read errors and timers from an older generation are
// discarded, which is how Disconnect invalidates work already in flight.
type Session struct {
	endpoint    string
	policy      Policy
	handler     realtime.Handler
	dialer      Dialer
	clock       clockwork.Clock
	logger      logger.Logger
	dialTimeout time.Duration

	mu         sync.Mutex
	state      realtime.State
	attempts   int
	lastDelay  time.Duration
	gen        uint64
	conn       Conn
	timer      clockwork.Timer
	cancelDial context.CancelFunc

	writeMu sync.Mutex
}

var _ realtime.Session = (*Session)(nil)

func New(opts Options) *Session {
	s := &Session{
		endpoint:    opts.Endpoint,
		policy:      opts.Policy,
		handler:     opts.Handler,
		dialer:      opts.Dialer,
		clock:       opts.Clock,
		logger:      opts.Logger.WithComponent("RealtimeSession"),
		dialTimeout: opts.DialTimeout,
		state:       realtime.StateDisconnected,
	}
	if s.policy == nil {
		s.policy = FlatPolicy{Interval: 3 * time.Second, MaxAttempts: 5}
	}
	if s.dialer == nil {
		s.dialer = WebsocketDialer{}
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.dialTimeout <= 0 {
		s.dialTimeout = defaultDialTimeout
	}
	return s
}

func (s *Session) Connect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case realtime.StateOpen, realtime.StateConnecting:
		return
	case realtime.StateReconnecting:
		s.stopTimerLocked()
	}

	s.attempts = 0
	s.lastDelay = 0
	s.logger.Info("Connecting realtime channel", "endpoint", s.endpoint, "policy", s.policy.Name())
	s.connectLocked()
}

func (s *Session) Disconnect() {
	s.mu.Lock()
	s.gen++
	s.stopTimerLocked()
	if s.cancelDial != nil {
		s.cancelDial()
		s.cancelDial = nil
	}
	conn := s.conn
	s.conn = nil
	s.state = realtime.StateDisconnected
	s.mu.Unlock()

	if conn != nil {
		s.writeMu.Lock()
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		s.writeMu.Unlock()
		_ = conn.Close()
	}
	s.logger.Info("Realtime channel disconnected")
}

func (s *Session) Send(payload any) bool {
	s.mu.Lock()
	state, conn := s.state, s.conn
	s.mu.Unlock()

	if state != realtime.StateOpen || conn == nil {
		s.logger.Warn("Dropping outbound message, channel not open", "state", state)
		return false
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.Warn("Dropping outbound message, cannot encode", "error", err)
		return false
	}

	s.writeMu.Lock()
	err = conn.WriteMessage(websocket.TextMessage, data)
	s.writeMu.Unlock()
	if err != nil {
		s.logger.Warn("Failed to write outbound message", "error", err)
		return false
	}
	return true
}

func (s *Session) State() realtime.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

// LastDelay is the delay of the most recently scheduled reconnect.
func (s *Session) LastDelay() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDelay
}

func (s *Session) connectLocked() {
	s.state = realtime.StateConnecting
	s.gen++
	gen := s.gen

	ctx, cancel := context.WithTimeout(context.Background(), s.dialTimeout)
	s.cancelDial = cancel
	go s.dial(ctx, cancel, gen)
}

func (s *Session) dial(ctx context.Context, cancel context.CancelFunc, gen uint64) {
	defer cancel()
	conn, err := s.dialer.Dial(ctx, s.endpoint)

	s.mu.Lock()
	if gen != s.gen || s.state != realtime.StateConnecting {
		s.mu.Unlock()
		if conn != nil {
			_ = conn.Close()
		}
		return
	}
	s.cancelDial = nil

	if err != nil {
		s.logger.Warn("Realtime dial failed", "endpoint", s.endpoint, "error", err)
		s.handleCloseLocked()
		s.mu.Unlock()
		return
	}

	s.conn = conn
	s.state = realtime.StateOpen
	s.attempts = 0
	s.lastDelay = 0
	s.mu.Unlock()

	s.logger.Info("Realtime channel open", "endpoint", s.endpoint)
	go s.readLoop(conn, gen)
}

func (s *Session) readLoop(conn Conn, gen uint64) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.mu.Lock()
			if gen == s.gen && s.state == realtime.StateOpen {
				s.logger.Info("Realtime channel closed", "error", err)
				s.conn = nil
				_ = conn.Close()
				s.handleCloseLocked()
			}
			s.mu.Unlock()
			return
		}
		s.dispatch(data)
	}
}

// dispatch hands a parsed frame to the handler. Frames that do not parse are
// dropped and the channel stays open.
func (s *Session) dispatch(data []byte) {
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		err = errors.WrapWithCode(errors.ErrMalformedPushMessage, errors.CodeMalformedPushMessage, err.Error())
		s.logger.Warn("Dropping malformed push message", "error", err, "size", len(data))
		return
	}
	if s.handler == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Panic recovered in push handler", "panic", r, "stack", string(debug.Stack()))
		}
	}()
	s.handler(payload)
}

// handleCloseLocked counts the failed cycle and either schedules one retry or
// gives up.
func (s *Session) handleCloseLocked() {
	s.attempts++
	delay, ok := s.policy.Delay(s.attempts)
	if !ok {
		s.state = realtime.StateGivingUp
		s.timer = nil
		s.logger.Error("Realtime reconnect attempts exhausted",
			"attempts", s.attempts,
			"policy", s.policy.Name(),
			"error", errors.ErrReconnectExhausted)
		return
	}

	s.state = realtime.StateReconnecting
	s.lastDelay = delay
	gen := s.gen
	s.timer = s.clock.AfterFunc(delay, func() { s.retry(gen) })
	s.logger.Info("Realtime reconnect scheduled", "attempt", s.attempts, "delay", delay.String())
}

func (s *Session) retry(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.state != realtime.StateReconnecting {
		return
	}
	s.timer = nil
	s.connectLocked()
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
