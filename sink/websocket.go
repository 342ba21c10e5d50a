package sink

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"campaign-hub/domain"
	"campaign-hub/domain/event"
	"campaign-hub/errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type State int32

const (
	Connecting State = iota
	Accepted
	Bootstrapped
	Live
	Closed
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Accepted:
		return "accepted"
	case Bootstrapped:
		return "bootstrapped"
	case Live:
		return "live"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// closeFrameTimeout caps the close frame write. A forced close usually targets
// a stalled socket and must not hold the caller for a full WriteTimeout.
const closeFrameTimeout = time.Second

type Options struct {
	BufferSize      int
	PingInterval    time.Duration
	PongWait        time.Duration
	WriteTimeout    time.Duration
	MaxMessageBytes int64
}

func DefaultOptions() Options {
	return Options{
		BufferSize:      64,
		PingInterval:    25 * time.Second,
		PongWait:        60 * time.Second,
		WriteTimeout:    10 * time.Second,
		MaxMessageBytes: 4096,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.BufferSize <= 0 {
		o.BufferSize = d.BufferSize
	}
	if o.PingInterval <= 0 {
		o.PingInterval = d.PingInterval
	}
	if o.PongWait <= 0 {
		o.PongWait = d.PongWait
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = d.WriteTimeout
	}
	return o
}

// WebSocketSink is a campaign subscriber backed by a websocket connection.
//
// Broadcasts are queued in a bounded channel and drained by a single write
// pump, which only starts once the bootstrap frame has been written. Frames
// published while the snapshot is being built therefore wait in the queue and
// always reach the wire after it.
type WebSocketSink struct {
	id         domain.SubscriberID
	campaignID uuid.UUID
	log        *slog.Logger
	conn       *websocket.Conn
	opts       Options

	outbound  chan event.Frame
	done      chan struct{}
	writeMu   sync.Mutex
	state     atomic.Int32
	closeOnce sync.Once
	onClose   func()
}

func NewWebSocketSink(log *slog.Logger, conn *websocket.Conn, campaignID uuid.UUID, opts Options) *WebSocketSink {
	id := domain.NewSubscriberID()
	opts = opts.withDefaults()
	s := &WebSocketSink{
		id:         id,
		campaignID: campaignID,
		log:        log.With("subscriber_id", id, "campaign_id", campaignID),
		conn:       conn,
		opts:       opts,
		outbound:   make(chan event.Frame, opts.BufferSize),
		done:       make(chan struct{}),
	}
	s.state.Store(int32(Accepted))
	return s
}

// OnClose registers the hook run once when the connection closes.
// Must be set before the sink is shared.
func (s *WebSocketSink) OnClose(fn func()) {
	s.onClose = fn
}

func (s *WebSocketSink) ID() domain.SubscriberID { return s.id }

func (s *WebSocketSink) CampaignID() uuid.UUID { return s.campaignID }

func (s *WebSocketSink) State() State { return State(s.state.Load()) }

// Done is closed when the connection reaches the Closed state.
func (s *WebSocketSink) Done() <-chan struct{} { return s.done }

// Consume queues the frame for the write pump.
// It fails when the connection is closed or the queue stays full until ctx ends.
func (s *WebSocketSink) Consume(ctx context.Context, frame event.Frame) error {
	if s.State() == Closed {
		return errors.ErrConnectionClosed
	}
	select {
	case <-s.done:
		return errors.ErrConnectionClosed
	default:
	}
	// A free slot always wins, even when ctx has already expired
	select {
	case s.outbound <- frame:
		return nil
	default:
	}
	select {
	case s.outbound <- frame:
		return nil
	case <-s.done:
		return errors.ErrConnectionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Bootstrap writes the snapshot frame straight to the wire, ahead of the queue.
func (s *WebSocketSink) Bootstrap(frame event.Frame) error {
	if s.State() != Accepted {
		return errors.ErrConnectionClosed
	}
	if err := s.write(websocket.TextMessage, frame.Payload); err != nil {
		return err
	}
	if !s.state.CompareAndSwap(int32(Accepted), int32(Bootstrapped)) {
		return errors.ErrConnectionClosed
	}
	return nil
}

// Run starts the write pump and reads inbound messages until the connection ends.
// It always leaves the sink Closed.
func (s *WebSocketSink) Run(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(Bootstrapped), int32(Live)) {
		return errors.ErrConnectionClosed
	}
	go s.writePump(ctx)

	err := s.readPump()
	closedLocally := s.State() == Closed
	s.Close(websocket.CloseNormalClosure, "")
	if closedLocally || websocket.IsCloseError(err,
		websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
		return nil
	}
	return err
}

// Close sends a close frame with the given code, releases the socket and runs
// the OnClose hook. Only the first call has any effect.
func (s *WebSocketSink) Close(code int, reason string) {
	s.closeOnce.Do(func() {
		previous := State(s.state.Swap(int32(Closed)))
		close(s.done)

		// WriteControl is safe concurrently with the write pump
		msg := websocket.FormatCloseMessage(code, reason)
		_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(min(s.opts.WriteTimeout, closeFrameTimeout)))
		_ = s.conn.Close()

		s.log.Debug("Connection closed", "code", code, "reason", reason, "previous_state", previous)
		if s.onClose != nil {
			s.onClose()
		}
	})
}

func (s *WebSocketSink) writePump(ctx context.Context) {
	ticker := time.NewTicker(s.opts.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case frame := <-s.outbound:
			if err := s.write(websocket.TextMessage, frame.Payload); err != nil {
				s.log.Debug("Write failed", "error", err)
				s.Close(errors.CloseDeliveryFailed, "write failed")
				return
			}
		case <-ticker.C:
			deadline := time.Now().Add(s.opts.WriteTimeout)
			if err := s.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				s.log.Debug("Ping failed", "error", err)
				s.Close(errors.CloseDeliveryFailed, "ping failed")
				return
			}
		case <-ctx.Done():
			s.Close(websocket.CloseGoingAway, "server shutting down")
			return
		case <-s.done:
			return
		}
	}
}

// readPump keeps the read deadline alive and answers the text keep-alive.
// Any other inbound payload is ignored.
func (s *WebSocketSink) readPump() error {
	if s.opts.MaxMessageBytes > 0 {
		s.conn.SetReadLimit(s.opts.MaxMessageBytes)
	}
	extend := func() error {
		return s.conn.SetReadDeadline(time.Now().Add(s.opts.PongWait))
	}
	_ = extend()
	s.conn.SetPongHandler(func(string) error { return extend() })

	for {
		messageType, data, err := s.conn.ReadMessage()
		if err != nil {
			return err
		}
		_ = extend()
		if messageType == websocket.TextMessage && string(data) == "ping" {
			if err = s.write(websocket.TextMessage, []byte("pong")); err != nil {
				return err
			}
		}
	}
}

func (s *WebSocketSink) write(messageType int, data []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.opts.WriteTimeout)); err != nil {
		return err
	}
	return s.conn.WriteMessage(messageType, data)
}

// Reject closes a freshly upgraded connection that never became a subscriber.
func Reject(conn *websocket.Conn, code int, reason string, writeTimeout time.Duration) {
	msg := websocket.FormatCloseMessage(code, reason)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeTimeout))
	_ = conn.Close()
}
