package iris

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kapu/arabic-name-bot-go/internal/constants"
	"go.uber.org/zap"
)

type MessageCallback func(message *Message)

type StateCallback func(state WebSocketState)

// WebSocketOptions tunes the reconnect loop. Zero values fall back to constants.WebSocketConfig.
type WebSocketOptions struct {
	MaxReconnectAttempts int
	ReconnectDelay       time.Duration
	HandshakeTimeout     time.Duration
}

func (o WebSocketOptions) withDefaults() WebSocketOptions {
	if o.MaxReconnectAttempts <= 0 {
		o.MaxReconnectAttempts = constants.WebSocketConfig.MaxReconnectAttempts
	}
	if o.ReconnectDelay <= 0 {
		o.ReconnectDelay = constants.WebSocketConfig.ReconnectDelay
	}
	if o.HandshakeTimeout <= 0 {
		o.HandshakeTimeout = constants.WebSocketConfig.HandshakeTimeout
	}
	return o
}

// WebSocket receives chat events from Iris and fans them out to registered callbacks.
type WebSocket struct {
	wsURL  string
	opts   WebSocketOptions
	logger *zap.Logger

	connMu sync.Mutex
	conn   *websocket.Conn

	stateMu sync.RWMutex
	state   WebSocketState

	callbacksMu      sync.RWMutex
	messageCallbacks map[int]MessageCallback
	stateCallbacks   map[int]StateCallback
	nextCallbackID   int

	attemptsMu        sync.Mutex
	reconnectAttempts int

	stopCh     chan struct{}
	stopOnce   sync.Once
	listenerWg sync.WaitGroup
}

func NewWebSocket(wsURL string, opts WebSocketOptions, logger *zap.Logger) *WebSocket {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebSocket{
		wsURL:            wsURL,
		opts:             opts.withDefaults(),
		logger:           logger,
		state:            WSStateDisconnected,
		messageCallbacks: make(map[int]MessageCallback),
		stateCallbacks:   make(map[int]StateCallback),
		nextCallbackID:   1,
		stopCh:           make(chan struct{}),
	}
}

// Connect dials Iris and starts the listener. A failed dial schedules a reconnect
// and still returns the dial error.
func (ws *WebSocket) Connect(ctx context.Context) error {
	switch ws.GetState() {
	case WSStateConnected, WSStateConnecting:
		ws.logger.Warn("WebSocket already connected or connecting")
		return nil
	}
	if ws.stopped() {
		return nil
	}

	ws.setState(WSStateConnecting)

	dialer := websocket.Dialer{
		Proxy:            websocket.DefaultDialer.Proxy,
		HandshakeTimeout: ws.opts.HandshakeTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, ws.wsURL, nil)
	if err != nil {
		ws.logger.Error("Failed to connect WebSocket", zap.Error(err), zap.String("url", ws.wsURL))
		ws.setState(WSStateFailed)
		ws.scheduleReconnect(ctx)
		return err
	}

	ws.connMu.Lock()
	ws.conn = conn
	ws.connMu.Unlock()

	ws.attemptsMu.Lock()
	ws.reconnectAttempts = 0
	ws.attemptsMu.Unlock()

	ws.setState(WSStateConnected)
	ws.logger.Info("WebSocket connected", zap.String("url", ws.wsURL))

	ws.listenerWg.Add(1)
	go ws.listen(ctx, conn)

	return nil
}

func (ws *WebSocket) listen(ctx context.Context, conn *websocket.Conn) {
	defer ws.listenerWg.Done()
	defer ws.logger.Debug("WebSocket listener stopped")

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-ws.stopCh:
		case <-done:
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ws.stopped() || ctx.Err() != nil {
				return
			}
			ws.logger.Warn("WebSocket read error", zap.Error(err))
			ws.dropConn(conn)
			ws.setState(WSStateDisconnected)
			ws.scheduleReconnect(ctx)
			return
		}

		ws.handleMessage(payload)
	}
}

func (ws *WebSocket) handleMessage(data []byte) {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200]
		}
		ws.logger.Warn("Failed to parse message",
			zap.Error(err),
			zap.String("data", preview),
		)
		return
	}
	if message.Msg == "" && message.JSON != nil {
		message.Msg = message.JSON.Message
	}

	ws.callbacksMu.RLock()
	callbacks := make([]MessageCallback, 0, len(ws.messageCallbacks))
	for _, cb := range ws.messageCallbacks {
		callbacks = append(callbacks, cb)
	}
	ws.callbacksMu.RUnlock()

	for _, cb := range callbacks {
		cb(&message)
	}
}

func (ws *WebSocket) scheduleReconnect(ctx context.Context) {
	if ws.stopped() {
		return
	}

	ws.attemptsMu.Lock()
	ws.reconnectAttempts++
	attempt := ws.reconnectAttempts
	ws.attemptsMu.Unlock()

	if attempt > ws.opts.MaxReconnectAttempts {
		ws.logger.Error("Max reconnect attempts reached", zap.Int("attempts", attempt-1))
		ws.setState(WSStateFailed)
		return
	}

	ws.setState(WSStateReconnecting)
	ws.logger.Info("Scheduling reconnect",
		zap.Int("attempt", attempt),
		zap.Int("max", ws.opts.MaxReconnectAttempts),
		zap.Duration("delay", ws.opts.ReconnectDelay),
	)

	go func() {
		timer := time.NewTimer(ws.opts.ReconnectDelay)
		defer timer.Stop()

		select {
		case <-timer.C:
			ws.setState(WSStateDisconnected)
			if err := ws.Connect(ctx); err != nil {
				ws.logger.Debug("Reconnect failed", zap.Error(err))
			}
		case <-ctx.Done():
		case <-ws.stopCh:
		}
	}()
}

// OnMessage registers a callback and returns its unsubscribe function.
func (ws *WebSocket) OnMessage(callback MessageCallback) func() {
	ws.callbacksMu.Lock()
	id := ws.nextCallbackID
	ws.nextCallbackID++
	ws.messageCallbacks[id] = callback
	ws.callbacksMu.Unlock()

	return func() {
		ws.callbacksMu.Lock()
		delete(ws.messageCallbacks, id)
		ws.callbacksMu.Unlock()
	}
}

// OnStateChange registers a state callback and returns its unsubscribe function.
func (ws *WebSocket) OnStateChange(callback StateCallback) func() {
	ws.callbacksMu.Lock()
	id := ws.nextCallbackID
	ws.nextCallbackID++
	ws.stateCallbacks[id] = callback
	ws.callbacksMu.Unlock()

	return func() {
		ws.callbacksMu.Lock()
		delete(ws.stateCallbacks, id)
		ws.callbacksMu.Unlock()
	}
}

func (ws *WebSocket) setState(newState WebSocketState) {
	ws.stateMu.Lock()
	oldState := ws.state
	ws.state = newState
	ws.stateMu.Unlock()

	if oldState == newState {
		return
	}

	ws.logger.Debug("WebSocket state changed",
		zap.String("from", oldState.String()),
		zap.String("to", newState.String()),
	)

	ws.callbacksMu.RLock()
	callbacks := make([]StateCallback, 0, len(ws.stateCallbacks))
	for _, cb := range ws.stateCallbacks {
		callbacks = append(callbacks, cb)
	}
	ws.callbacksMu.RUnlock()

	for _, cb := range callbacks {
		cb(newState)
	}
}

func (ws *WebSocket) GetState() WebSocketState {
	ws.stateMu.RLock()
	defer ws.stateMu.RUnlock()
	return ws.state
}

func (ws *WebSocket) IsConnected() bool {
	return ws.GetState() == WSStateConnected
}

func (ws *WebSocket) stopped() bool {
	select {
	case <-ws.stopCh:
		return true
	default:
		return false
	}
}

func (ws *WebSocket) dropConn(conn *websocket.Conn) {
	ws.connMu.Lock()
	if ws.conn == conn {
		ws.conn = nil
	}
	ws.connMu.Unlock()
	_ = conn.Close()
}

// Disconnect stops reconnecting, closes the connection and waits for the listener.
func (ws *WebSocket) Disconnect() error {
	ws.stopOnce.Do(func() {
		close(ws.stopCh)
	})

	ws.connMu.Lock()
	conn := ws.conn
	ws.conn = nil
	ws.connMu.Unlock()

	var closeErr error
	if conn != nil {
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		if err := conn.Close(); err != nil {
			ws.logger.Warn("Failed to close WebSocket", zap.Error(err))
			closeErr = err
		}
	}

	ws.setState(WSStateDisconnected)

	done := make(chan struct{})
	go func() {
		ws.listenerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		ws.logger.Info("WebSocket disconnected")
	case <-time.After(constants.WebSocketConfig.ListenerStopTimeout):
		ws.logger.Warn("Timeout waiting for listener to stop")
	}

	return closeErr
}
