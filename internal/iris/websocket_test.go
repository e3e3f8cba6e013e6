package iris

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newEchoServer(t *testing.T, frames ...string) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		for _, frame := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
				return
			}
		}
		// keep the connection open until the client closes it
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func TestWebSocketDeliversMessages(t *testing.T) {
	server := newEchoServer(t,
		`not json`,
		`{"msg":"!아랍이름 star","room":"room-1","sender":"kapu"}`,
		`{"room":"room-2","json":{"message":"!이름키워드","user_id":"7"}}`,
	)
	defer server.Close()

	ws := NewWebSocket("ws"+strings.TrimPrefix(server.URL, "http"), WebSocketOptions{
		MaxReconnectAttempts: 1,
		ReconnectDelay:       10 * time.Millisecond,
	}, nil)

	received := make(chan *Message, 4)
	unsubscribe := ws.OnMessage(func(m *Message) { received <- m })
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := ws.Connect(ctx); err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	defer ws.Disconnect()

	if !ws.IsConnected() {
		t.Fatalf("expected connected state, got %s", ws.GetState())
	}

	first := waitMessage(t, received)
	if first.Msg != "!아랍이름 star" || first.Room != "room-1" || first.SenderName() != "kapu" {
		t.Fatalf("unexpected first message %+v", first)
	}

	second := waitMessage(t, received)
	if second.Msg != "!이름키워드" || second.UserID() != "7" {
		t.Fatalf("expected msg to fall back to json.message, got %+v", second)
	}
}

func TestWebSocketDisconnectStopsListener(t *testing.T) {
	server := newEchoServer(t)
	defer server.Close()

	ws := NewWebSocket("ws"+strings.TrimPrefix(server.URL, "http"), WebSocketOptions{}, nil)

	states := make(chan WebSocketState, 8)
	ws.OnStateChange(func(s WebSocketState) { states <- s })

	if err := ws.Connect(context.Background()); err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	if err := ws.Disconnect(); err != nil {
		t.Fatalf("Disconnect returned error: %v", err)
	}
	if ws.GetState() != WSStateDisconnected {
		t.Fatalf("expected disconnected, got %s", ws.GetState())
	}

	// Connect after Disconnect is a no-op.
	if err := ws.Connect(context.Background()); err != nil {
		t.Fatalf("Connect after stop returned error: %v", err)
	}
	if ws.IsConnected() {
		t.Fatalf("stopped websocket must not reconnect")
	}
}

func TestWebSocketGivesUpAfterMaxAttempts(t *testing.T) {
	ws := NewWebSocket("ws://127.0.0.1:1/ws", WebSocketOptions{
		MaxReconnectAttempts: 1,
		ReconnectDelay:       5 * time.Millisecond,
		HandshakeTimeout:     100 * time.Millisecond,
	}, nil)
	defer ws.Disconnect()

	if err := ws.Connect(context.Background()); err == nil {
		t.Fatalf("expected dial error")
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if ws.GetState() == WSStateFailed {
			ws.attemptsMu.Lock()
			attempts := ws.reconnectAttempts
			ws.attemptsMu.Unlock()
			if attempts > 1 {
				return
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected FAILED state after exhausting reconnects, got %s", ws.GetState())
}

func waitMessage(t *testing.T, ch <-chan *Message) *Message {
	t.Helper()
	select {
	case m := <-ch:
		return m
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for message")
		return nil
	}
}
