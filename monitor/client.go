package monitor

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// Sender pushes Events to a Broadcaster over a single WebSocket connection.
// It is the counterpart cmd/ra-gen dials when run with --monitor-addr: the
// generator is the client here, the long-lived Broadcaster is the server.
type Sender struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// Dial opens a WebSocket connection to a Broadcaster's ServeHTTP endpoint,
// e.g. "ws://127.0.0.1:8090/progress".
func Dial(addr string) (*Sender, error) {
	conn, _, err := websocket.DefaultDialer.Dial(addr, nil)
	if err != nil {
		return nil, fmt.Errorf("monitor: dial %s: %w", addr, err)
	}
	return &Sender{conn: conn}, nil
}

// Send writes event as a single JSON WebSocket text frame.
func (s *Sender) Send(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(event)
}

// Close closes the underlying connection.
func (s *Sender) Close() error {
	return s.conn.Close()
}
