// Package monitor broadcasts task progress events to connected WebSocket
// clients. It is a one-way simplification of the teacher's
// examples/karate/server upgrade/Client/writePump pattern: there is no
// inbound message handling, since a progress viewer only ever listens.
package monitor

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is the envelope broadcast to every connected client, one per
// completed, skipped or failed taskrunner.Task.
type Event struct {
	Type         string    `json:"type"`
	OutputPath   string    `json:"output_path"`
	Skipped      bool      `json:"skipped,omitempty"`
	Error        string    `json:"error,omitempty"`
	Completed    int       `json:"completed"`
	Total        int       `json:"total"`
	EmittedAtRFC string    `json:"emitted_at"`
	emittedAt    time.Time `json:"-"`
}

// NewEvent builds an Event stamped with the given time (the caller supplies
// the clock so the package stays free of direct time.Now() calls in its
// hot path, matching the rest of the generator's injected-seed style).
func NewEvent(outputPath string, skipped bool, err error, completed, total int, at time.Time) Event {
	e := Event{
		OutputPath: outputPath,
		Skipped:    skipped,
		Completed:  completed,
		Total:      total,
		emittedAt:  at,
	}
	if err != nil {
		e.Type = "task_failed"
		e.Error = err.Error()
	} else if skipped {
		e.Type = "task_skipped"
	} else {
		e.Type = "task_completed"
	}
	e.EmittedAtRFC = at.UTC().Format(time.RFC3339Nano)
	return e
}

// client is a single connected progress viewer.
type client struct {
	conn     *websocket.Conn
	sendChan chan []byte
}

// Broadcaster accepts WebSocket connections on its ServeHTTP handler and
// fans out every Broadcast call to all of them.
type Broadcaster struct {
	mu       sync.RWMutex
	clients  map[*client]bool
	upgrader websocket.Upgrader
}

// NewBroadcaster constructs a Broadcaster ready to accept connections.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		clients: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// ServeHTTP upgrades the connection and registers it as a broadcast
// recipient.
func (b *Broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("monitor: upgrade error: %v", err)
		return
	}

	c := &client{conn: conn, sendChan: make(chan []byte, 256)}

	b.mu.Lock()
	b.clients[c] = true
	b.mu.Unlock()

	go b.writePump(c)
	go b.discardInbound(c)
}

// discardInbound drains and ignores any client frames (pings, close
// frames) until the connection drops, then deregisters the client. A
// progress viewer never sends application messages, but the read loop is
// still what notices a closed socket.
func (b *Broadcaster) discardInbound(c *client) {
	defer func() {
		b.removeClient(c)
		c.conn.Close()
		close(c.sendChan)
	}()

	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (b *Broadcaster) writePump(c *client) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-c.sendChan:
			if !ok {
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (b *Broadcaster) removeClient(c *client) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.clients, c)
}

// Broadcast sends event to every currently connected client. For a client
// whose send buffer is full, the event is dropped (the client stays
// connected) rather than allowed to block the broadcast.
func (b *Broadcaster) Broadcast(event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for c := range b.clients {
		select {
		case c.sendChan <- data:
		default:
			log.Printf("monitor: dropping event for slow client")
		}
	}
	return nil
}
