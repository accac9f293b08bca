package monitor

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestBroadcasterDeliversEventToConnectedClient(t *testing.T) {
	b := NewBroadcaster()
	srv := httptest.NewServer(b)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	// Give the server goroutine a moment to register the client.
	deadline := time.Now().Add(2 * time.Second)
	for {
		b.mu.RLock()
		n := len(b.clients)
		b.mu.RUnlock()
		if n > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(time.Millisecond)
	}

	event := NewEvent("/tmp/out.xml", false, nil, 1, 3, time.Unix(0, 0))
	if err := b.Broadcast(event); err != nil {
		t.Fatalf("Broadcast: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	var got Event
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.OutputPath != event.OutputPath || got.Type != "task_completed" {
		t.Fatalf("got = %+v, want matching %+v", got, event)
	}
}

func TestNewEventClassifiesOutcome(t *testing.T) {
	at := time.Unix(0, 0)
	if e := NewEvent("a", false, nil, 1, 1, at); e.Type != "task_completed" {
		t.Fatalf("Type = %q, want task_completed", e.Type)
	}
	if e := NewEvent("a", true, nil, 1, 1, at); e.Type != "task_skipped" {
		t.Fatalf("Type = %q, want task_skipped", e.Type)
	}
	if e := NewEvent("a", false, errBoom, 1, 1, at); e.Type != "task_failed" || e.Error == "" {
		t.Fatalf("Type = %q, Error = %q, want task_failed with a message", e.Type, e.Error)
	}
}

var errBoom = &boomError{}

type boomError struct{}

func (*boomError) Error() string { return "boom" }
