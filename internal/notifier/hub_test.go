package notifier

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ondernemersloket/loket/internal/logger"
)

func TestNextMessageRotation(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < len(demoMessages); i++ {
		m := nextMessage(i)
		if m.ID == "" {
			t.Error("expected message ID to be set")
		}
		if m.Time.IsZero() {
			t.Error("expected message time to be set")
		}
		seen[m.Subject] = true
	}
	if len(seen) != len(demoMessages) {
		t.Errorf("expected %d distinct subjects, got %d", len(demoMessages), len(seen))
	}

	// Rotation wraps around.
	first := nextMessage(0)
	wrapped := nextMessage(len(demoMessages))
	if first.Subject != wrapped.Subject {
		t.Errorf("expected rotation to wrap, got %q vs %q", first.Subject, wrapped.Subject)
	}
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(logger.Nop(), time.Minute)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		hub.Register(conn)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer client.Close()

	// Wait for the server side to register the connection.
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	sent := nextMessage(0)
	hub.Broadcast(sent)

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var got Message
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got.Subject != sent.Subject {
		t.Errorf("expected subject %q, got %q", sent.Subject, got.Subject)
	}
	if got.ID != sent.ID {
		t.Errorf("expected ID %q, got %q", sent.ID, got.ID)
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub(logger.Nop(), time.Minute)

	upgrader := websocket.Upgrader{}
	conns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Register(conn)
		conns <- conn
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer client.Close()

	conn := <-conns
	if hub.ClientCount() != 1 {
		t.Fatalf("expected 1 client, got %d", hub.ClientCount())
	}

	hub.Unregister(conn)
	if hub.ClientCount() != 0 {
		t.Errorf("expected 0 clients after unregister, got %d", hub.ClientCount())
	}
}
