package ws

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"santorini/internal/shared"
)

type fakeRooms struct {
	mu   sync.Mutex
	cmds []shared.Command
}

func (f *fakeRooms) Snapshot(code string) (shared.Snapshot, error) {
	if code != "ROOM42" {
		return shared.Snapshot{}, errors.New("room not found")
	}
	return shared.Snapshot{Code: code, Rows: 5, Cols: 5}, nil
}

func (f *fakeRooms) Dispatch(_ context.Context, code string, cmd shared.Command) (shared.Snapshot, error) {
	f.mu.Lock()
	f.cmds = append(f.cmds, cmd)
	f.mu.Unlock()
	if cmd.Action == "bad" {
		return shared.Snapshot{}, errors.New("unknown action")
	}
	return shared.Snapshot{Code: code}, nil
}

func (f *fakeRooms) received() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cmds)
}

func newTestServer(t *testing.T) (*Hub, *fakeRooms, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rooms := &fakeRooms{}
	hub := NewHub(rooms)
	r := gin.New()
	r.GET("/ws", hub.HandleWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, rooms, srv
}

func dial(t *testing.T, srv *httptest.Server, code string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?room_code=" + code
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg map[string]any
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestHandleWSSendsStateAndRelaysCommands(t *testing.T) {
	hub, rooms, srv := newTestServer(t)
	conn := dial(t, srv, "ROOM42")

	if msg := readMessage(t, conn); msg["action"] != "state" {
		t.Fatalf("first message = %v, want state", msg)
	}

	if err := conn.WriteJSON(shared.Command{Action: "bad"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	msg := readMessage(t, conn)
	if msg["action"] != "error" {
		t.Fatalf("message = %v, want error", msg)
	}
	if rooms.received() != 1 {
		t.Fatalf("commands relayed = %d, want 1", rooms.received())
	}

	if hub.Clients("ROOM42") != 1 {
		t.Fatalf("clients = %d, want 1", hub.Clients("ROOM42"))
	}
	hub.Broadcast("ROOM42", "tick", map[string]int{"player": 0, "seconds_left": 10})
	if msg := readMessage(t, conn); msg["action"] != "tick" {
		t.Fatalf("message = %v, want tick", msg)
	}
}

func TestHandleWSRejectsUnknownRoom(t *testing.T) {
	_, _, srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/ws?room_code=NOPE")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/ws")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestBroadcastWithoutClients(t *testing.T) {
	hub := NewHub(&fakeRooms{})
	hub.Broadcast("EMPTY", "state", nil)
	var nilHub *Hub
	nilHub.Broadcast("EMPTY", "state", nil)
}
