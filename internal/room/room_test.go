package room_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"santorini/internal/clock"
	"santorini/internal/config"
	"santorini/internal/game"
	"santorini/internal/room"
	"santorini/internal/shared"
	"santorini/internal/store"
)

type recordingHub struct {
	mu     sync.Mutex
	events map[string]int
}

func (h *recordingHub) Broadcast(_ string, action string, _ any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.events == nil {
		h.events = map[string]int{}
	}
	h.events[action]++
}

func (h *recordingHub) count(action string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.events[action]
}

func testConfig() config.Config {
	return config.Config{
		BoardRows:      5,
		BoardCols:      5,
		TurnSeconds:    900,
		StartingTokens: 5,
		ShopPolicy:     "every_turn",
		RoomTTL:        time.Minute,
	}
}

var artemisPair = [2]game.PlayerDef{{Name: "Ann", God: "artemis"}, {Name: "Bob", God: "artemis"}}

func newManager(t *testing.T, cfg config.Config) (*room.Manager, *recordingHub) {
	t.Helper()
	hub := &recordingHub{}
	return room.NewManager(store.NewMemoryStore(), cfg, hub), hub
}

func TestCreateAndDispatch(t *testing.T) {
	m, hub := newManager(t, testConfig())
	r, err := m.CreateRoom(artemisPair)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	defer r.Close()

	if len(r.Code) != 6 {
		t.Fatalf("code = %q, want 6 characters", r.Code)
	}
	snap, err := m.Snapshot(r.Code)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !snap.ShopOpen || snap.Players[0].SecondsLeft != 900 {
		t.Fatalf("initial snapshot: shop=%v seconds=%d", snap.ShopOpen, snap.Players[0].SecondsLeft)
	}

	ctx := context.Background()
	snap, err = m.Dispatch(ctx, r.Code, shared.Command{Action: shared.ActionCloseShop})
	if err != nil {
		t.Fatalf("close shop: %v", err)
	}
	if snap.ShopOpen {
		t.Fatal("shop still open")
	}
	if hub.count(room.EventState) != 1 {
		t.Fatalf("state broadcasts = %d, want 1", hub.count(room.EventState))
	}

	if _, err := m.Dispatch(ctx, r.Code, shared.Command{Action: shared.ActionUseGodPower}); !errors.Is(err, game.ErrMustMoveFirst) {
		t.Fatalf("err = %v, want ErrMustMoveFirst", err)
	}
	if _, err := m.Dispatch(ctx, r.Code, shared.Command{Action: "dance"}); !errors.Is(err, room.ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}

	// Clicks off the board are ignored, not rejected.
	if _, err := m.Dispatch(ctx, r.Code, shared.Command{Action: shared.ActionClick, Row: 9, Col: 9}); err != nil {
		t.Fatalf("click: %v", err)
	}
}

func TestBuyThroughRoom(t *testing.T) {
	m, _ := newManager(t, testConfig())
	r, err := m.CreateRoom(artemisPair)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	defer r.Close()

	snap, err := m.Dispatch(context.Background(), r.Code, shared.Command{Action: shared.ActionBuy, Kind: game.KindTrident})
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	buyer := snap.Players[snap.Current]
	if buyer.Tokens != 3 || len(buyer.Artifacts) != 1 {
		t.Fatalf("buyer = %+v", buyer)
	}

	_, err = m.Dispatch(context.Background(), r.Code, shared.Command{Action: shared.ActionUseArtifact, ArtifactID: buyer.Artifacts[0].ID})
	if err != nil {
		t.Fatalf("use artifact: %v", err)
	}
	if got := r.Snapshot().ActiveArtifact; got != buyer.Artifacts[0].ID {
		t.Fatalf("active artifact = %q", got)
	}
}

func TestCreateRoomUnknownGod(t *testing.T) {
	m, _ := newManager(t, testConfig())
	_, err := m.CreateRoom([2]game.PlayerDef{{God: "hermes"}, {God: "artemis"}})
	if !errors.Is(err, game.ErrUnknownGod) {
		t.Fatalf("err = %v, want ErrUnknownGod", err)
	}
}

func TestClockExpiryEndsGame(t *testing.T) {
	cfg := testConfig()
	cfg.TurnSeconds = 3
	m, hub := newManager(t, cfg)
	m.SetClockOptions(clock.WithInterval(time.Millisecond))

	r, err := m.CreateRoom(artemisPair)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	defer r.Close()
	starter := r.Snapshot().Current

	deadline := time.Now().Add(2 * time.Second)
	for r.Snapshot().Winner == nil {
		if time.Now().After(deadline) {
			t.Fatal("game did not end on timeout")
		}
		time.Sleep(5 * time.Millisecond)
	}

	snap := r.Snapshot()
	if *snap.Winner != 1-starter {
		t.Fatalf("winner = %d, want %d", *snap.Winner, 1-starter)
	}
	if snap.Players[starter].SecondsLeft != 0 {
		t.Fatalf("seconds left = %d, want 0", snap.Players[starter].SecondsLeft)
	}
	if hub.count(room.EventTick) == 0 {
		t.Fatal("no tick broadcasts")
	}
}

func TestDeleteAndSweep(t *testing.T) {
	m, _ := newManager(t, testConfig())
	a, err := m.CreateRoom(artemisPair)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	b, err := m.CreateRoom(artemisPair)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	if err := m.Delete(a.Code); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := m.Delete(a.Code); !errors.Is(err, room.ErrRoomNotFound) {
		t.Fatalf("err = %v, want ErrRoomNotFound", err)
	}
	if _, err := a.Dispatch(context.Background(), shared.Command{Action: shared.ActionCloseShop}); !errors.Is(err, room.ErrRoomClosed) {
		t.Fatalf("err = %v, want ErrRoomClosed", err)
	}

	if n := m.Sweep(time.Now()); n != 0 {
		t.Fatalf("swept %d fresh rooms", n)
	}
	if n := m.Sweep(time.Now().Add(2 * time.Minute)); n != 1 {
		t.Fatalf("swept %d rooms, want 1", n)
	}
	if _, err := m.Dispatch(context.Background(), b.Code, shared.Command{Action: shared.ActionCloseShop}); !errors.Is(err, room.ErrRoomNotFound) {
		t.Fatalf("err = %v, want ErrRoomNotFound", err)
	}
}

func TestDispatchHonoursContext(t *testing.T) {
	m, _ := newManager(t, testConfig())
	r, err := m.CreateRoom(artemisPair)
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Either the loop picks the request up or the cancelled context wins.
	if _, err := r.Dispatch(ctx, shared.Command{Action: shared.ActionCloseShop}); err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}
