package room

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"santorini/internal/clock"
	"santorini/internal/config"
	"santorini/internal/game"
	"santorini/internal/shared"
)

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string) (*Room, bool)
	Rooms() []*Room
}

type Manager struct {
	store     Store
	cfg       config.Config
	clockOpts []clock.Option

	mu  sync.RWMutex
	hub Broadcaster
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	return &Manager{store: s, cfg: cfg, hub: hub}
}

// SetHub wires the broadcaster once it exists; the websocket hub needs the
// manager first.
func (m *Manager) SetHub(hub Broadcaster) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hub = hub
}

// SetClockOptions applies opts to the clocks of rooms created afterwards.
func (m *Manager) SetClockOptions(opts ...clock.Option) {
	m.clockOpts = opts
}

// Broadcast forwards to the current hub.
func (m *Manager) Broadcast(roomCode string, action string, data any) {
	m.mu.RLock()
	hub := m.hub
	m.mu.RUnlock()
	if hub != nil {
		hub.Broadcast(roomCode, action, data)
	}
}

// CreateRoom starts a new game between the two players under a fresh code.
func (m *Manager) CreateRoom(players [2]game.PlayerDef) (*Room, error) {
	code := randCode(6)
	for {
		if _, taken := m.store.GetRoom(code); !taken {
			break
		}
		code = randCode(6)
	}

	r, err := New(uuid.NewString(), Params{
		Code:         code,
		Players:      players,
		Engine:       m.cfg.EngineOptions(),
		TurnSeconds:  m.cfg.TurnSeconds,
		Broadcaster:  m,
		ClockOptions: m.clockOpts,
	})
	if err != nil {
		return nil, err
	}
	m.store.SaveRoom(r)
	return r, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

func (m *Manager) Snapshot(code string) (shared.Snapshot, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return shared.Snapshot{}, ErrRoomNotFound
	}
	return r.Snapshot(), nil
}

func (m *Manager) Dispatch(ctx context.Context, code string, cmd shared.Command) (shared.Snapshot, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return shared.Snapshot{}, ErrRoomNotFound
	}
	return r.Dispatch(ctx, cmd)
}

func (m *Manager) Delete(code string) error {
	r, ok := m.store.DeleteRoom(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.Close()
	log.Printf("room %s deleted", code)
	return nil
}

// Sweep closes rooms with no player activity for longer than the room TTL
// and reports how many were removed.
func (m *Manager) Sweep(now time.Time) int {
	n := 0
	for _, r := range m.store.Rooms() {
		if now.Sub(r.LastActive()) <= m.cfg.RoomTTL {
			continue
		}
		if _, ok := m.store.DeleteRoom(r.Code); ok {
			r.Close()
			n++
			log.Printf("room %s expired", r.Code)
		}
	}
	return n
}

// Run sweeps idle rooms every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.Sweep(now)
		}
	}
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
