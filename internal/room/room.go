package room

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"santorini/internal/clock"
	"santorini/internal/game"
	"santorini/internal/shared"
)

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomClosed    = errors.New("room closed")
	ErrUnknownAction = errors.New("unknown action")
)

var tracer = otel.Tracer("santorini/internal/room")

// Params configures a new room.
type Params struct {
	Code         string
	Players      [2]game.PlayerDef
	Engine       game.Options
	TurnSeconds  int
	Broadcaster  Broadcaster
	ClockOptions []clock.Option
}

// Room owns one engine and serialises every event touching it: player
// commands and clock callbacks are handled one at a time on the room's
// loop goroutine.
type Room struct {
	ID        string
	Code      string
	CreatedAt time.Time

	engine *game.Engine
	clocks [2]*clock.Countdown
	out    Broadcaster

	requests chan request
	ticks    chan clockEvent
	done     chan struct{}
	closeMu  sync.Once

	mu         sync.RWMutex
	snapshot   shared.Snapshot
	lastActive time.Time
}

type request struct {
	ctx   context.Context
	cmd   shared.Command
	reply chan response
}

type response struct {
	snap shared.Snapshot
	err  error
}

type clockEvent struct {
	player      int
	secondsLeft int
	expired     bool
}

func New(id string, p Params) (*Room, error) {
	out := p.Broadcaster
	if out == nil {
		out = nopBroadcaster{}
	}
	now := time.Now()
	r := &Room{
		ID:         id,
		Code:       p.Code,
		CreatedAt:  now,
		out:        out,
		requests:   make(chan request),
		ticks:      make(chan clockEvent),
		done:       make(chan struct{}),
		lastActive: now,
	}

	opts := p.Engine
	opts.TurnSeconds = p.TurnSeconds
	for i := range r.clocks {
		player := i
		r.clocks[i] = clock.New(p.TurnSeconds,
			func(left int) { r.post(clockEvent{player: player, secondsLeft: left}) },
			func() { r.post(clockEvent{player: player, expired: true}) },
			p.ClockOptions...,
		)
		opts.Countdowns[i] = r.clocks[i]
	}

	e, err := game.NewEngine(p.Players, opts)
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	r.engine = e
	e.StartTurn()
	r.snapshot = shared.FromEngine(r.Code, e)
	go r.loop()

	log.Printf("room %s: %s (%s) vs %s (%s), %s starts",
		r.Code,
		e.Players()[0].Name, e.Players()[0].God.Name(),
		e.Players()[1].Name, e.Players()[1].God.Name(),
		e.CurrentPlayer().Name)
	return r, nil
}

// Dispatch applies cmd on the room's loop and returns the resulting state.
// Game rule violations come back as errors; ignored clicks do not.
func (r *Room) Dispatch(ctx context.Context, cmd shared.Command) (shared.Snapshot, error) {
	req := request{ctx: ctx, cmd: cmd, reply: make(chan response, 1)}
	select {
	case r.requests <- req:
	case <-r.done:
		return shared.Snapshot{}, ErrRoomClosed
	case <-ctx.Done():
		return shared.Snapshot{}, ctx.Err()
	}

	select {
	case resp := <-req.reply:
		return resp.snap, resp.err
	case <-ctx.Done():
		return shared.Snapshot{}, ctx.Err()
	}
}

// Snapshot returns the state after the most recent event.
func (r *Room) Snapshot() shared.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

func (r *Room) LastActive() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastActive
}

// Close stops the clocks and the loop. Further commands fail with
// ErrRoomClosed.
func (r *Room) Close() {
	r.closeMu.Do(func() {
		close(r.done)
		for _, c := range r.clocks {
			c.Pause()
		}
		r.out.Broadcast(r.Code, EventClosed, nil)
	})
}

func (r *Room) post(ev clockEvent) {
	select {
	case r.ticks <- ev:
	case <-r.done:
	}
}

func (r *Room) loop() {
	for {
		select {
		case <-r.done:
			return
		case req := <-r.requests:
			err := r.apply(req.ctx, req.cmd)
			snap := r.publish(true)
			req.reply <- response{snap: snap, err: err}
		case ev := <-r.ticks:
			r.onClock(ev)
		}
	}
}

func (r *Room) apply(ctx context.Context, cmd shared.Command) (err error) {
	_, span := tracer.Start(ctx, "room."+cmd.Action, trace.WithAttributes(
		attribute.String("room.code", r.Code),
		attribute.Int("player", r.engine.CurrentIndex()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	e := r.engine
	switch cmd.Action {
	case shared.ActionClick:
		span.SetAttributes(attribute.Int("row", cmd.Row), attribute.Int("col", cmd.Col))
		e.HandleClick(cmd.Row, cmd.Col)
	case shared.ActionUseGodPower:
		err = e.UseGodPower()
	case shared.ActionSkipGodPower:
		err = e.SkipGodPower()
	case shared.ActionUseArtifact:
		err = e.UseArtifact(cmd.ArtifactID)
	case shared.ActionBuy:
		var a game.Artifact
		if a, err = e.BuyArtifact(cmd.Kind); err == nil {
			log.Printf("room %s: %s bought %s", r.Code, e.CurrentPlayer().Name, a.Name())
		}
	case shared.ActionCloseShop:
		e.CloseShop()
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAction, cmd.Action)
	}
	return err
}

func (r *Room) onClock(ev clockEvent) {
	if ev.expired {
		r.engine.OnTimeExpired(ev.player)
		r.publish(false)
		return
	}
	r.engine.OnTick(ev.player, ev.secondsLeft)
	r.mu.Lock()
	players := append([]shared.PlayerView(nil), r.snapshot.Players...)
	players[ev.player].SecondsLeft = ev.secondsLeft
	r.snapshot.Players = players
	r.mu.Unlock()
	r.out.Broadcast(r.Code, EventTick, map[string]int{
		"player":       ev.player,
		"seconds_left": ev.secondsLeft,
	})
}

// publish refreshes the cached snapshot and pushes it to clients. Only
// player commands count as activity.
func (r *Room) publish(active bool) shared.Snapshot {
	snap := shared.FromEngine(r.Code, r.engine)
	r.mu.Lock()
	r.snapshot = snap
	if active {
		r.lastActive = time.Now()
	}
	r.mu.Unlock()
	r.out.Broadcast(r.Code, EventState, snap)
	return snap
}
