package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
)

// Countdown is the per-player clock the engine starts and pauses at turn
// boundaries. Expiry must be reported back through OnTimeExpired on the
// same goroutine that drives HandleClick.
type Countdown interface {
	Start(resume bool)
	Pause()
}

// ShopPolicy decides when the buy phase opens.
type ShopPolicy string

const (
	// ShopEveryTurn opens the shop at the start of every turn.
	ShopEveryTurn ShopPolicy = "every_turn"
	// ShopFirstTurn opens it only on each player's first turn.
	ShopFirstTurn ShopPolicy = "first_turn"
)

func ParseShopPolicy(s string) (ShopPolicy, error) {
	switch ShopPolicy(s) {
	case "", ShopEveryTurn:
		return ShopEveryTurn, nil
	case ShopFirstTurn:
		return ShopFirstTurn, nil
	}
	return "", fmt.Errorf("unknown shop policy %q", s)
}

type PlayerDef struct {
	Name string `json:"name"`
	God  string `json:"god"`
}

type Options struct {
	Rows, Cols     int
	StartingTokens int
	ShopPolicy     ShopPolicy
	Rand           *rand.Rand
	Countdowns     [2]Countdown
	TurnSeconds    int

	// Placements, when set, fixes the four starting worker positions in the
	// order p0w0, p0w1, p1w0, p1w1 instead of placing them randomly.
	Placements []Pos
}

// Engine is the two-player turn controller. It is not safe for concurrent
// use; every mutating call must come from one goroutine.
type Engine struct {
	board   *Board
	hl      *Highlighter
	shop    *Shop
	players [2]*Player
	current int
	turn    TurnState

	policy       ShopPolicy
	turnsStarted [2]int
	secondsLeft  [2]int
	countdowns   [2]Countdown

	activeWorker   *Worker
	activeArtifact Artifact
	winner         *Player
}

func NewEngine(defs [2]PlayerDef, opts Options) (*Engine, error) {
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}
	tokens := opts.StartingTokens
	if tokens <= 0 {
		tokens = DefaultStartingTokens
	}
	policy := opts.ShopPolicy
	if policy == "" {
		policy = ShopEveryTurn
	}

	e := &Engine{
		board:      NewBoard(opts.Rows, opts.Cols),
		shop:       NewShop(),
		policy:     policy,
		countdowns: opts.Countdowns,
		current:    r.Intn(2),
	}
	e.secondsLeft = [2]int{opts.TurnSeconds, opts.TurnSeconds}
	e.hl = NewHighlighter(e.board)

	var workers []*Worker
	for i, def := range defs {
		god, err := NewGodPower(def.God)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		e.players[i] = NewPlayer(i, name, DefaultPlayerColors[i], god, tokens)
		workers = append(workers, e.players[i].Workers[:]...)
	}

	if err := e.place(workers, opts.Placements, r); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) place(workers []*Worker, at []Pos, r *rand.Rand) error {
	if len(at) == 0 {
		return PlaceWorkersRandomly(e.board, workers, r)
	}
	if len(at) != len(workers) {
		return fmt.Errorf("placements: want %d positions, got %d", len(workers), len(at))
	}
	for i, p := range at {
		c := e.board.At(p)
		if c == nil || c.IsOccupied() {
			return fmt.Errorf("placements: invalid cell (%d,%d)", p.Row, p.Col)
		}
		workers[i].Move(e.board, c)
	}
	return nil
}

func (e *Engine) Board() *Board { return e.board }
func (e *Engine) Players() []*Player { return e.players[:] }
func (e *Engine) CurrentPlayer() *Player { return e.players[e.current] }
func (e *Engine) CurrentIndex() int { return e.current }
func (e *Engine) Winner() *Player { return e.winner }
func (e *Engine) TurnState() TurnState { return e.turn }
func (e *Engine) ActiveArtifact() Artifact { return e.activeArtifact }
func (e *Engine) ActiveWorker() *Worker { return e.activeWorker }
func (e *Engine) Catalog() []Offer { return e.shop.Catalog() }
func (e *Engine) ShopOpen() bool { return e.winner == nil && !e.turn.BuyPhaseCompleted }
func (e *Engine) SecondsLeft(player int) int { return e.secondsLeft[player] }
func (e *Engine) opponent() *Player { return e.players[1-e.current] }

// StartTurn starts the current player's clock and opens the shop if the
// policy allows it. Call it once after NewEngine; EndTurn calls it after.
func (e *Engine) StartTurn() {
	e.pause(1 - e.current)
	e.start(e.current)

	e.turnsStarted[e.current]++
	if e.policy == ShopFirstTurn && e.turnsStarted[e.current] > 1 {
		e.turn.BuyPhaseCompleted = true
	}
}

// EndTurn hands the turn to the other player once the turn is complete.
func (e *Engine) EndTurn() error {
	if e.winner != nil {
		return ErrGameOver
	}
	if !e.turn.IsTurnComplete() {
		return ErrTurnIncomplete
	}

	e.pause(e.current)
	e.CurrentPlayer().God.reset()
	e.current = 1 - e.current
	e.activeWorker = nil
	e.activeArtifact = nil
	e.hl.Clear()
	e.turn.ResetTurn()
	e.turn.BuyPhaseCompleted = false
	e.StartTurn()
	return nil
}

// HandleClick routes a click on (row, col) to whatever the current phase
// expects. Clicks that do not fit the phase are ignored.
func (e *Engine) HandleClick(row, col int) {
	clicked := e.board.Cell(row, col)
	if clicked == nil || e.winner != nil {
		return
	}

	// The external shop owns the turn until the buy phase completes.
	if !e.turn.BuyPhaseCompleted {
		return
	}

	if e.activeArtifact != nil {
		e.resolveArtifact(clicked)
		return
	}

	if !e.turn.Moved && HasNoValidMoves(e.board, e.CurrentPlayer()) {
		log.Printf("%s has no valid moves", e.CurrentPlayer().Name)
		e.declareWinner(e.opponent())
		return
	}

	god := e.CurrentPlayer().God
	switch {
	case !e.turn.Moved:
		e.handleMove(clicked)
	case !e.turn.Built:
		e.handleBuild(clicked)
	case !e.turn.GodPowerResolved && god.Phase() == BuildPhase && clicked.Status() == StatusHighlighted:
		e.handleBuildPower(clicked)
	case e.turn.IsTurnComplete():
		e.endTurn()
	}
}

func (e *Engine) handleMove(clicked *Cell) {
	current := e.CurrentPlayer()

	if current.Owns(clicked.Occupant()) {
		e.board.SetLastMoved(clicked)
		e.hl.Movable(clicked.pos, nil)
		return
	}

	if clicked.Status() != StatusHighlighted {
		return
	}
	selected := e.board.Selected()
	if selected == nil || !current.Owns(selected.Occupant()) {
		return
	}
	w := selected.Occupant()
	if !w.CanMoveTo(e.board, clicked) {
		return
	}

	e.activeWorker = w
	reachedTop := w.Move(e.board, clicked)
	e.turn.Moved = true
	if reachedTop {
		e.declareWinner(current)
		return
	}
	e.hl.Buildable(clicked.pos, nil)
}

func (e *Engine) handleBuild(clicked *Cell) {
	current := e.CurrentPlayer()
	god := current.God

	if god.Phase() == MovePhase && !e.turn.GodPowerResolved && clicked.Status() == StatusHighlighted {
		if god.PerformExtraAction(e.board, e.hl, e.activeWorker, clicked, &e.turn) {
			if StandsOnTop(e.board, e.activeWorker) {
				e.declareWinner(current)
				return
			}
			if e.turn.GodPowerResolved {
				e.hl.Buildable(e.activeWorker.pos, nil)
			}
			return
		}
		if god.Armed() {
			return
		}
		// Clicking a build target without invoking the power skips it.
		e.turn.GodPowerResolved = true
	}

	if !clicked.IsHighlighted(HighlightBuild) {
		return
	}
	selected := e.board.Selected()
	if selected == nil || !current.Owns(selected.Occupant()) || !selected.Occupant().CanBuildOn(clicked) {
		return
	}

	e.board.Build(clicked.Row(), clicked.Col())
	e.hl.Select(selected)
	e.turn.Built = true
	current.AddTokens(tokenReward(clicked))

	// A move-phase power was settled before building; nothing is left to do.
	if e.turn.IsTurnComplete() {
		e.endTurn()
	}
}

func (e *Engine) handleBuildPower(clicked *Cell) {
	current := e.CurrentPlayer()
	if !current.God.PerformExtraAction(e.board, e.hl, e.activeWorker, clicked, &e.turn) {
		return
	}
	current.AddTokens(tokenReward(clicked))
	e.hl.Clear()
	e.endTurn()
}

// UseGodPower invokes the current player's power.
func (e *Engine) UseGodPower() error {
	if e.winner != nil {
		return ErrGameOver
	}
	current := e.CurrentPlayer()
	god := current.God

	switch {
	case god.Phase() == MovePhase && !e.turn.Moved:
		return ErrMustMoveFirst
	case god.Phase() == BuildPhase && !e.turn.Built:
		return ErrMustBuildFirst
	case e.turn.GodPowerResolved:
		return ErrGodPowerResolved
	case !god.Available(e.board, current, &e.turn, e.activeWorker):
		return ErrGodPowerUnavailable
	}

	god.Activate(e.board, e.hl, current, e.activeWorker)
	if !god.Armed() && !e.turn.GodPowerResolved {
		return ErrGodPowerUnavailable
	}
	if e.turn.IsTurnComplete() && god.Phase() == BuildPhase {
		e.endTurn()
	}
	return nil
}

// SkipGodPower declines the current player's power. After a build this
// ends the turn; before a build it returns to build targeting.
func (e *Engine) SkipGodPower() error {
	if e.winner != nil {
		return ErrGameOver
	}
	switch {
	case e.turn.GodPowerResolved:
		return ErrGodPowerResolved
	case !e.turn.Moved:
		return ErrMustMoveFirst
	}

	e.CurrentPlayer().God.reset()
	e.turn.GodPowerResolved = true
	if e.turn.Built {
		return e.EndTurn()
	}
	if e.activeWorker != nil && e.activeWorker.Placed() {
		e.hl.Buildable(e.activeWorker.pos, nil)
	}
	return nil
}

// BuyArtifact purchases an artifact for the current player.
func (e *Engine) BuyArtifact(kind string) (Artifact, error) {
	if e.winner != nil {
		return nil, ErrGameOver
	}
	return e.shop.Buy(e.CurrentPlayer(), &e.turn, kind)
}

// CloseShop ends the buy phase without a purchase.
func (e *Engine) CloseShop() {
	e.shop.Close(&e.turn)
}

// UseArtifact arms an owned artifact and highlights its targets. The next
// click resolves it.
func (e *Engine) UseArtifact(id string) error {
	if e.winner != nil {
		return ErrGameOver
	}
	if err := e.canUseArtifact(); err != nil {
		return err
	}
	a := e.CurrentPlayer().Artifact(id)
	if a == nil {
		return ErrArtifactNotOwned
	}
	if !a.CanUse(e.board) {
		return ErrArtifactUnusable
	}
	e.activeArtifact = a
	e.hl.ArtifactCells(a.Usable)
	return nil
}

// canUseArtifact is the single precondition for arming an artifact: the
// buy phase is over and nothing else has happened this turn.
func (e *Engine) canUseArtifact() error {
	switch {
	case !e.turn.BuyPhaseCompleted:
		return ErrBuyPhaseOpen
	case e.turn.ArtifactResolved:
		return ErrArtifactAlreadyUsed
	case e.turn.Moved || e.turn.Built || e.turn.GodPowerResolved:
		return ErrArtifactNotTurnStart
	}
	return nil
}

func (e *Engine) resolveArtifact(clicked *Cell) {
	a := e.activeArtifact
	e.activeArtifact = nil
	e.turn.ArtifactResolved = true

	if clicked.IsHighlighted(HighlightArtifact) && a.PerformAction(clicked, e.CurrentPlayer()) {
		log.Printf("%s used %s on (%d,%d)", e.CurrentPlayer().Name, a.Name(), clicked.Row(), clicked.Col())
	}
	e.hl.Clear()
}

// OnTick records the remaining time reported by a player's countdown.
func (e *Engine) OnTick(player, secondsLeft int) {
	if player == 0 || player == 1 {
		e.secondsLeft[player] = secondsLeft
	}
}

// OnTimeExpired forfeits the game for the player whose clock ran out.
func (e *Engine) OnTimeExpired(player int) {
	if e.winner != nil || (player != 0 && player != 1) {
		return
	}
	e.secondsLeft[player] = 0
	e.shop.Close(&e.turn)
	e.turn.CompleteTurn()
	e.activeArtifact = nil
	e.board.ClearMarkings()
	log.Printf("%s ran out of time", e.players[player].Name)
	e.declareWinner(e.players[1-player])
}

func (e *Engine) endTurn() {
	if err := e.EndTurn(); err != nil && !errors.Is(err, ErrGameOver) {
		log.Printf("end turn: %v", err)
	}
}

func (e *Engine) declareWinner(p *Player) {
	e.winner = p
	e.activeArtifact = nil
	e.hl.Clear()
	for i := range e.countdowns {
		e.pause(i)
	}
	log.Printf("%s wins", p.Name)
}

func (e *Engine) start(player int) {
	if cd := e.countdowns[player]; cd != nil {
		cd.Start(true)
	}
}

func (e *Engine) pause(player int) {
	if cd := e.countdowns[player]; cd != nil {
		cd.Pause()
	}
}
