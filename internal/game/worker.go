package game

import (
	"errors"
	"math/rand"
)

// Worker is a piece owned by one player. It stores its coordinate rather
// than a cell reference; the board is the single owner of cells.
type Worker struct {
	Owner  int `json:"owner"`
	ID     int `json:"id"`
	pos    Pos
	placed bool
}

func NewWorker(owner, id int) *Worker {
	return &Worker{Owner: owner, ID: id}
}

// Pos returns the worker's coordinate and whether it has been placed.
func (w *Worker) Pos() (Pos, bool) { return w.pos, w.placed }

func (w *Worker) Placed() bool { return w.placed }

// Cell resolves the worker's current cell through the board.
func (w *Worker) Cell(b *Board) *Cell {
	if !w.placed {
		return nil
	}
	return b.At(w.pos)
}

// CanMoveTo reports whether the worker may step onto target: it must be
// free, dry, domeless and at most one level above the worker's cell.
func (w *Worker) CanMoveTo(b *Board, target *Cell) bool {
	from := w.Cell(b)
	if from == nil || target == nil {
		return false
	}
	return !target.IsOccupied() &&
		!target.flooded &&
		!target.block.dome &&
		target.block.level <= from.block.level+1
}

// CanBuildOn has no height restriction.
func (w *Worker) CanBuildOn(target *Cell) bool {
	return target != nil && target.Buildable()
}

// Move relocates the worker without checking legality and reports whether
// it now stands on a level 3 tower.
func (w *Worker) Move(b *Board, target *Cell) bool {
	if target == nil {
		panic("game: move to nil cell")
	}
	if from := w.Cell(b); from != nil && from.occupant == w {
		from.occupant = nil
	}
	w.pos = target.pos
	w.placed = true
	target.occupant = w
	return target.block.level == MaxLevel
}

func (w *Worker) IsOnPerimeter(b *Board) bool {
	return w.placed && b.isPerimeter(w.pos)
}

// PlaceWorkersRandomly puts every worker on a distinct free, undomed cell.
func PlaceWorkersRandomly(b *Board, workers []*Worker, r *rand.Rand) error {
	var free []*Cell
	for _, c := range b.Cells() {
		if !c.IsOccupied() && !c.HasDome() && !c.Flooded() {
			free = append(free, c)
		}
	}
	if len(free) < len(workers) {
		return errors.New("not enough free cells to place workers")
	}
	r.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	for i, w := range workers {
		w.Move(b, free[i])
	}
	return nil
}
