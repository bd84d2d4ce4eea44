package game

// Board is a fixed rows x cols arena of cells. Cells are addressed by
// coordinate and never move; workers hold a coordinate and resolve their
// cell through the board.
type Board struct {
	rows, cols int
	cells      []Cell
	lastBuilt  *Cell
	lastMoved  *Cell
}

func NewBoard(rows, cols int) *Board {
	if rows <= 0 {
		rows = DefaultBoardSize
	}
	if cols <= 0 {
		cols = DefaultBoardSize
	}

	cells := make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[r*cols+c] = Cell{pos: Pos{Row: r, Col: c}}
		}
	}

	return &Board{rows: rows, cols: cols, cells: cells}
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// Cell returns the cell at (row, col), or nil when out of bounds.
func (b *Board) Cell(row, col int) *Cell {
	if !b.IsValidPosition(row, col) {
		return nil
	}
	return &b.cells[row*b.cols+col]
}

func (b *Board) At(p Pos) *Cell { return b.Cell(p.Row, p.Col) }

// Cells returns every cell in row-major order.
func (b *Board) Cells() []*Cell {
	out := make([]*Cell, len(b.cells))
	for i := range b.cells {
		out[i] = &b.cells[i]
	}
	return out
}

func (b *Board) IsValidPosition(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Build applies one build step at (row, col) if the cell accepts it.
func (b *Board) Build(row, col int) bool {
	target := b.Cell(row, col)
	if target == nil || !target.Buildable() {
		return false
	}
	target.block.Build()
	b.lastBuilt = target
	return true
}

// LastBuilt is the most recently built cell.
func (b *Board) LastBuilt() *Cell { return b.lastBuilt }

// LastMoved is the cell the active worker was selected from.
func (b *Board) LastMoved() *Cell { return b.lastMoved }

func (b *Board) SetLastMoved(c *Cell) { b.lastMoved = c }

// Selected returns the first cell carrying the selected mark.
func (b *Board) Selected() *Cell {
	for i := range b.cells {
		if b.cells[i].status == StatusSelected {
			return &b.cells[i]
		}
	}
	return nil
}

func (b *Board) ClearMarkings() {
	for i := range b.cells {
		b.cells[i].mark(StatusNone, HighlightNone)
	}
}

func (b *Board) isPerimeter(p Pos) bool {
	return p.Row == 0 || p.Row == b.rows-1 || p.Col == 0 || p.Col == b.cols-1
}
