package game

// MaxLevel is the tallest a tower gets before it can only be capped by a dome.
const MaxLevel = 3

// DefaultBoardSize is used when a board is requested with a non-positive dimension.
const DefaultBoardSize = 5

type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SelectedStatus is the transient UI mark a renderer draws on a cell.
type SelectedStatus int

const (
	StatusNone SelectedStatus = iota
	StatusSelected
	StatusHighlighted
)

func (s SelectedStatus) String() string {
	switch s {
	case StatusSelected:
		return "selected"
	case StatusHighlighted:
		return "highlighted"
	default:
		return "none"
	}
}

// HighlightType is the reason a cell is highlighted.
type HighlightType int

const (
	HighlightNone HighlightType = iota
	HighlightMove
	HighlightBuild
	HighlightArtifact
)

func (h HighlightType) String() string {
	switch h {
	case HighlightMove:
		return "move"
	case HighlightBuild:
		return "build"
	case HighlightArtifact:
		return "artifact-usable"
	default:
		return "none"
	}
}

// Block is the building standing on a cell.
type Block struct {
	level int
	dome  bool
}

func (b *Block) Level() int { return b.level }
func (b *Block) HasDome() bool { return b.dome }

// Build raises the tower by one level, or caps a level 3 tower with a dome.
func (b *Block) Build() {
	if b.dome {
		return
	}
	if b.level < MaxLevel {
		b.level++
		return
	}
	b.dome = true
}

// Destroy removes the topmost level. The dome is never touched.
func (b *Block) Destroy() {
	if b.level > 0 {
		b.level--
	}
}

type Cell struct {
	pos       Pos
	block     Block
	occupant  *Worker
	flooded   bool
	status    SelectedStatus
	highlight HighlightType
}

func (c *Cell) Pos() Pos { return c.pos }
func (c *Cell) Row() int { return c.pos.Row }
func (c *Cell) Col() int { return c.pos.Col }
func (c *Cell) Block() *Block { return &c.block }
func (c *Cell) Level() int { return c.block.level }
func (c *Cell) HasDome() bool { return c.block.dome }
func (c *Cell) Occupant() *Worker { return c.occupant }
func (c *Cell) IsOccupied() bool { return c.occupant != nil }
func (c *Cell) Flooded() bool { return c.flooded }
func (c *Cell) Status() SelectedStatus { return c.status }
func (c *Cell) Highlight() HighlightType { return c.highlight }

func (c *Cell) IsHighlighted(h HighlightType) bool {
	return c.status == StatusHighlighted && c.highlight == h
}

// Buildable reports whether one more build step may land here.
func (c *Cell) Buildable() bool {
	return !c.IsOccupied() && !c.block.dome && !c.flooded
}

// Flood turns the cell into permanent impassable terrain. Flooding twice is a no-op.
func (c *Cell) Flood() {
	c.flooded = true
	c.mark(StatusNone, HighlightNone)
}

func (c *Cell) mark(status SelectedStatus, h HighlightType) {
	c.status = status
	c.highlight = h
}

// neighbours is the Moore neighbourhood used for moving and building.
var neighbours = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
