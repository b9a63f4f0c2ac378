package board

import (
	"go.uber.org/zap"

	"queenboard/internal/geometry"
	"queenboard/internal/scene"
)

// Composer adds the board and the figurines to a scene.
type Composer struct {
	scene   *scene.Scene
	palette Palette
	finish  scene.Material
	log     *zap.Logger

	size  int
	cells int
}

// NewComposer returns a composer drawing into s. A nil logger disables logging.
func NewComposer(s *scene.Scene, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{
		scene:   s,
		palette: DefaultPalette,
		finish:  Gold,
		log:     log,
	}
}

// SetPalette changes the square colors used by later BuildBoard calls.
func (c *Composer) SetPalette(p Palette) {
	c.palette = p
}

// SetFinish changes the material used by later PlaceQueens calls.
func (c *Composer) SetFinish(m scene.Material) {
	c.finish = m
}

// BuildBoard adds n×n squares to the scene and returns the cells it laid out.
// Squares are never removed.
func (c *Composer) BuildBoard(n int) []Cell {
	cells := Cells(n)
	// all squares share one box; only materials differ
	box := geometry.Box(CellSize, CellThickness, CellSize)
	for _, cell := range cells {
		c.scene.Add(scene.NewMesh("square", &scene.Mesh{
			Geometry:      box,
			Material:      c.palette.Material(cell),
			ReceiveShadow: true,
		}, cell.Center))
	}
	c.size = n
	c.cells += len(cells)
	c.log.Debug("board built", zap.Int("size", n), zap.Int("cells", len(cells)))
	return cells
}

// BoardSize returns the n of the last BuildBoard call.
func (c *Composer) BoardSize() int {
	return c.size
}

// CellCount returns the number of squares added so far.
func (c *Composer) CellCount() int {
	return c.cells
}

// PlaceQueens replaces every figurine in the scene with one per entry of p.
// Positions use len(p) as the board size, whatever size the board was built with.
func (c *Composer) PlaceQueens(p Placement) []*scene.Node {
	removed := c.scene.RemoveTagged(FigurineTag)

	n := len(p)
	if n != c.size {
		c.log.Debug("placement size differs from board", zap.Int("placement", n), zap.Int("board", c.size))
	}

	placed := make([]*scene.Node, 0, n)
	for row, col := range p {
		q := NewFigurine(c.finish)
		q.Position = CellCenter(row, col, n)
		q.Position[1] = FigurineLift
		c.scene.Add(q)
		placed = append(placed, q)
	}

	c.log.Debug("queens placed",
		zap.Stringer("placement", p),
		zap.Int("removed", removed),
		zap.Int("placed", len(placed)))
	return placed
}

// Figurines returns the figurines currently in the scene.
func (c *Composer) Figurines() []*scene.Node {
	return c.scene.FindTagged(FigurineTag)
}
