// Package board lays out the N×N grid and the queen figurines that stand on it.
package board

import (
	"queenboard/internal/mathutil"
	"queenboard/internal/scene"
)

const (
	// CellSize is the edge length of one square.
	CellSize = 1.0
	// CellThickness is the height of the box each square is drawn as.
	CellThickness = 0.1
	// FigurineLift raises figurines above the board plane.
	FigurineLift = 0.05
)

// Palette holds the two square colors.
type Palette struct {
	Light scene.Material
	Dark  scene.Material
}

// DefaultPalette is the classic wooden board.
var DefaultPalette = Palette{
	Light: scene.Material{Color: scene.HexColor(0xF0D9B5), Roughness: 1},
	Dark:  scene.Material{Color: scene.HexColor(0xB58863), Roughness: 1},
}

// Cell is one derived square of the grid.
type Cell struct {
	Row, Col int
	Light    bool
	Center   mathutil.Vec3
}

// CellCenter returns the world position of (row, col) on a board of size n.
// Rows run along X and columns along Z; the board is centered on the origin.
// Out-of-range rows and columns extrapolate the same formula.
func CellCenter(row, col, n int) mathutil.Vec3 {
	half := float64(n) * CellSize / 2
	return mathutil.Vec3{
		float64(row)*CellSize - half + CellSize/2,
		0,
		float64(col)*CellSize - half + CellSize/2,
	}
}

// IsLight reports the square color: light when row+col is even.
func IsLight(row, col int) bool {
	return (row+col)%2 == 0
}

// Cells returns all n×n cells in row-major order.
func Cells(n int) []Cell {
	if n <= 0 {
		return nil
	}
	cells := make([]Cell, 0, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cells = append(cells, Cell{
				Row:    row,
				Col:    col,
				Light:  IsLight(row, col),
				Center: CellCenter(row, col, n),
			})
		}
	}
	return cells
}

// Material returns the palette entry for the cell.
func (p Palette) Material(c Cell) scene.Material {
	if c.Light {
		return p.Light
	}
	return p.Dark
}
