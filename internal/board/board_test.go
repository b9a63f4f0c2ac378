package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"queenboard/internal/mathutil"
	"queenboard/internal/scene"
)

func TestCellCenterKnownValues(t *testing.T) {
	assert.Equal(t, mathutil.Vec3{-3.5, 0, -3.5}, CellCenter(0, 0, 8))
	assert.Equal(t, mathutil.Vec3{3.5, 0, 3.5}, CellCenter(7, 7, 8))
	assert.Equal(t, mathutil.Vec3{0, 0, 0}, CellCenter(1, 1, 3))
	assert.Equal(t, mathutil.Vec3{-0.5, 0, 0.5}, CellCenter(1, 2, 4))
}

func TestCellCentersSymmetric(t *testing.T) {
	for n := 1; n <= 12; n++ {
		centers := map[[2]float64]bool{}
		var sum mathutil.Vec3
		for _, c := range Cells(n) {
			centers[[2]float64{c.Center[0], c.Center[2]}] = true
			sum = sum.Add(c.Center)
			assert.Zero(t, c.Center[1])
		}
		require.Len(t, centers, n*n, "centers are distinct")
		for p := range centers {
			assert.True(t, centers[[2]float64{-p[0], -p[1]}], "n=%d: mirror of %v missing", n, p)
			assert.True(t, centers[[2]float64{-p[0], p[1]}], "n=%d: x-mirror of %v missing", n, p)
		}
		assert.True(t, sum.ApproxEqual(mathutil.Vec3{}, 1e-9))
	}
}

func TestCellsDeterministic(t *testing.T) {
	assert.Equal(t, Cells(5), Cells(5))
	assert.Nil(t, Cells(0))
	assert.Nil(t, Cells(-3))
}

func TestColorParity(t *testing.T) {
	cells := Cells(8)
	require.True(t, cells[0].Light, "cell (0,0) is light")
	for _, c := range cells {
		assert.Equal(t, (c.Row+c.Col)%2 == 0, c.Light)
		if c.Light {
			assert.Equal(t, DefaultPalette.Light, DefaultPalette.Material(c))
		} else {
			assert.Equal(t, DefaultPalette.Dark, DefaultPalette.Material(c))
		}
	}
	assert.Equal(t, [3]uint8{0xF0, 0xD9, 0xB5}, DefaultPalette.Light.Color)
	assert.Equal(t, [3]uint8{0xB5, 0x88, 0x63}, DefaultPalette.Dark.Color)
}

func TestBuildBoard(t *testing.T) {
	s := scene.New()
	c := NewComposer(s, nil)
	cells := c.BuildBoard(8)

	assert.Len(t, cells, 64)
	assert.Equal(t, 64, s.MeshCount())
	assert.Equal(t, 64, c.CellCount())
	assert.Equal(t, 8, c.BoardSize())

	var light int
	s.Traverse(func(n *scene.Node) {
		require.NotNil(t, n.Mesh)
		assert.True(t, n.Mesh.ReceiveShadow)
		assert.Empty(t, n.Tag)
		if n.Mesh.Material == DefaultPalette.Light {
			light++
		}
	})
	assert.Equal(t, 32, light)
}

func TestFigurineParts(t *testing.T) {
	q := NewFigurine(Gold)
	assert.Equal(t, FigurineTag, q.Tag)
	// seven turned parts, five spikes, one orb
	require.Len(t, q.Children, 13)

	top := 0.0
	for _, part := range q.Children {
		require.NotNil(t, part.Mesh)
		assert.True(t, part.Mesh.CastShadow)
		assert.Equal(t, Gold, part.Mesh.Material)
		_, max := part.Mesh.Geometry.Bounds()
		if y := part.Position[1] + max[1]; y > top {
			top = y
		}
	}
	assert.InDelta(t, 1.14, top, 1e-9, "orb crowns the piece")

	// center spike is the tallest spike
	spikes := q.Children[7:12]
	_, centerMax := spikes[0].Mesh.Geometry.Bounds()
	for _, s := range spikes[1:] {
		_, max := s.Mesh.Geometry.Bounds()
		assert.Less(t, max[1], centerMax[1])
		assert.InDelta(t, spikeBaseY, s.Position[1]-max[1], 1e-12, "spikes stand on the crown")
	}
}

func TestPlaceQueensEndToEnd(t *testing.T) {
	s := scene.New()
	c := NewComposer(s, nil)
	c.BuildBoard(8)

	placed := c.PlaceQueens(SamplePlacement)
	require.Len(t, placed, 8)
	for row, q := range placed {
		want := CellCenter(row, SamplePlacement[row], 8)
		want[1] = FigurineLift
		assert.Equal(t, want, q.Position)
		assert.Equal(t, s.Root(), q.Parent())
	}
	assert.Len(t, c.Figurines(), 8)

	cells := 0
	s.Traverse(func(n *scene.Node) {
		if n.Mesh != nil && n.Parent() == s.Root() {
			cells++
		}
	})
	assert.Equal(t, 64, cells)
}

func TestPlaceQueensReplaces(t *testing.T) {
	s := scene.New()
	c := NewComposer(s, nil)
	c.BuildBoard(8)

	c.PlaceQueens(SamplePlacement)
	meshes := s.MeshCount()
	c.PlaceQueens(SamplePlacement)

	assert.Len(t, c.Figurines(), 8, "never 16")
	assert.Equal(t, meshes, s.MeshCount())

	c.PlaceQueens(Placement{1, 3, 0, 2})
	assert.Len(t, c.Figurines(), 4)
	assert.Equal(t, 64+4*13, s.MeshCount())

	c.PlaceQueens(nil)
	assert.Empty(t, c.Figurines())
	assert.Equal(t, 64, s.MeshCount())
}

func TestPlaceQueensUsesPlacementLength(t *testing.T) {
	s := scene.New()
	c := NewComposer(s, nil)
	c.BuildBoard(8)

	placed := c.PlaceQueens(Placement{1, 3, 0, 2})
	// a 4-long vector is laid out on a virtual 4×4 board
	assert.Equal(t, mathutil.Vec3{-1.5, FigurineLift, -0.5}, placed[0].Position)
}

func TestPlaceQueensMalformed(t *testing.T) {
	s := scene.New()
	c := NewComposer(s, nil)
	c.BuildBoard(4)

	placed := c.PlaceQueens(Placement{-1, 9, 2, 2})
	require.Len(t, placed, 4)
	assert.Equal(t, mathutil.Vec3{-1.5, FigurineLift, -2.5}, placed[0].Position)
	assert.Equal(t, mathutil.Vec3{-0.5, FigurineLift, 7.5}, placed[1].Position)
	assert.Equal(t, placed[2].Position[2], placed[3].Position[2], "duplicate columns share a z")
}

func TestPlaceQueensLogs(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	c := NewComposer(scene.New(), zap.New(core))
	c.BuildBoard(8)
	c.PlaceQueens(SamplePlacement)

	entries := recorded.FilterMessage("queens placed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "0,4,7,5,2,6,1,3", entries[0].ContextMap()["placement"])
	assert.EqualValues(t, 8, entries[0].ContextMap()["placed"])
	assert.Empty(t, recorded.FilterMessage("placement size differs from board").All())
}

func TestSetFinish(t *testing.T) {
	c := NewComposer(scene.New(), nil)
	silver := scene.Material{Color: scene.HexColor(0xC0C0C0), Metalness: 1, Roughness: 0.2}
	c.SetFinish(silver)
	q := c.PlaceQueens(Placement{0})[0]
	assert.Equal(t, silver, q.Children[0].Mesh.Material)
}

func TestPlacementString(t *testing.T) {
	assert.Equal(t, "0,4,7,5,2,6,1,3", SamplePlacement.String())
	clone := SamplePlacement.Clone()
	clone[0] = 9
	assert.Equal(t, 0, SamplePlacement[0])
	assert.Nil(t, Placement(nil).Clone())
}
