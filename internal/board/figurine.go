package board

import (
	"queenboard/internal/geometry"
	"queenboard/internal/mathutil"
	"queenboard/internal/scene"
)

// FigurineTag marks queen figurine groups in the scene.
const FigurineTag = "queen"

// Gold is the figurine finish.
var Gold = scene.Material{Color: scene.HexColor(0xDAA520), Metalness: 0.8, Roughness: 0.1}

// turnedPart is one solid of revolution in the figurine profile.
type turnedPart struct {
	name                 string
	radiusTop, radiusBot float64
	height               float64
	centerY              float64
}

var queenProfile = []turnedPart{
	{"base", 0.40, 0.45, 0.12, 0.06},
	{"lower", 0.32, 0.40, 0.20, 0.22},
	{"waist", 0.18, 0.32, 0.15, 0.395},
	{"upper", 0.28, 0.18, 0.18, 0.56},
	{"neck", 0.22, 0.28, 0.08, 0.69},
	{"crown-base", 0.26, 0.22, 0.06, 0.76},
	{"crown-band", 0.24, 0.26, 0.08, 0.83},
}

type spike struct {
	x, z, height float64
}

// center spike is tallest
var crownSpikes = []spike{
	{0, 0, 0.22},
	{0.15, 0, 0.15},
	{-0.15, 0, 0.15},
	{0, 0.15, 0.15},
	{0, -0.15, 0.15},
}

const (
	profileSegments = 32
	spikeRadius     = 0.04
	spikeSegments   = 12
	spikeBaseY      = 0.87
	orbRadius       = 0.05
	orbY            = 1.09
)

// NewFigurine builds a tagged queen group whose local origin sits at the bottom of the base.
// Every part gets its own copy of mat.
func NewFigurine(mat scene.Material) *scene.Node {
	g := scene.NewGroup("queen")
	g.Tag = FigurineTag

	part := func(name string, geo *geometry.Geometry, pos mathutil.Vec3) {
		g.Add(scene.NewMesh(name, &scene.Mesh{
			Geometry:      geo,
			Material:      mat,
			CastShadow:    true,
			ReceiveShadow: true,
		}, pos))
	}

	for _, p := range queenProfile {
		part(p.name, geometry.Cylinder(p.radiusTop, p.radiusBot, p.height, profileSegments), mathutil.Vec3{0, p.centerY, 0})
	}
	for _, s := range crownSpikes {
		part("spike", geometry.Cone(spikeRadius, s.height, spikeSegments), mathutil.Vec3{s.x, spikeBaseY + s.height/2, s.z})
	}
	part("orb", geometry.Sphere(orbRadius, 16, 12), mathutil.Vec3{0, orbY, 0})

	return g
}
