package raster

import (
	"image"

	"queenboard/internal/camera"
	"queenboard/internal/mathutil"
	"queenboard/internal/postprocess"
	"queenboard/internal/scene"
)

// DefaultBackground is the clear color.
var DefaultBackground = [3]uint8{0, 0, 0}

// Renderer draws a scene through a perspective camera into an NRGBA image.
// A Renderer owns its buffers and must not be shared between goroutines;
// several renderers may read the same scene concurrently.
type Renderer struct {
	Background  [3]uint8
	Exposure    float64
	Supersample int

	width, height int
	fb            *FrameBuffer
	shadow        *ShadowMap
	tris          []worldTri
}

// worldTri is a mesh triangle moved to world space.
type worldTri struct {
	v    [3]mathutil.Vec3
	mesh *scene.Mesh
}

// NewRenderer returns a renderer producing width×height images.
// Supersample > 1 renders at that multiple and downsamples.
func NewRenderer(width, height, supersample int) *Renderer {
	if supersample < 1 {
		supersample = 1
	}
	r := &Renderer{
		Background:  DefaultBackground,
		Exposure:    DefaultExposure,
		Supersample: supersample,
		fb:          &FrameBuffer{},
		shadow:      &ShadowMap{},
	}
	r.SetSize(width, height)
	return r
}

// SetSize changes the output size. Non-positive sizes are ignored.
func (r *Renderer) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
}

// Size returns the output size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Render draws s with its own lighting.
func (r *Renderer) Render(s *scene.Scene, cam *camera.Perspective) *image.NRGBA {
	return r.RenderWith(s, cam, s.Lighting)
}

// RenderWith draws the meshes of s lit by lighting instead of the scene's own lights.
func (r *Renderer) RenderWith(s *scene.Scene, cam *camera.Perspective, lighting scene.Lighting) *image.NRGBA {
	ss := r.Supersample
	if ss < 1 {
		ss = 1
	}
	rw, rh := r.width*ss, r.height*ss
	r.fb.Resize(rw, rh)
	r.fb.Clear(r.Background)

	r.collect(s)

	caster := lighting.ShadowCaster()
	var sm *ShadowMap
	if caster != nil && caster.Shadow.MapSize > 0 {
		sm = r.shadow
		sm.Begin(caster)
		for i := range r.tris {
			t := &r.tris[i]
			if t.mesh.CastShadow {
				sm.DrawTriangle(t.v[0], t.v[1], t.v[2])
			}
		}
	}

	var poly [4]clipVert
	for i := range r.tris {
		t := &r.tris[i]

		normal := t.v[1].Sub(t.v[0]).Cross(t.v[2].Sub(t.v[0]))
		if normal.Len() < 1e-12 {
			continue
		}
		normal = normal.Normalize()
		center := t.v[0].Add(t.v[1]).Add(t.v[2]).Scale(1.0 / 3)

		var shadowed *scene.DirectionalLight
		if t.mesh.ReceiveShadow {
			shadowed = caster
		}
		fs := ShadeFace(normal, center, cam.Position, t.mesh.Material, lighting, shadowed)
		var faceMap *ShadowMap
		if shadowed != nil {
			faceMap = sm
		}

		for k := 0; k < 3; k++ {
			poly[k] = clipVert{view: cam.ToView(t.v[k]), world: t.v[k]}
		}
		n := clipNear(&poly, cam.Near)
		if n < 3 {
			continue
		}

		var sv [4]ScreenVert
		for k := 0; k < n; k++ {
			x, y := cam.ViewToScreen(poly[k].view, rw, rh)
			inv := 1 / poly[k].view[2]
			sv[k] = ScreenVert{X: x, Y: y, InvZ: inv, WorldOverZ: poly[k].world.Scale(inv)}
		}
		tri := [3]ScreenVert{sv[0], sv[1], sv[2]}
		RasterizeTriangle(r.fb, &tri, &fs, faceMap, r.Exposure)
		if n == 4 {
			tri = [3]ScreenVert{sv[0], sv[2], sv[3]}
			RasterizeTriangle(r.fb, &tri, &fs, faceMap, r.Exposure)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, rw, rh))
	copy(img.Pix, r.fb.Color)

	if ss > 1 {
		img = postprocess.Downsample(img, r.width, r.height)
	}
	return img
}

// collect flattens every mesh in s into world-space triangles.
func (r *Renderer) collect(s *scene.Scene) {
	r.tris = r.tris[:0]
	s.Traverse(func(n *scene.Node) {
		if n.Mesh == nil || n.Mesh.Geometry == nil {
			return
		}
		origin := n.WorldPosition()
		verts := n.Mesh.Geometry.Verts
		for _, tri := range n.Mesh.Geometry.Tris {
			if tri[0] >= len(verts) || tri[1] >= len(verts) || tri[2] >= len(verts) {
				continue
			}
			r.tris = append(r.tris, worldTri{
				v: [3]mathutil.Vec3{
					verts[tri[0]].Add(origin),
					verts[tri[1]].Add(origin),
					verts[tri[2]].Add(origin),
				},
				mesh: n.Mesh,
			})
		}
	})
}
