package scene

import "queenboard/internal/mathutil"

// AmbientLight lights every face equally.
type AmbientLight struct {
	Color     [3]uint8
	Intensity float64
}

// ShadowCamera is the orthographic volume a directional light renders its shadow map from.
type ShadowCamera struct {
	Left, Right, Top, Bottom float64
	Near, Far                float64
}

// Shadow configures shadow-map rendering for a light.
type Shadow struct {
	MapSize int
	Camera  ShadowCamera
	Bias    float64 // world units subtracted from the receiver depth
	Soft    bool    // 3×3 percentage-closer filtering
}

// DirectionalLight shines from Position toward Target.
type DirectionalLight struct {
	Color      [3]uint8
	Intensity  float64
	Position   mathutil.Vec3
	Target     mathutil.Vec3
	CastShadow bool
	Shadow     Shadow
}

// Direction returns the unit vector the light travels along.
func (l *DirectionalLight) Direction() mathutil.Vec3 {
	return l.Target.Sub(l.Position).Normalize()
}

// Lighting is everything that lights a scene.
type Lighting struct {
	Ambient     AmbientLight
	Directional []*DirectionalLight
}

// Clone deep-copies the lights so a frame can be rendered while the originals keep moving.
func (l Lighting) Clone() Lighting {
	out := Lighting{Ambient: l.Ambient}
	if l.Directional != nil {
		out.Directional = make([]*DirectionalLight, len(l.Directional))
		for i, d := range l.Directional {
			cp := *d
			out.Directional[i] = &cp
		}
	}
	return out
}

// ShadowCaster returns the first light that casts shadows, or nil.
func (l Lighting) ShadowCaster() *DirectionalLight {
	for _, d := range l.Directional {
		if d.CastShadow {
			return d
		}
	}
	return nil
}
