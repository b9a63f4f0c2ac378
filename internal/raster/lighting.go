package raster

import (
	"math"

	"queenboard/internal/mathutil"
	"queenboard/internal/scene"
)

// Tone mapping and gamma settings.
const (
	DefaultExposure = 1.0
	SRGBGamma       = 2.2
	invGamma        = 1.0 / SRGBGamma

	// metals lose this share of their diffuse term at Metalness 1
	metalDiffuseLoss = 0.6
	// dielectric specular reflectance
	baseReflectance = 0.04
	specularBoost   = 2.0
)

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, SRGBGamma)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// LinearColor decodes an sRGB triple.
func LinearColor(c [3]uint8) mathutil.Vec3 {
	return mathutil.Vec3{srgbToLinear[c[0]], srgbToLinear[c[1]], srgbToLinear[c[2]]}
}

// FaceShade is the flat lighting of one triangle, split by whether the shadow map may darken it.
// A pixel's linear color is Lit + Shadowable×visibility.
type FaceShade struct {
	Lit        mathutil.Vec3
	Shadowable mathutil.Vec3
}

// ShadeFace computes flat Lambert + Blinn-Phong lighting for a face with the given normal.
// The normal is flipped toward the eye so faces are lit from either side.
// shadowed names the light whose contribution goes to Shadowable; it may be nil.
func ShadeFace(normal, center, eye mathutil.Vec3, mat scene.Material, lighting scene.Lighting, shadowed *scene.DirectionalLight) FaceShade {
	view := eye.Sub(center).Normalize()
	if normal.Dot(view) < 0 {
		normal = normal.Scale(-1)
	}

	albedo := LinearColor(mat.Color)
	diffuseWeight := 1 - metalDiffuseLoss*mathutil.Clamp(mat.Metalness, 0, 1)
	rough := mathutil.Clamp(mat.Roughness, 0, 1)
	specColor := mathutil.Vec3{baseReflectance, baseReflectance, baseReflectance}.Lerp(albedo, mathutil.Clamp(mat.Metalness, 0, 1))
	specStrength := (1 - rough) * specularBoost
	specPow := 2/(rough*rough+1e-4) - 2
	if specPow < 1 {
		specPow = 1
	}

	var fs FaceShade
	amb := LinearColor(lighting.Ambient.Color).Scale(lighting.Ambient.Intensity)
	fs.Lit = amb.Mul(albedo)

	for _, l := range lighting.Directional {
		toLight := l.Direction().Scale(-1)
		ndl := normal.Dot(toLight)
		if ndl <= 0 {
			continue
		}
		radiance := LinearColor(l.Color).Scale(l.Intensity)
		contrib := albedo.Scale(ndl * diffuseWeight)

		if specStrength > 0 {
			half := toLight.Add(view).Normalize()
			ndh := normal.Dot(half)
			if ndh > 0 {
				contrib = contrib.Add(specColor.Scale(math.Pow(ndh, specPow) * specStrength))
			}
		}
		contrib = contrib.Mul(radiance)

		if l == shadowed {
			fs.Shadowable = fs.Shadowable.Add(contrib)
		} else {
			fs.Lit = fs.Lit.Add(contrib)
		}
	}
	return fs
}

// encode tone-maps a linear channel and returns the sRGB byte.
func encode(v, exposure float64) uint8 {
	t := ACESTonemap(v * exposure)
	return clamp255(math.Pow(math.Max(t, 0), invGamma) * 255)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
