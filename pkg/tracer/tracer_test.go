package tracer

import (
	"math"
	"testing"

	"github.com/blox3d/luxtrace/pkg/core"
	"github.com/blox3d/luxtrace/pkg/material"
)

// fakeScene implements Scene with a pluggable ray query
type fakeScene struct {
	lights []Light
	cast   func(ray core.Ray, maxDistance float64) (RayHit, bool)
}

func (f *fakeScene) Lights() []Light { return f.lights }

func (f *fakeScene) CastRay(ray core.Ray, maxDistance float64) (RayHit, bool) {
	if f.cast == nil {
		return RayHit{}, false
	}
	return f.cast(ray, maxDistance)
}

// groundScene returns a scene with an infinite horizontal surface at y=0
// (normal +Y) and the given lights. Rays pointing down hit it; shadow rays
// pointing up toward the sky miss.
func groundScene(m material.Material, lights ...Light) *fakeScene {
	return &fakeScene{
		lights: lights,
		cast: func(ray core.Ray, maxDistance float64) (RayHit, bool) {
			if ray.Direction.Y >= 0 || ray.Origin.Y <= 0 {
				return RayHit{}, false
			}
			t := -ray.Origin.Y / ray.Direction.Y
			if t > maxDistance {
				return RayHit{}, false
			}
			return RayHit{
				Material: m,
				Position: ray.At(t),
				Normal:   core.NewVec3(0, 1, 0),
				Distance: t,
			}, true
		},
	}
}

func TestTraceMissReturnsBackground(t *testing.T) {
	background := core.NewColor(0.2, 0.3, 0.4)
	tr := New(Config{Background: background, MaxDepth: 10})
	scene := &fakeScene{}

	got := tr.Trace(scene, core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0)
	if got != background {
		t.Errorf("Expected background %v for a miss, got %v", background, got)
	}
}

func TestShadeAmbientLight(t *testing.T) {
	// A diffuse surface under a single ambient light yields exactly
	// albedo*color*intensity with no shadow test
	albedo := core.NewColor(0.8, 0.6, 0.4)
	lightColor := core.NewColor(1.0, 0.5, 0.25)
	const intensity = 0.5

	scene := groundScene(
		material.NewDiffuse(albedo),
		AmbientLight{Color: lightColor, Intensity: intensity},
	)
	tr := New(DefaultConfig())

	got := tr.Trace(scene, core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), 0)
	want := albedo.Mul(lightColor).Scale(intensity)
	if !colorsNear(got, want, 1e-12) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestShadeDirectionalLight(t *testing.T) {
	albedo := core.NewColor(1, 1, 1)
	light := DirectionalLight{
		Direction: core.NewVec3(0, -1, 0), // Straight down
		Color:     core.White,
		Intensity: math.Pi, // Cancels the 1/π Lambert normalization
	}

	scene := groundScene(material.NewDiffuse(albedo), light)
	tr := New(DefaultConfig())

	got := tr.Trace(scene, core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), 0)
	want := core.NewColor(1, 1, 1) // cos=1, intensity π, /π
	if !colorsNear(got, want, 1e-9) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestShadeDirectionalLightShadowed(t *testing.T) {
	// Everything-blocks scene: every ray hits, so the shadow test fails and
	// the directional light contributes nothing
	scene := &fakeScene{
		lights: []Light{DirectionalLight{
			Direction: core.NewVec3(0, -1, 0),
			Color:     core.White,
			Intensity: 10,
		}},
		cast: func(ray core.Ray, maxDistance float64) (RayHit, bool) {
			return RayHit{
				Material: material.NewDiffuse(core.White),
				Position: ray.At(1),
				Normal:   ray.Direction.Negate(),
				Distance: 1,
			}, true
		},
	}
	tr := New(DefaultConfig())

	got := tr.Trace(scene, core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), 0)
	if got != core.Black {
		t.Errorf("Occluded directional light should contribute zero, got %v", got)
	}
}

func TestShadePointLightFalloff(t *testing.T) {
	// Point light at (0,5,0), intensity 4π, white diffuse surface at y=0.
	// The point directly below receives 1/(25π) per channel.
	light := PointLight{
		Position:  core.NewVec3(0, 5, 0),
		Color:     core.White,
		Intensity: 4 * math.Pi,
	}
	scene := groundScene(material.NewDiffuse(core.White), light)
	tr := New(DefaultConfig())

	got := tr.Trace(scene, core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)), 0)
	want := 1.0 / (25.0 * math.Pi)
	if math.Abs(got.R-want) > 1e-9 || math.Abs(got.G-want) > 1e-9 || math.Abs(got.B-want) > 1e-9 {
		t.Errorf("Expected %f per channel, got %v", want, got)
	}
}

func TestReflectiveZeroMatchesDiffuse(t *testing.T) {
	albedo := core.NewColor(0.3, 0.6, 0.9)
	ambient := AmbientLight{Color: core.White, Intensity: 1}
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	tr := New(DefaultConfig())

	diffuse := tr.Trace(groundScene(material.NewDiffuse(albedo), ambient), ray, 0)
	mirror0 := tr.Trace(groundScene(material.NewReflective(albedo, 0), ambient), ray, 0)

	if !colorsNear(diffuse, mirror0, 1e-12) {
		t.Errorf("Reflectivity 0 should match diffuse: %v vs %v", diffuse, mirror0)
	}
}

func TestReflectiveFullMirrorIgnoresLocalShading(t *testing.T) {
	background := core.NewColor(0.1, 0.2, 0.3)
	ambient := AmbientLight{Color: core.White, Intensity: 100} // Huge local term
	scene := groundScene(material.NewReflective(core.White, 1), ambient)
	tr := New(Config{Background: background, MaxDepth: 10})

	// The reflected ray points back up into the sky, so a perfect mirror
	// shows exactly the background regardless of local lighting
	got := tr.Trace(scene, core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), 0)
	if !colorsNear(got, background, 1e-12) {
		t.Errorf("Perfect mirror should ignore local shading: expected %v, got %v", background, got)
	}
}

func TestMirrorsTerminateAtMaxDepth(t *testing.T) {
	// Mutually facing mirrors: every ray hits a perfect mirror head-on, so
	// tracing only ends via the depth limit
	background := core.NewColor(0.5, 0.5, 0.5)
	const maxDepth = 8

	casts := 0
	scene := &fakeScene{
		cast: func(ray core.Ray, maxDistance float64) (RayHit, bool) {
			casts++
			return RayHit{
				Material: material.NewReflective(core.White, 1),
				Position: ray.At(1),
				Normal:   ray.Direction.Negate(),
				Distance: 1,
			}, true
		},
	}
	tr := New(Config{Background: background, MaxDepth: maxDepth})

	got := tr.Trace(scene, core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0)
	if got != background {
		t.Errorf("Expected background after depth cutoff, got %v", got)
	}
	if casts != maxDepth {
		t.Errorf("Expected exactly %d scene casts, got %d", maxDepth, casts)
	}
}

func TestRefractiveZeroTransparency(t *testing.T) {
	// With transparency 0 the transmitted branch contributes nothing, so the
	// result is mix(black, reflectedBackground, kr)
	background := core.NewColor(1, 1, 1)
	scene := groundScene(material.NewRefractive(core.White, 1.5, 0))
	tr := New(Config{Background: background, MaxDepth: 10})

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	kr := fresnel(ray.Direction, core.NewVec3(0, 1, 0), 1.5)
	got := tr.Trace(scene, ray, 0)
	want := core.Mix(core.Black, background, kr)
	if !colorsNear(got, want, 1e-9) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestFresnelNormalIncidence(t *testing.T) {
	// At normal incidence on glass (n=1.5), reflectance is ((1-1.5)/(1+1.5))^2 = 0.04
	kr := fresnel(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), 1.5)
	if math.Abs(kr-0.04) > 1e-9 {
		t.Errorf("Expected reflectance 0.04, got %f", kr)
	}
}

func TestFresnelTotalInternalReflection(t *testing.T) {
	// Exiting glass beyond the critical angle (~41.8° for n=1.5): all
	// energy reflects
	exit := core.NewVec3(0.5, 1, 0).Normalize() // ~63° from the +X normal
	kr := fresnel(exit, core.NewVec3(1, 0, 0), 1.5)
	if kr != 1 {
		t.Errorf("Expected reflectance 1 under TIR, got %f", kr)
	}
}

func TestTransmitSkipsTotalInternalReflection(t *testing.T) {
	tr := New(DefaultConfig())

	// Ray inside glass exiting at a grazing angle: k < 0, no transmitted ray
	hit := RayHit{
		Material: material.NewRefractive(core.White, 1.5, 1),
		Position: core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
	}
	grazing := core.NewVec3(1, 0.2, 0).Normalize() // Exits: dot(dir, normal) > 0
	if _, ok := tr.transmit(core.NewRay(core.NewVec3(0, -1, 0), grazing), hit, 1.5); ok {
		t.Error("Expected transmission to be skipped under total internal reflection")
	}

	// Straight-through entry refracts without bending
	down := core.NewVec3(0, -1, 0)
	transmitted, ok := tr.transmit(core.NewRay(core.NewVec3(0, 1, 0), down), hit, 1.5)
	if !ok {
		t.Fatal("Expected transmission at normal incidence")
	}
	if transmitted.Direction.Subtract(down).Length() > 1e-9 {
		t.Errorf("Normal-incidence refraction should not bend: got %v", transmitted.Direction)
	}
}

func colorsNear(a, b core.Color, tolerance float64) bool {
	return math.Abs(a.R-b.R) <= tolerance &&
		math.Abs(a.G-b.G) <= tolerance &&
		math.Abs(a.B-b.B) <= tolerance
}
