package tracer

import (
	"math"

	"github.com/blox3d/luxtrace/pkg/core"
	"github.com/blox3d/luxtrace/pkg/material"
)

// Config contains tracing configuration
type Config struct {
	Background core.Color // Color returned for rays that leave the scene
	MaxDepth   int        // Maximum recursion depth for reflection/refraction
	ShadowBias float64    // Ray-origin offset preventing self-intersection
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Background: core.Black,
		MaxDepth:   10,
		ShadowBias: 1e-3,
	}
}

// Tracer recursively evaluates reflection, refraction and direct lighting
// for rays against an abstract scene. It is stateless during tracing and
// safe for concurrent use.
type Tracer struct {
	config Config
}

// New creates a new tracer
func New(config Config) *Tracer {
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultConfig().MaxDepth
	}
	if config.ShadowBias <= 0 {
		config.ShadowBias = DefaultConfig().ShadowBias
	}
	return &Tracer{config: config}
}

// Trace returns the color seen along ray. Recursion stops at MaxDepth and
// rays that hit nothing resolve to the background color.
func (t *Tracer) Trace(scene Scene, ray core.Ray, depth int) core.Color {
	if depth >= t.config.MaxDepth {
		return t.config.Background
	}

	hit, ok := scene.CastRay(ray, math.Inf(1))
	if !ok {
		return t.config.Background
	}

	switch m := hit.Material.(type) {
	case material.Diffuse:
		return t.shade(scene, m.Albedo, hit.Position, hit.Normal)

	case material.Reflective:
		local := t.shade(scene, m.Albedo, hit.Position, hit.Normal)
		reflected := t.Trace(scene, t.reflect(ray, hit), depth+1)
		return core.Mix(local, reflected, m.Reflectivity)

	case material.Refractive:
		kr := fresnel(ray.Direction, hit.Normal, m.Index)

		refracted := core.Black
		if kr < 1 {
			if transmitted, ok := t.transmit(ray, hit, m.Index); ok {
				refracted = t.Trace(scene, transmitted, depth+1)
			}
		}
		reflected := t.Trace(scene, t.reflect(ray, hit), depth+1)

		return core.Mix(m.Albedo.Mul(refracted).Scale(m.Transparency), reflected, kr)

	default:
		return t.config.Background
	}
}

// shade sums the direct contribution of every light at a surface point
func (t *Tracer) shade(scene Scene, albedo core.Color, position, normal core.Vec3) core.Color {
	result := core.Black

	for _, light := range scene.Lights() {
		switch l := light.(type) {
		case AmbientLight:
			result = result.Add(albedo.Mul(l.Color).Scale(l.Intensity))

		case DirectionalLight:
			dirToLight := l.Direction.Negate()
			if t.inShadow(scene, position, normal, dirToLight, math.Inf(1)) {
				continue
			}
			lambert := math.Max(normal.Dot(dirToLight), 0)
			result = result.Add(albedo.Mul(l.Color).Scale(lambert * l.Intensity / math.Pi))

		case PointLight:
			toLight := l.Position.Subtract(position)
			distance := toLight.Length()
			dirToLight := toLight.Normalize()
			if t.inShadow(scene, position, normal, dirToLight, distance) {
				continue
			}
			irradiance := l.Intensity / (4 * math.Pi * distance * distance)
			lambert := math.Max(normal.Dot(dirToLight), 0)
			result = result.Add(albedo.Mul(l.Color).Scale(lambert * irradiance / math.Pi))
		}
	}

	return result
}

// inShadow casts a shadow ray toward a light and reports whether anything
// blocks it within maxDistance. The origin is offset along both the normal
// and the light direction to avoid shadow acne.
func (t *Tracer) inShadow(scene Scene, position, normal, dirToLight core.Vec3, maxDistance float64) bool {
	origin := position.Add(normal.Add(dirToLight).Multiply(t.config.ShadowBias))
	_, blocked := scene.CastRay(core.NewRay(origin, dirToLight), maxDistance)
	return blocked
}

// reflect mirrors the ray about the hit normal
func (t *Tracer) reflect(ray core.Ray, hit RayHit) core.Ray {
	direction := ray.Direction.
		Subtract(hit.Normal.Multiply(2 * ray.Direction.Dot(hit.Normal))).
		Normalize()
	origin := hit.Position.Add(hit.Normal.Add(direction).Multiply(t.config.ShadowBias))
	return core.NewRay(origin, direction)
}

// transmit bends the ray through the surface using Snell's law. The second
// return value is false under total internal reflection, in which case the
// transmitted branch must be skipped entirely.
func (t *Tracer) transmit(ray core.Ray, hit RayHit, index float64) (core.Ray, bool) {
	normal := hit.Normal
	cosi := ray.Direction.Dot(normal)

	var etai, etat float64
	if cosi < 0 {
		// Entering the material
		etai, etat = 1, index
		cosi = -cosi
	} else {
		// Exiting: flip the normal so it faces the incoming ray
		normal = normal.Negate()
		etai, etat = index, 1
	}

	eta := etai / etat
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		// Total internal reflection: no valid transmitted direction
		return core.Ray{}, false
	}

	direction := ray.Direction.Add(normal.Multiply(cosi)).Multiply(eta).
		Subtract(normal.Multiply(math.Sqrt(k))).
		Normalize()
	origin := hit.Position.Add(normal.Negate().Add(direction).Multiply(t.config.ShadowBias))
	return core.NewRay(origin, direction), true
}

// fresnel returns the dielectric reflectance for a ray hitting a surface
// with the given refractive index, averaging the s- and p-polarized terms.
// Returns 1 under total internal reflection.
func fresnel(direction, normal core.Vec3, index float64) float64 {
	cosi := math.Max(-1, math.Min(1, direction.Dot(normal)))
	etai, etat := 1.0, index
	if cosi > 0 {
		etai, etat = etat, etai
	}

	sint := etai / etat * math.Sqrt(math.Max(0, 1-cosi*cosi))
	if sint >= 1 {
		return 1
	}

	cost := math.Sqrt(math.Max(0, 1-sint*sint))
	cosi = math.Abs(cosi)
	rs := (etat*cosi - etai*cost) / (etat*cosi + etai*cost)
	rp := (etai*cosi - etat*cost) / (etai*cosi + etat*cost)
	return (rs*rs + rp*rp) / 2
}
