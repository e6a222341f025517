package renderer

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/blox3d/luxtrace/pkg/core"
	"github.com/blox3d/luxtrace/pkg/tracer"
)

// Camera describes the virtual camera a frame is rendered from. Direction
// and Up must be unit-length and non-parallel.
type Camera struct {
	Translation core.Vec3
	Direction   core.Vec3
	Up          core.Vec3
	FOV         float64 // Vertical field of view in radians
	Background  core.Color
}

// Config contains rendering configuration
type Config struct {
	MaxDepth int // Maximum recursion depth for reflection/refraction
	Workers  int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth: 10,
		Workers:  0,
	}
}

// Renderer drives a parallel sweep over all pixels of a frame. The viewport
// geometry is derived once at construction and immutable afterwards, so a
// renderer is safe for concurrent use.
type Renderer struct {
	camera Camera
	width  int
	height int
	config Config
	tracer *tracer.Tracer

	pixelDeltaU  core.Vec3
	pixelDeltaV  core.Vec3
	topLeftPixel core.Vec3
}

// New creates a renderer for the given camera and output size.
// Panics if height is not positive or the camera basis is degenerate
// (direction parallel to up); these are caller precondition violations.
func New(camera Camera, width, height int, config Config) *Renderer {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("renderer: invalid dimensions %dx%d", width, height))
	}

	const focalLength = 1.0
	h := math.Tan(camera.FOV / 2)
	viewportHeight := 2 * h * focalLength
	viewportWidth := viewportHeight * (float64(width) / float64(height))

	// Orthonormal basis: w looks backward, u right, v up
	w := camera.Direction.Negate()
	u := camera.Up.Cross(w)
	if u.Length() < 1e-12 {
		panic("renderer: camera direction is parallel to up")
	}
	u = u.Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(width))
	pixelDeltaV := viewportV.Divide(float64(height))

	// Top-left sample point, offset by half a pixel
	topLeftPixel := camera.Translation.
		Subtract(w.Multiply(focalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2)).
		Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Renderer{
		camera: camera,
		width:  width,
		height: height,
		config: config,
		tracer: tracer.New(tracer.Config{
			Background: camera.Background,
			MaxDepth:   config.MaxDepth,
		}),
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		topLeftPixel: topLeftPixel,
	}
}

// Width returns the output width in pixels
func (r *Renderer) Width() int { return r.width }

// Height returns the output height in pixels
func (r *Renderer) Height() int { return r.height }

// Render allocates a width*height buffer, renders the scene into it and
// returns it. Pixel (x,y) lands at index y*width+x.
func (r *Renderer) Render(s tracer.Scene) []core.Color {
	pixels := make([]core.Color, r.width*r.height)
	r.RenderInto(s, pixels)
	return pixels
}

// RenderInto renders the scene into the provided buffer, which must have
// exactly width*height elements (panics otherwise). The flat pixel range is
// split into contiguous chunks, one worker per chunk; the remainder of an
// uneven split is folded into the last chunk so no pixel is dropped.
// Workers write disjoint slices, so no locking is needed, and the output is
// deterministic regardless of worker count. Blocks until all workers finish.
func (r *Renderer) RenderInto(s tracer.Scene, pixels []core.Color) RenderStats {
	if len(pixels) != r.width*r.height {
		panic(fmt.Sprintf("renderer: buffer length %d does not match %dx%d frame",
			len(pixels), r.width, r.height))
	}

	workers := r.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	total := len(pixels)
	chunkSize := total / workers
	if chunkSize == 0 {
		workers = 1
		chunkSize = total
	}

	stats := RenderStats{
		Width:  r.width,
		Height: r.height,
		Chunks: make([]ChunkStats, workers),
	}

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		chunkStart := i * chunkSize
		chunkEnd := chunkStart + chunkSize
		if i == workers-1 {
			chunkEnd = total
		}

		wg.Add(1)
		go func(worker, from, to int) {
			defer wg.Done()
			chunkTime := time.Now()
			for idx := from; idx < to; idx++ {
				x := idx % r.width
				y := idx / r.width
				pixels[idx] = r.RenderPixel(s, x, y)
			}
			stats.Chunks[worker] = ChunkStats{
				Worker:  worker,
				Start:   from,
				Pixels:  to - from,
				Elapsed: time.Since(chunkTime),
			}
		}(i, chunkStart, chunkEnd)
	}
	wg.Wait()

	stats.Elapsed = time.Since(start)
	return stats
}

// RenderPixel traces the primary ray through pixel (x,y) at recursion
// depth 0 and returns its linear color
func (r *Renderer) RenderPixel(s tracer.Scene, x, y int) core.Color {
	sample := r.topLeftPixel.
		Add(r.pixelDeltaU.Multiply(float64(x))).
		Add(r.pixelDeltaV.Multiply(float64(y)))

	direction := sample.Subtract(r.camera.Translation).Normalize()
	ray := core.NewRay(r.camera.Translation, direction)

	return r.tracer.Trace(s, ray, 0)
}
