package renderer

import "time"

// RenderStats summarizes one completed render pass
type RenderStats struct {
	Width   int
	Height  int
	Elapsed time.Duration
	Chunks  []ChunkStats
}

// ChunkStats records the work done by a single worker
type ChunkStats struct {
	Worker  int           // Worker index
	Start   int           // First flat pixel index of the chunk
	Pixels  int           // Number of pixels rendered
	Elapsed time.Duration // Time the worker spent on its chunk
}

// TotalPixels returns the number of pixels rendered across all chunks
func (s RenderStats) TotalPixels() int {
	total := 0
	for _, c := range s.Chunks {
		total += c.Pixels
	}
	return total
}

// PixelsPerSecond returns the overall render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalPixels()) / s.Elapsed.Seconds()
}
