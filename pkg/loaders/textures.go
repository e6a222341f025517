// Package loaders reads texture assets from disk and converts them into the
// linear-color textures the tracing core samples. Asset decoding is glue
// around the core, not part of it.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"math"
	"os"
	"path/filepath"

	"github.com/blox3d/luxtrace/pkg/core"
	"github.com/blox3d/luxtrace/pkg/material"
	"github.com/blox3d/luxtrace/pkg/scene"
)

// Block texture file names, matching the original asset layout
var blockTextureFiles = []string{
	"000_dirt.png",
	"001_stone.png",
	"002_sand.png",
	"003_grass_side.png",
	"004_grass_top.png",
	"005_wood.png",
	"006_leaves.png",
	"007_water.png",
}

// LoadTexture loads an image file and converts its sRGB texels to linear
func LoadTexture(filename string) (*material.Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	texels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			texels[y*width+x] = core.NewColor(
				srgbToLinear(float64(r)/65535.0),
				srgbToLinear(float64(g)/65535.0),
				srgbToLinear(float64(b)/65535.0),
			)
		}
	}

	return material.NewTexture(width, height, texels), nil
}

// LoadBlockAtlas builds a block atlas from the textures in dir. Files that
// are missing fall back to the solid-color palette, so a partial or absent
// asset directory still renders.
func LoadBlockAtlas(dir string) (*scene.BlockAtlas, error) {
	atlas := scene.NewSolidAtlas()
	if dir == "" {
		return atlas, nil
	}

	slots := []**material.Texture{
		&atlas.Dirt, &atlas.Stone, &atlas.Sand,
		&atlas.GrassSide, &atlas.GrassTop,
		&atlas.Wood, &atlas.Leaves, &atlas.Water,
	}

	for i, name := range blockTextureFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue // Keep the solid fallback
		}
		texture, err := LoadTexture(path)
		if err != nil {
			return nil, fmt.Errorf("loading block texture %s: %w", name, err)
		}
		*slots[i] = texture
	}

	return atlas, nil
}

// srgbToLinear applies the inverse sRGB transfer function to one channel
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
