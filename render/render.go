// SPDX-FileCopyrightText: 2023 Speleoworks
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"
	"github.com/speleoworks/karst/noise"
	"image"
	"image/color"
)

// Map renders a top-down slice of one channel at height y, with the
// block at (x0, z0) in the top-left corner. Columns come from the
// interpolating sampler tile by tile, so the image shows the field a
// carving driver would actually consume.
func Map(g *noise.Generator, x0, z0, y, width, depth, channel int) (*image.Gray, error) {
	if width < 1 || depth < 1 {
		return nil, fmt.Errorf("render: empty %dx%d map", width, depth)
	}
	if channel < 0 || channel >= g.Channels() {
		return nil, fmt.Errorf("render: channel %d outside [0, %d)", channel, g.Channels())
	}
	img := image.NewGray(image.Rect(0, 0, width, depth))
	span := g.Span()
	for tx := 0; tx < width; tx += span {
		for tz := 0; tz < depth; tz += span {
			start := noise.Pos{X: x0 + tx, Z: z0 + tz}
			end := noise.Pos{X: start.X + span - 1, Z: start.Z + span - 1}
			cube, err := g.InterpolateCube(start, end, y, y)
			if err != nil {
				return nil, err
			}
			// Tiles are always a full span wide; the ones over the
			// right and bottom edges get cropped.
			for i := 0; i < span && tx+i < width; i++ {
				for j := 0; j < span && tz+j < depth; j++ {
					img.SetGray(tx+i, tz+j, grayColor(cube.At(i, j).At(y)[channel]))
				}
			}
		}
	}
	return img, nil
}

// Section renders a vertical cross-section of one channel, scanning
// depth blocks along z at fixed x. Row 0 is maxY. Every column is
// sampled at full resolution.
func Section(g *noise.Generator, x, z0, minY, maxY, depth, channel int) (*image.Gray, error) {
	if minY > maxY {
		return nil, fmt.Errorf("render: height range [%d, %d] is reversed", minY, maxY)
	}
	if depth < 1 {
		return nil, fmt.Errorf("render: empty section of depth %d", depth)
	}
	if channel < 0 || channel >= g.Channels() {
		return nil, fmt.Errorf("render: channel %d outside [0, %d)", channel, g.Channels())
	}
	img := image.NewGray(image.Rect(0, 0, depth, maxY-minY+1))
	for j := 0; j < depth; j++ {
		col, err := g.GenerateColumn(x, z0+j, minY, maxY)
		if err != nil {
			return nil, err
		}
		for y := minY; y <= maxY; y++ {
			img.SetGray(j, maxY-y, grayColor(col.At(y)[channel]))
		}
	}
	return img, nil
}

// grayColor maps a noise value from [-1, 1] to an 8-bit gray level.
func grayColor(v float32) color.Gray {
	return color.Gray{Y: floatToByte((v + 1) * 0.5)}
}

func floatToByte(f float32) byte {
	if f < 0 {
		return 0
	}
	if f > 1.0 {
		return 255
	}
	return byte(f * 255)
}
