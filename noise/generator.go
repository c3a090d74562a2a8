// SPDX-FileCopyrightText: 2023 Speleoworks
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"fmt"
	"github.com/speleoworks/karst/fractal"
)

const (
	// channelSeedStride spreads the per-channel seeds far enough apart
	// that neighboring channels stay decorrelated.
	channelSeedStride = 1111
	// turbulenceSeedOffset decorrelates the warp from channel 0.
	turbulenceSeedOffset = 69
)

// Params configures a Generator.
type Params struct {
	// Channels is the number of values sampled per point. Must be at
	// least 1.
	Channels int
	// Noise parameterizes every channel's fractal function.
	Noise fractal.Settings
	// Turbulence parameterizes the domain warp applied to coordinates
	// before sampling when UseTurbulence is set.
	Turbulence fractal.Settings
	// TurbulenceAmp is the warp displacement in compressed-coordinate
	// units.
	TurbulenceAmp float32
	UseTurbulence bool
	// YCompression scales block heights into noise space. Lower values
	// stretch features vertically.
	YCompression float32
	// XZCompression scales horizontal block coordinates into noise
	// space. Lower values stretch features horizontally.
	XZCompression float32
	// Span is the interpolation stride: the interpolating entry points
	// sample real noise every Span blocks and blend between. Must be a
	// power of two, at least 2.
	Span int
}

// Pos is a horizontal block position.
type Pos struct {
	X int
	Z int
}

// Generator samples a multi-channel scalar field over block
// coordinates. It is immutable after construction and safe for
// concurrent use. The same seed and Params always reproduce the same
// field, block for block.
type Generator struct {
	seed       int64
	channels   []*fractal.Source
	turbulence *fractal.Perturber
	yComp      float32
	xzComp     float32
	tables     coeffs
}

// New builds a Generator for a seed. Channel i samples a fractal
// function seeded seed + 1111*(i+1), and the turbulence warp, when
// enabled, is seeded seed + 69, so every channel of every seed sees an
// unrelated field.
func New(seed int64, p Params) (*Generator, error) {
	if p.Channels < 1 {
		return nil, fmt.Errorf("noise: channels must be at least 1, got %d", p.Channels)
	}
	if p.Span < 2 || p.Span&(p.Span-1) != 0 {
		return nil, fmt.Errorf("noise: span must be a power of two at least 2, got %d", p.Span)
	}
	if p.YCompression < 0 || p.XZCompression < 0 {
		return nil, fmt.Errorf("noise: compression must not be negative, got y=%v xz=%v", p.YCompression, p.XZCompression)
	}
	if err := checkSettings("noise", p.Noise); err != nil {
		return nil, err
	}
	if p.UseTurbulence {
		if err := checkSettings("turbulence", p.Turbulence); err != nil {
			return nil, err
		}
	}

	g := &Generator{
		seed:     seed,
		channels: make([]*fractal.Source, p.Channels),
		yComp:    p.YCompression,
		xzComp:   p.XZCompression,
		tables:   newCoeffs(p.Span),
	}
	for i := range g.channels {
		g.channels[i] = fractal.New(seed+channelSeedStride*int64(i+1), p.Noise)
	}
	if p.UseTurbulence {
		g.turbulence = fractal.NewPerturber(seed+turbulenceSeedOffset, p.Turbulence, p.TurbulenceAmp)
	}
	return g, nil
}

func checkSettings(name string, s fractal.Settings) error {
	if s.Octaves < 1 {
		return fmt.Errorf("noise: %s octaves must be at least 1, got %d", name, s.Octaves)
	}
	// A negative gain can cancel the octave amplitude sum that fbm and
	// billow normalize by, turning every sample non-finite.
	if s.Gain < 0 {
		return fmt.Errorf("noise: %s gain must not be negative, got %v", name, s.Gain)
	}
	if s.Frequency <= 0 {
		return fmt.Errorf("noise: %s frequency must be positive, got %v", name, s.Frequency)
	}
	return nil
}

// Seed returns the seed the generator was built from.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Channels returns the length of every tuple the generator produces.
func (g *Generator) Channels() int {
	return len(g.channels)
}

// Span returns the stride the generator's blend tables were built for.
func (g *Generator) Span() int {
	return g.tables.span
}

// sample computes one full-resolution tuple at block (x, y, z):
// compress the coordinates, warp them if turbulence is enabled, then
// evaluate every channel at the result.
func (g *Generator) sample(x, y, z int) Tuple {
	fx := float32(x) * g.xzComp
	fy := float32(y) * g.yComp
	fz := float32(z) * g.xzComp
	if g.turbulence != nil {
		fx, fy, fz = g.turbulence.Warp(fx, fy, fz)
	}
	t := make(Tuple, len(g.channels))
	for i, src := range g.channels {
		t[i] = src.Sample(fx, fy, fz)
	}
	return t
}

// GenerateColumn samples every channel at every height in [minY, maxY]
// of the column at (x, z). Every height is a real sample.
func (g *Generator) GenerateColumn(x, z, minY, maxY int) (Column, error) {
	if minY > maxY {
		return Column{}, fmt.Errorf("noise: height range [%d, %d] is reversed", minY, maxY)
	}
	return g.generateColumn(x, z, minY, maxY), nil
}

func (g *Generator) generateColumn(x, z, minY, maxY int) Column {
	col := newColumn(minY, maxY)
	for y := minY; y <= maxY; y++ {
		col.set(y, g.sample(x, y, z))
	}
	return col
}

// InterpolateColumn approximates the column at (x, z) by sampling real
// noise only at every span-th height and blending the heights between.
// span must equal the generator's configured span. Vertical blending
// noticeably smooths the field; carvers that depend on fine vertical
// detail should prefer GenerateColumn.
func (g *Generator) InterpolateColumn(x, z, minY, maxY, span int) (Column, error) {
	if minY > maxY {
		return Column{}, fmt.Errorf("noise: height range [%d, %d] is reversed", minY, maxY)
	}
	if span != g.tables.span {
		return Column{}, fmt.Errorf("noise: span %d does not match the generator's blend tables (span %d)", span, g.tables.span)
	}
	col := newColumn(minY, maxY)
	for startY := minY; startY <= maxY; startY += span {
		endY := startY + span - 1
		if endY > maxY {
			endY = maxY
		}
		startT := g.sample(x, startY, z)
		endT := g.sample(x, endY, z)
		col.set(startY, startT)
		col.set(endY, endT)

		// The tables assume a full-length strip. The last strip can
		// come up short, so its weights are computed from the actual
		// strip length.
		short := endY-startY != span-1
		length := float32(endY - startY)
		for y := startY + 1; y < endY; y++ {
			var sc, ec float32
			if short {
				sc = float32(endY-y) / length
				ec = float32(y-startY) / length
			} else {
				sc = g.tables.start[y-startY]
				ec = g.tables.end[y-startY]
			}
			col.set(y, startT.Scale(sc).Add(endT.Scale(ec)))
		}
	}
	return col, nil
}

// InterpolateCube approximates the square region of columns between the
// start and end corners, sampling real noise only in the four corner
// columns. Interior columns are blended along x between the corner
// columns, then along z. The region must be square with side equal to
// the generator's span, or a single column.
func (g *Generator) InterpolateCube(start, end Pos, minY, maxY int) (*Cube, error) {
	if minY > maxY {
		return nil, fmt.Errorf("noise: height range [%d, %d] is reversed", minY, maxY)
	}
	if end.X < start.X || end.Z < start.Z {
		return nil, fmt.Errorf("noise: corners (%d, %d) and (%d, %d) are not ordered", start.X, start.Z, end.X, end.Z)
	}
	if end.X-start.X != end.Z-start.Z {
		return nil, fmt.Errorf("noise: region (%d, %d) to (%d, %d) is not square", start.X, start.Z, end.X, end.Z)
	}
	side := end.X - start.X + 1
	if side == 1 {
		cube := newCube(1, minY, maxY)
		cube.set(0, 0, g.generateColumn(start.X, start.Z, minY, maxY))
		return cube, nil
	}
	if side != g.tables.span {
		return nil, fmt.Errorf("noise: region side %d does not match the generator's blend tables (span %d)", side, g.tables.span)
	}

	// Real samples only in the four corner columns.
	c00 := g.generateColumn(start.X, start.Z, minY, maxY)
	c01 := g.generateColumn(start.X, end.Z, minY, maxY)
	c10 := g.generateColumn(end.X, start.Z, minY, maxY)
	c11 := g.generateColumn(end.X, end.Z, minY, maxY)

	cube := newCube(side, minY, maxY)
	cube.set(0, 0, c00)
	cube.set(0, side-1, c01)
	cube.set(side-1, 0, c10)
	cube.set(side-1, side-1, c11)

	// First pass: blend the two x-edge columns of every interior x
	// offset from the corners.
	for xo := 1; xo < side-1; xo++ {
		sc := g.tables.start[xo]
		ec := g.tables.end[xo]
		front := newColumn(minY, maxY)
		back := newColumn(minY, maxY)
		for y := minY; y <= maxY; y++ {
			front.set(y, c00.At(y).Scale(sc).Add(c10.At(y).Scale(ec)))
			back.set(y, c01.At(y).Scale(sc).Add(c11.At(y).Scale(ec)))
		}
		cube.set(xo, 0, front)
		cube.set(xo, side-1, back)
	}

	// Second pass: fill the interior of every x row by blending its
	// two edge columns along z.
	for xo := 0; xo < side; xo++ {
		front := cube.At(xo, 0)
		back := cube.At(xo, side-1)
		for zo := 1; zo < side-1; zo++ {
			sc := g.tables.start[zo]
			ec := g.tables.end[zo]
			col := newColumn(minY, maxY)
			for y := minY; y <= maxY; y++ {
				col.set(y, front.At(y).Scale(sc).Add(back.At(y).Scale(ec)))
			}
			cube.set(xo, zo, col)
		}
	}
	return cube, nil
}
