// SPDX-FileCopyrightText: 2023 Speleoworks
// SPDX-License-Identifier: AGPL-3.0-or-later

package fractal

import (
	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
	"github.com/ojrac/opensimplex-go"
)

// lattice is a single octave of gradient noise in a bounded range
// around zero.
type lattice interface {
	eval(x, y, z float64) float64
}

type simplexLattice struct {
	noise opensimplex.Noise
}

func (l simplexLattice) eval(x, y, z float64) float64 {
	return l.noise.Eval3(x, y, z)
}

type perlinLattice struct {
	noise *perlin.Perlin
}

func (l perlinLattice) eval(x, y, z float64) float64 {
	return l.noise.Noise3D(x, y, z)
}

// newLattice builds the backend for one octave. Octave layering is done
// by the caller, so the perlin backend is fixed at a single level.
func newLattice(seed int64, t NoiseType) lattice {
	switch t {
	case Perlin:
		return perlinLattice{noise: perlin.NewPerlin(2, 2, 1, seed)}
	default:
		return simplexLattice{noise: opensimplex.New(seed)}
	}
}

// Source is one seeded fractal noise function over 3D space. It is
// immutable after construction and safe for concurrent use. Identical
// seed and settings always produce the identical field.
type Source struct {
	settings Settings
	base     lattice
	bounding float32
}

// New creates a Source from a seed and settings.
func New(seed int64, s Settings) *Source {
	return &Source{
		settings: s,
		base:     newLattice(seed, s.Noise),
		bounding: fractalBounding(s.Octaves, s.Gain),
	}
}

// fractalBounding normalizes an octave sum back to the range of a
// single octave: 1 over the largest possible amplitude sum.
func fractalBounding(octaves int, gain float32) float32 {
	amp := gain
	sum := float32(1)
	for i := 1; i < octaves; i++ {
		sum += amp
		amp *= gain
	}
	return 1 / sum
}

// Sample returns the noise value at a point.
func (s *Source) Sample(x, y, z float32) float32 {
	switch s.settings.Fractal {
	case Billow:
		return s.billow(x, y, z)
	case Ridged:
		return s.ridged(x, y, z)
	default:
		return s.fbm(x, y, z)
	}
}

func (s *Source) fbm(x, y, z float32) float32 {
	freq := s.settings.Frequency
	lac := s.settings.lacunarity()
	amp := float32(1)
	var sum float32
	for o := 0; o < s.settings.Octaves; o++ {
		sum += s.at(x, y, z, freq) * amp
		freq *= lac
		amp *= s.settings.Gain
	}
	return sum * s.bounding
}

func (s *Source) billow(x, y, z float32) float32 {
	freq := s.settings.Frequency
	lac := s.settings.lacunarity()
	amp := float32(1)
	var sum float32
	for o := 0; o < s.settings.Octaves; o++ {
		sum += (math32.Abs(s.at(x, y, z, freq))*2 - 1) * amp
		freq *= lac
		amp *= s.settings.Gain
	}
	return sum * s.bounding
}

// ridged is not normalized; peaks of successive octaves cancel instead
// of stacking, which keeps the sum bounded on its own.
func (s *Source) ridged(x, y, z float32) float32 {
	freq := s.settings.Frequency
	lac := s.settings.lacunarity()
	amp := float32(1)
	sum := 1 - math32.Abs(s.at(x, y, z, freq))
	for o := 1; o < s.settings.Octaves; o++ {
		freq *= lac
		amp *= s.settings.Gain
		sum -= (1 - math32.Abs(s.at(x, y, z, freq))) * amp
	}
	return sum
}

func (s *Source) at(x, y, z, freq float32) float32 {
	return float32(s.base.eval(float64(x*freq), float64(y*freq), float64(z*freq)))
}
