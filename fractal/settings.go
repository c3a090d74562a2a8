// SPDX-FileCopyrightText: 2023 Speleoworks
// SPDX-License-Identifier: AGPL-3.0-or-later

package fractal

import (
	"fmt"
)

// NoiseType selects the lattice noise a Source is built on.
type NoiseType uint8

const (
	// Simplex is OpenSimplex lattice noise.
	Simplex NoiseType = iota
	// Perlin is classic Perlin gradient noise.
	Perlin
	noiseTypeCount
)

var noiseTypeNames = [noiseTypeCount]string{"simplex", "perlin"}

func (t NoiseType) String() string {
	if t < noiseTypeCount {
		return noiseTypeNames[t]
	}
	return fmt.Sprintf("NoiseType(%d)", uint8(t))
}

// ParseNoiseType is the inverse of String.
func ParseNoiseType(s string) (NoiseType, error) {
	for i, name := range noiseTypeNames {
		if name == s {
			return NoiseType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown noise type %q", s)
}

// FractalType selects how a Source layers its octaves.
type FractalType uint8

const (
	// FBM sums octaves directly.
	FBM FractalType = iota
	// Billow folds each octave around zero before summing.
	Billow
	// Ridged inverts the folded octaves, carving sharp valleys.
	Ridged
	fractalTypeCount
)

var fractalTypeNames = [fractalTypeCount]string{"fbm", "billow", "ridged"}

func (t FractalType) String() string {
	if t < fractalTypeCount {
		return fractalTypeNames[t]
	}
	return fmt.Sprintf("FractalType(%d)", uint8(t))
}

// ParseFractalType is the inverse of String.
func ParseFractalType(s string) (FractalType, error) {
	for i, name := range fractalTypeNames {
		if name == s {
			return FractalType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fractal type %q", s)
}

// Settings parameterizes one fractal noise function. The zero value of
// Lacunarity means the conventional factor of 2.
type Settings struct {
	Noise      NoiseType
	Fractal    FractalType
	Octaves    int
	Gain       float32
	Frequency  float32
	Lacunarity float32
}

func (s Settings) lacunarity() float32 {
	if s.Lacunarity == 0 {
		return 2
	}
	return s.Lacunarity
}
