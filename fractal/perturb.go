// SPDX-FileCopyrightText: 2023 Speleoworks
// SPDX-License-Identifier: AGPL-3.0-or-later

package fractal

// Perturber displaces sample coordinates with three decorrelated noise
// lattices, one per axis. Warping a coordinate before primary sampling
// breaks up the grid regularity of the sampled field.
type Perturber struct {
	settings Settings
	amp      float32
	dx       lattice
	dy       lattice
	dz       lattice
}

// NewPerturber creates a Perturber. The three axis lattices are seeded
// seed, seed+1 and seed+2. Amplitude is the coordinate displacement
// contributed by a full-strength octave, in the caller's units.
func NewPerturber(seed int64, s Settings, amplitude float32) *Perturber {
	return &Perturber{
		settings: s,
		amp:      amplitude * fractalBounding(s.Octaves, s.Gain),
		dx:       newLattice(seed, s.Noise),
		dy:       newLattice(seed+1, s.Noise),
		dz:       newLattice(seed+2, s.Noise),
	}
}

// Warp returns the displaced coordinates. Each octave offsets the point
// the previous octave produced, so displacements compound. Warp never
// mutates the Perturber; equal inputs always map to equal outputs.
func (p *Perturber) Warp(x, y, z float32) (float32, float32, float32) {
	amp := p.amp
	freq := p.settings.Frequency
	lac := p.settings.lacunarity()
	for o := 0; o < p.settings.Octaves; o++ {
		nx := float64(x * freq)
		ny := float64(y * freq)
		nz := float64(z * freq)
		x += float32(p.dx.eval(nx, ny, nz)) * amp
		y += float32(p.dy.eval(nx, ny, nz)) * amp
		z += float32(p.dz.eval(nx, ny, nz)) * amp
		freq *= lac
		amp *= p.settings.Gain
	}
	return x, y, z
}
