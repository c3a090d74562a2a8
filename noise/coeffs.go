// SPDX-FileCopyrightText: 2023 Speleoworks
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

// coeffs holds the blend weight tables for one span size. For every
// offset k in [0, span): start[k] + end[k] == 1, start[0] == 1 and
// end[span-1] == 1, so endpoints reproduce their anchors exactly.
type coeffs struct {
	span  int
	start []float32
	end   []float32
}

func newCoeffs(span int) coeffs {
	c := coeffs{
		span:  span,
		start: make([]float32, span),
		end:   make([]float32, span),
	}
	last := float32(span - 1)
	for k := 0; k < span; k++ {
		c.start[k] = float32(span-1-k) / last
		c.end[k] = float32(k) / last
	}
	return c
}
