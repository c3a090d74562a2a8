// SPDX-FileCopyrightText: 2023 Speleoworks
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"fmt"
)

// Tuple holds one sampled value per channel at a single point.
// Operations return fresh tuples and never mutate their receivers.
type Tuple []float32

// Scale returns the element-wise product of t and factor.
func (t Tuple) Scale(factor float32) Tuple {
	scaled := make(Tuple, len(t))
	for i, v := range t {
		scaled[i] = v * factor
	}
	return scaled
}

// Add returns the element-wise sum of t and other. Tuples from one
// Generator always have the same length; mixing lengths is a bug, so
// Add panics on mismatch.
func (t Tuple) Add(other Tuple) Tuple {
	if len(t) != len(other) {
		panic(fmt.Sprintf("noise: tuple length mismatch: %d != %d", len(t), len(other)))
	}
	sum := make(Tuple, len(t))
	for i, v := range t {
		sum[i] = v + other[i]
	}
	return sum
}
