// SPDX-FileCopyrightText: 2023 Speleoworks
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"fmt"
)

// Cube is a square horizontal region of Columns sharing one height
// range. Columns are stored in a flat slice indexed by x*Size + z.
type Cube struct {
	size    int
	minY    int
	maxY    int
	columns []Column
}

func newCube(size, minY, maxY int) *Cube {
	return &Cube{
		size:    size,
		minY:    minY,
		maxY:    maxY,
		columns: make([]Column, size*size),
	}
}

// At returns the column at horizontal offsets (x, z) from the region's
// start corner. It panics if either offset is outside [0, Size).
func (c *Cube) At(x, z int) *Column {
	if x < 0 || x >= c.size || z < 0 || z >= c.size {
		panic(fmt.Sprintf("noise: offset (%d, %d) outside %dx%d cube", x, z, c.size, c.size))
	}
	return &c.columns[x*c.size+z]
}

func (c *Cube) set(x, z int, col Column) {
	c.columns[x*c.size+z] = col
}

// Size returns the region's side length in blocks.
func (c *Cube) Size() int {
	return c.size
}

// MinY returns the lowest height in every column.
func (c *Cube) MinY() int {
	return c.minY
}

// MaxY returns the highest height in every column.
func (c *Cube) MaxY() int {
	return c.maxY
}
