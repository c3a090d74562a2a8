// SPDX-FileCopyrightText: 2023 Speleoworks
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

// Column maps every block height in [MinY, MaxY] to a Tuple. Tuples are
// stored in a flat slice indexed by y - MinY.
type Column struct {
	minY   int
	tuples []Tuple
}

func newColumn(minY, maxY int) Column {
	return Column{minY: minY, tuples: make([]Tuple, maxY-minY+1)}
}

// At returns the tuple at block height y. It panics if y is outside
// [MinY, MaxY].
func (c *Column) At(y int) Tuple {
	return c.tuples[y-c.minY]
}

func (c *Column) set(y int, t Tuple) {
	c.tuples[y-c.minY] = t
}

// MinY returns the lowest height in the column.
func (c *Column) MinY() int {
	return c.minY
}

// MaxY returns the highest height in the column.
func (c *Column) MaxY() int {
	return c.minY + len(c.tuples) - 1
}

// Len returns the number of heights in the column.
func (c *Column) Len() int {
	return len(c.tuples)
}
