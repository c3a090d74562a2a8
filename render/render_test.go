// SPDX-FileCopyrightText: 2023 Speleoworks
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"bytes"
	"github.com/speleoworks/karst/fractal"
	"github.com/speleoworks/karst/noise"
	"testing"
)

func testGenerator(t testing.TB) *noise.Generator {
	t.Helper()
	g, err := noise.New(11, noise.Params{
		Channels:      2,
		Noise:         fractal.Settings{Noise: fractal.Simplex, Fractal: fractal.Ridged, Octaves: 1, Gain: 0.3, Frequency: 0.03},
		YCompression:  3,
		XZCompression: 1,
		Span:          4,
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestMap(t *testing.T) {
	g := testGenerator(t)

	// 10x6 is not a multiple of the span, so the edge tiles crop.
	img, err := Map(g, -3, 5, 24, 10, 6, 1)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 10 || bounds.Dy() != 6 {
		t.Fatalf("map bounds = %v", bounds)
	}

	again, err := Map(g, -3, 5, 24, 10, 6, 1)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if !bytes.Equal(img.Pix, again.Pix) {
		t.Error("repeated renders differ")
	}

	// Tile corners are real samples, so the origin pixel must agree
	// with a directly generated column.
	col, err := g.GenerateColumn(-3, 5, 24, 24)
	if err != nil {
		t.Fatalf("GenerateColumn: %v", err)
	}
	want := grayColor(col.At(24)[1]).Y
	if got := img.GrayAt(0, 0).Y; got != want {
		t.Errorf("origin pixel = %d, want %d", got, want)
	}
}

func TestMapErrors(t *testing.T) {
	g := testGenerator(t)
	if _, err := Map(g, 0, 0, 0, 0, 6, 0); err == nil {
		t.Error("Map accepted an empty width")
	}
	if _, err := Map(g, 0, 0, 0, 10, 6, 2); err == nil {
		t.Error("Map accepted an out-of-range channel")
	}
	if _, err := Map(g, 0, 0, 0, 10, 6, -1); err == nil {
		t.Error("Map accepted a negative channel")
	}
}

func TestSection(t *testing.T) {
	g := testGenerator(t)
	img, err := Section(g, 7, -2, 0, 31, 5, 0)
	if err != nil {
		t.Fatalf("Section: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 5 || bounds.Dy() != 32 {
		t.Fatalf("section bounds = %v", bounds)
	}

	// Row 0 is the top of the height range.
	col, err := g.GenerateColumn(7, -2, 0, 31)
	if err != nil {
		t.Fatalf("GenerateColumn: %v", err)
	}
	if got, want := img.GrayAt(0, 0).Y, grayColor(col.At(31)[0]).Y; got != want {
		t.Errorf("top pixel = %d, want %d", got, want)
	}
	if got, want := img.GrayAt(0, 31).Y, grayColor(col.At(0)[0]).Y; got != want {
		t.Errorf("bottom pixel = %d, want %d", got, want)
	}
}

func TestSectionErrors(t *testing.T) {
	g := testGenerator(t)
	if _, err := Section(g, 0, 0, 31, 0, 5, 0); err == nil {
		t.Error("Section accepted a reversed height range")
	}
	if _, err := Section(g, 0, 0, 0, 31, 0, 0); err == nil {
		t.Error("Section accepted an empty depth")
	}
	if _, err := Section(g, 0, 0, 0, 31, 5, 7); err == nil {
		t.Error("Section accepted an out-of-range channel")
	}
}

func BenchmarkMap(b *testing.B) {
	g, err := noise.New(11, noise.Params{
		Channels:      2,
		Noise:         fractal.Settings{Noise: fractal.Simplex, Fractal: fractal.Ridged, Octaves: 1, Gain: 0.3, Frequency: 0.03},
		YCompression:  3,
		XZCompression: 1,
		Span:          16,
	})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Map(g, i*64, 0, 32, 64, 64, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func TestFloatToByte(t *testing.T) {
	tests := []struct {
		in   float32
		want byte
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 127},
		{1, 255},
		{1.5, 255},
	}
	for _, test := range tests {
		if got := floatToByte(test.in); got != test.want {
			t.Errorf("floatToByte(%v) = %d, want %d", test.in, got, test.want)
		}
	}
}
