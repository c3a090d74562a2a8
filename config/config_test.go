// SPDX-FileCopyrightText: 2023 Speleoworks
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"github.com/speleoworks/karst/fractal"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "karst.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if p.Channels != 2 || p.Span != 16 || p.YCompression != 3 || p.XZCompression != 1 {
		t.Errorf("params = %+v", p)
	}
	if p.Noise.Noise != fractal.Simplex || p.Noise.Fractal != fractal.Ridged || p.Noise.Octaves != 1 {
		t.Errorf("noise settings = %+v", p.Noise)
	}
	if p.UseTurbulence {
		t.Error("turbulence enabled by default")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadDefaultFile(t *testing.T) {
	cfg, err := Load("../configs/default.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("shipped default.yaml = %+v, want %+v", cfg, Default())
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "span: 32\nturbulence: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Span != 32 || !cfg.Turbulence {
		t.Errorf("overrides lost: span=%d turbulence=%v", cfg.Span, cfg.Turbulence)
	}
	if cfg.YCompression != 3 || cfg.Channels != 2 || cfg.Noise.Frequency != Default().Noise.Frequency {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadClampsRanges(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"cave_bottom: 400",
		"y_compression: 50.0",
		"xz_compression: -3.0",
		"channels: 0",
		"turbulence_amplitude: 100.0",
		"noise:",
		"  fractal: fbm",
		"  octaves: 12",
		"  gain: -1.0",
		"turbulence_noise:",
		"  gain: 5.0",
	}, "\n"))
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"cave_bottom", float32(cfg.CaveBottom), 255},
		{"y_compression", cfg.YCompression, 20},
		{"xz_compression", cfg.XZCompression, 0},
		{"channels", float32(cfg.Channels), 1},
		{"turbulence_amplitude", cfg.TurbulenceAmplitude, 64},
		{"noise octaves", float32(cfg.Noise.Octaves), 8},
		{"noise gain", cfg.Noise.Gain, 0},
		{"turbulence gain", cfg.TurbulenceNoise.Gain, 1},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s clamped to %v, want %v", test.name, test.got, test.want)
		}
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown noise type", "noise:\n  type: whirl\n"},
		{"unknown fractal type", "noise:\n  fractal: turbo\n"},
		{"bad cave frequency", "cave_frequency: Sometimes\n"},
		{"span not power of two", "span: 12\n"},
		{"span too large", "span: 512\n"},
		{"zero frequency", "noise:\n  frequency: 0\n"},
		{"unparsable yaml", "span: [\n"},
		{"bad turbulence noise", "turbulence: true\nturbulence_noise:\n  type: whirl\n"},
	}
	for _, test := range tests {
		path := writeConfig(t, test.body)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: Load accepted the config", test.name)
		}
	}

	// The turbulence noise block is only validated when turbulence is
	// enabled.
	path := writeConfig(t, "turbulence_noise:\n  type: whirl\n")
	if _, err := Load(path); err != nil {
		t.Errorf("Load rejected an unused turbulence block: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load accepted a missing file")
	}
}
