// SPDX-FileCopyrightText: 2023 Speleoworks
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"github.com/speleoworks/karst/fractal"
	"github.com/speleoworks/karst/noise"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
)

// Noise declares one fractal noise function.
type Noise struct {
	Type       string  `yaml:"type" json:"type"`
	Fractal    string  `yaml:"fractal" json:"fractal"`
	Octaves    int     `yaml:"octaves" json:"octaves"`
	Gain       float32 `yaml:"gain" json:"gain"`
	Frequency  float32 `yaml:"frequency" json:"frequency"`
	Lacunarity float32 `yaml:"lacunarity" json:"lacunarity"`
}

func (n Noise) settings() (fractal.Settings, error) {
	noiseType, err := fractal.ParseNoiseType(n.Type)
	if err != nil {
		return fractal.Settings{}, err
	}
	fractalType, err := fractal.ParseFractalType(n.Fractal)
	if err != nil {
		return fractal.Settings{}, err
	}
	return fractal.Settings{
		Noise:      noiseType,
		Fractal:    fractalType,
		Octaves:    n.Octaves,
		Gain:       n.Gain,
		Frequency:  n.Frequency,
		Lacunarity: n.Lacunarity,
	}, nil
}

// Config holds the cave field tunables.
type Config struct {
	// CaveBottom is the lowest height the carving driver samples.
	CaveBottom int `yaml:"cave_bottom" json:"caveBottom"`
	// YCompression changes the height of carved caves. Lower values
	// mean taller caves with steeper drops.
	YCompression float32 `yaml:"y_compression" json:"yCompression"`
	// XZCompression changes the width of carved caves. Lower values
	// mean wider caves.
	XZCompression float32 `yaml:"xz_compression" json:"xzCompression"`
	// CaveFrequency is how often caves spawn: None, Rare, Common or
	// VeryCommon. The noise field itself does not depend on it.
	CaveFrequency string `yaml:"cave_frequency" json:"caveFrequency"`
	// Channels is the number of noise values sampled per block.
	Channels int `yaml:"channels" json:"channels"`
	// Span is the stride of the interpolating samplers.
	Span int `yaml:"span" json:"span"`
	// Turbulence warps sample coordinates before the field is read.
	Turbulence          bool    `yaml:"turbulence" json:"turbulence"`
	TurbulenceAmplitude float32 `yaml:"turbulence_amplitude" json:"turbulenceAmplitude"`
	Noise               Noise   `yaml:"noise" json:"noise"`
	TurbulenceNoise     Noise   `yaml:"turbulence_noise" json:"turbulenceNoise"`
}

// Default returns the stock cubic cave tunables.
func Default() Config {
	return Config{
		CaveBottom:          1,
		YCompression:        3.0,
		XZCompression:       1.0,
		CaveFrequency:       "VeryCommon",
		Channels:            2,
		Span:                16,
		Turbulence:          false,
		TurbulenceAmplitude: 8.0,
		Noise: Noise{
			Type:       "simplex",
			Fractal:    "ridged",
			Octaves:    1,
			Gain:       0.3,
			Frequency:  0.03,
			Lacunarity: 2.0,
		},
		TurbulenceNoise: Noise{
			Type:       "simplex",
			Fractal:    "fbm",
			Octaves:    3,
			Gain:       0.5,
			Frequency:  0.01,
			Lacunarity: 2.0,
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path yields
// the defaults unchanged. Range-limited values are clamped rather than
// rejected; everything else must pass Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Clamp()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Clamp forces every range-limited tunable back into its range.
func (c *Config) Clamp() {
	c.CaveBottom = clampInt(c.CaveBottom, 0, 255)
	c.YCompression = clampFloat(c.YCompression, 0, 20)
	c.XZCompression = clampFloat(c.XZCompression, 0, 20)
	c.Channels = clampInt(c.Channels, 1, 8)
	c.TurbulenceAmplitude = clampFloat(c.TurbulenceAmplitude, 0, 64)
	c.Noise.Octaves = clampInt(c.Noise.Octaves, 1, 8)
	c.Noise.Gain = clampFloat(c.Noise.Gain, 0, 1)
	c.TurbulenceNoise.Octaves = clampInt(c.TurbulenceNoise.Octaves, 1, 8)
	c.TurbulenceNoise.Gain = clampFloat(c.TurbulenceNoise.Gain, 0, 1)
}

// Validate reports the first problem that would keep the config from
// building a generator.
func (c Config) Validate() error {
	p, err := c.Params()
	if err != nil {
		return err
	}
	_, err = noise.New(0, p)
	return err
}

// Params assembles generator parameters from the config.
func (c Config) Params() (noise.Params, error) {
	switch c.CaveFrequency {
	case "None", "Rare", "Common", "VeryCommon":
	default:
		return noise.Params{}, fmt.Errorf("cave_frequency %q is not one of None, Rare, Common, VeryCommon", c.CaveFrequency)
	}
	if c.Span < 2 || c.Span > 256 || c.Span&(c.Span-1) != 0 {
		return noise.Params{}, fmt.Errorf("span must be a power of two in [2, 256], got %d", c.Span)
	}
	settings, err := c.Noise.settings()
	if err != nil {
		return noise.Params{}, fmt.Errorf("noise: %w", err)
	}
	p := noise.Params{
		Channels:      c.Channels,
		Noise:         settings,
		TurbulenceAmp: c.TurbulenceAmplitude,
		UseTurbulence: c.Turbulence,
		YCompression:  c.YCompression,
		XZCompression: c.XZCompression,
		Span:          c.Span,
	}
	if c.Turbulence {
		turbulence, err := c.TurbulenceNoise.settings()
		if err != nil {
			return noise.Params{}, fmt.Errorf("turbulence_noise: %w", err)
		}
		p.Turbulence = turbulence
	}
	return p, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
