// SPDX-FileCopyrightText: 2023 Speleoworks
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	jsoniter "github.com/json-iterator/go"
	"github.com/speleoworks/karst/config"
	"github.com/speleoworks/karst/noise"
	"github.com/speleoworks/karst/render"
	"image"
	"image/png"
	"log"
	"os"
	"runtime/pprof"
	"time"
)

var json = jsoniter.Config{
	MarshalFloatWith6Digits: true,
	EscapeHTML:              false,
	SortMapKeys:             true,
	TagKey:                  "json",
	CaseSensitive:           true,
}.Froze()

type options struct {
	configPath string
	seed       int64
	mode       string
	x, z       int
	y          int
	minY, maxY int
	width      int
	depth      int
	channel    int
	out        string
	manifest   string
}

func main() {
	var opts options
	var cpuProfile string
	flag.StringVar(&opts.configPath, "config", "", "path to a YAML config, empty for the defaults")
	flag.Int64Var(&opts.seed, "seed", 1, "world seed")
	flag.StringVar(&opts.mode, "mode", "map", "render mode: map or section")
	flag.IntVar(&opts.x, "x", 0, "origin block x")
	flag.IntVar(&opts.z, "z", 0, "origin block z")
	flag.IntVar(&opts.y, "y", 32, "slice height for map mode")
	flag.IntVar(&opts.minY, "miny", 0, "lowest height for section mode")
	flag.IntVar(&opts.maxY, "maxy", 127, "highest height for section mode")
	flag.IntVar(&opts.width, "width", 512, "map width in blocks")
	flag.IntVar(&opts.depth, "depth", 512, "extent along z in blocks")
	flag.IntVar(&opts.channel, "channel", 0, "channel to render")
	flag.StringVar(&opts.out, "out", "karst.png", "output image path")
	flag.StringVar(&opts.manifest, "manifest", "", "also write a JSON run manifest to `file`")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	run(opts)
}

func run(opts options) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		log.Fatal(err)
	}
	params, err := cfg.Params()
	if err != nil {
		log.Fatal(err)
	}
	g, err := noise.New(opts.seed, params)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	var img image.Image
	switch opts.mode {
	case "map":
		img, err = render.Map(g, opts.x, opts.z, opts.y, opts.width, opts.depth, opts.channel)
	case "section":
		img, err = render.Section(g, opts.x, opts.z, opts.minY, opts.maxY, opts.depth, opts.channel)
	default:
		log.Fatalf("unknown mode %q", opts.mode)
	}
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	file, err := os.Create(opts.out)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()
	if err = png.Encode(file, img); err != nil {
		log.Fatal(err)
	}
	log.Printf("rendered %s in %s", opts.out, elapsed)

	if opts.manifest != "" {
		if err := writeManifest(opts, cfg, g, elapsed); err != nil {
			log.Fatal(err)
		}
	}
}

// manifest records one invocation so a render can be reproduced later.
type manifest struct {
	Seed      int64         `json:"seed"`
	Mode      string        `json:"mode"`
	X         int           `json:"x"`
	Z         int           `json:"z"`
	Y         int           `json:"y"`
	MinY      int           `json:"minY"`
	MaxY      int           `json:"maxY"`
	Width     int           `json:"width"`
	Depth     int           `json:"depth"`
	Channel   int           `json:"channel"`
	Out       string        `json:"out"`
	ElapsedMs int64         `json:"elapsedMs"`
	Config    config.Config `json:"config"`
}

func writeManifest(opts options, cfg config.Config, g *noise.Generator, elapsed time.Duration) error {
	b, err := json.MarshalIndent(manifest{
		Seed:      g.Seed(),
		Mode:      opts.mode,
		X:         opts.x,
		Z:         opts.z,
		Y:         opts.y,
		MinY:      opts.minY,
		MaxY:      opts.maxY,
		Width:     opts.width,
		Depth:     opts.depth,
		Channel:   opts.channel,
		Out:       opts.out,
		ElapsedMs: elapsed.Milliseconds(),
		Config:    cfg,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(opts.manifest, b, 0644)
}
