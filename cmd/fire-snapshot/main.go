package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"time"

	"firefield/internal/app"
	"firefield/internal/core"
	"firefield/internal/fire"
	"firefield/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 120, "frames to simulate before capturing")
	step := flag.Duration("step", 16*time.Millisecond, "simulated time between frames")
	out := flag.String("o", "fire.png", "output PNG path")
	opaque := flag.Bool("opaque", true, "composite onto the page background instead of keeping alpha")
	flag.Parse()

	vp := core.Size{W: cfg.Width, H: cfg.Height}
	if vp.Empty() {
		log.Fatalf("viewport %dx%d is empty", vp.W, vp.H)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}

	surface := render.NewSoftSurface(vp.W, vp.H)
	renderer := fire.New(surface, vp, cfg.FireConfig(), fire.WithRNG(core.NewRNG(seed)))

	var clock core.ManualClock
	for i := 0; i < *frames; i++ {
		renderer.Frame(clock.Now())
		clock.Advance(*step)
	}

	var img image.Image = surface.Image()
	if *opaque {
		bg := image.NewRGBA(img.Bounds())
		draw.Draw(bg, bg.Bounds(), image.NewUniform(color.RGBA{R: 8, G: 6, B: 10, A: 255}), image.Point{}, draw.Src)
		draw.Draw(bg, bg.Bounds(), img, img.Bounds().Min, draw.Over)
		img = bg
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		log.Fatalf("encode: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close %s: %v", *out, err)
	}

	stats := renderer.Stats()
	l := renderer.Layout()
	fmt.Printf("wrote %s: %dx%d viewport, grid %dx%d, %d frames, %d ticks, reach %d rows\n",
		*out, vp.W, vp.H, l.Grid.W, l.Grid.H, stats.Frames, stats.Ticks, renderer.Field().Reach())
}
