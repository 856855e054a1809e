// Package term presents the fire field in a terminal using half-block cells,
// two vertical pixels per character.
package term

import (
	"context"
	"errors"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"firefield/internal/core"
	"firefield/internal/fire"
	"firefield/internal/render"
)

const upperHalfBlock = '▀'

// Options configures a terminal run.
type Options struct {
	// CellSize is the virtual pixel size of one character cell. The renderer
	// sees cols*W × rows*H pixels so its layout floors behave as on a display.
	CellSize   core.Size
	FPS        int
	Debounce   time.Duration
	Background color.RGBA
	Seed       int64
}

// DefaultOptions returns the standard terminal options.
func DefaultOptions() Options {
	return Options{
		CellSize:   core.Size{W: 8, H: 16},
		FPS:        60,
		Debounce:   150 * time.Millisecond,
		Background: color.RGBA{R: 8, G: 6, B: 10, A: 255},
	}
}

// Host owns the off-screen surface and paints it onto a tcell screen.
type Host struct {
	screen  tcell.Screen
	opts    Options
	surface *render.SoftSurface
	cells   *image.RGBA
}

// NewHost sizes a host for the screen's current dimensions.
func NewHost(screen tcell.Screen, opts Options) *Host {
	if opts.CellSize.W <= 0 || opts.CellSize.H <= 0 {
		opts.CellSize = DefaultOptions().CellSize
	}
	h := &Host{screen: screen, opts: opts, surface: render.NewSoftSurface(0, 0)}
	h.Resize(h.Viewport())
	return h
}

// Viewport is the virtual pixel size matching the terminal grid.
func (h *Host) Viewport() core.Size {
	cols, rows := h.screen.Size()
	return core.Size{W: cols * h.opts.CellSize.W, H: rows * h.opts.CellSize.H}
}

// Surface exposes the surface the renderer draws on.
func (h *Host) Surface() *render.SoftSurface { return h.surface }

// Resize reallocates the surface for a new virtual viewport.
func (h *Host) Resize(vp core.Size) {
	h.surface.Resize(vp.W, vp.H)
	cols, rows := h.screen.Size()
	h.cells = image.NewRGBA(image.Rect(0, 0, max(cols, 0), max(rows, 0)*2))
}

// Present downsamples the surface to two pixels per cell and paints every
// cell, compositing over the background colour.
func (h *Host) Present() {
	src := h.surface.Image()
	if src.Bounds().Empty() || h.cells.Bounds().Empty() {
		return
	}
	draw.ApproxBiLinear.Scale(h.cells, h.cells.Bounds(), src, src.Bounds(), draw.Src, nil)
	cols, rows := h.screen.Size()
	cols = min(cols, h.cells.Bounds().Dx())
	rows = min(rows, h.cells.Bounds().Dy()/2)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := over(h.opts.Background, h.cells.RGBAAt(x, 2*y))
			bottom := over(h.opts.Background, h.cells.RGBAAt(x, 2*y+1))
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			h.screen.SetContent(x, y, upperHalfBlock, nil, style)
		}
	}
}

// Fill paints every cell with the background colour.
func (h *Host) Fill() {
	bg := tcellColor(h.opts.Background)
	h.screen.SetStyle(tcell.StyleDefault.Background(bg))
	h.screen.Clear()
}

// over composites a premultiplied pixel onto an opaque background.
func over(bg, c color.RGBA) color.RGBA {
	keep := 255 - uint32(c.A)
	mix := func(b, s uint8) uint8 {
		return uint8(uint32(s) + (uint32(b)*keep+127)/255)
	}
	return color.RGBA{R: mix(bg.R, c.R), G: mix(bg.G, c.G), B: mix(bg.B, c.B), A: 255}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run animates the fire on screen until ctx ends or the user quits with q,
// Esc or Ctrl-C. With reducedMotion set the renderer is never created.
func Run(ctx context.Context, screen tcell.Screen, cfg fire.Config, opts Options, reducedMotion bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	host := NewHost(screen, opts)
	if reducedMotion {
		return runStatic(ctx, cancel, screen, host, events)
	}

	clock := core.NewMonotonicClock()
	debounce := core.NewDebouncer(opts.Debounce, host.Viewport())
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	renderer := fire.New(host.Surface(), host.Viewport(), cfg, fire.WithRNG(core.NewRNG(seed)))

	var queue core.FrameQueue
	renderer.Start(&queue, clock)

	after := func() {
		host.Present()
		screen.Show()
	drain:
		for {
			select {
			case ev := <-events:
				if handleEvent(ev, screen, cancel) {
					debounce.Observe(host.Viewport(), clock.Now())
				}
			default:
				break drain
			}
		}
		if vp, ok := debounce.Poll(clock.Now()); ok {
			host.Resize(vp)
			renderer.Resize(vp)
		}
	}

	interval := time.Second / time.Duration(max(opts.FPS, 1))
	err := core.RunFrames(ctx, &queue, interval, after)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runStatic(ctx context.Context, cancel context.CancelFunc, screen tcell.Screen, host *Host, events <-chan tcell.Event) error {
	log.Printf("reduced motion requested; fire background disabled")
	host.Fill()
	screen.Show()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if handleEvent(ev, screen, cancel) {
				host.Fill()
				screen.Show()
			}
		}
	}
}

// handleEvent reacts to quit keys and reports whether the terminal resized.
func handleEvent(ev tcell.Event, screen tcell.Screen, cancel context.CancelFunc) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
		return true
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			cancel()
		}
	}
	return false
}
