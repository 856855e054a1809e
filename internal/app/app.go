//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"firefield/internal/core"
	"firefield/internal/fire"
	"firefield/internal/render"
	"firefield/internal/ui"
)

const (
	resizeDebounce = 150 * time.Millisecond
	hudWidth       = 260
)

var backgroundColor = color.RGBA{R: 8, G: 6, B: 10, A: 255}

// Game adapts the fire renderer to the ebiten.Game interface.
type Game struct {
	cfg      *Config
	clock    *core.MonotonicClock
	queue    core.FrameQueue
	debounce *core.Debouncer

	surface  *render.EbitenSurface
	renderer *fire.Renderer
	hud      *ui.HUD
	overlay  *ui.Overlay
	showHUD  bool
}

// New constructs a Game. When reduced motion is requested the renderer is
// never created and the window shows a static background.
func New(cfg *Config) *Game {
	vp := core.Size{W: cfg.Width, H: cfg.Height}
	g := &Game{
		cfg:      cfg,
		clock:    core.NewMonotonicClock(),
		debounce: core.NewDebouncer(resizeDebounce, vp),
		surface:  render.NewEbitenSurface(),
		showHUD:  cfg.HUD,
	}
	if cfg.ReducedMotion {
		log.Printf("reduced motion requested; fire background disabled")
		return g
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.renderer = fire.New(g.surface, vp, cfg.FireConfig(), fire.WithRNG(core.NewRNG(seed)))
	g.renderer.Start(&g.queue, g.clock)
	g.hud = ui.NewHUD(g.renderer, hudWidth)
	g.overlay = ui.NewOverlay(g.renderer)
	return g
}

// Update handles input and applies settled resizes.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.renderer == nil {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.renderer.Resize(g.debounce.Current())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}
	if size, ok := g.debounce.Poll(g.clock.Now()); ok {
		log.Printf("viewport settled at %dx%d", size.W, size.H)
		g.renderer.Resize(size)
	}
	g.overlay.Update()
	if g.showHUD {
		g.hud.Update(0)
	}
	return nil
}

func (g *Game) copyReport() {
	if clipboard.Unsupported {
		log.Printf("clipboard unavailable on this platform")
		return
	}
	if err := clipboard.WriteAll(ui.Report(g.renderer.Parameters())); err != nil {
		log.Printf("copy parameters: %v", err)
		return
	}
	log.Printf("parameters copied to clipboard")
}

// Draw runs the pending frame callback against the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer == nil {
		screen.Fill(backgroundColor)
		return
	}
	g.surface.Bind(screen)
	g.queue.RunPending()
	g.surface.Bind(nil)

	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, 0)
	}
}

// Layout feeds window size changes to the debouncer and keeps the logical
// screen at the last settled size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.debounce.Observe(core.Size{W: outsideWidth, H: outsideHeight}, g.clock.Now())
	s := g.debounce.Current()
	return max(s.W, 1), max(s.H, 1)
}
