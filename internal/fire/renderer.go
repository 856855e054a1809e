// Package fire implements the procedural flame background: a doom-fire
// intensity grid upscaled onto a display surface, faded at its top edge and
// overlaid with drifting ash.
package fire

import (
	"time"

	"firefield/internal/core"
	"firefield/internal/render"
)

// Stats counts work done since construction.
type Stats struct {
	Ticks  uint64
	Frames uint64
}

// Renderer owns the intensity grid, palette, ash particles and the
// off-screen buffer, and composites them onto a host surface.
type Renderer struct {
	cfg     Config
	surface render.Surface
	rng     *core.RNG

	palette Palette
	fade    render.Gradient

	layout Layout
	field  *Field
	pixels []byte
	buffer render.Buffer
	ash    []AshParticle

	throttle *core.Throttle

	running bool
	sched   core.Scheduler
	clock   core.Clock

	stats Stats
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithRNG replaces the time-seeded random source.
func WithRNG(rng *core.RNG) Option {
	return func(r *Renderer) {
		if rng != nil {
			r.rng = rng
		}
	}
}

// New builds a renderer for the given surface and viewport. The surface must
// be valid for the renderer's lifetime.
func New(surface render.Surface, viewport core.Size, cfg Config, opts ...Option) *Renderer {
	r := &Renderer{
		cfg:      cfg,
		surface:  surface,
		rng:      core.NewRNG(time.Now().UnixNano()),
		palette:  BuildPalette(cfg.Palette, cfg.Hue),
		fade:     render.Gradient{Stops: cfg.Fade.Stops},
		throttle: core.NewThrottle(cfg.UpdateInterval),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Resize(viewport)
	return r
}

// Resize re-derives every dimension from the viewport, zeroes the grid,
// re-seeds the ash and re-primes the tick throttle. Prior simulation state is
// discarded; buffers are reused when the grid size is unchanged.
func (r *Renderer) Resize(viewport core.Size) {
	prev := r.layout.Grid
	r.layout = ComputeLayout(r.cfg, viewport)
	g := r.layout.Grid
	if r.field != nil && g == prev {
		r.field.Grid().Clear()
	} else {
		r.field = NewField(g.W, g.H, r.cfg, r.rng)
		r.pixels = make([]byte, 4*g.W*g.H)
		r.buffer = r.surface.NewBuffer(g.W, g.H)
	}
	r.throttle.Reset()
	vp := r.layout.Viewport
	r.ash = spawnAsh(r.layout.AshCount, float64(vp.W), float64(vp.H), r.cfg.Ash, r.rng)
}

// Start begins the self-scheduling frame loop. Calls after the first are
// no-ops so only one loop ever runs.
func (r *Renderer) Start(sched core.Scheduler, clock core.Clock) {
	if r.running || sched == nil || clock == nil {
		return
	}
	r.running = true
	r.sched = sched
	r.clock = clock
	sched.RequestFrame(r.loop)
}

// Running reports whether Start has been called.
func (r *Renderer) Running() bool { return r.running }

func (r *Renderer) loop() {
	r.Frame(r.clock.Now())
	r.sched.RequestFrame(r.loop)
}

// Frame advances the grid when the update interval has elapsed, then
// composites the flame and ash. Compositing happens on every call.
func (r *Renderer) Frame(now time.Duration) {
	if r.throttle.Ready(now) {
		r.Tick()
	}
	r.Render()
	r.RenderAsh()
	r.stats.Frames++
}

// Tick advances the intensity grid by one step.
func (r *Renderer) Tick() {
	r.field.Step()
	r.stats.Ticks++
}

// Render maps the grid through the palette, draws it scaled so its base sits
// on the viewport bottom, and erases a soft band along its top edge.
func (r *Renderer) Render() {
	render.FillPaletteRGBA(r.pixels, r.field.Grid().Cells(), r.palette[:])
	r.buffer.WritePixels(r.pixels)

	s := r.surface
	width := float64(r.layout.Viewport.W)
	height := r.layout.FlameHeight()
	top := r.layout.FlameTop()

	prev := s.CompositeMode()
	s.Clear()
	s.SetCompositeMode(render.SourceOver)
	s.DrawScaled(r.buffer, 0, top, width, height)

	s.SetCompositeMode(render.DestinationOut)
	s.FillGradient(0, top, width, r.FadeHeight(), r.fade)
	s.SetCompositeMode(prev)
}

// FadeHeight is the height of the erase band above the flame.
func (r *Renderer) FadeHeight() float64 {
	h := r.layout.FlameHeight() * r.cfg.Fade.Ratio
	if h > r.cfg.Fade.MaxHeight {
		h = r.cfg.Fade.MaxHeight
	}
	return h
}

// RenderAsh advances every particle and draws it over the flame.
func (r *Renderer) RenderAsh() {
	s := r.surface
	prev := s.CompositeMode()
	s.SetCompositeMode(render.SourceOver)
	vp := r.layout.Viewport
	w, h := float64(vp.W), float64(vp.H)
	for i := range r.ash {
		p := &r.ash[i]
		p.Advance(w, h, r.cfg.Ash, r.rng)
		c := r.cfg.Ash.Color
		c.A = uint8(p.Opacity*255 + 0.5)
		s.FillCircle(p.X, p.Y, p.Radius, c)
	}
	s.SetCompositeMode(prev)
}

// Layout reports the current derived dimensions.
func (r *Renderer) Layout() Layout { return r.layout }

// Field exposes the intensity grid.
func (r *Renderer) Field() *Field { return r.field }

// Ash exposes the particle list.
func (r *Renderer) Ash() []AshParticle { return r.ash }

// Palette returns the colour table.
func (r *Renderer) Palette() Palette { return r.palette }

// Stats reports tick and frame counts.
func (r *Renderer) Stats() Stats { return r.stats }

// Config returns the active configuration.
func (r *Renderer) Config() Config { return r.cfg }
