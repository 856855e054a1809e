package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"firefield/internal/app"
	"firefield/internal/core"
	"firefield/internal/fire"
)

type scenario struct {
	viewport  core.Size
	decayStep int
}

func (s scenario) String() string {
	return fmt.Sprintf("%dx%d decay=%d", s.viewport.W, s.viewport.H, s.decayStep)
}

type scenarioResult struct {
	scenario
	grid      core.Size
	scale     int
	meanReach float64
	peakReach int
	// coverage is the settled flame height in pixels over the drawn height.
	coverage float64
}

func main() {
	steps := flag.Int("steps", 400, "ticks to simulate per scenario")
	settle := flag.Int("settle", 100, "ticks to discard before measuring")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1337, "seed used for every scenario")
	viewports := flag.String("viewports", "375x667,768x1024,1024x768,1440x900,1920x1080,2560x1440", "comma separated WxH list")
	decays := flag.String("decay", "3,4,5,6,7,8,10", "comma separated decay steps")
	overrides := app.Overrides{}
	flag.Var(overrides, "set", "fire parameter override in key=value form (repeatable)")
	flag.Parse()

	base := fire.FromMap(overrides)
	sizes, err := parseViewports(*viewports)
	if err != nil {
		log.Fatal(err)
	}
	decaySteps, err := parseInts(*decays)
	if err != nil {
		log.Fatal(err)
	}

	var sets []scenario
	for _, vp := range sizes {
		for _, d := range decaySteps {
			sets = append(sets, scenario{viewport: vp, decayStep: d})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %d settle)\n", len(sets), *workers, *steps, *settle)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(base, sc, *steps, *settle, *seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].viewport != all[j].viewport {
			if all[i].viewport.W != all[j].viewport.W {
				return all[i].viewport.W < all[j].viewport.W
			}
			return all[i].viewport.H < all[j].viewport.H
		}
		return all[i].decayStep < all[j].decayStep
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%-22s grid=%dx%d scale=%d reach mean=%.1f peak=%d coverage=%.2f\n",
			res.scenario, res.grid.W, res.grid.H, res.scale, res.meanReach, res.peakReach, res.coverage)
	}
}

func runScenario(base fire.Config, sc scenario, steps, settle int, seed int64) scenarioResult {
	cfg := base
	cfg.DecayStep = sc.decayStep

	layout := fire.ComputeLayout(cfg, sc.viewport)
	field := fire.NewField(layout.Grid.W, layout.Grid.H, cfg, core.NewRNG(seed))

	var total, samples, peak int
	for step := 0; step < steps; step++ {
		field.Step()
		if step < settle {
			continue
		}
		r := field.Reach()
		total += r
		samples++
		if r > peak {
			peak = r
		}
	}

	res := scenarioResult{scenario: sc, grid: layout.Grid, scale: layout.Scale, peakReach: peak}
	if samples > 0 {
		res.meanReach = float64(total) / float64(samples)
	}
	if h := layout.FlameHeight(); h > 0 {
		res.coverage = res.meanReach * float64(layout.Scale) / h
	}
	return res
}

func parseViewports(list string) ([]core.Size, error) {
	var out []core.Size
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		w, h, ok := strings.Cut(item, "x")
		if !ok {
			return nil, fmt.Errorf("viewport %q: want WxH", item)
		}
		wi, err := strconv.Atoi(w)
		if err != nil {
			return nil, fmt.Errorf("viewport %q: %w", item, err)
		}
		hi, err := strconv.Atoi(h)
		if err != nil {
			return nil, fmt.Errorf("viewport %q: %w", item, err)
		}
		out = append(out, core.Size{W: wi, H: hi})
	}
	return out, nil
}

func parseInts(list string) ([]int, error) {
	var out []int
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		v, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("decay %q: %w", item, err)
		}
		out = append(out, v)
	}
	return out, nil
}
