package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fetch/audio"
	"github.com/lixenwraith/fetch/engine"
	"github.com/lixenwraith/fetch/input"
	"github.com/lixenwraith/fetch/render"
)

// maxFrameDelta caps dt after stalls (debugger, terminal suspend) so the
// simulation never takes one huge step
const maxFrameDelta = 0.1

// runLoop drives the fixed per-tick pipeline at ~60Hz:
// input snapshot refresh -> systems -> render. The loop goroutine is the
// sole mutator of world state.
func runLoop(screen tcell.Screen, world *engine.World, cues *audio.Engine) {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	presenter := render.NewPresenter(screen)
	collector := input.NewCollector()

	cfg := world.Resources.Config
	cols, rows := presenter.FieldSize()
	tr := render.NewTransform(cfg.Width, cfg.Height, cols, rows)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					close(quit)
					return
				}
				collector.HandleKey(ev, time.Now())
			case *tcell.EventMouse:
				collector.HandleMouse(ev)
			case *tcell.EventResize:
				screen.Sync()
				cols, rows = presenter.FieldSize()
				tr = render.NewTransform(cfg.Width, cfg.Height, cols, rows)
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}

			cellX, cellY := collector.PointerCell()
			// The presenter draws the field one row below the status bar
			wx, wy := tr.World(cellX, cellY-1)

			world.Resources.Time.Delta = dt
			world.Resources.Time.Frame++
			world.Resources.Input = collector.Snapshot(now, wx, wy)

			world.Update()

			for _, ev := range world.Resources.Events.Drain() {
				if cues != nil {
					cues.PlayEvent(ev.Type)
				}
			}

			cmds := render.BuildFrame(world)
			presenter.Render(cmds, tr, render.StatusLine(cmds))
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
}
