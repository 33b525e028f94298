package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// keyHoldWindow approximates key-held state from terminal key repeats.
// Terminals deliver no key-up events, so a direction counts as held until
// this long after its last press; OS key repeat keeps it alive.
const keyHoldWindow = 150 * time.Millisecond

// Collector accumulates tcell events between ticks and produces an
// edge-triggered Snapshot once per tick. It is fed from the event
// goroutine's channel by the tick loop, so no locking is needed.
type Collector struct {
	upUntil    time.Time
	downUntil  time.Time
	leftUntil  time.Time
	rightUntil time.Time

	pointerCellX, pointerCellY int
	pointerDown                bool
	prevPointerDown            bool
}

// NewCollector creates an empty input collector
func NewCollector() *Collector {
	return &Collector{}
}

// HandleKey records a movement key press. Arrows and hjkl/wasd map to the
// four directions; anything else is ignored here (the shell owns quit keys).
func (c *Collector) HandleKey(ev *tcell.EventKey, now time.Time) {
	until := now.Add(keyHoldWindow)

	switch ev.Key() {
	case tcell.KeyUp:
		c.upUntil = until
		return
	case tcell.KeyDown:
		c.downUntil = until
		return
	case tcell.KeyLeft:
		c.leftUntil = until
		return
	case tcell.KeyRight:
		c.rightUntil = until
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case 'k', 'w':
		c.upUntil = until
	case 'j', 's':
		c.downUntil = until
	case 'h', 'a':
		c.leftUntil = until
	case 'l', 'd':
		c.rightUntil = until
	}
}

// HandleMouse records pointer position and button level state
func (c *Collector) HandleMouse(ev *tcell.EventMouse) {
	c.pointerCellX, c.pointerCellY = ev.Position()
	c.pointerDown = ev.Buttons()&tcell.Button1 != 0
}

// PointerCell returns the last seen pointer position in screen cells
func (c *Collector) PointerCell() (int, int) {
	return c.pointerCellX, c.pointerCellY
}

// Snapshot produces the per-tick snapshot. The pointer's world position is
// supplied by the caller, which owns the cell-to-world transform.
func (c *Collector) Snapshot(now time.Time, worldX, worldY float64) Snapshot {
	snap := Snapshot{
		Up:    now.Before(c.upUntil),
		Down:  now.Before(c.downUntil),
		Left:  now.Before(c.leftUntil),
		Right: now.Before(c.rightUntil),

		PointerX: worldX,
		PointerY: worldY,

		PointerDown:     c.pointerDown,
		PointerPressed:  c.pointerDown && !c.prevPointerDown,
		PointerReleased: !c.pointerDown && c.prevPointerDown,
	}
	c.prevPointerDown = c.pointerDown
	return snap
}
