package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fetch/component"
)

// Presenter rasterizes draw commands onto a tcell screen.
// Row 0 carries the charge gauge and status text; the remaining rows are
// the play field.
type Presenter struct {
	screen tcell.Screen
}

// NewPresenter wraps an initialized screen
func NewPresenter(screen tcell.Screen) *Presenter {
	return &Presenter{screen: screen}
}

// FieldSize returns the cell grid available to the play field
func (p *Presenter) FieldSize() (cols, rows int) {
	w, h := p.screen.Size()
	return w, h - 1
}

// Render draws one frame: clears, rasterizes commands through the
// transform, writes the status line, and shows
func (p *Presenter) Render(cmds []Command, tr Transform, status string) {
	p.screen.Clear()

	for _, cmd := range cmds {
		switch cmd.Kind {
		case KindAimLine:
			p.drawAimLine(cmd, tr)
		}
	}
	// Circles over the aim line
	for _, cmd := range cmds {
		switch cmd.Kind {
		case KindCircle:
			p.drawCircle(cmd, tr)
		case KindGauge:
			p.drawGauge(cmd)
		}
	}

	p.drawStatus(status)
	p.screen.Show()
}

func styleFor(cmd Command) tcell.Style {
	color := tcell.NewHexColor(int32(cmd.Color))
	style := tcell.StyleDefault.Foreground(color)
	if cmd.IsDog && cmd.Excited {
		style = style.Bold(true)
	}
	return style
}

func runeFor(cmd Command) rune {
	switch {
	case cmd.IsDog:
		return 'd'
	case cmd.IsBall:
		return 'o'
	default:
		return '@'
	}
}

// drawCircle fills the disc in cell space, always covering at least the
// center cell so small sprites stay visible
func (p *Presenter) drawCircle(cmd Command, tr Transform) {
	cx, cy := tr.Cell(cmd.X, cmd.Y)
	style := styleFor(cmd)
	glyph := runeFor(cmd)

	rx := int(cmd.Radius * tr.CellsPerWorldX())
	ry := int(cmd.Radius * tr.CellsPerWorldY())
	if rx < 1 && ry < 1 {
		p.screen.SetContent(cx, cy+1, glyph, nil, style)
		return
	}

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			// Normalized ellipse test
			fx := float64(dx) / float64(max(rx, 1))
			fy := float64(dy) / float64(max(ry, 1))
			if fx*fx+fy*fy > 1 {
				continue
			}
			r := '█'
			if dx == 0 && dy == 0 {
				r = glyph
			}
			p.screen.SetContent(cx+dx, cy+dy+1, r, nil, style)
		}
	}
}

// drawAimLine steps along the player->target segment
func (p *Presenter) drawAimLine(cmd Command, tr Transform) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)

	const steps = 32
	for i := 1; i <= steps; i++ {
		t := float64(i) / steps
		x := cmd.X + (cmd.X2-cmd.X)*t
		y := cmd.Y + (cmd.Y2-cmd.Y)*t
		cx, cy := tr.Cell(x, y)
		p.screen.SetContent(cx, cy+1, '·', nil, style)
	}
}

// drawGauge renders the charge power bar in the top-left corner
func (p *Presenter) drawGauge(cmd Command) {
	const width = 20
	filled := int(cmd.Power * width)

	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	p.screen.SetContent(0, 0, '[', nil, style)
	for i := 0; i < width; i++ {
		r := ' '
		if i < filled {
			r = '#'
		}
		p.screen.SetContent(1+i, 0, r, nil, style)
	}
	p.screen.SetContent(1+width, 0, ']', nil, style)
}

func (p *Presenter) drawStatus(status string) {
	w, _ := p.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	col := 24
	for _, r := range status {
		if col >= w {
			break
		}
		p.screen.SetContent(col, 0, r, nil, style)
		col++
	}
}

// StatusLine summarizes dog and ball state for the top bar
func StatusLine(cmds []Command) string {
	var dog, ball string
	for _, cmd := range cmds {
		if cmd.IsDog {
			dog = cmd.DogState.String()
			if cmd.Excited {
				dog += "!"
			}
		}
		if cmd.IsBall {
			ball = cmd.BallState.String()
		}
	}
	if dog == "" {
		dog = component.DogIdle.String()
	}
	return fmt.Sprintf("dog:%s ball:%s  throw: click-hold-release  quit: q", dog, ball)
}
