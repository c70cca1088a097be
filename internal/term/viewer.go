// Package term runs the scene in a terminal, plotting with braille dots.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"orbit-lod/internal/app"
	"orbit-lod/internal/audio"
	"orbit-lod/internal/render"
	"orbit-lod/internal/sim"
)

// keyHold is how long a key stays held after a press event. Terminals only
// report presses, so releases are inferred from auto-repeat stopping.
const keyHold = 400 * time.Millisecond

const help = "w/s thrust  a/d strafe  q/e turn  space cut  +/- threshold  esc quit"

// Viewer turns terminal events into held keys and redraws the scene.
type Viewer struct {
	screen   tcell.Screen
	scene    *app.Scene
	pen      *render.TermPen
	latch    sim.Latch
	thruster *audio.Thruster

	stats    render.SurfaceStats
	textSty  tcell.Style
	showHelp bool
}

// NewViewer draws scene on screen. thruster may be nil.
func NewViewer(screen tcell.Screen, scene *app.Scene, thruster *audio.Thruster) *Viewer {
	return &Viewer{
		screen:   screen,
		scene:    scene,
		pen:      render.NewTermPen(screen),
		latch:    sim.Latch{Hold: keyHold},
		thruster: thruster,
		textSty:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
		showHelp: true,
	}
}

// Handle applies one terminal event. It returns false when the viewer should
// exit.
func (v *Viewer) Handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			v.handleRune(ev.Rune(), now)
		}
	case *tcell.EventFocus:
		if !ev.Focused {
			v.release()
		}
	case *tcell.EventResize:
		v.pen.Resize()
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) handleRune(r rune, now time.Time) {
	if k, ok := sim.KeyForRune(r); ok {
		v.latch.Pulse(k, now)
		return
	}
	switch r {
	case ' ':
		v.release()
	case '+', '=':
		v.adjust("threshold", 1)
	case '-', '_':
		v.adjust("threshold", -1)
	case '?':
		v.showHelp = !v.showHelp
	}
}

func (v *Viewer) adjust(key string, direction int) {
	for _, c := range v.scene.Controls() {
		if c.Key != key {
			continue
		}
		cur, _ := v.scene.Value(key)
		if next, ok := c.Adjust(cur, direction); ok {
			v.scene.Set(key, next)
		}
	}
}

func (v *Viewer) release() {
	v.latch.Reset()
	v.scene.World.Keys.ReleaseAll()
	v.sound()
}

// Tick advances the simulation and redraws.
func (v *Viewer) Tick(now time.Time) {
	v.latch.Apply(now, &v.scene.World.Keys)
	v.sound()
	v.scene.Step(now)
	v.draw()
}

func (v *Viewer) sound() {
	if v.thruster != nil {
		v.thruster.SetLevel(v.scene.World.Keys.Held())
	}
}

// Stats reports the last outline pass.
func (v *Viewer) Stats() render.SurfaceStats { return v.stats }

func (v *Viewer) draw() {
	w, h := v.pen.Size()
	v.stats = v.scene.Draw(v.pen, w, h)
	v.pen.Flush()
	for i, line := range v.scene.Telemetry().Lines() {
		v.text(0, i, line)
	}
	if v.showHelp {
		_, rows := v.screen.Size()
		v.text(0, rows-1, help)
	}
	v.screen.Show()
}

func (v *Viewer) text(x, y int, s string) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, v.textSty)
		x++
	}
}
