//go:build ebiten

package app

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"orbit-lod/internal/render"
	"orbit-lod/internal/sim"
	"orbit-lod/internal/ui"
)

var keyMap = map[ebiten.Key]sim.Key{
	ebiten.KeyW: sim.KeyForward,
	ebiten.KeyS: sim.KeyBack,
	ebiten.KeyA: sim.KeyPort,
	ebiten.KeyD: sim.KeyStarboard,
	ebiten.KeyQ: sim.KeyTurnLeft,
	ebiten.KeyE: sim.KeyTurnRight,
}

// Game adapts a Scene to the ebiten.Game interface.
type Game struct {
	scene   *Scene
	pen     *render.EbitenPen
	hud     *ui.HUD
	overlay *ui.Overlay
	stats   render.SurfaceStats

	width  int
	height int
	paused bool
}

// New constructs a Game for the provided scene with a HUD panel of hudWidth
// pixels on the right.
func New(scene *Scene, hudWidth int) *Game {
	return &Game{
		scene:   scene,
		pen:     render.NewEbitenPen(),
		hud:     ui.NewHUD(scene, hudWidth),
		overlay: ui.NewOverlay(),
	}
}

// Update polls input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.scene.Resume(time.Now())
		}
	}

	keys := &g.scene.World.Keys
	if ebiten.IsFocused() {
		for ek, k := range keyMap {
			if ebiten.IsKeyPressed(ek) {
				keys.Press(k)
			} else {
				keys.Release(k)
			}
		}
	} else {
		keys.ReleaseAll()
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if !g.paused {
		g.scene.Step(time.Now())
	}
	g.hud.Update(g.viewWidth(), g.scene.Telemetry())
	return nil
}

// Draw renders the viewport, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	vw := g.viewWidth()
	view := screen.SubImage(image.Rect(0, 0, vw, g.height)).(*ebiten.Image)
	g.pen.Target(view)
	g.stats = g.scene.Draw(g.pen, vw, g.height)
	if g.overlay != nil {
		g.overlay.Draw(view, g.scene.Frame(vw, g.height), g.stats)
	}
	g.hud.Draw(screen, vw, g.height)
}

// Layout follows the window size so the viewport resizes with it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) viewWidth() int {
	return max(g.width-g.hud.Width(), 1)
}
