// Package window is the graphical client. It shows the raster renderer in
// an ebiten window and feeds key presses to a session.
package window

import (
	"context"

	"github.com/battlesnakeio/snake/input"
	"github.com/battlesnakeio/snake/render"
	"github.com/battlesnakeio/snake/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type binding struct {
	key    ebiten.Key
	action input.Action
}

var bindings = []binding{
	{ebiten.KeyArrowUp, input.Up},
	{ebiten.KeyArrowDown, input.Down},
	{ebiten.KeyArrowLeft, input.Left},
	{ebiten.KeyArrowRight, input.Right},
	{ebiten.KeyEnter, input.Start},
	{ebiten.KeySpace, input.Start},
	{ebiten.KeyR, input.Restart},
	{ebiten.KeyEscape, input.Quit},
	{ebiten.KeyQ, input.Quit},
}

// Game implements ebiten.Game over a session.
type Game struct {
	ctx     context.Context
	session *session.Session
	raster  render.Raster
}

// NewGame returns a window client for s. The window closes when ctx is done.
func NewGame(ctx context.Context, s *session.Session) *Game {
	return &Game{
		ctx:     ctx,
		session: s,
		raster:  render.Raster{Grid: s.Sim.Grid(), Size: render.CanvasSize},
	}
}

// Update forwards the keys pressed this frame.
func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}

	for _, b := range bindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		g.session.Send(b.action)
		if b.action == input.Quit {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw paints the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	img := g.raster.Draw(g.session.Snapshot())
	screen.WritePixels(img.Pix)
}

// Layout keeps the canvas at its native size and lets ebiten scale it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.CanvasSize, render.CanvasSize
}

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context, s *session.Session) error {
	ebiten.SetWindowSize(render.CanvasSize*2, render.CanvasSize*2)
	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(NewGame(ctx, s))
}
