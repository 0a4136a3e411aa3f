package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/battlesnakeio/snake/board"
	"github.com/battlesnakeio/snake/rules"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CanvasSize is the side of the raster in pixels.
const CanvasSize = 400

// Palette of the raster renderer.
var (
	Background = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	GridLine   = color.RGBA{0x33, 0x33, 0x33, 0xff}
	Head       = color.RGBA{0x22, 0xc5, 0x5e, 0xff}
	Body       = color.RGBA{0x16, 0xa3, 0x4a, 0xff}
	Food       = color.RGBA{0xef, 0x44, 0x44, 0xff}
	Text       = color.RGBA{0xe5, 0xe5, 0xe5, 0xff}
)

// Raster paints snapshots into an RGBA image.
type Raster struct {
	Grid board.Grid
	// Size is the side of the canvas, CanvasSize when zero.
	Size int
}

// Draw returns a fresh image of st.
func (r Raster) Draw(st rules.GameState) *image.RGBA {
	size := r.Size
	if size <= 0 {
		size = CanvasSize
	}
	grid := r.Grid
	if grid.N == 0 {
		grid = board.Default()
	}
	cell := size / grid.N

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillRect(img, img.Bounds(), Background)

	for i := 0; i <= grid.N; i++ {
		pos := i * size / grid.N
		if pos >= size {
			pos = size - 1
		}
		fillRect(img, image.Rect(pos, 0, pos+1, size), GridLine)
		fillRect(img, image.Rect(0, pos, size, pos+1), GridLine)
	}

	for i := len(st.Snake) - 1; i >= 0; i-- {
		c := st.Snake[i]
		col := Body
		if i == 0 {
			col = Head
		}
		x, y := c.X*cell, c.Y*cell
		fillRect(img, image.Rect(x+1, y+1, x+cell-1, y+cell-1), col)
	}

	drawFood(img, st.Food, cell)

	drawText(img, 6, 16, fmt.Sprintf("Score %d  High %d", st.Score, st.HighScore))
	switch st.Status {
	case rules.StatusIdle:
		drawText(img, 6, size-8, "press enter to start")
	case rules.StatusGameOver:
		drawText(img, 6, size-8, "game over, press r to restart")
	}
	return img
}

func drawFood(img *image.RGBA, food board.Cell, cell int) {
	x0, y0 := food.X*cell, food.Y*cell
	cx := float64(x0) + float64(cell)/2
	cy := float64(y0) + float64(cell)/2
	radius := float64(cell)/2 - 2

	for py := y0; py < y0+cell; py++ {
		for px := x0; px < x0+cell; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(px, py, Food)
			}
		}
	}

	// Stem.
	sx := x0 + cell/2 - 1
	fillRect(img, image.Rect(sx, y0+2, sx+2, y0+6), Head)
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawText(img *image.RGBA, x, y int, s string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(Text),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
