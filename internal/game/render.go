package game

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// CellSize is the pixel size of one grid cell on the game panel.
const CellSize = 20

// Panel palette, Nokia-era greens.
var (
	colorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 0}
	colorGridLine   = color.RGBA{R: 30, G: 30, B: 30, A: 0}
	colorEdgeGlow   = color.RGBA{R: 0, G: 90, B: 90, A: 0}
	colorSnakeBody  = color.RGBA{R: 155, G: 188, B: 15, A: 0}
	colorSnakeEdge  = color.RGBA{R: 139, G: 172, B: 15, A: 0}
	colorSnakeHead  = color.RGBA{R: 204, G: 255, B: 51, A: 0}
	colorFruit      = color.RGBA{R: 255, G: 0, B: 0, A: 0}
	colorFruitGlow  = color.RGBA{R: 255, G: 165, B: 0, A: 0}
	colorShine      = color.RGBA{R: 255, G: 255, B: 255, A: 0}
	colorPowerUp    = color.RGBA{R: 255, G: 255, B: 0, A: 0}
	colorPowerUpDot = color.RGBA{R: 0, G: 255, B: 255, A: 0}
	colorText       = color.RGBA{R: 255, G: 255, B: 255, A: 0}
	colorAccent     = color.RGBA{R: 0, G: 255, B: 255, A: 0}
	colorHighScore  = color.RGBA{R: 255, G: 255, B: 0, A: 0}
	colorRestart    = color.RGBA{R: 155, G: 188, B: 15, A: 0}
)

// PanelSize returns the pixel dimensions of the rendered game panel.
func (g *Game) PanelSize() (w, h int) {
	return g.cfg.GridWidth * CellSize, g.cfg.GridHeight * CellSize
}

// Render rasterizes the game state into a new BGR Mat.
// The caller owns the returned Mat and must Close it.
func (g *Game) Render() gocv.Mat {
	w, h := g.PanelSize()
	panel := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)

	g.drawGrid(&panel, w, h)
	if g.state != StateGameOver {
		for i, seg := range g.snake {
			g.drawSegment(&panel, seg, i == 0)
		}
		g.drawFruit(&panel)
		g.drawPowerUps(&panel)
		g.drawParticles(&panel)
	}
	g.drawHUD(&panel, w, h)

	return panel
}

func (g *Game) drawGrid(panel *gocv.Mat, w, h int) {
	for x := 0; x <= w; x += CellSize {
		gocv.Line(panel, image.Pt(x, 0), image.Pt(x, h), colorGridLine, 1)
	}
	for y := 0; y <= h; y += CellSize {
		gocv.Line(panel, image.Pt(0, y), image.Pt(w, y), colorGridLine, 1)
	}

	// Glowing edges hint that wrap-around is active.
	if g.wrap {
		gocv.Rectangle(panel, image.Rect(0, 0, w, 4), colorEdgeGlow, -1)
		gocv.Rectangle(panel, image.Rect(0, h-4, w, h), colorEdgeGlow, -1)
	}
}

func (g *Game) drawSegment(panel *gocv.Mat, seg Point, isHead bool) {
	px := seg.X * CellSize
	py := seg.Y * CellSize
	rect := image.Rect(px+1, py+1, px+CellSize-1, py+CellSize-1)

	if isHead {
		gocv.Rectangle(panel, rect, colorSnakeHead, -1)
		eye := 3
		gocv.Rectangle(panel, image.Rect(px+5, py+5, px+5+eye, py+5+eye), colorBackground, -1)
		gocv.Rectangle(panel, image.Rect(px+12, py+5, px+12+eye, py+5+eye), colorBackground, -1)
	} else {
		gocv.Rectangle(panel, rect, colorSnakeBody, -1)
	}
	gocv.Rectangle(panel, rect, colorSnakeEdge, 1)
}

func (g *Game) drawFruit(panel *gocv.Mat) {
	fruit, ok := g.Fruit()
	if !ok {
		return
	}
	px := fruit.X * CellSize
	py := fruit.Y * CellSize

	gocv.Rectangle(panel, image.Rect(px-2, py-2, px+CellSize+2, py+CellSize+2), colorFruitGlow, 2)
	gocv.Rectangle(panel, image.Rect(px+2, py+2, px+CellSize-2, py+CellSize-2), colorFruit, -1)
	gocv.Rectangle(panel, image.Rect(px+4, py+4, px+8, py+8), colorShine, -1)
}

func (g *Game) drawPowerUps(panel *gocv.Mat) {
	for _, pu := range g.powerUps {
		// Blink in and out as the lifespan runs down.
		if pu.Lifespan%20 >= 10 {
			continue
		}
		px := pu.Pos.X * CellSize
		py := pu.Pos.Y * CellSize
		gocv.Rectangle(panel, image.Rect(px+3, py+3, px+CellSize-3, py+CellSize-3), colorPowerUp, -1)
		center := image.Pt(px+CellSize/2, py+CellSize/2)
		gocv.Circle(panel, center, 3, colorPowerUpDot, -1)
	}
}

func (g *Game) drawParticles(panel *gocv.Mat) {
	for _, p := range g.particles {
		frac := float64(p.Life) / float64(p.MaxLife)
		size := int(1 + 3*frac)
		col := color.RGBA{
			R: uint8(float64(p.Color.R) * frac),
			G: uint8(float64(p.Color.G) * frac),
			B: uint8(float64(p.Color.B) * frac),
		}
		gocv.Circle(panel, image.Pt(int(p.X), int(p.Y)), size, col, -1)
	}
}

func (g *Game) drawHUD(panel *gocv.Mat, w, h int) {
	gocv.PutText(panel, fmt.Sprintf("Score: %d", g.score), image.Pt(10, 28),
		gocv.FontHersheySimplex, 0.8, colorText, 2)
	gocv.PutText(panel, fmt.Sprintf("High: %d", g.highScore), image.Pt(10, 55),
		gocv.FontHersheySimplex, 0.55, colorHighScore, 1)

	mode := "CLASSIC"
	if g.wrap {
		mode = "WRAP"
	}
	gocv.PutText(panel, fmt.Sprintf("Mode: %s", mode), image.Pt(10, 78),
		gocv.FontHersheySimplex, 0.55, colorAccent, 1)

	if g.boost {
		gocv.PutText(panel, "SPEED BOOST!", image.Pt(10, 101),
			gocv.FontHersheySimplex, 0.55, colorAccent, 1)
	}

	switch g.state {
	case StatePaused:
		putTextCentered(panel, "PAUSED", w/2, h/2, 1.0, colorText, 2)
	case StateGameOver:
		if g.newHigh && g.score > 0 {
			putTextCentered(panel, "NEW HIGH SCORE!", w/2, h/2-60, 0.6, colorHighScore, 1)
		}
		putTextCentered(panel, "GAME OVER", w/2, h/2-20, 1.0, colorText, 2)
		putTextCentered(panel, fmt.Sprintf("Score: %d", g.score), w/2, h/2+20, 0.8, colorText, 2)
		putTextCentered(panel, "Show 'UP' to restart", w/2, h/2+60, 0.55, colorRestart, 1)
	}
}

func putTextCentered(panel *gocv.Mat, text string, cx, cy int, scale float64, col color.RGBA, thickness int) {
	size := gocv.GetTextSize(text, gocv.FontHersheySimplex, scale, thickness)
	gocv.PutText(panel, text, image.Pt(cx-size.X/2, cy), gocv.FontHersheySimplex, scale, col, thickness)
}
