package app

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Minimum window dimensions; resize requests below these are clamped.
const (
	minViewWidth  = 640
	minViewHeight = 480
)

var (
	viewBackground  = color.RGBA{R: 18, G: 18, B: 24}
	dividerColor    = color.RGBA{R: 60, G: 70, B: 60}
	instructionText = color.RGBA{R: 200, G: 210, B: 200}
	placeholderText = color.RGBA{R: 140, G: 140, B: 150}
)

// view composes the game panel and the annotated camera feed into a
// single side-by-side canvas. Panes are scaled to fit; the grid itself
// never changes with window size.
type view struct {
	width      int
	height     int
	leftWidth  int
	rightWidth int
}

func newView(width, height int) *view {
	v := &view{}
	v.Resize(width, height)
	return v
}

// Resize recomputes the pane split for a new canvas size.
func (v *view) Resize(width, height int) {
	if width < minViewWidth {
		width = minViewWidth
	}
	if height < minViewHeight {
		height = minViewHeight
	}
	v.width = width
	v.height = height
	v.leftWidth = width / 2
	v.rightWidth = width - v.leftWidth
}

// Compose renders the split view. The game panel fills the left pane
// and the camera frame the right; when no camera frame is available a
// placeholder pane is drawn instead. The caller owns the returned Mat.
func (v *view) Compose(panel gocv.Mat, camFrame gocv.Mat, hasCam bool) gocv.Mat {
	canvas := gocv.NewMatWithSize(v.height, v.width, gocv.MatTypeCV8UC3)
	canvas.SetTo(gocv.NewScalar(float64(viewBackground.B), float64(viewBackground.G), float64(viewBackground.R), 0))

	left := canvas.Region(image.Rect(0, 0, v.leftWidth, v.height))
	gocv.Resize(panel, &left, image.Pt(v.leftWidth, v.height), 0, 0, gocv.InterpolationLinear)
	left.Close()

	right := canvas.Region(image.Rect(v.leftWidth, 0, v.width, v.height))
	if hasCam && !camFrame.Empty() {
		gocv.Resize(camFrame, &right, image.Pt(v.rightWidth, v.height), 0, 0, gocv.InterpolationLinear)
	} else {
		drawPlaceholder(&right)
	}
	right.Close()

	gocv.Line(&canvas,
		image.Pt(v.leftWidth, 0), image.Pt(v.leftWidth, v.height),
		dividerColor, 3)

	v.drawInstructions(&canvas)
	return canvas
}

// drawPlaceholder fills the camera pane when no feed is available.
func drawPlaceholder(pane *gocv.Mat) {
	pane.SetTo(gocv.NewScalar(30, 26, 26, 0))

	msg := "Camera not available"
	putTextCentered(pane, msg, pane.Rows()/2, 0.8, placeholderText, 2)
	putTextCentered(pane, "Use W/A/S/D to play", pane.Rows()/2+40, 0.6, placeholderText, 1)
}

// drawInstructions writes the control summary at the bottom of the
// camera pane.
func (v *view) drawInstructions(canvas *gocv.Mat) {
	lines := []string{
		"Move hand: steer  |  Pinch: boost",
		"W/A/S/D: steer  SPACE: pause  M: mode  ESC: quit",
	}

	y := v.height - 20*len(lines) - 8
	for _, line := range lines {
		gocv.PutText(canvas, line,
			image.Pt(v.leftWidth+12, y),
			gocv.FontHersheySimplex, 0.45, instructionText, 1)
		y += 20
	}
}

// putTextCentered draws text horizontally centered within the pane.
func putTextCentered(pane *gocv.Mat, text string, y int, scale float64, clr color.RGBA, thickness int) {
	size := gocv.GetTextSize(text, gocv.FontHersheySimplex, scale, thickness)
	x := (pane.Cols() - size.X) / 2
	if x < 0 {
		x = 0
	}
	gocv.PutText(pane, text, image.Pt(x, y), gocv.FontHersheySimplex, scale, clr, thickness)
}
