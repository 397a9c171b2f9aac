package gesture

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/himanshmunjal/Hand-Gesture/internal/detector"
)

// Overlay colors (RGB).
var (
	colorSkeleton   = color.RGBA{R: 0, G: 255, B: 0, A: 0}
	colorJoint      = color.RGBA{R: 255, G: 0, B: 0, A: 0}
	colorBoost      = color.RGBA{R: 255, G: 255, B: 0, A: 0}
	colorDirection  = color.RGBA{R: 0, G: 255, B: 255, A: 0}
	colorStatusText = color.RGBA{R: 255, G: 255, B: 255, A: 0}
	colorGuideBox   = color.RGBA{R: 0, G: 255, B: 0, A: 0}
	colorBarBack    = color.RGBA{R: 80, G: 80, B: 80, A: 0}
	colorError      = color.RGBA{R: 255, G: 0, B: 0, A: 0}
)

// drawSkeleton draws the hand landmark skeleton over the frame.
func drawSkeleton(frame *gocv.Mat, hand *detector.HandLandmarks) {
	w := float64(frame.Cols())
	h := float64(frame.Rows())

	px := func(p detector.Point3D) image.Point {
		return image.Pt(int(p.X*w), int(p.Y*h))
	}

	for _, conn := range detector.Connections {
		gocv.Line(frame, px(hand.Points[conn[0]]), px(hand.Points[conn[1]]), colorSkeleton, 2)
	}
	for _, p := range hand.Points {
		gocv.Circle(frame, px(p), 3, colorJoint, -1)
	}
}

// drawBoostMarker highlights an active pinch at the thumb tip.
func drawBoostMarker(frame *gocv.Mat, hand *detector.HandLandmarks) {
	thumb := hand.Points[detector.ThumbTip]
	center := image.Pt(int(thumb.X*float64(frame.Cols())), int(thumb.Y*float64(frame.Rows())))
	gocv.Circle(frame, center, 8, colorBoost, -1)
	gocv.PutText(frame, "SPEED BOOST!", image.Pt(10, 35), gocv.FontHersheySimplex, 0.8, colorBoost, 2)
}

// drawStatus draws the direction readout, confidence bar, guide box
// and hand-presence line. Cosmetic only.
func drawStatus(frame *gocv.Mat, dir Direction, confidence float64, handVisible bool) {
	if dir != DirectionNone {
		gocv.PutText(frame, fmt.Sprintf("Direction: %s", dir),
			image.Pt(10, 70), gocv.FontHersheySimplex, 0.8, colorDirection, 2)
	}

	drawConfidenceBar(frame, confidence)
	drawGuideBox(frame)

	status := "No Hand"
	if handVisible {
		status = "Hand Detected"
	}
	gocv.PutText(frame, status, image.Pt(10, frame.Rows()-20),
		gocv.FontHersheySimplex, 0.6, colorStatusText, 2)
}

// drawConfidenceBar draws a filled meter in the bottom-left corner.
func drawConfidenceBar(frame *gocv.Mat, confidence float64) {
	const barW, barH = 200, 20
	x := 20
	y := frame.Rows() - 50

	gocv.Rectangle(frame, image.Rect(x, y, x+barW, y+barH), colorBarBack, -1)

	filled := int(barW * confidence)
	fill := color.RGBA{R: uint8(255 - 255*confidence), G: uint8(255 * confidence), B: 0, A: 0}
	if filled > 0 {
		gocv.Rectangle(frame, image.Rect(x, y, x+filled, y+barH), fill, -1)
	}

	gocv.PutText(frame, fmt.Sprintf("Confidence: %d%%", int(confidence*100)),
		image.Pt(x, y-8), gocv.FontHersheySimplex, 0.5, colorStatusText, 1)
}

// drawGuideBox blends a translucent box into the frame center, marking
// where the hand is expected.
func drawGuideBox(frame *gocv.Mat) {
	w := frame.Cols()
	h := frame.Rows()
	boxW := int(float64(w) * 0.4)
	boxH := int(float64(h) * 0.5)
	x1 := (w - boxW) / 2
	y1 := (h - boxH) / 2

	overlay := frame.Clone()
	defer overlay.Close()
	gocv.Rectangle(&overlay, image.Rect(x1, y1, x1+boxW, y1+boxH), colorGuideBox, 2)
	gocv.AddWeighted(overlay, 0.25, *frame, 0.75, 0, frame)
}

// drawErrorOverlay marks a frame whose inference failed.
func drawErrorOverlay(frame *gocv.Mat) {
	gocv.PutText(frame, "Gesture Error", image.Pt(10, 30),
		gocv.FontHersheySimplex, 0.8, colorError, 2)
}
