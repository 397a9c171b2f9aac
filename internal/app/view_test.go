package app

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestView_ResizeClampsToMinimum(t *testing.T) {
	v := newView(100, 50)

	if v.width != minViewWidth || v.height != minViewHeight {
		t.Errorf("view clamped to %dx%d, want %dx%d",
			v.width, v.height, minViewWidth, minViewHeight)
	}
}

func TestView_PaneSplitCoversFullWidth(t *testing.T) {
	for _, width := range []int{800, 801, 1280, 1365} {
		v := newView(width, 720)
		if v.leftWidth+v.rightWidth != width {
			t.Errorf("width %d: panes %d+%d do not cover the canvas",
				width, v.leftWidth, v.rightWidth)
		}
	}
}

func TestView_ComposeMatchesCanvasSize(t *testing.T) {
	v := newView(1280, 720)

	panel := gocv.NewMatWithSize(600, 400, gocv.MatTypeCV8UC3)
	defer panel.Close()
	cam := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer cam.Close()

	canvas := v.Compose(panel, cam, true)
	defer canvas.Close()

	if canvas.Rows() != 720 || canvas.Cols() != 1280 {
		t.Errorf("canvas is %dx%d, want 720x1280", canvas.Rows(), canvas.Cols())
	}
}

func TestView_ComposeWithoutCameraDrawsPlaceholder(t *testing.T) {
	v := newView(800, 600)

	panel := gocv.NewMatWithSize(600, 400, gocv.MatTypeCV8UC3)
	defer panel.Close()
	empty := gocv.NewMat()
	defer empty.Close()

	canvas := v.Compose(panel, empty, false)
	defer canvas.Close()

	if canvas.Empty() {
		t.Fatal("compose returned an empty canvas")
	}
	if canvas.Rows() != 600 || canvas.Cols() != 800 {
		t.Errorf("canvas is %dx%d, want 600x800", canvas.Rows(), canvas.Cols())
	}
}

func TestView_ResizeAfterCreation(t *testing.T) {
	v := newView(800, 600)
	v.Resize(1600, 900)

	panel := gocv.NewMatWithSize(600, 400, gocv.MatTypeCV8UC3)
	defer panel.Close()
	cam := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer cam.Close()

	canvas := v.Compose(panel, cam, true)
	defer canvas.Close()

	if canvas.Cols() != 1600 || canvas.Rows() != 900 {
		t.Errorf("canvas is %dx%d after resize, want 900x1600", canvas.Rows(), canvas.Cols())
	}
}
