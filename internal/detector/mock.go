package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It can return a fixed result, or play back a scripted sequence of
// per-call results to drive gesture state machines in tests.
type MockDetector struct {
	hands  []HandLandmarks
	err    error
	script [][]HandLandmarks
	calls  int
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by every Detect call.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
	m.script = nil
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// SetScript sets a per-call sequence of results. Once the script is
// exhausted, Detect keeps returning the last entry.
func (m *MockDetector) SetScript(script [][]HandLandmarks) {
	m.script = script
	m.calls = 0
}

// Calls returns how many times Detect has been invoked.
func (m *MockDetector) Calls() int {
	return m.calls
}

// Detect returns the pre-configured hands, scripted entry, or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if len(m.script) > 0 {
		i := m.calls - 1
		if i >= len(m.script) {
			i = len(m.script) - 1
		}
		return m.script[i], nil
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// HandAt returns a preset hand with the wrist at (x, y) and the
// remaining landmarks laid out as a relaxed open hand above it.
// The thumb tip and index tip are kept well apart so the hand does
// not read as a pinch.
func HandAt(x, y, score float64) HandLandmarks {
	hand := HandLandmarks{
		Handedness: "Right",
		Score:      score,
	}

	hand.Points[Wrist] = Point3D{X: x, Y: y}

	// Thumb off to the side
	hand.Points[ThumbCMC] = Point3D{X: x + 0.04, Y: y - 0.03}
	hand.Points[ThumbMCP] = Point3D{X: x + 0.07, Y: y - 0.06}
	hand.Points[ThumbIP] = Point3D{X: x + 0.10, Y: y - 0.09}
	hand.Points[ThumbTip] = Point3D{X: x + 0.13, Y: y - 0.11}

	// Fingers fan upward from the palm
	fingers := [][4]int{
		{IndexMCP, IndexPIP, IndexDIP, IndexTip},
		{MiddleMCP, MiddlePIP, MiddleDIP, MiddleTip},
		{RingMCP, RingPIP, RingDIP, RingTip},
		{PinkyMCP, PinkyPIP, PinkyDIP, PinkyTip},
	}
	for f, finger := range fingers {
		fx := x + 0.03 - float64(f)*0.025
		for j, idx := range finger {
			hand.Points[idx] = Point3D{X: fx, Y: y - 0.08 - float64(j)*0.04}
		}
	}

	return hand
}

// PinchedHandAt returns a preset hand at (x, y) with the thumb tip
// and index tip touching, reading as a pinch gesture.
func PinchedHandAt(x, y, score float64) HandLandmarks {
	hand := HandAt(x, y, score)
	tip := Point3D{X: x + 0.02, Y: y - 0.14}
	hand.Points[ThumbTip] = tip
	hand.Points[IndexTip] = Point3D{X: tip.X + 0.01, Y: tip.Y}
	return hand
}
