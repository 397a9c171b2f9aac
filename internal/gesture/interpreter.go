// Package gesture turns hand landmark detections into discrete game input.
package gesture

import (
	"math"

	"gocv.io/x/gocv"

	"github.com/himanshmunjal/Hand-Gesture/internal/detector"
)

// Direction is the discrete outcome of a directional hand movement.
type Direction int

const (
	// DirectionNone means no direction has been established yet.
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// String returns the display name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "UP"
	case DirectionDown:
		return "DOWN"
	case DirectionLeft:
		return "LEFT"
	case DirectionRight:
		return "RIGHT"
	default:
		return "NONE"
	}
}

// Interpreter tuning constants.
const (
	// HistorySize is the number of wrist samples in the smoothing window.
	HistorySize = 6
	// CooldownFrames is how many frames a new direction is held before
	// another change is accepted.
	CooldownFrames = 4
	// PinchThreshold is the normalized thumb-to-index distance below
	// which the hand reads as a pinch.
	PinchThreshold = 0.05
	// MaxNoHandFrames is how many consecutive hand-less frames are
	// tolerated before tracking state is reset.
	MaxNoHandFrames = 12
)

// Movement thresholds picked by detection confidence: the more the
// detector trusts the hand, the smaller the movement needed.
const (
	thresholdHighConf = 0.02
	thresholdMidConf  = 0.03
	thresholdLowConf  = 0.05
)

type position struct {
	x, y float64
}

// Result is the outcome of interpreting one frame.
type Result struct {
	Direction Direction
	Boost     bool
	// Annotated is a copy of the input frame with tracking overlays.
	// The caller owns it and must Close it.
	Annotated gocv.Mat
}

// Interpreter derives a direction and a boost flag from a stream of
// camera frames. It is not safe for concurrent use; the capture loop
// is its only caller.
type Interpreter struct {
	detector detector.Detector

	history        []position
	prevSmoothed   *position
	direction      Direction
	cooldown       int
	noHandFrames   int
	lastConfidence float64
}

// NewInterpreter creates an Interpreter reading hands from d.
func NewInterpreter(d detector.Detector) *Interpreter {
	return &Interpreter{
		detector: d,
		history:  make([]position, 0, HistorySize),
	}
}

// Infer runs hand detection on one frame and advances the gesture
// state machine. Detector failures never propagate: the previous
// direction is kept, boost is dropped, and the annotated frame gets
// an error overlay instead.
func (it *Interpreter) Infer(frame *gocv.Mat) Result {
	annotated := frame.Clone()

	hands, err := it.detector.Detect(frame)
	if err != nil {
		drawErrorOverlay(&annotated)
		return Result{Direction: it.direction, Boost: false, Annotated: annotated}
	}

	dir, boost := it.track(hands)

	if len(hands) > 0 {
		drawSkeleton(&annotated, &hands[0])
		if boost {
			drawBoostMarker(&annotated, &hands[0])
		}
	}
	drawStatus(&annotated, dir, it.lastConfidence, len(hands) > 0)

	return Result{Direction: dir, Boost: boost, Annotated: annotated}
}

// track advances the gesture state machine by one frame of detections
// and returns the current direction and pinch state.
func (it *Interpreter) track(hands []detector.HandLandmarks) (Direction, bool) {
	if it.cooldown > 0 {
		it.cooldown--
	}

	if len(hands) == 0 {
		it.lastConfidence = 0
		it.noHandFrames++
		if it.noHandFrames > MaxNoHandFrames {
			it.Reset()
		}
		return it.direction, false
	}

	hand := &hands[0]
	it.noHandFrames = 0
	it.lastConfidence = hand.Score

	wrist := hand.Points[detector.Wrist]
	it.history = append(it.history, position{wrist.X, wrist.Y})
	if len(it.history) > HistorySize {
		it.history = it.history[1:]
	}
	smoothed := centroid(it.history)

	if it.prevSmoothed != nil && it.cooldown == 0 {
		dx := smoothed.x - it.prevSmoothed.x
		dy := smoothed.y - it.prevSmoothed.y

		if math.Hypot(dx, dy) > it.threshold() {
			dir := dominantAxis(dx, dy)
			if dir != it.direction {
				it.direction = dir
				it.cooldown = CooldownFrames
			}
		}
	}

	it.prevSmoothed = &smoothed
	boost := hand.PinchDistance() < PinchThreshold

	return it.direction, boost
}

// threshold returns the movement magnitude required for a direction,
// shrinking as detection confidence rises.
func (it *Interpreter) threshold() float64 {
	switch {
	case it.lastConfidence > 0.8:
		return thresholdHighConf
	case it.lastConfidence > 0.5:
		return thresholdMidConf
	default:
		return thresholdLowConf
	}
}

// dominantAxis maps a movement vector to the direction of its
// larger-magnitude axis.
func dominantAxis(dx, dy float64) Direction {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if dy > 0 {
		return DirectionDown
	}
	return DirectionUp
}

func centroid(history []position) position {
	var sum position
	for _, p := range history {
		sum.x += p.x
		sum.y += p.y
	}
	n := float64(len(history))
	return position{sum.x / n, sum.y / n}
}

// Reset returns all tracking state to its initial value. Called when
// the hand has been lost for longer than MaxNoHandFrames.
func (it *Interpreter) Reset() {
	it.history = it.history[:0]
	it.prevSmoothed = nil
	it.direction = DirectionNone
	it.cooldown = 0
	it.noHandFrames = 0
}

// Direction returns the current sticky direction.
func (it *Interpreter) Direction() Direction {
	return it.direction
}

// Close releases the underlying detector.
func (it *Interpreter) Close() error {
	return it.detector.Close()
}
