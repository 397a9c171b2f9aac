package app

import (
	"sync"
	"time"

	"gocv.io/x/gocv"

	"github.com/himanshmunjal/Hand-Gesture/internal/gesture"
)

// Capture loop pacing.
const (
	// noCameraDelay is the sleep between checks while no camera is open.
	noCameraDelay = 50 * time.Millisecond
	// readRetryDelay is the sleep after a failed or empty frame read.
	readRetryDelay = 10 * time.Millisecond
)

// frameSlot is the single cross-thread handoff point between the
// capture loop and the main loop. Each publish fully replaces the
// previous snapshot; the reader only ever sees the latest value.
type frameSlot struct {
	mu        sync.Mutex
	direction gesture.Direction
	boost     bool
	frame     gocv.Mat
	hasFrame  bool
}

// publish stores a new snapshot, taking ownership of frame and
// releasing the previous one.
func (s *frameSlot) publish(dir gesture.Direction, boost bool, frame gocv.Mat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasFrame {
		s.frame.Close()
	}
	s.direction = dir
	s.boost = boost
	s.frame = frame
	s.hasFrame = true
}

// latest copies the current snapshot out. The returned Mat is a clone
// owned by the caller; ok is false if nothing has been published yet.
func (s *frameSlot) latest() (dir gesture.Direction, boost bool, frame gocv.Mat, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasFrame {
		return s.direction, s.boost, gocv.NewMat(), false
	}
	return s.direction, s.boost, s.frame.Clone(), true
}

// close releases the held frame.
func (s *frameSlot) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasFrame {
		s.frame.Close()
		s.hasFrame = false
	}
}

// captureLoop reads camera frames and runs gesture inference in the
// background, as fast as the camera delivers. Results go into the
// shared slot; the render loop never waits on this goroutine.
func (a *App) captureLoop() {
	defer close(a.captureDone)

	for {
		select {
		case <-a.stopCh:
			return
		default:
		}

		if a.camera == nil || !a.camera.IsOpen() {
			time.Sleep(noCameraDelay)
			continue
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			// Transient read failures are skipped, not fatal.
			time.Sleep(readRetryDelay)
			continue
		}

		// Mirror the frame so the view behaves like a mirror.
		mirrored := gocv.NewMat()
		gocv.Flip(*frame, &mirrored, 1)
		frame.Close()

		res := a.interp.Infer(&mirrored)
		mirrored.Close()

		a.slot.publish(res.Direction, res.Boost, res.Annotated)
	}
}
