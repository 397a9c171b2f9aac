// Package capture provides camera capture functionality using GoCV (OpenCV).
package capture

import (
	"errors"
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// Default camera settings. The gesture detector works best with a
// reasonably large frame, so capture runs at 720p when the device
// supports it.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFPS    = 30
)

// AutoDetect asks Open to probe device indices 0 through MaxProbeIndex
// and use the first camera that delivers a frame.
const AutoDetect = -1

// MaxProbeIndex is the highest device index tried during auto-detection.
const MaxProbeIndex = 2

// ErrCameraNotOpen is returned when trying to read from a camera that is not open.
var ErrCameraNotOpen = errors.New("camera is not open")

// ErrNoCamera is returned when auto-detection finds no usable device.
var ErrNoCamera = errors.New("no usable camera device found")

// Camera defines the interface for camera capture implementations.
type Camera interface {
	Open() error
	Close() error
	ReadFrame() (*gocv.Mat, error)
	IsOpen() bool
}

// cameraImpl manages video capture from a camera device using GoCV.
type cameraImpl struct {
	deviceID int
	capture  *gocv.VideoCapture
	mu       sync.Mutex
	running  bool
}

// NewCamera creates a new Camera for the given device ID.
// Pass AutoDetect to probe for the first working device on Open.
func NewCamera(deviceID int) Camera {
	return &cameraImpl{
		deviceID: deviceID,
	}
}

// Open opens the camera for capturing frames. With AutoDetect it tries
// device indices in order and keeps the first one that both opens and
// delivers a non-empty frame.
func (c *cameraImpl) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	ids := []int{c.deviceID}
	if c.deviceID == AutoDetect {
		ids = ids[:0]
		for id := 0; id <= MaxProbeIndex; id++ {
			ids = append(ids, id)
		}
	}

	for _, id := range ids {
		capture, err := openDevice(id)
		if err != nil {
			continue
		}
		c.capture = capture
		c.deviceID = id
		c.running = true
		return nil
	}

	return ErrNoCamera
}

// openDevice opens a single device index and verifies it delivers a frame.
func openDevice(id int) (*gocv.VideoCapture, error) {
	capture, err := gocv.OpenVideoCapture(id)
	if err != nil {
		return nil, err
	}

	capture.Set(gocv.VideoCaptureFrameWidth, DefaultWidth)
	capture.Set(gocv.VideoCaptureFrameHeight, DefaultHeight)
	capture.Set(gocv.VideoCaptureFPS, DefaultFPS)

	probe := gocv.NewMat()
	defer probe.Close()
	if ok := capture.Read(&probe); !ok || probe.Empty() {
		capture.Close()
		return nil, fmt.Errorf("device %d opened but delivered no frame", id)
	}

	return capture, nil
}

// Close closes the camera and releases resources.
func (c *cameraImpl) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.capture == nil {
		c.running = false
		return nil
	}

	err := c.capture.Close()
	c.capture = nil
	c.running = false

	return err
}

// ReadFrame reads a single frame from the camera.
// The caller is responsible for closing the returned Mat.
func (c *cameraImpl) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.capture == nil {
		return nil, ErrCameraNotOpen
	}

	mat := gocv.NewMat()
	if ok := c.capture.Read(&mat); !ok {
		mat.Close()
		return nil, errors.New("failed to read frame from camera")
	}

	if mat.Empty() {
		mat.Close()
		return nil, errors.New("captured frame is empty")
	}

	return &mat, nil
}

// IsOpen returns true if the camera is currently open and running.
func (c *cameraImpl) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running
}
