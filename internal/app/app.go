// Package app wires the camera, gesture interpreter, game and display
// together: a background goroutine captures and interprets frames while
// the main loop renders the split view at a fixed frame rate.
package app

import (
	"log"
	"runtime"
	"time"

	"gocv.io/x/gocv"

	"github.com/himanshmunjal/Hand-Gesture/internal/capture"
	"github.com/himanshmunjal/Hand-Gesture/internal/detector"
	"github.com/himanshmunjal/Hand-Gesture/internal/game"
	"github.com/himanshmunjal/Hand-Gesture/internal/gesture"
	"github.com/himanshmunjal/Hand-Gesture/internal/store"
)

const (
	// TargetFPS is the render loop frequency. Game ticks run slower and
	// are derived from the game's own speed.
	TargetFPS = 60

	// shutdownTimeout bounds how long Stop waits for the capture loop.
	shutdownTimeout = 2 * time.Second
)

// Config holds application settings.
type Config struct {
	CameraID     int
	WindowTitle  string
	WindowWidth  int
	WindowHeight int

	Game     game.Config
	Detector detector.Config

	// Store is optional; without it scores are simply not persisted.
	Store *store.Store
}

// DefaultConfig returns the standard application settings.
func DefaultConfig() Config {
	return Config{
		CameraID:     capture.AutoDetect,
		WindowTitle:  "Gesture Snake",
		WindowWidth:  1280,
		WindowHeight: 720,
		Game:         game.DefaultConfig(),
		Detector:     detector.DefaultConfig(),
	}
}

// App is the main application.
type App struct {
	cfg    Config
	camera capture.Camera
	interp *gesture.Interpreter
	game   *game.Game
	view   *view

	slot     frameSlot
	commands chan Command

	running     bool
	gameStarted time.Time
	lastTick    time.Time

	stopCh      chan struct{}
	captureDone chan struct{}
}

// Command is an external request delivered to the main loop, used by
// the tray menu.
type Command int

const (
	CommandTogglePause Command = iota
	CommandToggleWrap
	CommandQuit
)

// New creates the application. A camera or detector that fails to set
// up degrades the app to keyboard input rather than aborting.
func New(cfg Config) *App {
	a := &App{
		cfg:      cfg,
		camera:   capture.NewCamera(cfg.CameraID),
		view:     newView(cfg.WindowWidth, cfg.WindowHeight),
		commands: make(chan Command, 8),
	}

	det, err := detector.NewMediaPipeDetector(cfg.Detector)
	if err != nil {
		log.Printf("hand detector unavailable: %v (keyboard input only)", err)
		a.interp = gesture.NewInterpreter(detector.NewMockDetector())
	} else {
		a.interp = gesture.NewInterpreter(det)
	}

	a.game = game.New(cfg.Game)
	a.game.OnGameOver = a.persistGameOver
	if cfg.Store != nil {
		a.game.SetHighScore(cfg.Store.Scores().HighScore())
	}

	return a
}

// SetCamera replaces the camera before Run. Used by tests.
func (a *App) SetCamera(c capture.Camera) { a.camera = c }

// SetInterpreter replaces the gesture interpreter before Run. Used by
// tests.
func (a *App) SetInterpreter(it *gesture.Interpreter) { a.interp = it }

// Game exposes the game state, for the tray menu and tests.
func (a *App) Game() *game.Game { return a.game }

// Send queues a command for the main loop. It never blocks; when the
// queue is full the command is dropped.
func (a *App) Send(cmd Command) {
	select {
	case a.commands <- cmd:
	default:
	}
}

// Run opens the camera, starts the capture loop and drives the render
// loop until quit. The window lives on the calling goroutine, which is
// pinned to its OS thread: OpenCV's window functions must all run on
// one thread.
func (a *App) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := a.camera.Open(); err != nil {
		log.Printf("camera unavailable: %v (keyboard input only)", err)
	}

	a.stopCh = make(chan struct{})
	a.captureDone = make(chan struct{})
	go a.captureLoop()

	window := gocv.NewWindow(a.cfg.WindowTitle)
	window.ResizeWindow(a.cfg.WindowWidth, a.cfg.WindowHeight)

	ticker := time.NewTicker(time.Second / TargetFPS)
	defer ticker.Stop()

	a.running = true
	a.gameStarted = time.Now()
	a.lastTick = time.Now()

	for a.running {
		<-ticker.C

		a.handleKey(window.WaitKey(1))
		a.drainCommands()

		dir, boost, camFrame, hasCam := a.slot.latest()
		a.applyGesture(dir, boost)

		if time.Since(a.lastTick) >= a.game.TickInterval() {
			a.game.Update()
			a.lastTick = time.Now()
		}

		panel := a.game.Render()
		canvas := a.view.Compose(panel, camFrame, hasCam)
		panel.Close()
		camFrame.Close()

		window.IMShow(canvas)
		canvas.Close()

		if window.GetWindowProperty(gocv.WindowPropertyVisible) < 1 {
			a.running = false
		}
	}

	a.shutdown(window)
	return nil
}

// Stop requests the main loop to exit after the current frame.
func (a *App) Stop() {
	a.Send(CommandQuit)
}

// applyGesture feeds one gesture snapshot into the game.
func (a *App) applyGesture(dir gesture.Direction, boost bool) {
	if gd, ok := toGameDirection(dir); ok {
		a.game.ChangeDirection(gd)
		a.handleRestart(gd)
	}
	a.game.SetBoost(boost)
}

// handleRestart restarts after game over and resets the run clock.
func (a *App) handleRestart(d game.Direction) {
	if a.game.State() != game.StateGameOver {
		return
	}
	a.game.HandleRestart(d)
	if a.game.State() == game.StateRunning {
		a.gameStarted = time.Now()
	}
}

func (a *App) handleKey(key int) {
	switch key {
	case -1:
		// No key pressed.
	case 27, 'q': // ESC
		a.running = false
	case ' ', 'p':
		a.game.TogglePause()
	case 'm':
		a.game.ToggleWrap()
	case 'w':
		a.game.ChangeDirection(game.Up)
		a.handleRestart(game.Up)
	case 's':
		a.game.ChangeDirection(game.Down)
	case 'a':
		a.game.ChangeDirection(game.Left)
	case 'd':
		a.game.ChangeDirection(game.Right)
	}
}

func (a *App) drainCommands() {
	for {
		select {
		case cmd := <-a.commands:
			switch cmd {
			case CommandTogglePause:
				a.game.TogglePause()
			case CommandToggleWrap:
				a.game.ToggleWrap()
			case CommandQuit:
				a.running = false
			}
		default:
			return
		}
	}
}

// persistGameOver records the finished game. Storage errors are logged
// and otherwise ignored.
func (a *App) persistGameOver(sum game.Summary) {
	if a.cfg.Store == nil {
		return
	}

	repo := a.cfg.Store.Scores()
	if sum.NewHigh {
		if err := repo.SetHighScore(sum.Score); err != nil {
			log.Printf("failed to save high score: %v", err)
		}
	}
	rec := &store.GameRecord{
		Score:    sum.Score,
		Length:   sum.Length,
		Wrap:     sum.Wrap,
		Duration: sum.Duration,
	}
	if err := repo.Record(rec); err != nil {
		log.Printf("failed to record game: %v", err)
	}
}

// shutdown tears the app down in order: capture loop, camera,
// detector, score flush, display. Each step logs and continues on
// failure so a stuck component never leaks the others.
func (a *App) shutdown(window *gocv.Window) {
	close(a.stopCh)
	select {
	case <-a.captureDone:
	case <-time.After(shutdownTimeout):
		log.Printf("capture loop did not stop within %v", shutdownTimeout)
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("failed to close camera: %v", err)
	}
	if err := a.interp.Close(); err != nil {
		log.Printf("failed to close detector: %v", err)
	}

	a.flushHighScore()
	a.slot.close()

	if err := window.Close(); err != nil {
		log.Printf("failed to close window: %v", err)
	}
}

// flushHighScore persists the best score seen this session, including
// a game still in progress at quit.
func (a *App) flushHighScore() {
	if a.cfg.Store == nil {
		return
	}

	best := a.game.HighScore()
	if a.game.Score() > best {
		best = a.game.Score()
	}
	if best > a.cfg.Store.Scores().HighScore() {
		if err := a.cfg.Store.Scores().SetHighScore(best); err != nil {
			log.Printf("failed to save high score: %v", err)
		}
	}
}

// toGameDirection converts a gesture direction to a game direction.
// DirectionNone has no game equivalent.
func toGameDirection(d gesture.Direction) (game.Direction, bool) {
	switch d {
	case gesture.DirectionUp:
		return game.Up, true
	case gesture.DirectionDown:
		return game.Down, true
	case gesture.DirectionLeft:
		return game.Left, true
	case gesture.DirectionRight:
		return game.Right, true
	default:
		return game.Up, false
	}
}
