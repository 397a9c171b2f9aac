// Package tray provides a system tray menu for the snake game.
package tray

import (
	"fmt"
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray menu.
type Tray struct {
	onPause func(paused bool)
	onWrap  func()
	onQuit  func()
	paused  bool
	mu      sync.RWMutex

	// Menu items stored for later updates
	menuPause *systray.MenuItem
	menuScore *systray.MenuItem
}

// New creates a new Tray instance.
func New() *Tray {
	return &Tray{}
}

// OnPause sets the callback invoked when the pause menu item is clicked.
func (t *Tray) OnPause(fn func(paused bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onPause = fn
}

// OnWrap sets the callback invoked when the wrap mode menu item is clicked.
func (t *Tray) OnWrap(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onWrap = fn
}

// OnQuit sets the callback invoked when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Quit tears the tray down from outside, e.g. when the game window closes.
func (t *Tray) Quit() {
	systray.Quit()
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Gesture Snake")
	systray.SetTooltip("Hand-gesture controlled snake")

	t.menuScore = systray.AddMenuItem("Score: 0", "Current score")
	t.menuScore.Disable()
	systray.AddSeparator()

	t.menuPause = systray.AddMenuItem("Pause", "Pause or resume the game")
	menuWrap := systray.AddMenuItem("Toggle Wrap Mode", "Switch between wrap-around and classic walls")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Gesture Snake")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuPause.ClickedCh:
				t.handlePause()
			case <-menuWrap.ClickedCh:
				t.handleWrap()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

func (t *Tray) onExit() {
	// Cleanup resources if needed
}

// handlePause handles the pause menu item click.
func (t *Tray) handlePause() {
	t.mu.Lock()
	t.paused = !t.paused
	paused := t.paused

	if paused {
		t.menuPause.SetTitle("Resume")
	} else {
		t.menuPause.SetTitle("Pause")
	}

	callback := t.onPause
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(paused)
	}
}

// handleWrap handles the wrap mode menu item click.
func (t *Tray) handleWrap() {
	t.mu.RLock()
	callback := t.onWrap
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetScore updates the score line in the menu.
func (t *Tray) SetScore(score int) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuScore != nil {
		t.menuScore.SetTitle(fmt.Sprintf("Score: %d", score))
	}
}

// IsPaused returns whether the tray last requested a pause.
func (t *Tray) IsPaused() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.paused
}
