package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/himanshmunjal/Hand-Gesture/internal/game"
	"github.com/himanshmunjal/Hand-Gesture/internal/gesture"
	"github.com/himanshmunjal/Hand-Gesture/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg := DefaultConfig()
	cfg.Game.Seed = 1
	return New(cfg)
}

func newTestAppWithStore(t *testing.T) (*App, *store.Store) {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})

	cfg := DefaultConfig()
	cfg.Game.Seed = 1
	cfg.Store = s
	return New(cfg), s
}

func TestNew_DegradesWithoutDetector(t *testing.T) {
	a := newTestApp(t)

	// With no hand service installed the app still comes up and the
	// game is playable via keyboard.
	if a.interp == nil || a.game == nil {
		t.Fatal("app should always have an interpreter and a game")
	}
}

func TestNew_LoadsPersistedHighScore(t *testing.T) {
	s, err := store.New(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() {
		s.Close()
	})
	if err := s.Scores().SetHighScore(140); err != nil {
		t.Fatalf("failed to seed high score: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Store = s
	a := New(cfg)

	if got := a.game.HighScore(); got != 140 {
		t.Errorf("high score = %d, want 140", got)
	}
}

func TestToGameDirection(t *testing.T) {
	tests := []struct {
		in     gesture.Direction
		want   game.Direction
		wantOK bool
	}{
		{gesture.DirectionUp, game.Up, true},
		{gesture.DirectionDown, game.Down, true},
		{gesture.DirectionLeft, game.Left, true},
		{gesture.DirectionRight, game.Right, true},
		{gesture.DirectionNone, game.Up, false},
	}

	for _, tt := range tests {
		got, ok := toGameDirection(tt.in)
		if ok != tt.wantOK {
			t.Errorf("%v: ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("%v: direction = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestApp_ApplyGestureSteersGame(t *testing.T) {
	a := newTestApp(t)

	a.applyGesture(gesture.DirectionUp, true)
	a.game.Update()

	if got := a.game.Direction(); got != game.Up {
		t.Errorf("game direction = %v, want UP", got)
	}
	if !a.game.Boost() {
		t.Error("boost should be on after a pinch snapshot")
	}
}

func TestApp_ApplyGestureIgnoresNone(t *testing.T) {
	a := newTestApp(t)
	before := a.game.Direction()

	a.applyGesture(gesture.DirectionNone, false)
	a.game.Update()

	if got := a.game.Direction(); got != before {
		t.Errorf("DirectionNone changed game direction to %v", got)
	}
}

func TestApp_HandleKey(t *testing.T) {
	a := newTestApp(t)
	a.running = true

	a.handleKey('m')
	if a.game.Wrap() {
		t.Error("'m' should toggle wrap mode off")
	}

	a.handleKey(' ')
	if a.game.State() != game.StatePaused {
		t.Error("space should pause the game")
	}
	a.handleKey('p')
	if a.game.State() != game.StateRunning {
		t.Error("'p' should resume the game")
	}

	a.handleKey('s')
	a.game.Update()
	if got := a.game.Direction(); got != game.Down {
		t.Errorf("'s' set direction %v, want DOWN", got)
	}

	a.handleKey(27)
	if a.running {
		t.Error("ESC should stop the main loop")
	}
}

func TestApp_DrainCommands(t *testing.T) {
	a := newTestApp(t)
	a.running = true

	a.Send(CommandTogglePause)
	a.Send(CommandToggleWrap)
	a.Send(CommandQuit)
	a.drainCommands()

	if a.game.State() != game.StatePaused {
		t.Error("pause command was not applied")
	}
	if a.game.Wrap() {
		t.Error("wrap command was not applied")
	}
	if a.running {
		t.Error("quit command was not applied")
	}
}

func TestApp_SendNeverBlocks(t *testing.T) {
	a := newTestApp(t)

	// Nothing drains here; extra commands must be dropped, not block.
	for i := 0; i < 100; i++ {
		a.Send(CommandTogglePause)
	}
}

func TestApp_PersistGameOver(t *testing.T) {
	a, s := newTestAppWithStore(t)

	a.persistGameOver(game.Summary{
		Score:    50,
		Length:   8,
		Wrap:     true,
		Duration: 90 * time.Second,
		NewHigh:  true,
	})

	if got := s.Scores().HighScore(); got != 50 {
		t.Errorf("high score = %d, want 50", got)
	}

	recent, err := s.Scores().Recent(1)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Score != 50 {
		t.Fatalf("game was not recorded: %+v", recent)
	}
	if recent[0].Length != 8 || !recent[0].Wrap {
		t.Errorf("record fields not carried over: %+v", recent[0])
	}
}

func TestApp_PersistGameOverSkipsHighScoreUnlessNew(t *testing.T) {
	a, s := newTestAppWithStore(t)
	if err := s.Scores().SetHighScore(100); err != nil {
		t.Fatalf("failed to seed high score: %v", err)
	}

	a.persistGameOver(game.Summary{Score: 40, Length: 5})

	if got := s.Scores().HighScore(); got != 100 {
		t.Errorf("high score = %d, want 100 untouched", got)
	}
}

func TestApp_FlushHighScore(t *testing.T) {
	a, s := newTestAppWithStore(t)

	a.game.SetHighScore(70)
	a.flushHighScore()

	if got := s.Scores().HighScore(); got != 70 {
		t.Errorf("high score after flush = %d, want 70", got)
	}
}

func TestApp_FlushHighScoreNeverLowers(t *testing.T) {
	a, s := newTestAppWithStore(t)
	if err := s.Scores().SetHighScore(200); err != nil {
		t.Fatalf("failed to seed high score: %v", err)
	}

	a.flushHighScore()

	if got := s.Scores().HighScore(); got != 200 {
		t.Errorf("high score = %d, want 200 untouched", got)
	}
}
