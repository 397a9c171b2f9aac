package game

import (
	"testing"
	"time"
)

// newTestGame builds a deterministic 10x10 game with the snake at its
// usual center starting position heading right.
func newTestGame(t *testing.T, wrap bool) *Game {
	t.Helper()

	cfg := DefaultConfig()
	cfg.GridWidth = 10
	cfg.GridHeight = 10
	cfg.Wrap = wrap
	cfg.Seed = 1

	g := New(cfg)
	g.snake = []Point{{5, 5}, {4, 5}, {3, 5}}
	g.direction = Right
	g.nextDirection = Right
	g.fruit = Point{0, 0} // out of the snake's immediate path
	g.particles = g.particles[:0]
	g.powerUps = g.powerUps[:0]
	return g
}

func pointsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestChangeDirection_RejectsReversal(t *testing.T) {
	tests := []struct {
		name    string
		current Direction
		request Direction
		want    Direction
	}{
		{name: "left while moving right is ignored", current: Right, request: Left, want: Right},
		{name: "up while moving down is ignored", current: Down, request: Up, want: Down},
		{name: "perpendicular turn is accepted", current: Right, request: Up, want: Up},
		{name: "same direction is accepted", current: Right, request: Right, want: Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, true)
			g.direction = tt.current
			g.nextDirection = tt.current

			g.ChangeDirection(tt.request)
			if g.nextDirection != tt.want {
				t.Errorf("nextDirection = %s, want %s", g.nextDirection, tt.want)
			}
		})
	}
}

func TestChangeDirection_IgnoredWhenNotRunning(t *testing.T) {
	g := newTestGame(t, true)
	g.state = StateGameOver
	g.ChangeDirection(Up)
	if g.nextDirection != Right {
		t.Errorf("input accepted after game over: %s", g.nextDirection)
	}

	g = newTestGame(t, true)
	g.state = StatePaused
	g.ChangeDirection(Up)
	if g.nextDirection != Right {
		t.Errorf("input accepted while paused: %s", g.nextDirection)
	}
}

func TestUpdate_WrapLeftEdge(t *testing.T) {
	g := newTestGame(t, true)
	g.snake = []Point{{0, 5}, {1, 5}, {2, 5}}
	g.direction = Left
	g.nextDirection = Left

	g.Update()

	head := g.snake[0]
	if head.X != 9 || head.Y != 5 {
		t.Errorf("head = %+v, want (9,5)", head)
	}
	if g.state != StateRunning {
		t.Errorf("wrap must not end the game, state = %d", g.state)
	}

	trail := 0
	for _, p := range g.particles {
		if p.Kind == ParticleTrail {
			trail++
		}
	}
	if trail == 0 {
		t.Error("expected a transition trail at the wrap point")
	}
}

func TestUpdate_ClassicWallCollision(t *testing.T) {
	g := newTestGame(t, false)
	g.snake = []Point{{0, 5}, {1, 5}, {2, 5}}
	g.direction = Left
	g.nextDirection = Left

	g.Update()

	if g.state != StateGameOver {
		t.Errorf("expected game over on wall collision, state = %d", g.state)
	}
	if len(g.snake) != 3 {
		t.Errorf("snake changed length on terminal tick: %d", len(g.snake))
	}
	if g.score != 0 {
		t.Errorf("score changed on terminal tick: %d", g.score)
	}
}

func TestUpdate_SelfCollision(t *testing.T) {
	// Head at (4,5) moving down into (4,6), which the tail occupies.
	g := newTestGame(t, true)
	g.snake = []Point{{4, 5}, {5, 5}, {5, 6}, {4, 6}}
	g.direction = Down
	g.nextDirection = Down

	g.Update()

	if g.state != StateGameOver {
		t.Fatalf("expected game over on self collision, state = %d", g.state)
	}
	if len(g.snake) != 4 {
		t.Errorf("snake grew on terminal tick: %d", len(g.snake))
	}
	if g.score != 0 {
		t.Errorf("score changed on terminal tick: %d", g.score)
	}
}

func TestUpdate_PlainMove(t *testing.T) {
	g := newTestGame(t, true)

	g.Update()

	want := []Point{{6, 5}, {5, 5}, {4, 5}}
	if !pointsEqual(g.snake, want) {
		t.Errorf("snake = %v, want %v", g.snake, want)
	}
	if g.score != 0 {
		t.Errorf("score = %d, want 0", g.score)
	}
	if g.state != StateRunning {
		t.Errorf("state = %d, want running", g.state)
	}
}

func TestUpdate_FruitConsumption(t *testing.T) {
	g := newTestGame(t, true)
	g.fruit = Point{6, 5}

	g.Update()

	want := []Point{{6, 5}, {5, 5}, {4, 5}, {3, 5}}
	if !pointsEqual(g.snake, want) {
		t.Errorf("snake = %v, want %v", g.snake, want)
	}
	if g.score != FruitPoints {
		t.Errorf("score = %d, want %d", g.score, FruitPoints)
	}

	fruit, ok := g.Fruit()
	if !ok {
		t.Fatal("a new fruit must be spawned")
	}
	for _, seg := range g.snake {
		if fruit == seg {
			t.Errorf("new fruit %+v spawned on the snake", fruit)
		}
	}
}

func TestUpdate_PowerUpConsumption(t *testing.T) {
	g := newTestGame(t, true)
	g.powerUps = []PowerUp{{Pos: Point{6, 5}, Lifespan: 50}}

	g.Update()

	if g.score != PowerUpPoints {
		t.Errorf("score = %d, want %d", g.score, PowerUpPoints)
	}
	if len(g.snake) != 3 {
		t.Errorf("power-ups must not grow the snake, length = %d", len(g.snake))
	}
	if len(g.powerUps) != 0 {
		t.Errorf("power-up not removed: %v", g.powerUps)
	}
}

func TestUpdate_FrozenStates(t *testing.T) {
	for _, state := range []State{StatePaused, StateGameOver} {
		g := newTestGame(t, true)
		g.state = state
		before := append([]Point(nil), g.snake...)

		g.Update()

		if !pointsEqual(g.snake, before) {
			t.Errorf("state %d: update moved the snake", state)
		}
	}
}

func TestHandleRestart(t *testing.T) {
	g := newTestGame(t, true)
	g.score = 50
	g.state = StateGameOver

	// Only UP restarts.
	g.HandleRestart(Down)
	if g.state != StateGameOver {
		t.Fatal("restart accepted for non-UP direction")
	}

	g.HandleRestart(Up)
	if g.state != StateRunning {
		t.Fatal("expected running state after restart")
	}
	if g.score != 0 {
		t.Errorf("score = %d after restart, want 0", g.score)
	}
	if len(g.snake) != 3 {
		t.Errorf("snake length = %d after restart, want 3", len(g.snake))
	}
	if g.direction != Right || g.nextDirection != Right {
		t.Errorf("direction not re-seeded: %s/%s", g.direction, g.nextDirection)
	}
}

func TestHandleRestart_IgnoredWhileRunning(t *testing.T) {
	g := newTestGame(t, true)
	g.score = 30
	g.HandleRestart(Up)
	if g.score != 30 {
		t.Error("restart must only apply after game over")
	}
}

func TestGameOver_RecordsHighScoreAndFiresHook(t *testing.T) {
	g := newTestGame(t, false)
	g.SetHighScore(20)
	g.score = 50

	var got Summary
	g.OnGameOver = func(s Summary) { got = s }

	g.snake = []Point{{0, 5}, {1, 5}, {2, 5}}
	g.direction = Left
	g.nextDirection = Left
	g.Update()

	if g.HighScore() != 50 {
		t.Errorf("high score = %d, want 50", g.HighScore())
	}
	if got.Score != 50 || !got.NewHigh || got.Length != 3 {
		t.Errorf("unexpected summary: %+v", got)
	}
}

func TestSetHighScore_NeverLowers(t *testing.T) {
	g := newTestGame(t, true)
	g.SetHighScore(100)
	g.SetHighScore(40)
	if g.HighScore() != 100 {
		t.Errorf("high score = %d, want 100", g.HighScore())
	}
}

func TestSpawnFruit_PowerUpGating(t *testing.T) {
	g := newTestGame(t, true)

	// Below the score gap no power-up may ever spawn.
	for i := 0; i < 100; i++ {
		g.spawnFruit()
	}
	if len(g.powerUps) != 0 {
		t.Fatalf("power-up spawned below the score gap: %v", g.powerUps)
	}

	// With the gap satisfied the spawn chance fires eventually.
	g.score = 30
	spawned := false
	for i := 0; i < 200 && !spawned; i++ {
		g.spawnFruit()
		spawned = len(g.powerUps) > 0
	}
	if !spawned {
		t.Fatal("power-up never spawned with gap satisfied over 200 attempts")
	}
	if g.lastPowerUpScore != 30 {
		t.Errorf("lastPowerUpScore = %d, want 30", g.lastPowerUpScore)
	}

	pu := g.powerUps[0]
	fruit, _ := g.Fruit()
	if pu.Pos == fruit {
		t.Error("power-up spawned on the fruit cell")
	}
	for _, seg := range g.snake {
		if pu.Pos == seg {
			t.Error("power-up spawned on the snake")
		}
	}
}

func TestSpawnFruit_FullGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridWidth = 4
	cfg.GridHeight = 4
	cfg.Seed = 1
	g := New(cfg)

	// Occupy every cell so there is nowhere left to spawn.
	g.snake = g.snake[:0]
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			g.snake = append(g.snake, Point{x, y})
		}
	}
	g.powerUps = g.powerUps[:0]

	g.spawnFruit()

	if _, ok := g.Fruit(); ok {
		t.Error("fruit spawned on a fully occupied grid")
	}
}

func TestTickInterval(t *testing.T) {
	g := newTestGame(t, true)

	if got := g.TickInterval(); got != time.Second/6 {
		t.Errorf("base interval = %v, want %v", got, time.Second/6)
	}

	g.SetBoost(true)
	if got := g.TickInterval(); got != time.Second/12 {
		t.Errorf("boost interval = %v, want %v", got, time.Second/12)
	}

	g.SetBoost(false)
	if got := g.TickInterval(); got != time.Second/6 {
		t.Errorf("interval after boost release = %v, want %v", got, time.Second/6)
	}
}

func TestTogglePause(t *testing.T) {
	g := newTestGame(t, true)

	g.TogglePause()
	if g.State() != StatePaused {
		t.Fatal("expected paused state")
	}
	g.TogglePause()
	if g.State() != StateRunning {
		t.Fatal("expected running state")
	}

	g.state = StateGameOver
	g.TogglePause()
	if g.State() != StateGameOver {
		t.Error("pause toggle must not leave game over")
	}
}

func TestToggleWrap_SurvivesReset(t *testing.T) {
	g := newTestGame(t, true)
	g.ToggleWrap()
	if g.Wrap() {
		t.Fatal("expected classic mode after toggle")
	}
	g.Reset()
	if g.Wrap() {
		t.Error("wrap mode must survive a reset")
	}
}

func TestEffects_Aging(t *testing.T) {
	g := newTestGame(t, true)
	g.addBurst(Point{5, 5}, colorFruitBurst)
	if len(g.particles) != burstCount {
		t.Fatalf("burst spawned %d particles, want %d", len(g.particles), burstCount)
	}

	for i := 0; i < burstLife; i++ {
		g.updateEffects()
	}
	if len(g.particles) != 0 {
		t.Errorf("%d particles alive after max life", len(g.particles))
	}

	g.powerUps = []PowerUp{{Pos: Point{2, 2}, Lifespan: 3}}
	for i := 0; i < 3; i++ {
		g.updateEffects()
	}
	if len(g.powerUps) != 0 {
		t.Errorf("power-up survived its lifespan: %v", g.powerUps)
	}
}
