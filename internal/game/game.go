package game

import (
	"math/rand"
	"time"
)

// State is the game's lifecycle state.
type State int

const (
	// StateRunning means ticks advance the simulation.
	StateRunning State = iota
	// StatePaused freezes the simulation until unpaused.
	StatePaused
	// StateGameOver freezes the simulation until an explicit restart.
	StateGameOver
)

// Point is a cell coordinate on the grid.
type Point struct {
	X, Y int
}

// PowerUp is a time-limited bonus worth extra score.
type PowerUp struct {
	Pos      Point
	Lifespan int // remaining ticks
}

// Scoring and spawn policy constants.
const (
	FruitPoints   = 10
	PowerUpPoints = 20

	// MinGridSize is the smallest accepted grid dimension.
	MinGridSize = 4
)

// noFruit marks the absence of a fruit when the grid has no free cell
// left to spawn one on.
var noFruit = Point{X: -1, Y: -1}

// Config holds the tunable parameters of a game.
type Config struct {
	GridWidth  int
	GridHeight int
	Wrap       bool // wrap-around edges instead of wall collisions

	BaseSpeed  float64 // ticks per second
	BoostSpeed float64 // ticks per second while boosting

	PowerUpChance   float64 // spawn probability alongside a fruit
	PowerUpLifespan int     // ticks before an unclaimed power-up expires
	PowerUpScoreGap int     // points required since the last power-up

	Seed int64 // 0 seeds from the clock
}

// DefaultConfig returns the standard game parameters.
func DefaultConfig() Config {
	return Config{
		GridWidth:       20,
		GridHeight:      30,
		Wrap:            true,
		BaseSpeed:       6,
		BoostSpeed:      12,
		PowerUpChance:   0.1,
		PowerUpLifespan: 200,
		PowerUpScoreGap: 30,
	}
}

// Summary describes a finished game, passed to the OnGameOver hook.
type Summary struct {
	Score    int
	Length   int
	Wrap     bool
	Duration time.Duration
	NewHigh  bool
}

// Game owns all grid state and advances it one discrete step per tick.
// It is not safe for concurrent use; only the main loop touches it.
type Game struct {
	cfg Config
	rng *rand.Rand

	state         State
	snake         []Point // head first
	direction     Direction
	nextDirection Direction
	fruit         Point
	powerUps      []PowerUp
	particles     []Particle

	score            int
	highScore        int
	newHigh          bool
	lastPowerUpScore int
	boost            bool
	wrap             bool
	startedAt        time.Time

	// OnGameOver, when set, is invoked once per game-over transition
	// with the final state. Used by the app to persist scores.
	OnGameOver func(Summary)
}

// New creates a game with the given configuration.
func New(cfg Config) *Game {
	if cfg.GridWidth < MinGridSize {
		cfg.GridWidth = MinGridSize
	}
	if cfg.GridHeight < MinGridSize {
		cfg.GridHeight = MinGridSize
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
		wrap: cfg.Wrap,
	}
	g.Reset()
	return g
}

// Reset re-seeds the snake in the grid center and starts a fresh round.
// The high score and wrap mode survive resets.
func (g *Game) Reset() {
	startX := g.cfg.GridWidth / 2
	startY := g.cfg.GridHeight / 2

	g.snake = []Point{
		{startX, startY},
		{startX - 1, startY},
		{startX - 2, startY},
	}
	g.direction = Right
	g.nextDirection = Right
	g.score = 0
	g.newHigh = false
	g.lastPowerUpScore = 0
	g.boost = false
	g.state = StateRunning
	g.powerUps = g.powerUps[:0]
	g.particles = g.particles[:0]
	g.startedAt = time.Now()
	g.spawnFruit()
}

// ChangeDirection queues a direction for the next tick. Reversals are
// silently ignored, as is any input while paused or after game over.
func (g *Game) ChangeDirection(d Direction) {
	if g.state != StateRunning {
		return
	}
	if d == g.direction.Opposite() {
		return
	}
	g.nextDirection = d
}

// TogglePause switches between Running and Paused. It has no effect
// after game over.
func (g *Game) TogglePause() {
	switch g.state {
	case StateRunning:
		g.state = StatePaused
	case StatePaused:
		g.state = StateRunning
	}
}

// ToggleWrap flips between wrap-around and classic wall collisions.
func (g *Game) ToggleWrap() {
	g.wrap = !g.wrap
}

// SetBoost sets the speed boost flag. Checked every frame, not latched.
func (g *Game) SetBoost(boost bool) {
	g.boost = boost
}

// HandleRestart restarts a finished game when the restart direction
// (UP) is shown. Any other input is ignored.
func (g *Game) HandleRestart(d Direction) {
	if g.state == StateGameOver && d == Up {
		g.Reset()
	}
}

// TickInterval returns the time between simulation steps at the
// current speed.
func (g *Game) TickInterval() time.Duration {
	speed := g.cfg.BaseSpeed
	if g.boost {
		speed = g.cfg.BoostSpeed
	}
	return time.Duration(float64(time.Second) / speed)
}

// Update advances the simulation by one step. It is a no-op while
// paused or after game over.
func (g *Game) Update() {
	if g.state != StateRunning {
		return
	}

	g.direction = g.nextDirection

	head := g.snake[0]
	dx, dy := g.direction.Vector()
	newHead := Point{head.X + dx, head.Y + dy}

	if g.wrap {
		newHead = g.wrapHead(newHead)
	} else if g.outOfBounds(newHead) {
		g.gameOver()
		return
	}

	// Self collision ends the round before any other effect applies.
	for _, seg := range g.snake {
		if newHead == seg {
			g.gameOver()
			return
		}
	}

	g.snake = append([]Point{newHead}, g.snake...)

	if newHead == g.fruit {
		g.score += FruitPoints
		g.addBurst(newHead, colorFruitBurst)
		g.spawnFruit()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	g.collectPowerUps(newHead)
	g.updateEffects()
}

// wrapHead folds an out-of-bounds head to the opposite edge, leaving a
// short transition trail at the edge cell the snake left through.
func (g *Game) wrapHead(p Point) Point {
	switch {
	case p.X < 0:
		p.X = g.cfg.GridWidth - 1
		g.addWrapTrail(Point{0, p.Y})
	case p.X >= g.cfg.GridWidth:
		p.X = 0
		g.addWrapTrail(Point{g.cfg.GridWidth - 1, p.Y})
	case p.Y < 0:
		p.Y = g.cfg.GridHeight - 1
		g.addWrapTrail(Point{p.X, 0})
	case p.Y >= g.cfg.GridHeight:
		p.Y = 0
		g.addWrapTrail(Point{p.X, g.cfg.GridHeight - 1})
	}
	return p
}

func (g *Game) outOfBounds(p Point) bool {
	return p.X < 0 || p.X >= g.cfg.GridWidth || p.Y < 0 || p.Y >= g.cfg.GridHeight
}

// collectPowerUps awards and removes every power-up under the head.
// Power-ups never grow the snake.
func (g *Game) collectPowerUps(head Point) {
	kept := g.powerUps[:0]
	for _, pu := range g.powerUps {
		if pu.Pos == head {
			g.score += PowerUpPoints
			g.addBurst(head, colorPowerUpBurst)
			continue
		}
		kept = append(kept, pu)
	}
	g.powerUps = kept
}

// gameOver freezes the game, records a new high score and fires the
// OnGameOver hook.
func (g *Game) gameOver() {
	g.state = StateGameOver
	if g.score > g.highScore {
		g.highScore = g.score
		g.newHigh = true
	}
	if g.OnGameOver != nil {
		g.OnGameOver(Summary{
			Score:    g.score,
			Length:   len(g.snake),
			Wrap:     g.wrap,
			Duration: time.Since(g.startedAt),
			NewHigh:  g.newHigh,
		})
	}
}

// spawnFruit places the fruit uniformly at random on a free cell. On a
// full grid no fruit is placed instead of retrying forever. A fruit
// spawn may bring a power-up along once enough score has accumulated
// since the last one.
func (g *Game) spawnFruit() {
	free := g.freeCells(noFruit)
	if len(free) == 0 {
		g.fruit = noFruit
		return
	}
	g.fruit = free[g.rng.Intn(len(free))]

	if g.score-g.lastPowerUpScore >= g.cfg.PowerUpScoreGap && g.rng.Float64() < g.cfg.PowerUpChance {
		g.spawnPowerUp()
		g.lastPowerUpScore = g.score
	}
}

// spawnPowerUp places a power-up on a free cell, never on the snake,
// the fruit or another power-up.
func (g *Game) spawnPowerUp() {
	free := g.freeCells(g.fruit)
	if len(free) == 0 {
		return
	}
	g.powerUps = append(g.powerUps, PowerUp{
		Pos:      free[g.rng.Intn(len(free))],
		Lifespan: g.cfg.PowerUpLifespan,
	})
}

// freeCells returns every cell not occupied by the snake, a power-up,
// or the extra excluded cell.
func (g *Game) freeCells(exclude Point) []Point {
	occupied := make(map[Point]bool, len(g.snake)+len(g.powerUps)+1)
	for _, seg := range g.snake {
		occupied[seg] = true
	}
	for _, pu := range g.powerUps {
		occupied[pu.Pos] = true
	}
	occupied[exclude] = true

	var free []Point
	for y := 0; y < g.cfg.GridHeight; y++ {
		for x := 0; x < g.cfg.GridWidth; x++ {
			if p := (Point{x, y}); !occupied[p] {
				free = append(free, p)
			}
		}
	}
	return free
}

// State returns the current lifecycle state.
func (g *Game) State() State { return g.state }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score seen so far.
func (g *Game) HighScore() int { return g.highScore }

// SetHighScore seeds the high score from persisted state.
func (g *Game) SetHighScore(score int) {
	if score > g.highScore {
		g.highScore = score
	}
}

// Snake returns the snake body, head first. The slice is shared; the
// caller must not mutate it.
func (g *Game) Snake() []Point { return g.snake }

// Fruit returns the fruit cell and whether a fruit is present.
func (g *Game) Fruit() (Point, bool) { return g.fruit, g.fruit != noFruit }

// PowerUps returns the active power-ups. The slice is shared; the
// caller must not mutate it.
func (g *Game) PowerUps() []PowerUp { return g.powerUps }

// Wrap reports whether wrap-around mode is on.
func (g *Game) Wrap() bool { return g.wrap }

// Boost reports whether the speed boost is currently active.
func (g *Game) Boost() bool { return g.boost }

// Direction returns the active movement direction.
func (g *Game) Direction() Direction { return g.direction }
