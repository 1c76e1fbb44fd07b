// Package game implements the single-player turn state machine: rolling and
// holding dice, moving the category cursor, and committing a category to
// the scoreboard.
//
// A Game is owned by one goroutine. None of its methods block, and every
// transition runs to completion before the next one starts.
package game

import (
	"errors"
	"io"
	"log/slog"

	"github.com/luca-patrignani/yacht-dice/domain/dice"
	"github.com/luca-patrignani/yacht-dice/domain/scoreboard"
)

// MaxRolls is the number of rolls allowed per turn, the initial one included.
const MaxRolls = 3

// Phase is the state of the current turn.
type Phase string

const (
	// PhaseRolling means rolls remain: dice can be held and re-rolled.
	PhaseRolling Phase = "rolling"
	// PhaseFinalRoll means the third roll is on the table; only a commit is left.
	PhaseFinalRoll Phase = "final_roll"
	// PhaseFinished means every category is filled.
	PhaseFinished Phase = "finished"
)

// ErrCursorUnavailable is raised when a commit is attempted while the cursor
// rests on a category that cannot take the current dice.
var ErrCursorUnavailable = errors.New("cursor on unavailable category")

// noCursor marks the terminal state.
const noCursor = -1

// Commit describes one category choice.
type Commit struct {
	Turn       int
	Category   dice.Category
	Dice       dice.DiceSet
	Points     int
	GrandTotal int
}

// Game is a single game session.
type Game struct {
	src    dice.Source
	board  *scoreboard.Scoreboard
	dice   dice.DiceSet
	held   [dice.NumDice]bool
	rolls  int
	turn   int
	cursor int

	logger   *slog.Logger
	onCommit func(Commit)
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for transition traces.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithCommitHandler registers fn to be called after every commit.
func WithCommitHandler(fn func(Commit)) Option {
	return func(g *Game) {
		g.onCommit = fn
	}
}

// New starts a game drawing its dice from src. The first turn is already
// rolled and the cursor rests on the first category.
func New(src dice.Source, opts ...Option) *Game {
	g := &Game{
		src:    src,
		board:  scoreboard.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.newTurn()
	return g
}

// Dice returns the dice on the table.
func (g *Game) Dice() dice.DiceSet {
	return g.dice
}

// Held returns the hold-for-reroll flag of every slot.
func (g *Game) Held() [dice.NumDice]bool {
	return g.held
}

// AnyHeld reports whether at least one die is marked for re-roll.
func (g *Game) AnyHeld() bool {
	for _, h := range g.held {
		if h {
			return true
		}
	}
	return false
}

// Rolls returns the roll count of the current turn, from 1 to MaxRolls.
func (g *Game) Rolls() int {
	return g.rolls
}

// Turn returns the 1-based number of the current turn.
func (g *Game) Turn() int {
	return g.turn
}

// Phase returns the state of the current turn.
func (g *Game) Phase() Phase {
	switch {
	case g.cursor == noCursor:
		return PhaseFinished
	case g.rolls >= MaxRolls:
		return PhaseFinalRoll
	default:
		return PhaseRolling
	}
}

// Finished reports whether the game is over.
func (g *Game) Finished() bool {
	return g.cursor == noCursor
}

// CanReroll reports whether Reroll would change anything.
func (g *Game) CanReroll() bool {
	return g.Phase() == PhaseRolling && g.AnyHeld()
}

// Cursor returns the selected category. The second result is false once the
// game is finished.
func (g *Game) Cursor() (dice.Category, bool) {
	if g.cursor == noCursor {
		return 0, false
	}
	return dice.CategoryAt(g.cursor), true
}

// Scoreboard returns a read-only view of the scoreboard.
func (g *Game) Scoreboard() scoreboard.View {
	return g.board
}

// Available reports whether c can be chosen for the current dice.
func (g *Game) Available(c dice.Category) bool {
	return g.board.Available(c, g.dice)
}

// LiveScore returns what c would award for the current dice.
func (g *Game) LiveScore(c dice.Category) int {
	return g.dice.Score(c)
}

// Preview returns the value shown for c on the score table: the recorded
// score plus, while c is available, the points the current dice would add.
func (g *Game) Preview(c dice.Category) int {
	recorded, _ := g.board.Score(c)
	if g.Finished() || !g.Available(c) {
		return recorded
	}
	return recorded + g.dice.Score(c)
}
