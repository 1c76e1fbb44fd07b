package game

import (
	"fmt"

	"github.com/luca-patrignani/yacht-dice/domain/dice"
)

// newTurn draws fresh dice and moves the cursor forward to the nearest
// available category.
func (g *Game) newTurn() {
	g.dice = dice.Roll(g.src)
	g.rolls = 1
	g.held = [dice.NumDice]bool{}
	g.turn++
	g.seek(1)
	g.logger.Debug("new turn", "turn", g.turn, "dice", g.dice.String(), "cursor", dice.CategoryAt(g.cursor).String())
}

// ToggleHold flips the hold flag of slot i (0-based). It does nothing on the
// final roll, after the game ends, or for a slot outside the set.
func (g *Game) ToggleHold(i int) bool {
	if g.Phase() != PhaseRolling || i < 0 || i >= dice.NumDice {
		return false
	}
	g.held[i] = !g.held[i]
	return true
}

// Reroll replaces the held dice with fresh draws, bumps the roll count and
// clears every hold. With nothing held or no rolls left it does nothing.
func (g *Game) Reroll() bool {
	if !g.CanReroll() {
		return false
	}
	g.dice = g.dice.Reroll(g.held, g.src)
	g.rolls++
	g.held = [dice.NumDice]bool{}

	// A five of a kind bonus slot closes again when the new dice miss.
	if !g.Available(dice.CategoryAt(g.cursor)) {
		g.seek(1)
	}
	g.logger.Debug("reroll", "turn", g.turn, "roll", g.rolls, "dice", g.dice.String())
	return true
}

// Commit scores the current dice in the category under the cursor, then
// either starts a new turn or, when every category is filled, ends the game.
// After the game ends it does nothing and returns false.
func (g *Game) Commit() (Commit, bool) {
	if g.Finished() {
		return Commit{}, false
	}
	c := dice.CategoryAt(g.cursor)
	if !g.Available(c) {
		panic(fmt.Errorf("%w: %s", ErrCursorUnavailable, c))
	}

	points := g.board.Choose(c, g.dice)
	g.held = [dice.NumDice]bool{}

	record := Commit{
		Turn:       g.turn,
		Category:   c,
		Dice:       g.dice,
		Points:     points,
		GrandTotal: g.board.GrandTotal(),
	}
	g.logger.Debug("commit", "turn", record.Turn, "category", c.String(), "points", points, "total", record.GrandTotal)

	if g.board.Finished() {
		g.cursor = noCursor
		g.logger.Debug("game finished", "total", record.GrandTotal)
	} else {
		g.newTurn()
	}

	if g.onCommit != nil {
		g.onCommit(record)
	}
	return record, true
}
