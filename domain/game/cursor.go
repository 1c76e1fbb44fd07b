package game

import "github.com/luca-patrignani/yacht-dice/domain/dice"

// CursorUp moves the cursor to the previous available category, wrapping
// from the first category to the last.
func (g *Game) CursorUp() bool {
	return g.moveTo(g.cursor-1, -1)
}

// CursorDown moves the cursor to the next available category, wrapping
// from the last category to the first.
func (g *Game) CursorDown() bool {
	return g.moveTo(g.cursor+1, 1)
}

// CursorHome moves the cursor to the first available category.
func (g *Game) CursorHome() bool {
	return g.moveTo(0, 1)
}

// CursorEnd moves the cursor to the last available category.
func (g *Game) CursorEnd() bool {
	return g.moveTo(dice.NumCategories-1, -1)
}

func (g *Game) moveTo(i, step int) bool {
	if g.Finished() {
		return false
	}
	before := g.cursor
	g.cursor = wrap(i)
	g.seek(step)
	return g.cursor != before
}

// seek walks from the cursor in direction step until it rests on an
// available category. At most NumCategories positions are visited; an
// unfinished board always has an open, and thus available, category.
func (g *Game) seek(step int) {
	for range dice.NumCategories {
		if g.Available(dice.CategoryAt(g.cursor)) {
			return
		}
		g.cursor = wrap(g.cursor + step)
	}
	panic("game: no available category on an unfinished board")
}

func wrap(i int) int {
	return (i%dice.NumCategories + dice.NumCategories) % dice.NumCategories
}
