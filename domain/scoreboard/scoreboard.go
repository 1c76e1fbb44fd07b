// Package scoreboard records the points scored in each category and derives
// the section and grand totals.
//
// Every category can be filled once. The single exception is FiveOfAKind:
// once it holds a positive score, each further five of a kind may be scored
// there again and its points are added to the entry.
package scoreboard

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/yacht-dice/domain/dice"
)

const (
	// UpperBonusThreshold is the upper section sum needed for the bonus.
	UpperBonusThreshold = 63
	// UpperBonus is awarded when the upper section reaches the threshold.
	UpperBonus = 35
)

var (
	// ErrCategoryFilled is raised when a closed category is chosen again.
	ErrCategoryFilled = errors.New("category already filled")
	// ErrUnknownCategory is raised for values outside the category enumeration.
	ErrUnknownCategory = errors.New("unknown category")
)

type slotState uint8

const (
	slotOpen slotState = iota
	slotFilled
	// slotJoker is a FiveOfAKind entry holding a positive score; it accepts
	// further five of a kind bonuses.
	slotJoker
)

type slot struct {
	state slotState
	score int
}

// View is the read-only side of a Scoreboard.
type View interface {
	Score(c dice.Category) (int, bool)
	Available(c dice.Category, d dice.DiceSet) bool
	UpperBonus() int
	UpperTotal() int
	LowerTotal() int
	GrandTotal() int
	Filled() int
	Finished() bool
}

// Scoreboard maps each category to its recorded score. The zero value is an
// empty scoreboard ready to use.
type Scoreboard struct {
	slots [dice.NumCategories]slot
}

var _ View = (*Scoreboard)(nil)

// New returns an empty Scoreboard.
func New() *Scoreboard {
	return &Scoreboard{}
}

func (sb *Scoreboard) slot(c dice.Category) *slot {
	if !c.Valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownCategory, uint8(c)))
	}
	return &sb.slots[c]
}

// Score returns the recorded score of c and whether c has been filled.
func (sb *Scoreboard) Score(c dice.Category) (int, bool) {
	s := sb.slot(c)
	if s.state == slotOpen {
		return 0, false
	}
	return s.score, true
}

// Available reports whether c can be chosen for dice d. An unfilled category
// is always available. A filled FiveOfAKind is available again only when
// its entry is positive and d is itself a five of a kind.
func (sb *Scoreboard) Available(c dice.Category, d dice.DiceSet) bool {
	switch sb.slot(c).state {
	case slotOpen:
		return true
	case slotJoker:
		return d.Score(dice.FiveOfAKind) > 0
	default:
		return false
	}
}

// Choose scores d in category c and returns the points awarded.
//
// An open category records the score, even when it is zero. A FiveOfAKind
// entry holding a positive score accumulates the new score on top.
// Choosing any other filled category panics with ErrCategoryFilled; callers
// must check Available first.
func (sb *Scoreboard) Choose(c dice.Category, d dice.DiceSet) int {
	s := sb.slot(c)
	points := d.Score(c)

	switch s.state {
	case slotOpen:
		s.score = points
		s.state = slotFilled
		if c == dice.FiveOfAKind && points > 0 {
			s.state = slotJoker
		}
	case slotJoker:
		s.score += points
	default:
		panic(fmt.Errorf("%w: %s", ErrCategoryFilled, c))
	}
	return points
}

func (sb *Scoreboard) upperSum() int {
	total := 0
	for _, c := range dice.UpperSection() {
		total += sb.slots[c].score
	}
	return total
}

// UpperBonus returns 35 when the upper section entries sum to more than 62.
func (sb *Scoreboard) UpperBonus() int {
	if sb.upperSum() >= UpperBonusThreshold {
		return UpperBonus
	}
	return 0
}

// UpperTotal returns the upper section sum plus its bonus.
func (sb *Scoreboard) UpperTotal() int {
	return sb.upperSum() + sb.UpperBonus()
}

// LowerTotal returns the sum of the lower section entries.
func (sb *Scoreboard) LowerTotal() int {
	total := 0
	for _, c := range dice.LowerSection() {
		total += sb.slots[c].score
	}
	return total
}

// GrandTotal returns UpperTotal plus LowerTotal.
func (sb *Scoreboard) GrandTotal() int {
	return sb.UpperTotal() + sb.LowerTotal()
}

// Filled returns the number of categories holding an entry.
func (sb *Scoreboard) Filled() int {
	n := 0
	for _, s := range sb.slots {
		if s.state != slotOpen {
			n++
		}
	}
	return n
}

// Finished reports whether every category holds an entry.
func (sb *Scoreboard) Finished() bool {
	return sb.Filled() == dice.NumCategories
}
