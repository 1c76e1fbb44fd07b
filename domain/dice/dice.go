package dice

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// NumFaces is the number of faces on a die.
	NumFaces = 6
	// NumDice is the number of dice in a set.
	NumDice = 5
)

const (
	fullHousePoints     = 25
	smallStraightPoints = 30
	largeStraightPoints = 40
	fiveOfAKindPoints   = 50
)

// ErrInvalidFace is raised when a die is built from a face outside [0, NumFaces).
var ErrInvalidFace = errors.New("invalid die face")

// Die is a single die. The face is 0-indexed: face 0 shows one pip,
// face 5 shows six.
type Die struct {
	face uint8
}

// NewDie creates a Die showing the given 0-indexed face.
//
// Returns an error wrapping ErrInvalidFace if face is not in [0, 5].
func NewDie(face uint8) (Die, error) {
	if face >= NumFaces {
		return Die{}, fmt.Errorf("%w: %d", ErrInvalidFace, face)
	}
	return Die{face: face}, nil
}

// MustDie is like NewDie but panics on an invalid face.
func MustDie(face uint8) Die {
	d, err := NewDie(face)
	if err != nil {
		panic(err)
	}
	return d
}

// Face returns the 0-indexed face value.
func (d Die) Face() uint8 {
	return d.face
}

// Pips returns the number of pips shown, 1 through 6.
func (d Die) Pips() int {
	return int(d.face) + 1
}

// String returns the pip count.
func (d Die) String() string {
	return fmt.Sprintf("%d", d.Pips())
}

// DiceSet is the ordered group of five dice rolled each turn. Slot order
// matters for holding and display but not for scoring.
type DiceSet [NumDice]Die

// NewDiceSet builds a set from five 0-indexed faces. It panics if any face
// is out of range.
func NewDiceSet(faces [NumDice]uint8) DiceSet {
	var s DiceSet
	for i, f := range faces {
		s[i] = MustDie(f)
	}
	return s
}

// Roll draws five fresh dice from src.
func Roll(src Source) DiceSet {
	var s DiceSet
	for i := range s {
		s[i] = draw(src)
	}
	return s
}

// Reroll returns a copy of s where every slot marked in mask has been
// replaced by a fresh draw from src. Unmarked slots are kept.
func (s DiceSet) Reroll(mask [NumDice]bool, src Source) DiceSet {
	out := s
	for i, marked := range mask {
		if marked {
			out[i] = draw(src)
		}
	}
	return out
}

// Pips returns the pip counts of the five dice in slot order.
func (s DiceSet) Pips() [NumDice]int {
	var p [NumDice]int
	for i, d := range s {
		p[i] = d.Pips()
	}
	return p
}

func (s DiceSet) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Score returns the points c would award for these dice. It has no side
// effects and does not depend on what has already been scored.
func (s DiceSet) Score(c Category) int {
	switch c {
	case Ones, Twos, Threes, Fours, Fives, Sixes:
		face := uint8(c - Ones)
		return s.Count(face) * (int(face) + 1)
	case ThreeOfAKind:
		if s.HasNOfAKind(3) {
			return s.Sum()
		}
	case FourOfAKind:
		if s.HasNOfAKind(4) {
			return s.Sum()
		}
	case FullHouse:
		if s.IsFullHouse() {
			return fullHousePoints
		}
	case SmallStraight:
		if s.HasStraight(4) {
			return smallStraightPoints
		}
	case LargeStraight:
		if s.HasStraight(5) {
			return largeStraightPoints
		}
	case FiveOfAKind:
		if s.AllEqual() {
			return fiveOfAKindPoints
		}
	case Chance:
		return s.Sum()
	}
	return 0
}

// draw panics with ErrInvalidFace if src returns a value outside [0, NumFaces).
func draw(src Source) Die {
	n := src.Intn(NumFaces)
	if n < 0 || n >= NumFaces {
		panic(fmt.Errorf("%w: source returned %d", ErrInvalidFace, n))
	}
	return MustDie(uint8(n))
}
