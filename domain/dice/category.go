package dice

// Category is one of the thirteen ways a roll can be scored.
type Category uint8

const (
	Ones Category = iota
	Twos
	Threes
	Fours
	Fives
	Sixes
	ThreeOfAKind
	FourOfAKind
	FullHouse
	SmallStraight
	LargeStraight
	FiveOfAKind
	Chance
)

// NumCategories is the number of scoring categories on a scoreboard.
const NumCategories = 13

var categories = [NumCategories]Category{
	Ones, Twos, Threes, Fours, Fives, Sixes,
	ThreeOfAKind, FourOfAKind, FullHouse, SmallStraight, LargeStraight, FiveOfAKind, Chance,
}

var upperSection = [6]Category{Ones, Twos, Threes, Fours, Fives, Sixes}

var lowerSection = [7]Category{
	ThreeOfAKind, FourOfAKind, FullHouse, SmallStraight, LargeStraight, FiveOfAKind, Chance,
}

var categoryNames = [NumCategories]string{
	"⚀ 1s",
	"⚁ 2s",
	"⚂ 3s",
	"⚃ 4s",
	"⚄ 5s",
	"⚅ 6s",
	"3 of a Kind",
	"4 of a Kind",
	"Full House",
	"Small Straight",
	"Large Straight",
	"5 of a Kind",
	"Chance",
}

// Categories returns every category in display and cursor order.
func Categories() [NumCategories]Category {
	return categories
}

// UpperSection returns the six number categories, Ones through Sixes.
func UpperSection() [6]Category {
	return upperSection
}

// LowerSection returns the seven combination categories.
func LowerSection() [7]Category {
	return lowerSection
}

// CategoryAt returns the category at position i of the enumeration order.
// It panics if i is outside [0, NumCategories).
func CategoryAt(i int) Category {
	return categories[i]
}

// Valid reports whether c is one of the thirteen defined categories.
func (c Category) Valid() bool {
	return c < NumCategories
}

// Index returns the position of c in the enumeration order.
func (c Category) Index() int {
	return int(c)
}

// IsUpper reports whether c belongs to the upper section.
func (c Category) IsUpper() bool {
	return c <= Sixes
}

// IsLower reports whether c belongs to the lower section.
func (c Category) IsLower() bool {
	return c >= ThreeOfAKind && c.Valid()
}

// String returns the short label shown on the scoreboard.
func (c Category) String() string {
	if !c.Valid() {
		return "?"
	}
	return categoryNames[c]
}
