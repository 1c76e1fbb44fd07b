package ledger

import "github.com/luca-patrignani/yacht-dice/domain/dice"

// Entry is one committed category.
type Entry struct {
	Index      int               `json:"index"`
	Timestamp  int64             `json:"timestamp"`
	PrevHash   string            `json:"prev_hash"`
	Hash       string            `json:"hash"`
	Session    string            `json:"session"`
	Turn       int               `json:"turn"`
	Category   string            `json:"category"`
	Dice       [dice.NumDice]int `json:"dice"`
	Points     int               `json:"points"`
	GrandTotal int               `json:"grand_total"`
}

// IsGenesis reports whether e is the first entry of a ledger.
func (e Entry) IsGenesis() bool {
	return e.Index == 0
}
