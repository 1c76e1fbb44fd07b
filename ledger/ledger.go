package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/luca-patrignani/yacht-dice/domain/game"
)

// Ledger is the append-only turn log of one game session.
type Ledger struct {
	mu      sync.RWMutex
	session string
	entries []Entry
}

// New creates a ledger for session with an initialized genesis entry.
// The genesis entry has index 0, previous hash "0" and no commit data.
func New(session string) *Ledger {
	l := &Ledger{
		session: session,
		entries: make([]Entry, 0, 16),
	}

	genesis := Entry{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  "0",
		Session:   session,
	}
	genesis.Hash = calculateHash(genesis)
	l.entries = append(l.entries, genesis)

	return l
}

// Session returns the session id recorded in the genesis entry.
func (l *Ledger) Session() string {
	return l.session
}

// Append records a commit as a new entry linked to the latest one. It
// returns an error if the new entry does not validate against its
// predecessor.
func (l *Ledger) Append(c game.Commit) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	latest := l.entries[len(l.entries)-1]

	entry := Entry{
		Index:      latest.Index + 1,
		Timestamp:  time.Now().Unix(),
		PrevHash:   latest.Hash,
		Session:    l.session,
		Turn:       c.Turn,
		Category:   c.Category.String(),
		Dice:       c.Dice.Pips(),
		Points:     c.Points,
		GrandTotal: c.GrandTotal,
	}
	entry.Hash = calculateHash(entry)

	if err := validateEntry(entry, latest); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}

	l.entries = append(l.entries, entry)
	return nil
}

// Latest returns the most recently added entry.
func (l *Ledger) Latest() Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.entries[len(l.entries)-1]
}

// Len returns the number of entries, genesis included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}

// Entries returns a copy of every entry in order.
func (l *Ledger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Verify validates the whole chain: the genesis entry, then each entry's
// index continuity, previous hash linkage and own hash.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.entries) == 0 {
		return fmt.Errorf("empty ledger")
	}

	genesis := l.entries[0]
	if genesis.PrevHash != "0" || genesis.Hash != calculateHash(genesis) {
		return fmt.Errorf("invalid genesis entry")
	}

	for i := 1; i < len(l.entries); i++ {
		if err := validateEntry(l.entries[i], l.entries[i-1]); err != nil {
			return fmt.Errorf("entry %d invalid: %w", i, err)
		}
	}

	return nil
}

// validateEntry verifies that current correctly follows previous.
func validateEntry(current, previous Entry) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("invalid index: expected %d, got %d", previous.Index+1, current.Index)
	}

	if current.PrevHash != previous.Hash {
		return fmt.Errorf("invalid prev hash: expected %s, got %s", previous.Hash, current.PrevHash)
	}

	expectedHash := calculateHash(current)
	if current.Hash != expectedHash {
		return fmt.Errorf("invalid hash: expected %s, got %s", expectedHash, current.Hash)
	}

	if current.Session != previous.Session {
		return fmt.Errorf("session mismatch: expected %s, got %s", previous.Session, current.Session)
	}

	return nil
}

// calculateHash computes the SHA-256 of every field except Hash itself.
func calculateHash(e Entry) string {
	e.Hash = ""
	data, _ := json.Marshal(e)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
