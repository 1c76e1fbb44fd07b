package dice

// counts returns how many dice show each face.
func (s DiceSet) counts() [NumFaces]int {
	var c [NumFaces]int
	for _, d := range s {
		c[d.face]++
	}
	return c
}

// Count returns how many dice show the given 0-indexed face.
func (s DiceSet) Count(face uint8) int {
	n := 0
	for _, d := range s {
		if d.face == face {
			n++
		}
	}
	return n
}

// Sum returns the total pip count of all five dice.
func (s DiceSet) Sum() int {
	total := 0
	for _, d := range s {
		total += d.Pips()
	}
	return total
}

// HasNOfAKind reports whether at least n dice share a face.
func (s DiceSet) HasNOfAKind(n int) bool {
	for _, c := range s.counts() {
		if c >= n {
			return true
		}
	}
	return false
}

// IsFullHouse reports whether one face appears exactly three times and
// another exactly twice. Five of a kind is not a full house.
func (s DiceSet) IsFullHouse() bool {
	var pair, triple bool
	for _, c := range s.counts() {
		switch c {
		case 2:
			pair = true
		case 3:
			triple = true
		}
	}
	return pair && triple
}

// HasStraight reports whether n consecutive faces are all present.
// Duplicates are ignored.
func (s DiceSet) HasStraight(n int) bool {
	if n <= 0 || n > NumFaces {
		return false
	}
	c := s.counts()
	run := 0
	for _, k := range c {
		if k == 0 {
			run = 0
			continue
		}
		run++
		if run >= n {
			return true
		}
	}
	return false
}

// AllEqual reports whether all five dice show the same face.
func (s DiceSet) AllEqual() bool {
	for _, d := range s[1:] {
		if d != s[0] {
			return false
		}
	}
	return true
}
