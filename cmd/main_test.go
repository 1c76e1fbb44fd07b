package main

import (
	"strings"
	"testing"

	"atomicgo.dev/keyboard/keys"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/yacht-dice/domain/dice"
	"github.com/luca-patrignani/yacht-dice/domain/game"
	"github.com/luca-patrignani/yacht-dice/ledger"
)

func init() {
	pterm.DisableColor()
}

func runeKey(r rune) keys.Key {
	return keys.Key{Code: keys.RuneKey, Runes: []rune{r}}
}

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name     string
		key      keys.Key
		expected command
	}{
		{"escape quits", keys.Key{Code: keys.Esc}, command{action: actionQuit}},
		{"ctrl-c quits", keys.Key{Code: keys.CtrlC}, command{action: actionQuit}},
		{"q quits", runeKey('q'), command{action: actionQuit}},
		{"arrow up", keys.Key{Code: keys.Up}, command{action: actionUp}},
		{"k is up", runeKey('k'), command{action: actionUp}},
		{"w is up", runeKey('w'), command{action: actionUp}},
		{"arrow down", keys.Key{Code: keys.Down}, command{action: actionDown}},
		{"j is down", runeKey('j'), command{action: actionDown}},
		{"s is down", runeKey('s'), command{action: actionDown}},
		{"home", keys.Key{Code: keys.Home}, command{action: actionHome}},
		{"end", keys.Key{Code: keys.End}, command{action: actionEnd}},
		{"enter commits", keys.Key{Code: keys.Enter}, command{action: actionCommit}},
		{"space commits", keys.Key{Code: keys.Space, Runes: []rune{' '}}, command{action: actionCommit}},
		{"space rune commits", runeKey(' '), command{action: actionCommit}},
		{"r rerolls", runeKey('r'), command{action: actionReroll}},
		{"1 holds first die", runeKey('1'), command{action: actionHold, slot: 0}},
		{"5 holds last die", runeKey('5'), command{action: actionHold, slot: 4}},
		{"0 is ignored", runeKey('0'), command{}},
		{"6 is ignored", runeKey('6'), command{}},
		{"other letters ignored", runeKey('x'), command{}},
		{"pasted text ignored", keys.Key{Code: keys.RuneKey, Runes: []rune("rr")}, command{}},
		{"tab ignored", keys.Key{Code: keys.Tab}, command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := commandFor(tt.key); got != tt.expected {
				t.Errorf("commandFor(%s) = %+v, want %+v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestApply(t *testing.T) {
	g := game.New(dice.NewSeededSource(9))

	if apply(g, command{action: actionReroll}) {
		t.Fatal("reroll with nothing held must be a no-op")
	}
	if !apply(g, command{action: actionHold, slot: 2}) {
		t.Fatal("hold should change state")
	}
	if !apply(g, command{action: actionReroll}) {
		t.Fatal("reroll with a held die should change state")
	}
	if g.Rolls() != 2 {
		t.Fatalf("expected roll 2, got %d", g.Rolls())
	}
	if !apply(g, command{action: actionEnd}) {
		t.Fatal("end should move the cursor off Ones")
	}
	if c, _ := g.Cursor(); c != dice.Chance {
		t.Fatalf("expected cursor on Chance, got %s", c)
	}
	if !apply(g, command{action: actionCommit}) {
		t.Fatal("commit should change state")
	}
	if g.Turn() != 2 {
		t.Fatalf("expected turn 2, got %d", g.Turn())
	}
	if apply(g, command{action: actionQuit}) || apply(g, command{}) {
		t.Fatal("quit and none must not change the game")
	}
}

func TestRenderTableMarksCursor(t *testing.T) {
	g := game.New(dice.NewSeededSource(1))
	out := renderTable(g)

	for _, want := range []string{"Upper Section", "Lower Section", "Bonus if > 62", "Grand Total", "> ⚀ 1s"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	selected := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, selectSymbol) {
			selected++
		}
	}
	if selected != 1 {
		t.Errorf("expected exactly one selected row, got %d:\n%s", selected, out)
	}

	g.CursorDown()
	out = renderTable(g)
	if !strings.Contains(out, "> ⚁ 2s") {
		t.Errorf("cursor row should follow the cursor:\n%s", out)
	}
}

func TestScoreTableRowWidth(t *testing.T) {
	st := &scoreTable{}
	st.section("S").item("Chance", 17).selected("Full House", 25).end()
	lines := strings.Split(st.String(), "\n")
	for _, line := range lines[1:3] {
		if n := len([]rune(line)); n != tableWidth {
			t.Errorf("row %q has width %d, want %d", line, n, tableWidth)
		}
	}
	if !strings.HasPrefix(lines[2], selectSymbol+"Full House") {
		t.Errorf("selected row should start with the marker: %q", lines[2])
	}
}

func TestRenderDice(t *testing.T) {
	d := dice.NewDiceSet([dice.NumDice]uint8{0, 1, 2, 3, 5})
	out := renderDice(d, [dice.NumDice]bool{})
	lines := strings.Split(out, "\n")
	if len(lines) != dice.NumDice*5 {
		t.Fatalf("expected %d lines, got %d", dice.NumDice*5, len(lines))
	}
	if !strings.HasPrefix(lines[2], "1") || !strings.HasPrefix(lines[22], "5") {
		t.Fatalf("slot labels misplaced:\n%s", out)
	}
	if strings.Count(out, "●") != 1+2+3+4+6 {
		t.Fatalf("expected %d pips, got %d", 16, strings.Count(out, "●"))
	}
}

func TestHelpLines(t *testing.T) {
	g := game.New(dice.NewSeededSource(4))
	if got := len(helpLines(g)); got != 2 {
		t.Fatalf("expected 2 help lines with nothing held, got %d", got)
	}
	g.ToggleHold(0)
	if got := helpLines(g); len(got) != 3 || !strings.HasPrefix(got[2], "R:") {
		t.Fatalf("expected reroll hint once a die is held, got %v", got)
	}
	g.Reroll()
	g.ToggleHold(0)
	g.Reroll()
	if got := helpLines(g); len(got) != 1 {
		t.Fatalf("final roll should only offer commit, got %v", got)
	}
}

func TestRenderScreen(t *testing.T) {
	turns := ledger.New("test")
	g := game.New(dice.NewSeededSource(2), game.WithCommitHandler(func(c game.Commit) {
		if err := turns.Append(c); err != nil {
			t.Fatal(err)
		}
	}))

	out, err := renderScreen(g, turns)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "LAST TURN") {
		t.Fatal("no turn played yet")
	}

	g.Commit()
	out, err = renderScreen(g, turns)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Roll 1 / 3", "Turn 2 / 13", "LAST TURN", "Turn 1: ⚀ 1s scored"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
}

func TestLogLevel(t *testing.T) {
	tests := map[string]pterm.LogLevel{
		"debug": pterm.LogLevelDebug,
		"info":  pterm.LogLevelInfo,
		"warn":  pterm.LogLevelWarn,
		"error": pterm.LogLevelError,
		"":      pterm.LogLevelWarn,
	}
	for in, want := range tests {
		if got := logLevel(in); got != want {
			t.Errorf("logLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
