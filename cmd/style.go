package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/yacht-dice/domain/dice"
	"github.com/luca-patrignani/yacht-dice/domain/game"
	"github.com/luca-patrignani/yacht-dice/domain/scoreboard"
	"github.com/luca-patrignani/yacht-dice/ledger"
)

const (
	selectSymbol = "> "
	tableWidth   = 26
	keyWidth     = 20
	valueWidth   = 4
)

var (
	heldStyle      = pterm.NewStyle(pterm.FgBlack, pterm.BgYellow)
	highlightStyle = pterm.NewStyle(pterm.FgYellow)
	selectedStyle  = pterm.NewStyle(pterm.FgBlack, pterm.BgYellow)
)

var diceFaces = [dice.NumFaces][]string{
	{
		"╭───────╮",
		"│       │",
		"│   ●   │",
		"│       │",
		"╰───────╯",
	},
	{
		"╭───────╮",
		"│ ●     │",
		"│       │",
		"│     ● │",
		"╰───────╯",
	},
	{
		"╭───────╮",
		"│ ●     │",
		"│   ●   │",
		"│     ● │",
		"╰───────╯",
	},
	{
		"╭───────╮",
		"│ ●   ● │",
		"│       │",
		"│ ●   ● │",
		"╰───────╯",
	},
	{
		"╭───────╮",
		"│ ●   ● │",
		"│   ●   │",
		"│ ●   ● │",
		"╰───────╯",
	},
	{
		"╭───────╮",
		"│ ●   ● │",
		"│ ●   ● │",
		"│ ●   ● │",
		"╰───────╯",
	},
}

// renderDice draws the five dice stacked, each with its slot number. Dice
// marked for re-roll get a highlighted background.
func renderDice(d dice.DiceSet, held [dice.NumDice]bool) string {
	var b strings.Builder
	for i, die := range d {
		face := diceFaces[die.Face()]
		for row, line := range face {
			label := " "
			if row == len(face)/2 {
				label = fmt.Sprint(i + 1)
			}
			if held[i] {
				line = heldStyle.Sprint(line)
			}
			b.WriteString(label + "  " + line + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// scoreTable lays out key/value rows in fixed-width columns.
type scoreTable struct {
	b      strings.Builder
	indent int
}

func (t *scoreTable) format(key string, value int, symbol string) string {
	margin := strings.Repeat(" ", t.indent-len(symbol))
	content := fmt.Sprintf("%-*s%*d", keyWidth-t.indent, key, valueWidth, value)
	right := strings.Repeat(" ", tableWidth-keyWidth-valueWidth)
	return margin + symbol + content + right
}

func (t *scoreTable) item(key string, value int) *scoreTable {
	t.b.WriteString(t.format(key, value, "") + "\n")
	return t
}

func (t *scoreTable) highlighted(key string, value int) *scoreTable {
	t.b.WriteString(highlightStyle.Sprint(t.format(key, value, "")) + "\n")
	return t
}

func (t *scoreTable) selected(key string, value int) *scoreTable {
	t.b.WriteString(selectedStyle.Sprint(t.format(key, value, selectSymbol)) + "\n")
	return t
}

func (t *scoreTable) section(title string) *scoreTable {
	t.b.WriteString(pterm.Bold.Sprint(title) + "\n")
	t.indent += len(selectSymbol)
	return t
}

func (t *scoreTable) separator() *scoreTable {
	t.b.WriteString(strings.Repeat("─", tableWidth) + "\n")
	return t
}

func (t *scoreTable) end() *scoreTable {
	t.indent -= len(selectSymbol)
	t.b.WriteString("\n")
	return t
}

func (t *scoreTable) String() string {
	return strings.TrimSuffix(t.b.String(), "\n")
}

// renderTable draws the scoreboard with the cursor row selected and every
// other available row highlighted.
func renderTable(g *game.Game) string {
	board := g.Scoreboard()
	cursor, hasCursor := g.Cursor()
	t := &scoreTable{}

	rows := func(section []dice.Category) {
		for _, c := range section {
			value := g.Preview(c)
			switch {
			case hasCursor && c == cursor:
				t.selected(c.String(), value)
			case !g.Finished() && g.Available(c):
				t.highlighted(c.String(), value)
			default:
				t.item(c.String(), value)
			}
		}
	}

	upper := dice.UpperSection()
	lower := dice.LowerSection()

	t.section("Upper Section")
	rows(upper[:])
	t.separator().
		item(fmt.Sprintf("Bonus if > %d", scoreboard.UpperBonusThreshold-1), board.UpperBonus()).
		item("Total", board.UpperTotal()).
		end()

	t.section("Lower Section")
	rows(lower[:])
	t.separator().
		item("Total", board.LowerTotal()).
		end()

	t.item("Grand Total", board.GrandTotal())
	return t.String()
}

// helpLines lists the keys that do something right now.
func helpLines(g *game.Game) []string {
	if g.Finished() {
		return []string{"Game over. Press any key to exit."}
	}
	lines := []string{"Enter:       choose a scoring category"}
	if g.Phase() == game.PhaseRolling {
		lines = append(lines, "Number keys: mark dice to be re-rolled")
		if g.AnyHeld() {
			lines = append(lines, "R:           roll marked dice")
		}
	}
	return lines
}

func renderHeader(g *game.Game) string {
	if g.Finished() {
		return pterm.LightGreen("Final score")
	}
	return fmt.Sprintf("Roll %d / %d    Turn %d / %d", g.Rolls(), game.MaxRolls, g.Turn(), dice.NumCategories)
}

// lastTurnPanel shows the most recent ledger entry.
func lastTurnPanel(e ledger.Entry) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2)
	text := pterm.Sprintf("Turn %d: %s scored %d\nDice: %v", e.Turn, pterm.LightCyan(e.Category), e.Points, e.Dice)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|LAST TURN|")).WithTitleTopCenter().Sprint(text)}
}

// renderScreen composes the whole frame handed to the live area.
func renderScreen(g *game.Game, log *ledger.Ledger) (string, error) {
	panels := pterm.Panels{
		{{Data: renderHeader(g)}},
		{{Data: renderDice(g.Dice(), g.Held())}, {Data: renderTable(g)}},
	}
	if log != nil {
		if last := log.Latest(); !last.IsGenesis() {
			panels = append(panels, []pterm.Panel{lastTurnPanel(last)})
		}
	}
	panels = append(panels, []pterm.Panel{{Data: strings.Join(helpLines(g), "\n")}})

	return pterm.DefaultPanel.WithPanels(panels).WithPadding(4).Srender()
}
