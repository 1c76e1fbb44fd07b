package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/yacht-dice/config"
	"github.com/luca-patrignani/yacht-dice/domain/dice"
	"github.com/luca-patrignani/yacht-dice/domain/game"
	"github.com/luca-patrignani/yacht-dice/ledger"
)

func main() {
	if err := run(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.NoColor {
		pterm.DisableColor()
	}

	// Create a new slog logger on top of the PTerm logger
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(logLevel(cfg.LogLevel))))

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Y", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("acht", pterm.FgDarkGray.ToStyle()),
	).Render()

	session := uuid.NewString()
	turns := ledger.New(session)

	var src dice.Source = dice.NewStreamSource()
	if cfg.Seed != 0 {
		src = dice.NewSeededSource(cfg.Seed)
		logger.Info("replaying seeded dice", "seed", cfg.Seed)
	}

	g := game.New(src,
		game.WithLogger(logger),
		game.WithCommitHandler(func(c game.Commit) {
			if err := turns.Append(c); err != nil {
				logger.Error("failed to record turn", "turn", c.Turn, "error", err)
			}
		}),
	)
	logger.Info("game started", "session", session)

	area, err := pterm.DefaultArea.Start()
	if err != nil {
		return fmt.Errorf("start area: %w", err)
	}

	kr := newKeyReader()
	kr.start()
	quit, err := loop(g, turns, area, kr)
	kr.requestStop()
	kr.wait()
	if stopErr := area.Stop(); stopErr != nil {
		logger.Warn("failed to stop area", "error", stopErr)
	}
	if err != nil {
		return err
	}
	if quit {
		pterm.Info.Printfln("Game abandoned on turn %d with %d points", g.Turn(), g.Scoreboard().GrandTotal())
		return nil
	}

	pterm.Success.Printfln("Final score: %d", g.Scoreboard().GrandTotal())
	if err := turns.Verify(); err != nil {
		return fmt.Errorf("verify scorecard: %w", err)
	}
	pterm.Info.Printfln("Scorecard verified: %d turns recorded in session %s", turns.Len()-1, session)
	return nil
}

// loop feeds key presses into the game and redraws after every change. It
// returns when the game finishes, the player quits, or the keyboard fails.
func loop(g *game.Game, turns *ledger.Ledger, area *pterm.AreaPrinter, kr *keyReader) (quit bool, err error) {
	redraw := func() error {
		screen, err := renderScreen(g, turns)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		area.Update(screen)
		return nil
	}

	if err := redraw(); err != nil {
		return false, err
	}
	for !g.Finished() {
		select {
		case key := <-kr.events:
			cmd := commandFor(key)
			if cmd.action == actionQuit {
				return true, nil
			}
			if !apply(g, cmd) {
				continue
			}
			if err := redraw(); err != nil {
				return false, err
			}
		case err := <-kr.errs:
			return false, fmt.Errorf("read keyboard: %w", err)
		}
	}
	return false, nil
}

func logLevel(level string) pterm.LogLevel {
	switch level {
	case "debug":
		return pterm.LogLevelDebug
	case "info":
		return pterm.LogLevelInfo
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelWarn
	}
}
