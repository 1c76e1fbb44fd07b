package main

import (
	"sync/atomic"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"

	"github.com/luca-patrignani/yacht-dice/domain/dice"
	"github.com/luca-patrignani/yacht-dice/domain/game"
)

type action int

const (
	actionNone action = iota
	actionQuit
	actionUp
	actionDown
	actionHome
	actionEnd
	actionCommit
	actionReroll
	actionHold
)

// command is a key press translated into a game transition. slot is only
// meaningful for actionHold.
type command struct {
	action action
	slot   int
}

// commandFor maps a key press to a command. Unknown keys map to actionNone.
func commandFor(key keys.Key) command {
	switch key.Code {
	case keys.Esc, keys.CtrlC:
		return command{action: actionQuit}
	case keys.Up:
		return command{action: actionUp}
	case keys.Down:
		return command{action: actionDown}
	case keys.Home:
		return command{action: actionHome}
	case keys.End:
		return command{action: actionEnd}
	case keys.Enter, keys.Space:
		return command{action: actionCommit}
	case keys.RuneKey:
		if len(key.Runes) != 1 {
			return command{}
		}
		return commandForRune(key.Runes[0])
	}
	return command{}
}

func commandForRune(r rune) command {
	switch r {
	case 'q':
		return command{action: actionQuit}
	case 'k', 'w':
		return command{action: actionUp}
	case 'j', 's':
		return command{action: actionDown}
	case ' ':
		return command{action: actionCommit}
	case 'r':
		return command{action: actionReroll}
	}
	if r >= '1' && r < '1'+dice.NumDice {
		return command{action: actionHold, slot: int(r - '1')}
	}
	return command{}
}

// apply runs cmd against g and reports whether the game state changed.
// actionQuit and actionNone never change anything.
func apply(g *game.Game, cmd command) bool {
	switch cmd.action {
	case actionUp:
		return g.CursorUp()
	case actionDown:
		return g.CursorDown()
	case actionHome:
		return g.CursorHome()
	case actionEnd:
		return g.CursorEnd()
	case actionCommit:
		_, ok := g.Commit()
		return ok
	case actionReroll:
		return g.Reroll()
	case actionHold:
		return g.ToggleHold(cmd.slot)
	}
	return false
}

// keyReader forwards key presses from the terminal to a channel. The game
// itself stays on the goroutine reading that channel.
type keyReader struct {
	events chan keys.Key
	errs   chan error
	done   chan struct{}
	stop   atomic.Bool
}

func newKeyReader() *keyReader {
	return &keyReader{
		events: make(chan keys.Key),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}
}

// start launches the listener goroutine. It ends on a quit key, or on the
// first key pressed after requestStop.
func (kr *keyReader) start() {
	go func() {
		defer close(kr.done)
		err := keyboard.Listen(func(key keys.Key) (bool, error) {
			if kr.stop.Load() {
				return true, nil
			}
			kr.events <- key
			return commandFor(key).action == actionQuit, nil
		})
		if err != nil {
			kr.errs <- err
		}
	}()
}

// requestStop makes the listener exit on the next key press.
func (kr *keyReader) requestStop() {
	kr.stop.Store(true)
}

// wait blocks until the listener goroutine has exited, discarding any key
// still in flight.
func (kr *keyReader) wait() {
	for {
		select {
		case <-kr.events:
		case <-kr.done:
			return
		}
	}
}
