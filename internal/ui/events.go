package ui

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridsnake/internal/input"
)

// EventFrame folds the tcell events received between two frames into one
// input.Frame. The pointer position survives across frames.
type EventFrame struct {
	keys      input.KeySet
	clicked   bool
	pointer   image.Point
	buttons   tcell.ButtonMask
	resized   bool
	interrupt bool
}

// Add records one event.
func (e *EventFrame) Add(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		e.addKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		e.pointer = image.Pt(x/columnsPerPixel, y)

		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && e.buttons&tcell.Button1 == 0 {
			e.clicked = true
		}
		e.buttons = buttons
	case *tcell.EventResize:
		e.resized = true
	}
}

func (e *EventFrame) addKey(k tcell.Key, r rune) {
	switch k {
	case tcell.KeyCtrlC:
		e.interrupt = true
	case tcell.KeyUp:
		e.keys = e.keys.With(input.KeyUp)
	case tcell.KeyDown:
		e.keys = e.keys.With(input.KeyDown)
	case tcell.KeyLeft:
		e.keys = e.keys.With(input.KeyLeft)
	case tcell.KeyRight:
		e.keys = e.keys.With(input.KeyRight)
	case tcell.KeyEnter:
		e.keys = e.keys.With(input.KeyConfirm)
	case tcell.KeyEscape:
		e.keys = e.keys.With(input.KeyQuit)

	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			e.keys = e.keys.With(input.KeyUp)
		case 's', 'S':
			e.keys = e.keys.With(input.KeyDown)
		case 'a', 'A':
			e.keys = e.keys.With(input.KeyLeft)
		case 'd', 'D':
			e.keys = e.keys.With(input.KeyRight)
		case ' ':
			e.keys = e.keys.With(input.KeyConfirm)
		case 'q', 'Q':
			e.keys = e.keys.With(input.KeyQuit)
		}
	}
}

// Poll returns the accumulated frame and starts a new one.
func (e *EventFrame) Poll() input.Frame {
	f := input.Frame{Keys: e.keys, Clicked: e.clicked, Pointer: e.pointer}
	e.keys = 0
	e.clicked = false
	return f
}

// Interrupted reports whether Ctrl-C was pressed.
func (e *EventFrame) Interrupted() bool {
	return e.interrupt
}

// TakeResize reports and clears a pending terminal resize.
func (e *EventFrame) TakeResize() bool {
	r := e.resized
	e.resized = false
	return r
}
