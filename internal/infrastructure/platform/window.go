// Package platform adapts ebiten to the scene manager.
//
// ebiten drives the loop by calling Update and Draw. Window turns that
// around: on each ebiten Update it polls the devices into an event queue
// and runs one manager tick, which draws into an offscreen canvas. ebiten's
// Draw then shows the last presented frame.
package platform

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/scenekit/internal/domain/event"
	"github.com/younwookim/scenekit/internal/infrastructure/config"
)

// Window implements ebiten.Game and game.Surface
type Window struct {
	cfg    config.WindowConfig
	canvas *ebiten.Image
	frame  *ebiten.Image
	events *eventQueue
	open   bool
	tick   func() error

	cursorX, cursorY int
	keys             []ebiten.Key
	chars            []rune
}

// NewWindow creates a window of the configured logical size
func NewWindow(cfg config.WindowConfig) *Window {
	return &Window{
		cfg:    cfg,
		canvas: ebiten.NewImage(cfg.Width, cfg.Height),
		frame:  ebiten.NewImage(cfg.Width, cfg.Height),
		events: newEventQueue(),
		open:   true,
	}
}

// Run opens the window and calls tick once per ebiten update until the window is closed
func (w *Window) Run(tick func() error) error {
	w.tick = tick

	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetVsyncEnabled(w.cfg.VSync)
	ebiten.SetWindowClosingHandled(true)

	return ebiten.RunGame(w)
}

// IsOpen reports whether the window has not been closed
func (w *Window) IsOpen() bool {
	return w.open
}

// Clear fills the canvas
func (w *Window) Clear(c color.Color) {
	w.canvas.Fill(c)
}

// Canvas returns the image scenes draw into
func (w *Window) Canvas() *ebiten.Image {
	return w.canvas
}

// Present makes the canvas the frame shown by Draw
func (w *Window) Present() {
	w.frame.Clear()
	w.frame.DrawImage(w.canvas, nil)
}

// PollEvent returns the next pending event
func (w *Window) PollEvent() (event.Event, bool) {
	return w.events.pop()
}

// Close marks the window closed; RunGame returns after the current update
func (w *Window) Close() {
	w.open = false
}

// Update implements ebiten.Game
func (w *Window) Update() error {
	w.collectEvents()

	if w.tick != nil {
		if err := w.tick(); err != nil {
			return err
		}
	}

	if !w.open {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game
func (w *Window) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.frame, nil)
}

// Layout implements ebiten.Game
func (w *Window) Layout(_, _ int) (int, int) {
	return w.cfg.Width, w.cfg.Height
}

// collectEvents turns this frame's device state changes into events
func (w *Window) collectEvents() {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		w.events.push(event.KeyPressed(k))
	}
	w.keys = inpututil.AppendJustReleasedKeys(w.keys[:0])
	for _, k := range w.keys {
		w.events.push(event.KeyReleased(k))
	}

	for b := ebiten.MouseButton(0); b <= ebiten.MouseButtonMax; b++ {
		if inpututil.IsMouseButtonJustPressed(b) {
			w.events.push(event.MouseButtonPressed(b))
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			w.events.push(event.MouseButtonReleased(b))
		}
	}

	x, y := ebiten.CursorPosition()
	if e, ok := w.cursorEvent(x, y); ok {
		w.events.push(e)
	}

	w.events.push(wheelEvents(ebiten.Wheel())...)

	w.chars = ebiten.AppendInputChars(w.chars[:0])
	for _, r := range w.chars {
		w.events.push(event.TextEntered(r))
	}

	if ebiten.IsWindowBeingClosed() {
		w.events.push(event.Closed())
	}
}

// cursorEvent reports a move only when the position changed
func (w *Window) cursorEvent(x, y int) (event.Event, bool) {
	if x == w.cursorX && y == w.cursorY {
		return event.Event{}, false
	}
	w.cursorX, w.cursorY = x, y
	return event.MouseMoved(x, y), true
}

func wheelEvents(dx, dy float64) []event.Event {
	var events []event.Event
	if dy != 0 {
		events = append(events, event.WheelScrolled(event.WheelVertical, dy))
	}
	if dx != 0 {
		events = append(events, event.WheelScrolled(event.WheelHorizontal, dx))
	}
	return events
}
