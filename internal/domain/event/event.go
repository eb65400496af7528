// Package event defines the physical input events delivered by the platform layer.
//
// Events carry device codes (keys, mouse buttons) as the platform reports
// them. Translating them into application semantics is the job of the
// input package.
package event

import "github.com/hajimehoshi/ebiten/v2"

// Kind identifies the variant of an Event
type Kind int

const (
	KindOther Kind = iota
	KindKeyPressed
	KindKeyReleased
	KindMouseMoved
	KindWheelScrolled
	KindMouseButtonPressed
	KindMouseButtonReleased
	KindTextEntered
	KindClosed
)

// String returns the string representation of the event kind
func (k Kind) String() string {
	switch k {
	case KindOther:
		return "Other"
	case KindKeyPressed:
		return "KeyPressed"
	case KindKeyReleased:
		return "KeyReleased"
	case KindMouseMoved:
		return "MouseMoved"
	case KindWheelScrolled:
		return "WheelScrolled"
	case KindMouseButtonPressed:
		return "MouseButtonPressed"
	case KindMouseButtonReleased:
		return "MouseButtonReleased"
	case KindTextEntered:
		return "TextEntered"
	case KindClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Wheel identifies the scroll axis of a wheel event
type Wheel int

const (
	WheelVertical Wheel = iota
	WheelHorizontal
)

// Event is a single physical input event.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind   Kind
	Key    ebiten.Key
	Button ebiten.MouseButton
	X, Y   int
	Wheel  Wheel
	Delta  float64
	Char   rune
}

// KeyPressed creates a key-down event
func KeyPressed(key ebiten.Key) Event {
	return Event{Kind: KindKeyPressed, Key: key}
}

// KeyReleased creates a key-up event
func KeyReleased(key ebiten.Key) Event {
	return Event{Kind: KindKeyReleased, Key: key}
}

// MouseMoved creates a pointer-move event
func MouseMoved(x, y int) Event {
	return Event{Kind: KindMouseMoved, X: x, Y: y}
}

// WheelScrolled creates a wheel event on the given axis
func WheelScrolled(wheel Wheel, delta float64) Event {
	return Event{Kind: KindWheelScrolled, Wheel: wheel, Delta: delta}
}

// MouseButtonPressed creates a button-down event
func MouseButtonPressed(button ebiten.MouseButton) Event {
	return Event{Kind: KindMouseButtonPressed, Button: button}
}

// MouseButtonReleased creates a button-up event
func MouseButtonReleased(button ebiten.MouseButton) Event {
	return Event{Kind: KindMouseButtonReleased, Button: button}
}

// TextEntered creates a text event carrying one code point
func TextEntered(char rune) Event {
	return Event{Kind: KindTextEntered, Char: char}
}

// Closed creates a window-close request event
func Closed() Event {
	return Event{Kind: KindClosed}
}

// Other creates an event the core does not recognize
func Other() Event {
	return Event{Kind: KindOther}
}
