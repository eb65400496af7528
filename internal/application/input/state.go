// Package input maps physical input events onto a small fixed set of virtual key slots.
//
// Scenes never see device codes. They query virtual slots, the pointer
// position, the wheel delta of the current frame and the text typed during
// the current frame through the Reader interface.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/scenekit/internal/domain/event"
)

const (
	// MaxKeys is the number of virtual key slots
	MaxKeys = 8

	// Unmapped is the slot index of physical codes with no mapping.
	// It is out of range on purpose so that lookups degrade to a no-op.
	Unmapped = MaxKeys

	maxScanCodes    = int(ebiten.KeyMax) + 1
	maxMouseButtons = int(ebiten.MouseButtonMax) + 1
)

// Reader is the read-only view of the input state handed to scenes
type Reader interface {
	Key(index int) bool
	Pointer() (x, y int)
	WheelDelta() float64
	Text() string
}

// State holds the virtual key slots and the physical to virtual mapping
type State struct {
	keys         [MaxKeys]bool
	keyMapping   [maxScanCodes]int
	mouseMapping [maxMouseButtons]int
	mouseX       int
	mouseY       int
	wheelDelta   float64
	text         []rune
}

// New creates an input state with every slot released and every code unmapped
func New() *State {
	s := &State{}
	for i := range s.keyMapping {
		s.keyMapping[i] = Unmapped
	}
	for i := range s.mouseMapping {
		s.mouseMapping[i] = Unmapped
	}
	return s
}

// LoadKeyMapping maps a physical key to a virtual slot.
// Unknown keys and out-of-range slots are ignored.
func (s *State) LoadKeyMapping(key ebiten.Key, index int) {
	if !validKey(key) || !validIndex(index) {
		return
	}
	s.keyMapping[key] = index
}

// LoadMouseButtonMapping maps a physical mouse button to a virtual slot.
// Unknown buttons and out-of-range slots are ignored.
func (s *State) LoadMouseButtonMapping(button ebiten.MouseButton, index int) {
	if !validButton(button) || !validIndex(index) {
		return
	}
	s.mouseMapping[button] = index
}

// LoadKeyTable replaces the whole key mapping.
// Keys missing from the table become unmapped, out-of-range slots are clamped to Unmapped.
func (s *State) LoadKeyTable(table map[ebiten.Key]int) {
	for i := range s.keyMapping {
		s.keyMapping[i] = Unmapped
	}
	for key, index := range table {
		if validKey(key) {
			s.keyMapping[key] = clampIndex(index)
		}
	}
}

// LoadMouseButtonTable replaces the whole mouse button mapping
func (s *State) LoadMouseButtonTable(table map[ebiten.MouseButton]int) {
	for i := range s.mouseMapping {
		s.mouseMapping[i] = Unmapped
	}
	for button, index := range table {
		if validButton(button) {
			s.mouseMapping[button] = clampIndex(index)
		}
	}
}

// KeyIndex returns the slot a physical key is mapped to, or Unmapped
func (s *State) KeyIndex(key ebiten.Key) int {
	if !validKey(key) {
		return Unmapped
	}
	return s.keyMapping[key]
}

// MouseButtonIndex returns the slot a physical button is mapped to, or Unmapped
func (s *State) MouseButtonIndex(button ebiten.MouseButton) int {
	if !validButton(button) {
		return Unmapped
	}
	return s.mouseMapping[button]
}

// Apply updates the state from one physical event.
// It returns false when the event is not an input event, so the caller
// can handle it (window close and the like).
func (s *State) Apply(e event.Event) bool {
	switch e.Kind {
	case event.KindKeyPressed:
		s.setKey(s.KeyIndex(e.Key), true)
	case event.KindKeyReleased:
		s.setKey(s.KeyIndex(e.Key), false)
	case event.KindMouseMoved:
		s.mouseX = e.X
		s.mouseY = e.Y
	case event.KindWheelScrolled:
		if e.Wheel != event.WheelVertical {
			return false
		}
		s.wheelDelta = e.Delta
	case event.KindMouseButtonPressed:
		s.setKey(s.MouseButtonIndex(e.Button), true)
	case event.KindMouseButtonReleased:
		s.setKey(s.MouseButtonIndex(e.Button), false)
	case event.KindTextEntered:
		s.text = append(s.text, e.Char)
	default:
		return false
	}
	return true
}

// BeginFrame resets the per-frame fields.
// Wheel and text events only arrive when they happen, so they must not leak into the next frame.
func (s *State) BeginFrame() {
	s.wheelDelta = 0
	s.text = s.text[:0]
}

// Key reports whether a virtual slot is held. Out-of-range slots are never held.
func (s *State) Key(index int) bool {
	if !validIndex(index) {
		return false
	}
	return s.keys[index]
}

// Pointer returns the last known pointer position
func (s *State) Pointer() (x, y int) {
	return s.mouseX, s.mouseY
}

// WheelDelta returns the vertical scroll of the current frame
func (s *State) WheelDelta() float64 {
	return s.wheelDelta
}

// Text returns the characters typed during the current frame
func (s *State) Text() string {
	return string(s.text)
}

func (s *State) setKey(index int, pressed bool) {
	if validIndex(index) {
		s.keys[index] = pressed
	}
}

func validIndex(index int) bool {
	return index >= 0 && index < MaxKeys
}

func clampIndex(index int) int {
	if !validIndex(index) {
		return Unmapped
	}
	return index
}

func validKey(key ebiten.Key) bool {
	return key >= 0 && int(key) < maxScanCodes
}

func validButton(button ebiten.MouseButton) bool {
	return button >= 0 && int(button) < maxMouseButtons
}
