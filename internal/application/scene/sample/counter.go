// Package sample provides two small scenes that exercise the scene manager.
//
// Counter shows the state of the main slot, the wheel delta and the frame
// rate. Overlay wraps whatever scene it replaces and hands it back when
// closed.
package sample

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/scenekit/internal/application/input"
	"github.com/younwookim/scenekit/internal/application/scene"
	"github.com/younwookim/scenekit/internal/infrastructure/assets"
)

// Virtual slots used by the sample scenes
const (
	MainSlot    = 0
	OverlaySlot = 1
	CloseSlot   = 2
)

const (
	fontSize      = 16
	fpsFrames     = 60
	defaultDT     = 1.0 / 60.0
	maxStableDT   = 0.25
	initialLabel  = "No last press"
	overlayLabel  = "Deep Scene!"
	overlayOffset = 32
)

// CounterDescriptor realizes a Counter
type CounterDescriptor struct{}

// RequiresPrevious implements scene.Descriptor
func (CounterDescriptor) RequiresPrevious() bool { return false }

// Realize implements scene.Descriptor
func (CounterDescriptor) Realize(fonts *assets.Fonts, _ scene.Scene) (scene.Scene, error) {
	return &Counter{
		face:  fonts.Face(fontSize),
		label: initialLabel,
	}, nil
}

// Counter displays input state and frame rate
type Counter struct {
	face  *text.GoTextFace
	label string

	lastMain    bool
	lastWheel   float64
	lastOverlay bool

	frameCount int
	timeAccu   float64
	fps        int
}

// StartAnimations implements scene.Scene
func (c *Counter) StartAnimations() {}

// Draw implements scene.Scene
func (c *Counter) Draw(screen *ebiten.Image) {
	text.Draw(screen, c.label, c.face, &text.DrawOptions{})
}

// Update implements scene.Scene
func (c *Counter) Update(in input.Reader, dt, lastDT float64) scene.Transition {
	main := in.Key(MainSlot)
	wheel := in.WheelDelta()

	c.updateFPS()
	if c.lastMain != main || c.lastWheel != wheel || c.frameCount == 0 {
		c.label = fmt.Sprintf("main: %t wheel: %g fps: %d", main, wheel, c.fps)
	}
	c.lastMain = main
	c.lastWheel = wheel
	c.frameCount++
	c.timeAccu += stableDelta(dt, lastDT)

	// Open the overlay on press, not while held
	overlay := in.Key(OverlaySlot)
	opened := overlay && !c.lastOverlay
	c.lastOverlay = overlay
	if opened {
		return scene.ToDescriptor(OverlayDescriptor{})
	}
	return scene.Stay()
}

// Label returns the text currently displayed
func (c *Counter) Label() string {
	return c.label
}

// FPS returns the last computed frame rate
func (c *Counter) FPS() int {
	return c.fps
}

func (c *Counter) updateFPS() {
	if c.frameCount < fpsFrames {
		return
	}
	if c.timeAccu > 0 {
		c.fps = int(float64(c.frameCount)/c.timeAccu + 0.5)
	}
	c.frameCount = 0
	c.timeAccu = 0
}

// stableDelta filters out the frame times of a stalled or just-created window
func stableDelta(dt, lastDT float64) float64 {
	if dt > 0 && dt <= maxStableDT {
		return dt
	}
	if lastDT > 0 && lastDT <= maxStableDT {
		return lastDT
	}
	return defaultDT
}
