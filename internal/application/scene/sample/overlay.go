package sample

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/scenekit/internal/application/input"
	"github.com/younwookim/scenekit/internal/application/scene"
	"github.com/younwookim/scenekit/internal/infrastructure/assets"
)

// OverlayDescriptor realizes an Overlay around the scene it replaces
type OverlayDescriptor struct{}

// RequiresPrevious implements scene.Descriptor
func (OverlayDescriptor) RequiresPrevious() bool { return true }

// Realize implements scene.Descriptor
func (OverlayDescriptor) Realize(fonts *assets.Fonts, previous scene.Scene) (scene.Scene, error) {
	if err := scene.RequirePrevious("overlay", previous); err != nil {
		return nil, err
	}
	return &Overlay{
		previous: previous,
		face:     fonts.Face(fontSize),
	}, nil
}

// Overlay draws and updates the scene it wraps, then its own label on top.
// Pressing CloseSlot hands the wrapped scene back to the manager.
type Overlay struct {
	previous scene.Scene
	face     *text.GoTextFace
}

// StartAnimations implements scene.Scene
func (o *Overlay) StartAnimations() {}

// Draw implements scene.Scene
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.previous != nil {
		o.previous.Draw(screen)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(0, overlayOffset)
	text.Draw(screen, overlayLabel, o.face, op)
}

// Update implements scene.Scene
func (o *Overlay) Update(in input.Reader, dt, lastDT float64) scene.Transition {
	// Nesting is one level deep: requests from the wrapped scene are dropped
	if t := o.previous.Update(in, dt, lastDT); t.Kind() != scene.Continue {
		log.Printf("[Overlay] ignoring %s from wrapped scene", t.Kind())
	}

	if in.Key(CloseSlot) {
		previous := o.previous
		o.previous = nil
		return scene.ToScene(previous)
	}
	return scene.Stay()
}

// Previous returns the wrapped scene, nil once it has been handed back
func (o *Overlay) Previous() scene.Scene {
	return o.previous
}
