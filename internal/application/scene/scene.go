// Package scene defines the Scene and Descriptor interfaces and the Transition a scene returns from Update.
//
// A scene goes through two construction phases. A Descriptor is a cheap
// value holding only the parameters of a scene; the scene manager realizes
// it into a Scene (loading graphics) only once it commits to the switch.
//
// Life cycle of a realized scene:
//  1. Realize (build graphics from the shared fonts)
//  2. StartAnimations
//  3. loop: Update, Draw
//
// The manager clears the surface before each Draw. A scene wrapping a
// previous scene draws the previous one first and never clears.
package scene

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/scenekit/internal/application/input"
	"github.com/younwookim/scenekit/internal/infrastructure/assets"
)

// ErrPreviousRequired is returned when a descriptor that wraps the previous
// scene is realized without one. It is a wiring bug, not a runtime condition.
var ErrPreviousRequired = errors.New("scene requires a previous scene")

// Scene is a realized, running scene
type Scene interface {
	// StartAnimations is called once, after realization and before the first Update.
	StartAnimations()

	// Draw renders the scene. The screen has already been cleared.
	Draw(screen *ebiten.Image)

	// Update advances the scene.
	// dt is the time of the last frame in seconds, lastDT the one before it.
	// The returned Transition tells the manager whether to switch scenes.
	Update(in input.Reader, dt, lastDT float64) Transition
}

// Descriptor is a scene that has not been realized yet
type Descriptor interface {
	// RequiresPrevious reports whether the realized scene wraps the scene it replaces.
	RequiresPrevious() bool

	// Realize builds the scene. previous is the scene being replaced when
	// RequiresPrevious is true, nil otherwise; ownership moves into the new scene.
	Realize(fonts *assets.Fonts, previous Scene) (Scene, error)
}

// RequirePrevious returns a wrapped ErrPreviousRequired naming the scene when previous is nil
func RequirePrevious(name string, previous Scene) error {
	if previous == nil {
		return fmt.Errorf("%s: %w", name, ErrPreviousRequired)
	}
	return nil
}
