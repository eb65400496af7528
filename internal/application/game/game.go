// Package game provides the scene manager that drives the per-frame loop.
//
// Each tick runs in a fixed order: draw the current scene and present it,
// measure the frame time, sample input, update the scene, then apply the
// transition it returned. The manager always holds exactly one scene
// between ticks.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/scenekit/internal/application/input"
	"github.com/younwookim/scenekit/internal/application/scene"
	"github.com/younwookim/scenekit/internal/domain/event"
	"github.com/younwookim/scenekit/internal/infrastructure/assets"
)

// ErrNilScene is returned when a transition would leave the manager without a scene
var ErrNilScene = errors.New("transition to nil scene")

// ClearColor is the color the surface is cleared to before each draw
var ClearColor color.Color = color.Black

// Surface is the window the manager draws to and reads events from
type Surface interface {
	IsOpen() bool
	Clear(c color.Color)
	Canvas() *ebiten.Image
	Present()
	PollEvent() (event.Event, bool)
	Close()
}

// Manager owns the current scene, the input state and the frame clock
type Manager struct {
	surface Surface
	fonts   *assets.Fonts
	input   *input.State
	clock   Clock
	lastDT  float64
	current scene.Scene
}

// New creates a manager and realizes the initial scene.
// The initial scene's StartAnimations is called immediately.
func New(surface Surface, clock Clock, fonts *assets.Fonts, in *input.State, initial scene.Descriptor) (*Manager, error) {
	if in == nil {
		in = input.New()
	}

	m := &Manager{
		surface: surface,
		fonts:   fonts,
		input:   in,
		clock:   clock,
	}

	s, err := m.realize(initial, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to realize initial scene: %w", err)
	}
	m.current = s

	return m, nil
}

// IsRunning reports whether the surface is still open
func (m *Manager) IsRunning() bool {
	return m.surface.IsOpen()
}

// Run ticks until the surface is closed
func (m *Manager) Run() error {
	for m.IsRunning() {
		if err := m.Update(); err != nil {
			return err
		}
	}
	return nil
}

// Update runs one tick.
// It returns an error only when a transition cannot be applied; the manager
// keeps its current scene in that case.
func (m *Manager) Update() error {
	if !m.IsRunning() {
		return nil
	}

	m.draw()
	dt := m.deltaTime()
	m.updateInput()

	if !m.IsRunning() {
		return nil
	}

	next := m.current.Update(m.input, dt, m.lastDT)
	m.lastDT = dt

	return m.apply(next)
}

// Current returns the active scene
func (m *Manager) Current() scene.Scene {
	return m.current
}

// Input returns the input state, for mapping configuration at startup
func (m *Manager) Input() *input.State {
	return m.input
}

// LastDeltaTime returns the frame time passed to the last Update, in seconds
func (m *Manager) LastDeltaTime() float64 {
	return m.lastDT
}

func (m *Manager) draw() {
	m.surface.Clear(ClearColor)
	m.current.Draw(m.surface.Canvas())
	m.surface.Present()
}

func (m *Manager) deltaTime() float64 {
	dt := m.clock.Elapsed().Seconds()
	m.clock.Restart()
	return dt
}

func (m *Manager) updateInput() {
	m.input.BeginFrame()
	for {
		e, ok := m.surface.PollEvent()
		if !ok {
			return
		}
		if !m.input.Apply(e) && e.Kind == event.KindClosed {
			m.surface.Close()
		}
	}
}

// apply commits the transition. The new scene is fully built before it
// replaces the current one.
func (m *Manager) apply(t scene.Transition) error {
	switch t.Kind() {
	case scene.SwitchToDescriptor:
		d := t.Descriptor()
		if d == nil {
			return ErrNilScene
		}
		var previous scene.Scene
		if d.RequiresPrevious() {
			previous = m.current
		}
		s, err := m.realize(d, previous)
		if err != nil {
			return fmt.Errorf("failed to realize scene %T: %w", d, err)
		}
		log.Printf("[Manager] switched to %T", s)
		m.current = s
	case scene.SwitchToScene:
		s := t.Scene()
		if s == nil {
			return ErrNilScene
		}
		log.Printf("[Manager] switched back to %T", s)
		m.current = s
	}
	return nil
}

func (m *Manager) realize(d scene.Descriptor, previous scene.Scene) (scene.Scene, error) {
	if d == nil {
		return nil, ErrNilScene
	}
	s, err := d.Realize(m.fonts, previous)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrNilScene
	}
	s.StartAnimations()
	return s, nil
}
