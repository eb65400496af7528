package sample

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/scenekit/internal/application/input"
	"github.com/younwookim/scenekit/internal/application/scene"
	"github.com/younwookim/scenekit/internal/domain/event"
	"github.com/younwookim/scenekit/internal/infrastructure/assets"
)

// recordingScene counts calls made by a wrapping scene
type recordingScene struct {
	draws   int
	updates int
	next    scene.Transition
}

func (r *recordingScene) StartAnimations() {}
func (r *recordingScene) Draw(*ebiten.Image) { r.draws++ }
func (r *recordingScene) Update(input.Reader, float64, float64) scene.Transition {
	r.updates++
	return r.next
}

func testFonts(t *testing.T) *assets.Fonts {
	t.Helper()
	fonts, err := assets.Default()
	require.NoError(t, err)
	return fonts
}

func testInput() *input.State {
	in := input.New()
	in.LoadKeyMapping(ebiten.KeyEnter, MainSlot)
	in.LoadKeyMapping(ebiten.KeySpace, OverlaySlot)
	in.LoadKeyMapping(ebiten.KeyEscape, CloseSlot)
	return in
}

func realizeCounter(t *testing.T) *Counter {
	t.Helper()
	s, err := CounterDescriptor{}.Realize(testFonts(t), nil)
	require.NoError(t, err)
	c, ok := s.(*Counter)
	require.True(t, ok)
	return c
}

func TestCounterDescriptor(t *testing.T) {
	assert.False(t, CounterDescriptor{}.RequiresPrevious())

	c := realizeCounter(t)
	assert.Equal(t, "No last press", c.Label())
}

func TestCounter_Update(t *testing.T) {
	t.Run("first frame shows state", func(t *testing.T) {
		c := realizeCounter(t)
		in := testInput()

		tr := c.Update(in, defaultDT, 0)

		assert.Equal(t, scene.Continue, tr.Kind())
		assert.Equal(t, "main: false wheel: 0 fps: 0", c.Label())
	})

	t.Run("label follows main slot and wheel", func(t *testing.T) {
		c := realizeCounter(t)
		in := testInput()
		c.Update(in, defaultDT, 0)

		in.BeginFrame()
		in.Apply(event.KeyPressed(ebiten.KeyEnter))
		in.Apply(event.WheelScrolled(event.WheelVertical, 1.5))
		c.Update(in, defaultDT, defaultDT)

		assert.Equal(t, "main: true wheel: 1.5 fps: 0", c.Label())
	})

	t.Run("fps is computed every 60 frames", func(t *testing.T) {
		c := realizeCounter(t)
		in := testInput()

		for i := 0; i < fpsFrames+1; i++ {
			c.Update(in, 0.02, 0.02)
		}

		assert.Equal(t, 50, c.FPS())
		assert.Equal(t, "main: false wheel: 0 fps: 50", c.Label())
	})

	t.Run("opens overlay on press only", func(t *testing.T) {
		c := realizeCounter(t)
		in := testInput()
		in.Apply(event.KeyPressed(ebiten.KeySpace))

		tr := c.Update(in, defaultDT, 0)
		require.Equal(t, scene.SwitchToDescriptor, tr.Kind())
		assert.IsType(t, OverlayDescriptor{}, tr.Descriptor())

		tr = c.Update(in, defaultDT, defaultDT)
		assert.Equal(t, scene.Continue, tr.Kind(), "held key does not reopen")

		in.Apply(event.KeyReleased(ebiten.KeySpace))
		c.Update(in, defaultDT, defaultDT)
		in.Apply(event.KeyPressed(ebiten.KeySpace))
		tr = c.Update(in, defaultDT, defaultDT)
		assert.Equal(t, scene.SwitchToDescriptor, tr.Kind())
	})
}

func TestStableDelta(t *testing.T) {
	tests := []struct {
		name     string
		dt       float64
		lastDT   float64
		expected float64
	}{
		{"normal frame", 0.016, 0.017, 0.016},
		{"stalled frame uses previous", 2.0, 0.017, 0.017},
		{"zero frame uses previous", 0, 0.02, 0.02},
		{"first frame falls back to default", 3.0, 0, defaultDT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, stableDelta(tt.dt, tt.lastDT), 1e-9)
		})
	}
}

func TestOverlayDescriptor_RequiresPrevious(t *testing.T) {
	d := OverlayDescriptor{}
	assert.True(t, d.RequiresPrevious())

	_, err := d.Realize(testFonts(t), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, scene.ErrPreviousRequired))
}

func TestOverlay_Update(t *testing.T) {
	previous := &recordingScene{}
	s, err := OverlayDescriptor{}.Realize(testFonts(t), previous)
	require.NoError(t, err)
	o := s.(*Overlay)
	in := testInput()

	t.Run("forwards updates to wrapped scene", func(t *testing.T) {
		tr := o.Update(in, defaultDT, defaultDT)
		assert.Equal(t, scene.Continue, tr.Kind())
		assert.Equal(t, 1, previous.updates)
	})

	t.Run("drops requests from wrapped scene", func(t *testing.T) {
		previous.next = scene.ToDescriptor(CounterDescriptor{})
		tr := o.Update(in, defaultDT, defaultDT)
		assert.Equal(t, scene.Continue, tr.Kind())
		previous.next = scene.Stay()
	})

	t.Run("close hands wrapped scene back", func(t *testing.T) {
		in.Apply(event.KeyPressed(ebiten.KeyEscape))
		tr := o.Update(in, defaultDT, defaultDT)

		require.Equal(t, scene.SwitchToScene, tr.Kind())
		assert.Same(t, previous, tr.Scene())
		assert.Nil(t, o.Previous(), "overlay keeps no reference after handing back")
	})
}

func TestOverlay_DrawsPreviousEveryFrame(t *testing.T) {
	previous := &recordingScene{}
	s, err := OverlayDescriptor{}.Realize(testFonts(t), previous)
	require.NoError(t, err)

	screen := ebiten.NewImage(640, 360)
	for i := 1; i <= 3; i++ {
		s.Draw(screen)
		assert.Equal(t, i, previous.draws)
	}
}
