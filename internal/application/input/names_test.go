package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		key  ebiten.Key
	}{
		{"Enter", ebiten.KeyEnter},
		{"enter", ebiten.KeyEnter},
		{"Space", ebiten.KeySpace},
		{"Escape", ebiten.KeyEscape},
		{"A", ebiten.KeyA},
		{"ArrowUp", ebiten.KeyArrowUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := ParseKey(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.key, key)
		})
	}

	_, ok := ParseKey("NotAKey")
	assert.False(t, ok)
}

func TestParseMouseButton(t *testing.T) {
	b, ok := ParseMouseButton("Left")
	require.True(t, ok)
	assert.Equal(t, ebiten.MouseButtonLeft, b)

	b, ok = ParseMouseButton("right")
	require.True(t, ok)
	assert.Equal(t, ebiten.MouseButtonRight, b)

	_, ok = ParseMouseButton("thumb")
	assert.False(t, ok)
}

func TestState_LoadNamedMappings(t *testing.T) {
	s := New()

	unknown := s.LoadNamedMappings(
		map[string]int{"Enter": 0, "Space": 1, "Bogus": 2},
		map[string]int{"left": 0, "wheel": 3},
	)

	assert.Equal(t, []string{"Bogus", "wheel"}, unknown)
	assert.Equal(t, 0, s.KeyIndex(ebiten.KeyEnter))
	assert.Equal(t, 1, s.KeyIndex(ebiten.KeySpace))
	assert.Equal(t, 0, s.MouseButtonIndex(ebiten.MouseButtonLeft))
}

func TestState_LoadNamedMappings_AllKnown(t *testing.T) {
	s := New()
	unknown := s.LoadNamedMappings(map[string]int{"Escape": 2}, nil)
	assert.Empty(t, unknown)
	assert.Equal(t, 2, s.KeyIndex(ebiten.KeyEscape))
}
