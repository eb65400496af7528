package input

import (
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var keysByName = buildKeyNames()

var mouseButtonsByName = map[string]ebiten.MouseButton{
	"left":    ebiten.MouseButtonLeft,
	"middle":  ebiten.MouseButtonMiddle,
	"right":   ebiten.MouseButtonRight,
	"button3": ebiten.MouseButton3,
	"button4": ebiten.MouseButton4,
}

func buildKeyNames() map[string]ebiten.Key {
	names := make(map[string]ebiten.Key, maxScanCodes)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		names[strings.ToLower(k.String())] = k
	}
	return names
}

// ParseKey resolves a key name such as "Enter" or "ArrowUp" (case-insensitive)
func ParseKey(name string) (ebiten.Key, bool) {
	k, ok := keysByName[strings.ToLower(name)]
	return k, ok
}

// ParseMouseButton resolves "left", "middle", "right", "button3" or "button4"
func ParseMouseButton(name string) (ebiten.MouseButton, bool) {
	b, ok := mouseButtonsByName[strings.ToLower(name)]
	return b, ok
}

// LoadNamedMappings applies name to slot pairs from configuration.
// Names that cannot be resolved are skipped and returned sorted.
func (s *State) LoadNamedMappings(keys, buttons map[string]int) []string {
	var unknown []string

	for name, index := range keys {
		key, ok := ParseKey(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		s.LoadKeyMapping(key, index)
	}

	for name, index := range buttons {
		button, ok := ParseMouseButton(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		s.LoadMouseButtonMapping(button, index)
	}

	sort.Strings(unknown)
	return unknown
}
