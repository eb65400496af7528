package config

// AppConfig is the root config for app.yaml
type AppConfig struct {
	Window WindowConfig `yaml:"window"`
	Fonts  FontsConfig  `yaml:"fonts"`
	Input  InputConfig  `yaml:"input"`
}

// WindowConfig configures the presentation surface
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// FontsConfig locates the font files. An empty path selects the built-in font.
type FontsConfig struct {
	Main string `yaml:"main"`
}

// InputConfig maps physical key and mouse button names to virtual slots
type InputConfig struct {
	Keys         map[string]int `yaml:"keys"`         // e.g. Enter: 0
	MouseButtons map[string]int `yaml:"mouseButtons"` // e.g. left: 0
}

// Defaults returns the configuration used when no file overrides it
func Defaults() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Title:  "test",
			Width:  640,
			Height: 360,
			VSync:  true,
		},
		Input: InputConfig{
			Keys:         map[string]int{"Enter": 0},
			MouseButtons: map[string]int{"left": 0},
		},
	}
}
