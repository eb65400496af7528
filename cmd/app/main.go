package main

import (
	"flag"
	"io/fs"
	"log"

	"github.com/younwookim/scenekit/internal/application/game"
	"github.com/younwookim/scenekit/internal/application/input"
	"github.com/younwookim/scenekit/internal/application/scene/sample"
	"github.com/younwookim/scenekit/internal/infrastructure/assets"
	"github.com/younwookim/scenekit/internal/infrastructure/config"
	"github.com/younwookim/scenekit/internal/infrastructure/platform"
)

func main() {
	configDir := flag.String("config", "", "Load app.yaml and fonts from this directory instead of the embedded configs")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fonts, err := loadFonts(loader.FS(), cfg.Fonts)
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	in := input.New()
	if unknown := in.LoadNamedMappings(cfg.Input.Keys, cfg.Input.MouseButtons); len(unknown) > 0 {
		log.Printf("Ignoring unknown input names: %v", unknown)
	}

	window := platform.NewWindow(cfg.Window)
	manager, err := game.New(window, game.NewSystemClock(), fonts, in, sample.CounterDescriptor{})
	if err != nil {
		log.Fatalf("Failed to create scene manager: %v", err)
	}

	if err := window.Run(manager.Update); err != nil {
		log.Fatal(err)
	}
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func loadFonts(fsys fs.FS, cfg config.FontsConfig) (*assets.Fonts, error) {
	if cfg.Main == "" {
		return assets.Default()
	}
	return assets.LoadFonts(fsys, cfg.Main)
}
