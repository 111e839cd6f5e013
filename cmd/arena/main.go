// Interactive viewer for the physics world: loads a YAML scene, draws every
// collider and contact, and hot reloads configuration and scene files.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/guiMendel/boteco-brawl-sub000/internal/config"
	"github.com/guiMendel/boteco-brawl-sub000/internal/world"
)

func main() {
	scenePath := flag.String("scene", "assets/scenes/arena.yaml", "scene file to load")
	configPath := flag.String("config", "assets/physics.yaml", "physics config file")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Arena: %v, using defaults", err)
		cfg = config.Default()
	}

	w, err := world.New(cfg)
	if err != nil {
		log.Fatalf("Arena: %v", err)
	}

	a := newArena(w, *scenePath, *configPath)
	if err := a.reloadScene(); err != nil {
		log.Fatalf("Arena: %v", err)
	}

	watcher, err := config.NewWatcher(filepath.Dir(*configPath), filepath.Dir(*scenePath))
	if err != nil {
		log.Printf("Arena: hot reload disabled: %v", err)
	} else {
		defer watcher.Close()
		a.watcher = watcher
	}

	a.Run()
}
