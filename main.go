package main

import (
	"flag"
	"image"
	"log"
	"slices"
	"strings"

	"github.com/automoto/dave/assets"
	"github.com/automoto/dave/config"
	"github.com/automoto/dave/fonts"
	"github.com/automoto/dave/prefabs"
	"github.com/automoto/dave/scenes"
	"github.com/automoto/dave/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene Scene) {
	g.scene = scene
}

func NewGame(levelName string, watcher *prefabs.Watcher) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.ChangeScene(scenes.NewPlatformerScene(levelName, watcher))
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "Start with the debug overlay visible")
	watch := flag.Bool("watch", false, "Reload prefabs from disk when they change")
	levelName := flag.String("level", config.Level.Default, "Level to load from assets/levels")
	flag.Parse()

	config.Debug.ShowOverlay = *debug
	config.Debug.WatchPrefabs = *watch

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatalf("Failed to load %s: %v", prefabs.PlayerFile, err)
	}
	config.ApplyPlayerSpec(spec)

	names, err := assets.LevelNames()
	if err != nil {
		log.Fatalf("Failed to list levels: %v", err)
	}
	if !slices.Contains(names, *levelName) {
		log.Fatalf("Unknown level %q (available: %s)", *levelName, strings.Join(names, ", "))
	}

	if err := fonts.LoadFontWithSize(fonts.Debug, goregular.TTF, config.Debug.FontSize); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	var watcher *prefabs.Watcher
	if config.Debug.WatchPrefabs {
		watcher, err = prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", prefabs.Dir, err)
		} else {
			defer watcher.Close()
			log.Printf("Watching %s for changes", prefabs.Dir)
		}
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*config.C.WindowScale, config.C.Height*config.C.WindowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(*levelName, watcher)); err != nil {
		log.Fatal(err)
	}
}
