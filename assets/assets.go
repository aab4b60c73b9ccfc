package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"log"
	"path"

	"github.com/automoto/dave/config"
	"github.com/automoto/dave/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	animationFS embed.FS
)

// Level is a loaded level: the pre-rendered tile background plus the
// collision grid and spawn points.
type Level struct {
	Background *ebiten.Image
	Collision  *leveldata.CollisionData
	Name       string
	Width      int
	Height     int
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// LevelNames lists the embedded levels by stem name.
func LevelNames() ([]string, error) {
	return leveldata.LevelNames(assetFS, config.Level.Dir)
}

func levelPath(name string) string {
	return path.Join(config.Level.Dir, name+".tmx")
}

// LoadLevel parses the named level and renders its visible tile layers.
func (l *LevelLoader) LoadLevel(name string) (Level, error) {
	levelPath := levelPath(name)

	collision, err := leveldata.LoadCollisionData(assetFS, levelPath)
	if err != nil {
		return Level{}, err
	}

	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	level := Level{
		Collision: collision,
		Name:      name,
		Width:     collision.MapWidth(),
		Height:    collision.MapHeight(),
	}

	level.Background, err = renderBackground(levelMap)
	if err != nil {
		return Level{}, fmt.Errorf("render %s: %w", levelPath, err)
	}

	return level, nil
}

func (l *LevelLoader) MustLoadLevel(name string) Level {
	level, err := l.LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}

// renderBackground draws the collision layer, plus any tile layer with a
// true "render" property, into a single image.
func renderBackground(levelMap *tiled.Map) (*ebiten.Image, error) {
	background := ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)

	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	for i, layer := range levelMap.Layers {
		if layer.Name != leveldata.CollisionLayer && !layer.Properties.GetBool("render") {
			continue
		}
		if layer.Opacity <= 0 {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %q: %v", layer.Name, err)
			continue
		}

		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return background, nil
}

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *AnimationLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := animationFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetFrame returns a cached sub-image for a specific animation frame.
func (l *AnimationLoader) GetFrame(dir string, state config.StateID, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%v", dir, state.String(), srcRect)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.MustLoadImage(sheetPath(dir, state))
	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

var (
	animationLoader = NewAnimationLoader()
)

func sheetPath(dir string, state config.StateID) string {
	return fmt.Sprintf("images/spritesheets/%s/%s.png", dir, state.String())
}

func GetSheet(dir string, state config.StateID) *ebiten.Image {
	return animationLoader.MustLoadImage(sheetPath(dir, state))
}

func GetFrame(dir string, state config.StateID, srcRect image.Rectangle) *ebiten.Image {
	return animationLoader.GetFrame(dir, state, srcRect)
}

// PreloadAllAnimations loads every sheet and frame of a character up front
// so the first frames do not stall on texture uploads.
func PreloadAllAnimations(dir string, frameWidth, frameHeight int) {
	for state, def := range config.CharacterAnimations[dir] {
		_ = GetSheet(dir, state)
		for i := 0; i < def.Frames; i++ {
			x, y := i*frameWidth, def.Row*frameHeight
			_ = GetFrame(dir, state, image.Rect(x, y, x+frameWidth, y+frameHeight))
		}
	}
}
