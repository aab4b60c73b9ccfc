package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadCollisionData parses a TMX file and returns its collision mask (from
// CollisionLayer) and player spawn points. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		Solid:      make([]bool, levelMap.Width*levelMap.Height),
		Cols:       levelMap.Width,
		Rows:       levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != CollisionLayer {
			continue
		}
		found = true
		for i, tile := range layer.Tiles {
			if i >= len(data.Solid) {
				break
			}
			data.Solid[i] = tile != nil && !tile.IsNil()
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: layer %q not found", tmxPath, CollisionLayer)
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnLayer {
			continue
		}
		for _, o := range og.Objects {
			data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
				X:     o.X,
				Y:     o.Y,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// LevelNames lists the stem names of all .tmx files in levelsDir, sorted.
func LevelNames(fsys fs.FS, levelsDir string) ([]string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	names := make([]string, 0, len(matches))
	for _, path := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(path), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}
