// Package leveldata provides TMX level parsing for the collision grid and the
// player spawn. It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// CollisionLayer is the tile layer whose non-empty cells are solid.
const CollisionLayer = "Tile Layer 1"

// SpawnLayer is the optional object group holding the player spawn.
const SpawnLayer = "PlayerSpawn"

// CollisionData holds the collision-relevant data parsed from a TMX file.
type CollisionData struct {
	// Solid is the row-major collision mask, Cols*Rows long.
	Solid       []bool
	Cols        int
	Rows        int
	TileWidth   int
	TileHeight  int
	SpawnPoints []SpawnPoint
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// MapWidth returns the map width in pixels.
func (d *CollisionData) MapWidth() int {
	return d.Cols * d.TileWidth
}

// MapHeight returns the map height in pixels.
func (d *CollisionData) MapHeight() int {
	return d.Rows * d.TileHeight
}

// Spawn returns the lowest indexed spawn point, or fallback when the level
// defines none.
func (d *CollisionData) Spawn(fallbackX, fallbackY float64) (float64, float64) {
	if len(d.SpawnPoints) == 0 {
		return fallbackX, fallbackY
	}
	best := d.SpawnPoints[0]
	for _, sp := range d.SpawnPoints[1:] {
		if sp.Index < best.Index {
			best = sp
		}
	}
	return best.X, best.Y
}
