// Package tileworld is the collision world the player moves through: a fixed
// grid of solid tiles stored in a resolv space, plus the dynamic actors that
// are swept against it one axis at a time.
// It has no dependencies on ebitengine or donburi's ECS.
package tileworld

import (
	"math"

	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Resolv tags for objects stored in the space
const (
	TagSolid = "solid"
	TagActor = "actor"
)

// epsilon absorbs float drift when deciding whether a solid lies ahead of an
// actor or already overlaps it.
const epsilon = 1e-6

// Tile is the collision value of a single grid cell.
type Tile int

const (
	Empty Tile = iota
	Solid
)

// Actor is an opaque handle to a dynamic collider registered with a World.
type Actor int

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether the two rectangles share any area. Touching edges
// do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

type World struct {
	space  *resolv.Space
	grid   []Tile
	cols   int
	rows   int
	cellW  float64
	cellH  float64
	solids []*resolv.Object
	actors []*resolv.Object
}

// Build creates a world from a row-major grid of cols*rows tiles. Missing
// trailing cells are treated as empty. The grid is copied and never mutated
// afterwards.
func Build(grid []Tile, cellW, cellH float64, cols, rows int) *World {
	cols = max(cols, 0)
	rows = max(rows, 0)
	cellW = math.Max(cellW, 1)
	cellH = math.Max(cellH, 1)

	w := &World{
		space: resolv.NewSpace(
			int(math.Ceil(float64(cols)*cellW)),
			int(math.Ceil(float64(rows)*cellH)),
			int(math.Ceil(cellW)),
			int(math.Ceil(cellH)),
		),
		grid:  make([]Tile, cols*rows),
		cols:  cols,
		rows:  rows,
		cellW: cellW,
		cellH: cellH,
	}
	copy(w.grid, grid)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			index := row*cols + col
			if w.grid[index] != Solid {
				continue
			}
			x, y := float64(col)*cellW, float64(row)*cellH
			obj := resolv.NewObject(x, y, cellW, cellH, TagSolid)
			obj.Data = index
			w.space.Add(obj)
			w.solids = append(w.solids, obj)
		}
	}

	return w
}

// AddActor registers a dynamic w x h collider at pos and returns its handle.
func (w *World) AddActor(pos dmath.Vec2, width, height int) Actor {
	obj := resolv.NewObject(pos.X, pos.Y, float64(width), float64(height), TagActor)
	w.space.Add(obj)
	w.actors = append(w.actors, obj)
	handle := Actor(len(w.actors) - 1)
	obj.Data = handle
	return handle
}

// ActorPos returns the top-left corner of the actor's collider.
func (w *World) ActorPos(a Actor) dmath.Vec2 {
	obj := w.actor(a)
	if obj == nil {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: obj.X, Y: obj.Y}
}

func (w *World) ActorSize(a Actor) (float64, float64) {
	obj := w.actor(a)
	if obj == nil {
		return 0, 0
	}
	return obj.W, obj.H
}

// ResizeActor changes the actor's collider size. The top-left corner stays
// put, so a larger box may start out overlapping solids.
func (w *World) ResizeActor(a Actor, width, height int) {
	obj := w.actor(a)
	if obj == nil {
		return
	}
	obj.W, obj.H = float64(width), float64(height)
	obj.Update()
}

// ProbeOverlap reports whether the actor's box, offset by (dx, dy), overlaps
// any solid tile. The actor does not move.
func (w *World) ProbeOverlap(a Actor, dx, dy float64) bool {
	obj := w.actor(a)
	if obj == nil {
		return false
	}
	return len(overlapping(obj, dx, dy)) > 0
}

// CollideCheck reports whether the actor's box placed at pos would overlap a
// solid tile.
func (w *World) CollideCheck(a Actor, pos dmath.Vec2) bool {
	obj := w.actor(a)
	if obj == nil {
		return false
	}
	return len(overlapping(obj, pos.X-obj.X, pos.Y-obj.Y)) > 0
}

// MoveX moves the actor horizontally by dx, stopping flush against the first
// solid tile in the way. It returns true when the move was blocked.
func (w *World) MoveX(a Actor, dx float64) bool {
	obj := w.actor(a)
	if obj == nil || dx == 0 {
		return false
	}
	defer obj.Update()

	step := w.maxStep(w.cellW, obj.W)
	for remaining := dx; remaining != 0; {
		d := clamp(remaining, -step, step)
		remaining -= d
		x, blocked := w.sweepX(obj, d)
		obj.X = x
		if blocked {
			return true
		}
	}
	return false
}

// MoveY is MoveX for the vertical axis.
func (w *World) MoveY(a Actor, dy float64) bool {
	obj := w.actor(a)
	if obj == nil || dy == 0 {
		return false
	}
	defer obj.Update()

	step := w.maxStep(w.cellH, obj.H)
	for remaining := dy; remaining != 0; {
		d := clamp(remaining, -step, step)
		remaining -= d
		y, blocked := w.sweepY(obj, d)
		obj.Y = y
		if blocked {
			return true
		}
	}
	return false
}

// Solid reports whether the grid cell at (col, row) is solid. Cells outside
// the grid are empty.
func (w *World) Solid(col, row int) bool {
	if col < 0 || row < 0 || col >= w.cols || row >= w.rows {
		return false
	}
	return w.grid[row*w.cols+col] == Solid
}

// Solids returns the rectangles of every solid tile, in grid order.
func (w *World) Solids() []Rect {
	rects := make([]Rect, 0, len(w.solids))
	for _, s := range w.solids {
		rects = append(rects, rectOf(s))
	}
	return rects
}

func (w *World) Cols() int { return w.cols }

func (w *World) Rows() int { return w.rows }

func (w *World) CellSize() (float64, float64) { return w.cellW, w.cellH }

func (w *World) actor(a Actor) *resolv.Object {
	if a < 0 || int(a) >= len(w.actors) {
		return nil
	}
	return w.actors[a]
}

// sweepX returns the x the object reaches when travelling d along the x
// axis and whether a solid stopped it early. Solids the object already
// overlaps are ignored so an embedded actor can still walk out.
func (w *World) sweepX(obj *resolv.Object, d float64) (float64, bool) {
	move, blocked := d, false
	for _, hit := range sweepChecks(obj, d+math.Copysign(1, d), 0, 0, 1) {
		s := hit.solid
		if s.Y >= obj.Y+obj.H || s.Y+s.H <= obj.Y {
			continue
		}
		if d > 0 && s.X < obj.X+obj.W-epsilon || d < 0 && s.X+s.W > obj.X+epsilon {
			continue
		}
		if contact := hit.check.ContactWithObject(s).X(); math.Abs(contact) < math.Abs(move) {
			move, blocked = contact, true
		}
	}
	return obj.X + move, blocked
}

func (w *World) sweepY(obj *resolv.Object, d float64) (float64, bool) {
	move, blocked := d, false
	for _, hit := range sweepChecks(obj, 0, 1, d+math.Copysign(1, d), 0) {
		s := hit.solid
		if s.X >= obj.X+obj.W || s.X+s.W <= obj.X {
			continue
		}
		if d > 0 && s.Y < obj.Y+obj.H-epsilon || d < 0 && s.Y+s.H > obj.Y+epsilon {
			continue
		}
		if contact := hit.check.ContactWithObject(s).Y(); math.Abs(contact) < math.Abs(move) {
			move, blocked = contact, true
		}
	}
	return obj.Y + move, blocked
}

type sweepHit struct {
	solid *resolv.Object
	check *resolv.Collision
}

// sweepChecks runs obj.Check at (dx0, dy0) and at (dx0+dx1, dy0+dy1) and
// returns each solid found with the collision that reported it. Check's
// cell bounds stop one unit short of the far edges; the second query covers
// that strip on the axis perpendicular to the move.
func sweepChecks(obj *resolv.Object, dx0, dx1, dy0, dy1 float64) []sweepHit {
	var hits []sweepHit
	for _, off := range [2][2]float64{{dx0, dy0}, {dx0 + dx1, dy0 + dy1}} {
		check := obj.Check(off[0], off[1], TagSolid)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(TagSolid) {
			if !hasSolid(hits, o) {
				hits = append(hits, sweepHit{solid: o, check: check})
			}
		}
	}
	return hits
}

// overlapping returns the solids that overlap obj's box displaced by
// (dx, dy). Check clamps non-zero offsets to at least one unit and trims a
// unit off the far edges, so it is asked one unit to either side on both
// axes and the results are filtered exactly.
func overlapping(obj *resolv.Object, dx, dy float64) []*resolv.Object {
	box := Rect{X: obj.X + dx, Y: obj.Y + dy, W: obj.W, H: obj.H}
	var found []*resolv.Object
	for _, ox := range [...]float64{-1, 0, 1} {
		for _, oy := range [...]float64{-1, 0, 1} {
			check := obj.Check(dx+ox, dy+oy, TagSolid)
			if check == nil {
				continue
			}
			for _, o := range check.ObjectsByTags(TagSolid) {
				if !contains(found, o) && box.Overlaps(rectOf(o)) {
					found = append(found, o)
				}
			}
		}
	}
	return found
}

// maxStep bounds a single sweep so the one-unit padded check ahead of the
// actor still starts inside it and no tile is skipped.
func (w *World) maxStep(cell, size float64) float64 {
	step := cell
	if size > 0 && size < cell {
		step = size
	}
	return math.Max(step-2, 1)
}

func rectOf(o *resolv.Object) Rect {
	return Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

func hasSolid(hits []sweepHit, o *resolv.Object) bool {
	for _, hit := range hits {
		if hit.solid == o {
			return true
		}
	}
	return false
}

func contains(objs []*resolv.Object, o *resolv.Object) bool {
	for _, existing := range objs {
		if existing == o {
			return true
		}
	}
	return false
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
