package accelerator

import (
	"sync"

	"github.com/chewxy/math32"

	"mobilert/pkg/core"
	"mobilert/pkg/scene"
)

const gridDegenerateEps = 1e-8

// gridCell holds the indices of every primitive (by scene array and
// kind) whose bounding box overlaps this cell. A primitive can appear in
// more than one cell (spec.md §4.4.2).
type gridCell struct {
	triangles []int
	spheres   []int
	planes    []int
}

// RegularGrid is a uniform G×G×G grid over the scene bounds, traversed
// with the Amanatides-Woo 3DDDA algorithm (spec.md §4.4.2).
type RegularGrid struct {
	scene       *scene.Scene
	bounds      core.AABB
	resolution  int
	cellSize    core.Vec3
	invCellSize core.Vec3
	cells       []gridCell
}

// NewRegularGrid builds a RegularGrid of resolution^3 cells over s's
// bounds. Insertion of distinct primitives is parallelized across
// goroutines, with a mutex per cell guarding the append (spec.md §4.4.2;
// the per-cell mutex mirrors the original engine's RegularGrid cell
// insertion, see SPEC_FULL.md "Supplemented Features").
func NewRegularGrid(s *scene.Scene, resolution int) *RegularGrid {
	if resolution < 1 {
		resolution = 1
	}
	bounds := s.Bounds()
	size := bounds.Size()
	cellSize := core.NewVec3(
		safeDiv(size.X, float32(resolution)),
		safeDiv(size.Y, float32(resolution)),
		safeDiv(size.Z, float32(resolution)),
	)
	invCellSize := core.NewVec3(safeInv(cellSize.X), safeInv(cellSize.Y), safeInv(cellSize.Z))

	g := &RegularGrid{
		scene:       s,
		bounds:      bounds,
		resolution:  resolution,
		cellSize:    cellSize,
		invCellSize: invCellSize,
		cells:       make([]gridCell, resolution*resolution*resolution),
	}

	mus := make([]sync.Mutex, len(g.cells))
	var wg sync.WaitGroup

	insert := func(idx int, box core.AABB, overlaps func(core.AABB) bool, assign func(cellIdx int)) {
		lo, hi := g.candidateRange(box)
		for z := lo[2]; z <= hi[2]; z++ {
			for y := lo[1]; y <= hi[1]; y++ {
				for x := lo[0]; x <= hi[0]; x++ {
					if !overlaps(g.cellBounds(x, y, z)) {
						continue
					}
					cellIdx := g.cellIndex(x, y, z)
					mus[cellIdx].Lock()
					assign(cellIdx)
					mus[cellIdx].Unlock()
				}
			}
		}
	}

	for i := range s.Triangles {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			t := s.Triangles[i]
			insert(i, t.BoundingBox(), t.IntersectAABB, func(c int) {
				g.cells[c].triangles = append(g.cells[c].triangles, i)
			})
		}(i)
	}
	for i := range s.Spheres {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sp := s.Spheres[i]
			insert(i, sp.BoundingBox(), sp.IntersectAABB, func(c int) {
				g.cells[c].spheres = append(g.cells[c].spheres, i)
			})
		}(i)
	}
	for i := range s.Planes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := s.Planes[i]
			insert(i, p.BoundingBox(), p.IntersectAABB, func(c int) {
				g.cells[c].planes = append(g.cells[c].planes, i)
			})
		}(i)
	}
	wg.Wait()

	return g
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}

func safeInv(v float32) float32 {
	if v == 0 {
		return 0
	}
	return 1 / v
}

// candidateRange clamps (primMin-worldMin)*invCellSize and
// (primMax-worldMin)*invCellSize+1 to [0, G-1] per axis (spec.md
// §4.4.2). A zero-extent axis on the primitive's box still yields at
// least one candidate cell since floor(x) <= floor(x)+1.
func (g *RegularGrid) candidateRange(box core.AABB) (lo, hi [3]int) {
	min := box.Min.Sub(g.bounds.Min)
	max := box.Max.Sub(g.bounds.Min)
	minC := [3]float32{min.X, min.Y, min.Z}
	maxC := [3]float32{max.X, max.Y, max.Z}
	inv := [3]float32{g.invCellSize.X, g.invCellSize.Y, g.invCellSize.Z}
	for axis := 0; axis < 3; axis++ {
		lo[axis] = clampIdx(int(math32.Floor(minC[axis]*inv[axis])), g.resolution)
		hi[axis] = clampIdx(int(math32.Floor(maxC[axis]*inv[axis]))+1, g.resolution)
	}
	return lo, hi
}

func clampIdx(v, resolution int) int {
	if v < 0 {
		return 0
	}
	if v > resolution-1 {
		return resolution - 1
	}
	return v
}

func (g *RegularGrid) cellIndex(x, y, z int) int {
	return x + y*g.resolution + z*g.resolution*g.resolution
}

func (g *RegularGrid) cellBounds(x, y, z int) core.AABB {
	min := core.NewVec3(
		g.bounds.Min.X+float32(x)*g.cellSize.X,
		g.bounds.Min.Y+float32(y)*g.cellSize.Y,
		g.bounds.Min.Z+float32(z)*g.cellSize.Z,
	)
	max := core.NewVec3(min.X+g.cellSize.X, min.Y+g.cellSize.Y, min.Z+g.cellSize.Z)
	return core.NewAABB(min, max)
}

// Trace walks the grid with 3DDDA, returning the nearest hit.
func (g *RegularGrid) Trace(isect core.Intersection, ray core.Ray) core.Intersection {
	return g.walk(isect, ray, false)
}

// ShadowTrace walks the grid, exiting on any hit closer than the
// incoming intersection's length.
func (g *RegularGrid) ShadowTrace(isect core.Intersection, ray core.Ray) core.Intersection {
	return g.walk(isect, ray, true)
}

type ddaState struct {
	idx    [3]int
	step   [3]int
	out    [3]int
	tMax   [3]float32
	tDelta [3]float32
}

func (g *RegularGrid) walk(isect core.Intersection, ray core.Ray, shadow bool) core.Intersection {
	if !g.bounds.Hit(ray, 0, core.InfDistance) {
		return isect
	}

	s := g.setupDDA(ray)

	for {
		if g.testCell(s.idx[0], s.idx[1], s.idx[2], ray, &isect, shadow) && shadow {
			return isect
		}

		axis := 0
		if s.tMax[1] < s.tMax[axis] {
			axis = 1
		}
		if s.tMax[2] < s.tMax[axis] {
			axis = 2
		}

		if isect.Length < s.tMax[axis] && isect.Length < core.InfDistance {
			return isect
		}

		s.idx[axis] += s.step[axis]
		if s.idx[axis] == s.out[axis] {
			return isect
		}
		s.tMax[axis] += s.tDelta[axis]
	}
}

// setupDDA initializes the Amanatides-Woo traversal state: the
// containing cell, per-axis step direction, the out-of-grid sentinel,
// the distance to the next plane crossing (tMax) and the per-axis
// crossing interval (tDelta). Degenerate-direction axes (|dir| < eps)
// never step (spec.md §4.4.2).
func (g *RegularGrid) setupDDA(ray core.Ray) ddaState {
	entryT := float32(0)
	if !g.bounds.Contains(core.NewAABB(ray.Origin, ray.Origin)) {
		entryT = entryDistance(g.bounds, ray)
	}
	entry := ray.At(entryT)

	rel := entry.Sub(g.bounds.Min)
	relC := [3]float32{rel.X, rel.Y, rel.Z}
	invC := [3]float32{g.invCellSize.X, g.invCellSize.Y, g.invCellSize.Z}
	dirC := [3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	minC := [3]float32{g.bounds.Min.X, g.bounds.Min.Y, g.bounds.Min.Z}
	cellC := [3]float32{g.cellSize.X, g.cellSize.Y, g.cellSize.Z}
	originC := [3]float32{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}

	var s ddaState
	for axis := 0; axis < 3; axis++ {
		s.idx[axis] = clampIdx(int(math32.Floor(relC[axis]*invC[axis])), g.resolution)

		if math32.Abs(dirC[axis]) < gridDegenerateEps {
			s.step[axis] = 0
			s.out[axis] = -2 // unreachable sentinel; this axis never steps
			s.tMax[axis] = core.InfDistance
			s.tDelta[axis] = core.InfDistance
			continue
		}

		if dirC[axis] > 0 {
			s.step[axis] = 1
			s.out[axis] = g.resolution
			cb := minC[axis] + float32(s.idx[axis]+1)*cellC[axis]
			s.tMax[axis] = (cb - originC[axis]) / dirC[axis]
		} else {
			s.step[axis] = -1
			s.out[axis] = -1
			cb := minC[axis] + float32(s.idx[axis])*cellC[axis]
			s.tMax[axis] = (cb - originC[axis]) / dirC[axis]
		}
		s.tDelta[axis] = math32.Abs(cellC[axis] / dirC[axis])
	}
	return s
}

// entryDistance returns the ray's entry distance into box, assuming the
// ray already hits it.
func entryDistance(box core.AABB, ray core.Ray) float32 {
	tMin := float32(0)
	for axis := 0; axis < 3; axis++ {
		dir := core.Axis(ray.Direction, axis)
		if dir == 0 {
			continue
		}
		origin := core.Axis(ray.Origin, axis)
		min := core.Axis(box.Min, axis)
		max := core.Axis(box.Max, axis)
		invDir := 1 / dir
		t1 := (min - origin) * invDir
		t2 := (max - origin) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
	}
	if tMin < 0 {
		return 0
	}
	return tMin
}

func (g *RegularGrid) testCell(x, y, z int, ray core.Ray, isect *core.Intersection, shadow bool) bool {
	if x < 0 || y < 0 || z < 0 || x >= g.resolution || y >= g.resolution || z >= g.resolution {
		return false
	}
	cell := g.cells[g.cellIndex(x, y, z)]
	hit := false
	for _, i := range cell.triangles {
		ref := core.PrimitiveRef{Kind: core.KindTriangle, Index: i, Valid: true}
		if g.scene.Triangles[i].Intersect(ray, isect, ref) {
			hit = true
			if shadow {
				return true
			}
		}
	}
	for _, i := range cell.spheres {
		ref := core.PrimitiveRef{Kind: core.KindSphere, Index: i, Valid: true}
		if g.scene.Spheres[i].Intersect(ray, isect, ref) {
			hit = true
			if shadow {
				return true
			}
		}
	}
	for _, i := range cell.planes {
		ref := core.PrimitiveRef{Kind: core.KindPlane, Index: i, Valid: true}
		if g.scene.Planes[i].Intersect(ray, isect, ref) {
			hit = true
			if shadow {
				return true
			}
		}
	}
	return hit
}

var _ Accelerator = (*RegularGrid)(nil)
