package accelerator

import (
	"sort"

	"mobilert/pkg/core"
	"mobilert/pkg/geometry"
)

// maxLeafSize is the leaf threshold of spec.md §4.4.3: a range with this
// many or fewer primitives is never split further.
const maxLeafSize = 2

// bvhStackDepth bounds the iterative build and traversal stacks. Going
// deeper is a programmer error (spec.md §4.4.3, "Failure semantics") —
// it means a scene deep enough to need more than 512 levels, which the
// SAH split should never produce for any realistic primitive count.
const bvhStackDepth = 512

// BVHNode is one entry in a BVH's flat node array (spec.md §3): an
// owning AABB, and either a leaf's first-primitive offset plus count, or
// an internal node's left-child index (the right child is always
// immediately adjacent).
type BVHNode struct {
	Box            core.AABB
	IndexOffset    int
	PrimitiveCount int // >0 marks a leaf
}

// BVH is a bounding volume hierarchy over a single primitive type,
// stored as one contiguous node array plus a reordered copy of the
// primitives (spec.md §4.4.3). Building one instance per primitive type
// instead of a single polymorphic tree avoids interface dispatch in the
// traversal's inner loop (spec.md §9 "Design Notes").
type BVH[T geometry.Primitive] struct {
	Nodes []BVHNode
	Prims []T
	Kind  core.PrimitiveKind
}

type bvhBuildRange struct {
	begin, end int
	nodeIndex  int
}

// NewBVH builds a BVH over a copy of prims, tagging every leaf hit with
// kind so the owning shader can stamp a PrimitiveRef back onto an
// Intersection. An empty input yields the single sentinel node
// described in spec.md §4.4.3's failure semantics.
func NewBVH[T geometry.Primitive](prims []T, kind core.PrimitiveKind) *BVH[T] {
	owned := make([]T, len(prims))
	copy(owned, prims)

	b := &BVH[T]{Prims: owned, Kind: kind}

	if len(owned) == 0 {
		b.Nodes = []BVHNode{{PrimitiveCount: 0, IndexOffset: 0}}
		return b
	}

	capacity := 2*len(owned) - 1
	if capacity < 1 {
		capacity = 1
	}
	nodes := make([]BVHNode, capacity)
	nextFree := 1

	var stack [bvhStackDepth]bvhBuildRange
	sp := 0
	stack[sp] = bvhBuildRange{begin: 0, end: len(owned), nodeIndex: 0}
	sp++

	for sp > 0 {
		sp--
		r := stack[sp]
		n := r.end - r.begin

		box := owned[r.begin].BoundingBox()
		for i := r.begin + 1; i < r.end; i++ {
			box = box.Union(owned[i].BoundingBox())
		}

		if n <= maxLeafSize {
			nodes[r.nodeIndex] = BVHNode{Box: box, IndexOffset: r.begin, PrimitiveCount: n}
			continue
		}

		axis := longestCentroidAxis(owned[r.begin:r.end])
		slice := owned[r.begin:r.end]
		sort.Slice(slice, func(i, j int) bool {
			return core.Axis(slice[i].BoundingBox().Center(), axis) < core.Axis(slice[j].BoundingBox().Center(), axis)
		})

		splitAt := sahSplit(slice)

		left := nextFree
		right := nextFree + 1
		nextFree += 2
		if right >= len(nodes) {
			grown := make([]BVHNode, right+1)
			copy(grown, nodes)
			nodes = grown
		}

		nodes[r.nodeIndex] = BVHNode{Box: box, IndexOffset: left, PrimitiveCount: 0}

		if sp+2 > bvhStackDepth {
			panic("accelerator: BVH build stack overflow")
		}
		stack[sp] = bvhBuildRange{begin: r.begin + splitAt, end: r.end, nodeIndex: right}
		sp++
		stack[sp] = bvhBuildRange{begin: r.begin, end: r.begin + splitAt, nodeIndex: left}
		sp++
	}

	b.Nodes = nodes[:nextFree]
	return b
}

// longestCentroidAxis returns the axis (0=x,1=y,2=z) along which the
// primitives' bounding-box centers spread the most. The spec leaves the
// split ordering to the implementer (§9 Open Question) and notes a
// longest-axis centroid sort as the principled choice; that is what this
// build does (see DESIGN.md).
func longestCentroidAxis[T geometry.Primitive](prims []T) int {
	var box core.AABB
	for i, p := range prims {
		c := p.BoundingBox().Center()
		if i == 0 {
			box = core.NewAABB(c, c)
			continue
		}
		box = box.Union(core.NewAABB(c, c))
	}
	return box.LongestAxis()
}

// sahSplit chooses the cut index that minimizes the surface-area
// heuristic cost over the already axis-sorted slice (spec.md §4.4.3):
// cost(i) = i*SA(left[i]) + (n-i)*SA(right[i]), ties preferring the
// earlier index. When the range is too small to leave maxLeafSize
// primitives on both sides, it falls back to a plain half split.
func sahSplit[T geometry.Primitive](sorted []T) int {
	n := len(sorted)
	if n-2*maxLeafSize < 1 {
		return n / 2
	}

	prefix := make([]core.AABB, n)
	suffix := make([]core.AABB, n)
	prefix[0] = sorted[0].BoundingBox()
	for i := 1; i < n; i++ {
		prefix[i] = prefix[i-1].Union(sorted[i].BoundingBox())
	}
	suffix[n-1] = sorted[n-1].BoundingBox()
	for i := n - 2; i >= 0; i-- {
		suffix[i] = suffix[i+1].Union(sorted[i].BoundingBox())
	}

	bestIdx := maxLeafSize
	bestCost := float32(-1)
	for i := maxLeafSize; i <= n-maxLeafSize; i++ {
		cost := float32(i)*prefix[i-1].SurfaceArea() + float32(n-i)*suffix[i].SurfaceArea()
		if bestCost < 0 || cost < bestCost {
			bestCost = cost
			bestIdx = i
		}
	}
	return bestIdx
}

// Trace walks the BVH iteratively with an explicit stack: both children
// of an internal node are pushed, the left one is popped first, and a
// node's box is tested against the ray when it is popped. Children are
// not ordered by their distance along the ray.
func (b *BVH[T]) Trace(isect core.Intersection, ray core.Ray) core.Intersection {
	return b.walk(isect, ray, false)
}

// ShadowTrace walks the BVH returning immediately on the first hit
// closer than the incoming intersection's length.
func (b *BVH[T]) ShadowTrace(isect core.Intersection, ray core.Ray) core.Intersection {
	return b.walk(isect, ray, true)
}

func (b *BVH[T]) walk(isect core.Intersection, ray core.Ray, shadow bool) core.Intersection {
	if len(b.Prims) == 0 {
		return isect
	}

	var stack [bvhStackDepth]int
	sp := 0
	stack[sp] = 0
	sp++

	for sp > 0 {
		sp--
		nodeIdx := stack[sp]
		node := b.Nodes[nodeIdx]

		if !node.Box.Hit(ray, 0, isect.Length) {
			continue
		}

		if node.PrimitiveCount > 0 {
			for i := node.IndexOffset; i < node.IndexOffset+node.PrimitiveCount; i++ {
				ref := core.PrimitiveRef{Kind: b.Kind, Index: i, Valid: true}
				if b.Prims[i].Intersect(ray, &isect, ref) && shadow {
					return isect
				}
			}
			continue
		}

		left := node.IndexOffset
		right := left + 1
		if sp+2 > bvhStackDepth {
			panic("accelerator: BVH traversal stack overflow")
		}
		stack[sp] = right
		sp++
		stack[sp] = left
		sp++
	}

	return isect
}

var (
	_ Accelerator = (*BVH[geometry.Triangle])(nil)
	_ Accelerator = (*BVH[geometry.Sphere])(nil)
	_ Accelerator = (*BVH[geometry.Plane])(nil)
)
