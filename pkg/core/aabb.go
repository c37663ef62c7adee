package core

// AABB is an axis-aligned bounding box with an inclusive minimum and
// maximum corner. A valid AABB satisfies max >= min element-wise and
// max - min != 0 on at least one axis (spec.md §3). Boxes are not padded
// on construction: a flat primitive such as an axis-aligned triangle
// yields a box with zero extent on that axis.
type AABB struct {
	Min, Max Vec3
}

// NewAABB builds an AABB from explicit corners.
func NewAABB(min, max Vec3) AABB { return AABB{Min: min, Max: max} }

// NewAABBFromPoints returns the smallest AABB containing every point.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = Min(min, p)
		max = Max(max, p)
	}
	return AABB{Min: min, Max: max}
}

// Pad expands a degenerate axis (max == min) by amount on both sides.
func (b AABB) Pad(amount float32) AABB {
	size := b.Max.Sub(b.Min)
	min, max := b.Min, b.Max
	if size.X == 0 {
		min.X -= amount
		max.X += amount
	}
	if size.Y == 0 {
		min.Y -= amount
		max.Y += amount
	}
	if size.Z == 0 {
		min.Z -= amount
		max.Z += amount
	}
	return AABB{Min: min, Max: max}
}

// Union returns the AABB bounding both a and b. Union(a, a) == a and
// Union(a, b) contains both a and b (spec.md §8 "AABB union law").
func (a AABB) Union(b AABB) AABB {
	return AABB{Min: Min(a.Min, b.Min), Max: Max(a.Max, b.Max)}
}

// Contains reports whether this AABB fully contains other.
func (a AABB) Contains(other AABB) bool {
	return a.Min.X <= other.Min.X && a.Min.Y <= other.Min.Y && a.Min.Z <= other.Min.Z &&
		a.Max.X >= other.Max.X && a.Max.Y >= other.Max.Y && a.Max.Z >= other.Max.Z
}

// Center returns the AABB's centroid.
func (a AABB) Center() Vec3 {
	return a.Min.Add(a.Max).Scale(0.5)
}

// Size returns the per-axis extent.
func (a AABB) Size() Vec3 {
	return a.Max.Sub(a.Min)
}

// SurfaceArea returns the total surface area of the box, used by the
// BVH's SAH split cost (spec.md §4.4.3).
func (a AABB) SurfaceArea() float32 {
	s := a.Size()
	return 2 * (s.X*s.Y + s.Y*s.Z + s.Z*s.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent.
func (a AABB) LongestAxis() int {
	s := a.Size()
	if s.X > s.Y && s.X > s.Z {
		return 0
	}
	if s.Y > s.Z {
		return 1
	}
	return 2
}

// Axis returns the coordinate of v along the given axis (0=X,1=Y,2=Z).
func Axis(v Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Hit performs the slab test for ray/box intersection, returning whether
// the ray intersects the box within [tMin, tMax].
func (a AABB) Hit(ray Ray, tMin, tMax float32) bool {
	for axis := 0; axis < 3; axis++ {
		origin := Axis(ray.Origin, axis)
		dir := Axis(ray.Direction, axis)
		min := Axis(a.Min, axis)
		max := Axis(a.Max, axis)

		if dir == 0 {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		invDir := 1 / dir
		t1 := (min - origin) * invDir
		t2 := (max - origin) * invDir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return false
		}
	}
	return true
}
