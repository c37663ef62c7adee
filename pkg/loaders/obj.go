// Package loaders implements a minimal Wavefront OBJ/MTL scene loader
// and texture ingestion (spec.md §6 "Scene geometry is supplied via an
// external OBJ loader"). It is grounded on the teacher's own text-format
// loaders (pkg/loaders/pbrt.go, pkg/loaders/ply.go): a line-oriented
// scanner, a small per-keyword switch, and tolerant skipping of
// directives the loader doesn't implement. It does not aim for OBJ-spec
// completeness (spec.md §1, §9 "full OBJ/MTL parsing fidelity" is listed
// as out of scope) — only what's needed to hand the core a valid Scene.
package loaders

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mobilert/pkg/config"
	"mobilert/pkg/core"
	"mobilert/pkg/geometry"
	"mobilert/pkg/scene"
)

// faceIndex is a single OBJ face corner: 1-based indices into the
// vertex/uv/normal tables, with 0 meaning "absent".
type faceIndex struct {
	v, vt, vn int
}

// LoadOBJ parses an OBJ file and its companion MTL file (if referenced
// or supplied separately via mtlPath) into a new Scene, flipping the X
// axis of every vertex on load (spec.md §6: "MobileRT uses left-handed
// coordinates"). Only triangle and polygon faces contribute geometry;
// OBJ groups, smoothing groups and line/point elements are ignored.
func LoadOBJ(objPath, mtlPath string) (*scene.Scene, error) {
	f, err := os.Open(objPath)
	if err != nil {
		return nil, config.Wrap(config.KindLoaderFailure, err, "loaders: opening obj file")
	}
	defer f.Close()

	s := scene.New()

	var positions []core.Vec3
	var normals []core.Vec3
	var uvs []core.Vec2
	materialIdx := map[string]int{}
	currentMaterial := -1
	triangleCount := 0

	applyMTL := func(path string) error {
		mats, err := LoadMTL(path)
		if err != nil {
			return err
		}
		for name, mat := range mats {
			materialIdx[name] = s.AddMaterial(mat)
		}
		return nil
	}

	if mtlPath != "" {
		if err := applyMTL(mtlPath); err != nil {
			return nil, err
		}
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVec3Fields(fields[1:])
			if err != nil {
				return nil, config.Wrap(config.KindLoaderFailure, err, "loaders: parsing vertex")
			}
			p.X = -p.X
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3Fields(fields[1:])
			if err != nil {
				return nil, config.Wrap(config.KindLoaderFailure, err, "loaders: parsing normal")
			}
			n.X = -n.X
			normals = append(normals, n)
		case "vt":
			uv, err := parseVec2Fields(fields[1:])
			if err != nil {
				return nil, config.Wrap(config.KindLoaderFailure, err, "loaders: parsing texcoord")
			}
			uvs = append(uvs, uv)
		case "mtllib":
			if mtlPath == "" && len(fields) > 1 {
				path := filepath.Join(filepath.Dir(objPath), fields[1])
				if err := applyMTL(path); err != nil {
					return nil, err
				}
			}
		case "usemtl":
			if len(fields) > 1 {
				if idx, ok := materialIdx[fields[1]]; ok {
					currentMaterial = idx
				} else {
					currentMaterial = -1
				}
			}
		case "f":
			corners := make([]faceIndex, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				fi, err := parseFaceIndex(tok, len(positions), len(uvs), len(normals))
				if err != nil {
					return nil, config.Wrap(config.KindLoaderFailure, err, "loaders: parsing face")
				}
				corners = append(corners, fi)
			}
			for i := 1; i+1 < len(corners); i++ {
				t, err := buildTriangle(positions, uvs, normals, corners[0], corners[i], corners[i+1], currentMaterial)
				if err != nil {
					return nil, config.Wrap(config.KindLoaderFailure, err, "loaders: building triangle")
				}
				s.AddTriangle(t)
				triangleCount++
			}
		default:
			// Groups, objects, smoothing groups and anything else this
			// loader doesn't model are skipped rather than rejected.
		}
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return nil, config.Wrap(config.KindLoaderFailure, err, "loaders: reading obj file")
	}

	if triangleCount == 0 {
		return nil, config.NewError(config.KindLoaderFailure, "loaders: obj file produced zero triangles")
	}

	return s, nil
}

func buildTriangle(positions []core.Vec3, uvs []core.Vec2, normals []core.Vec3, a, b, c faceIndex, materialIdx int) (geometry.Triangle, error) {
	pa, err := vertexAt(positions, a.v)
	if err != nil {
		return geometry.Triangle{}, err
	}
	pb, err := vertexAt(positions, b.v)
	if err != nil {
		return geometry.Triangle{}, err
	}
	pc, err := vertexAt(positions, c.v)
	if err != nil {
		return geometry.Triangle{}, err
	}

	t := geometry.NewTriangle(pa, pb, pc, materialIdx)

	if a.vn != 0 && b.vn != 0 && c.vn != 0 {
		na := normals[a.vn-1]
		nb := normals[b.vn-1]
		nc := normals[c.vn-1]
		t = t.WithNormals(na, nb, nc)
	}
	if a.vt != 0 && b.vt != 0 && c.vt != 0 {
		t = t.WithUVs(uvs[a.vt-1], uvs[b.vt-1], uvs[c.vt-1])
	}
	return t, nil
}

func vertexAt(positions []core.Vec3, idx int) (core.Vec3, error) {
	if idx < 1 || idx > len(positions) {
		return core.Vec3{}, errInvalidVertexIndex
	}
	return positions[idx-1], nil
}

var errInvalidVertexIndex = strconvError("loaders: face references an out-of-range vertex index")

type strconvError string

func (e strconvError) Error() string { return string(e) }

// parseFaceIndex parses one OBJ face token, which is v, v/vt, v//vn or
// v/vt/vn, and resolves negative (relative-to-end) indices against the
// current table sizes.
func parseFaceIndex(tok string, nv, nvt, nvn int) (faceIndex, error) {
	parts := strings.Split(tok, "/")
	var fi faceIndex
	var err error
	if fi.v, err = parseRelativeIndex(parts[0], nv); err != nil {
		return fi, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if fi.vt, err = parseRelativeIndex(parts[1], nvt); err != nil {
			return fi, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if fi.vn, err = parseRelativeIndex(parts[2], nvn); err != nil {
			return fi, err
		}
	}
	return fi, nil
}

func parseRelativeIndex(s string, count int) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return count + n + 1, nil
	}
	return n, nil
}

func parseVec3Fields(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, errInvalidVertexIndex
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(float32(x), float32(y), float32(z)), nil
}

func parseVec2Fields(fields []string) (core.Vec2, error) {
	if len(fields) < 2 {
		return core.Vec2{}, errInvalidVertexIndex
	}
	u, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return core.Vec2{}, err
	}
	v, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return core.Vec2{}, err
	}
	return core.NewVec2(float32(u), float32(v)), nil
}
