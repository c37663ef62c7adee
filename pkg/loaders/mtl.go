package loaders

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"mobilert/pkg/config"
	"mobilert/pkg/core"
)

// LoadMTL parses a Wavefront MTL file into a map from material name to
// core.Material: Kd/Ks/Tf map to the diffuse, specular and transmission
// coefficients, Ke to emission, Ni to the refractive index, and map_Kd
// loads a diffuse texture relative to the MTL file's directory (spec.md
// §3, §6).
func LoadMTL(path string) (map[string]core.Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, config.Wrap(config.KindLoaderFailure, err, "loaders: opening mtl file")
	}
	defer f.Close()

	materials := map[string]core.Material{}
	var name string
	mat := core.NewMaterial(core.Vec3{}, core.Vec3{}, core.Vec3{}, core.Vec3{})

	flush := func() {
		if name != "" {
			materials[name] = mat
		}
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "newmtl":
			flush()
			name = strings.Join(fields[1:], " ")
			mat = core.NewMaterial(core.Vec3{}, core.Vec3{}, core.Vec3{}, core.Vec3{})
		case "Kd":
			if v, err := parseVec3Fields(fields[1:]); err == nil {
				mat.Kd = v
			}
		case "Ks":
			if v, err := parseVec3Fields(fields[1:]); err == nil {
				mat.Ks = v
			}
		case "Tf":
			if v, err := parseVec3Fields(fields[1:]); err == nil {
				mat.Kt = v
			}
		case "Ke":
			if v, err := parseVec3Fields(fields[1:]); err == nil {
				mat.Le = v
			}
		case "Ni":
			if len(fields) > 1 {
				if v, err := parseVec3Fields([]string{fields[1], "0", "0"}); err == nil {
					mat.RefractiveIdx = v.X
				}
			}
		case "map_Kd":
			if len(fields) > 1 {
				texPath := filepath.Join(filepath.Dir(path), fields[len(fields)-1])
				tex, err := LoadTexture(texPath)
				if err != nil {
					return nil, err
				}
				mat.Texture = tex
			}
		default:
			// Illumination models, Ns, Tr and other directives this
			// loader doesn't model are ignored.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, config.Wrap(config.KindLoaderFailure, err, "loaders: reading mtl file")
	}
	flush()

	return materials, nil
}
