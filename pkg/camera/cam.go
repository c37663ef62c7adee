package camera

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"mobilert/pkg/core"
)

// Definition is the parsed form of a .cam file (spec.md §6): a camera
// type tag plus the fields needed to build any of the concrete camera
// variants. Unknown or malformed lines are skipped rather than rejected,
// matching the original loader's leniency (SPEC_FULL.md "Supplemented
// Features").
type Definition struct {
	Type     string
	Position core.Vec3
	LookAt   core.Vec3
	Up       core.Vec3
	HFovDeg  float32
	VFovDeg  float32
	HasFov   bool
}

// LoadCam parses a .cam file's line grammar: a single-character key, a
// space, then a space-separated value list. The position's x component
// is inverted on load (spec.md §6 — MobileRT uses left-handed
// coordinates).
func LoadCam(r io.Reader) (Definition, error) {
	var def Definition
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		key, values := fields[0], fields[1:]

		switch key {
		case "t":
			if len(values) >= 1 {
				def.Type = values[0]
			}
		case "p":
			v, err := parseVec3(values)
			if err != nil {
				continue
			}
			v.X = -v.X
			def.Position = v
		case "l":
			if v, err := parseVec3(values); err == nil {
				def.LookAt = v
			}
		case "u":
			if v, err := parseVec3(values); err == nil {
				def.Up = v
			}
		case "f":
			if len(values) >= 2 {
				h, errH := strconv.ParseFloat(values[0], 32)
				v, errV := strconv.ParseFloat(values[1], 32)
				if errH == nil && errV == nil {
					def.HFovDeg = float32(h)
					def.VFovDeg = float32(v)
					def.HasFov = true
				}
			}
		default:
			// unrecognized key: skip, per the original loader's leniency
		}
	}
	if err := scanner.Err(); err != nil {
		return Definition{}, errors.Wrap(err, "camera: reading .cam file")
	}
	if def.Type == "" {
		return Definition{}, errors.New("camera: .cam file has no camera type line")
	}
	return def, nil
}

func parseVec3(values []string) (core.Vec3, error) {
	if len(values) < 3 {
		return core.Vec3{}, errors.New("camera: expected 3 values")
	}
	x, err := strconv.ParseFloat(values[0], 32)
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := strconv.ParseFloat(values[1], 32)
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := strconv.ParseFloat(values[2], 32)
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(float32(x), float32(y), float32(z)), nil
}

// degToRad converts degrees to radians.
func degToRad(deg float32) float32 {
	return deg * (math32.Pi / 180)
}

// BuildPerspective constructs a Perspective camera from def, scaling the
// horizontal FOV by the image aspect ratio as spec.md §6 requires.
func BuildPerspective(def Definition, imageWidth, imageHeight int) *Perspective {
	aspect := float32(imageWidth) / float32(imageHeight)
	hFov := degToRad(def.HFovDeg) * aspect
	vFov := degToRad(def.VFovDeg)
	return NewPerspective(def.Position, def.LookAt, def.Up, hFov, vFov)
}
