package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config's fields in their YAML-facing form: string
// enum names instead of the int-backed ShaderKind/AcceleratorKind, and
// no OutputBitmap (that buffer is allocated by the host, never loaded
// from a file).
type fileConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Threads int `yaml:"threads"`

	Shader      string `yaml:"shader"`
	SceneIndex  int    `yaml:"scene_index"`
	Accelerator string `yaml:"accelerator"`

	SamplesPixel int `yaml:"samples_pixel"`
	SamplesLight int `yaml:"samples_light"`
	Repeats      int `yaml:"repeats"`

	ObjFilePath string `yaml:"obj_file"`
	MtlFilePath string `yaml:"mtl_file"`
	CamFilePath string `yaml:"cam_file"`
}

// LoadYAML reads a YAML config file and layers it on top of base: any
// field present in the file overrides base's value for it, fields the
// file omits keep base's value (SPEC_FULL.md "Ambient Stack": YAML
// config file layered under flag overrides). base is typically
// Default(hardwareConcurrency).
func LoadYAML(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, Wrap(KindLoaderFailure, err, "config: reading yaml file")
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, Wrap(KindLoaderFailure, err, "config: parsing yaml file")
	}

	out := base
	if fc.Width != 0 {
		out.Width = fc.Width
	}
	if fc.Height != 0 {
		out.Height = fc.Height
	}
	if fc.Threads != 0 {
		out.Threads = fc.Threads
	}
	if fc.Shader != "" {
		kind, ok := ParseShaderKind(fc.Shader)
		if !ok {
			return Config{}, NewError(KindInvalidArgument, "config: unknown shader name "+fc.Shader)
		}
		out.Shader = kind
	}
	if fc.SceneIndex != 0 {
		out.SceneIndex = fc.SceneIndex
	}
	if fc.Accelerator != "" {
		kind, ok := ParseAcceleratorKind(fc.Accelerator)
		if !ok {
			return Config{}, NewError(KindInvalidArgument, "config: unknown accelerator name "+fc.Accelerator)
		}
		out.Accelerator = kind
	}
	if fc.SamplesPixel != 0 {
		out.SamplesPixel = fc.SamplesPixel
	}
	if fc.SamplesLight != 0 {
		out.SamplesLight = fc.SamplesLight
	}
	if fc.Repeats != 0 {
		out.Repeats = fc.Repeats
	}
	if fc.ObjFilePath != "" {
		out.ObjFilePath = fc.ObjFilePath
	}
	if fc.MtlFilePath != "" {
		out.MtlFilePath = fc.MtlFilePath
	}
	if fc.CamFilePath != "" {
		out.CamFilePath = fc.CamFilePath
	}

	return out, nil
}
