// Command mobilert is the CLI host binding for the MobileRT-Go core
// (spec.md §6): it parses a Config from flags (optionally layered over
// a YAML file), builds or loads a scene, renders it, and writes the
// result to a PNG file. Grounded on the teacher's root main.go (flag
// parsing, scene selection, timing output, PNG encoding), rebuilt on
// cobra/pflag per SPEC_FULL.md's "Ambient Stack" (both come from other
// pack repos; the teacher's own go.mod has no dependencies).
package main

import (
	"fmt"
	"image/png"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mobilert/internal/app"
	"mobilert/pkg/config"
	"mobilert/pkg/renderer"
)

// flagSet mirrors config.Config in flag-facing form: string enum names
// instead of the int-backed Kind types, shared by both subcommands.
type flagSet struct {
	configFile string

	width, height int
	threads       int
	shaderName    string
	acceleratorN  string
	sceneIndex    int
	samplesPixel  int
	samplesLight  int
	repeats       int

	objFile string
	mtlFile string
	camFile string

	output string
}

func registerFlags(fs *pflag.FlagSet, f *flagSet) {
	fs.StringVar(&f.configFile, "config", "", "YAML config file layered under these flags")
	fs.IntVar(&f.width, "width", 0, "image width (overrides config/default)")
	fs.IntVar(&f.height, "height", 0, "image height (overrides config/default)")
	fs.IntVar(&f.threads, "threads", 0, "worker goroutine count (default: number of CPUs)")
	fs.StringVar(&f.shaderName, "shader", "", "no_shadows|whitted|path_tracer|depth_map|diffuse_material")
	fs.StringVar(&f.acceleratorN, "accelerator", "", "naive|regular_grid|bvh")
	fs.IntVar(&f.sceneIndex, "scene", -1, "built-in scene index (0-3), or >=4 with --obj to load a file")
	fs.IntVar(&f.samplesPixel, "samples-pixel", 0, "samples per pixel")
	fs.IntVar(&f.samplesLight, "samples-light", 0, "samples per light per shade")
	fs.IntVar(&f.repeats, "repeats", 0, "number of full-frame repeats")
	fs.StringVar(&f.objFile, "obj", "", "OBJ scene file (scene index >= 4)")
	fs.StringVar(&f.mtlFile, "mtl", "", "MTL material file (optional, OBJ scenes)")
	fs.StringVar(&f.camFile, "cam", "", ".cam camera file (optional; overrides a demo scene's camera)")
	fs.StringVar(&f.output, "out", "render.png", "output PNG path")
}

// resolve builds a config.Config by starting from config.Default, then
// layering an optional YAML file, then layering any flags the user
// actually set (so an unset flag never clobbers a YAML-supplied value).
func (f *flagSet) resolve(cmd *cobra.Command) (config.Config, error) {
	base := config.Default(runtime.NumCPU())

	if f.configFile != "" {
		layered, err := config.LoadYAML(f.configFile, base)
		if err != nil {
			return config.Config{}, err
		}
		base = layered
	}

	changed := cmd.Flags().Changed
	if changed("width") {
		base.Width = f.width
	}
	if changed("height") {
		base.Height = f.height
	}
	if changed("threads") {
		base.Threads = f.threads
	}
	if changed("shader") {
		kind, ok := config.ParseShaderKind(f.shaderName)
		if !ok {
			return config.Config{}, fmt.Errorf("mobilert: unknown --shader %q", f.shaderName)
		}
		base.Shader = kind
	}
	if changed("accelerator") {
		kind, ok := config.ParseAcceleratorKind(f.acceleratorN)
		if !ok {
			return config.Config{}, fmt.Errorf("mobilert: unknown --accelerator %q", f.acceleratorN)
		}
		base.Accelerator = kind
	}
	if changed("scene") {
		base.SceneIndex = f.sceneIndex
	}
	if changed("samples-pixel") {
		base.SamplesPixel = f.samplesPixel
	}
	if changed("samples-light") {
		base.SamplesLight = f.samplesLight
	}
	if changed("repeats") {
		base.Repeats = f.repeats
	}
	if changed("obj") {
		base.ObjFilePath = f.objFile
	}
	if changed("mtl") {
		base.MtlFilePath = f.mtlFile
	}
	if changed("cam") {
		base.CamFilePath = f.camFile
	}

	base.OutputBitmap = make([]uint32, base.Width*base.Height)
	return base, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mobilert",
		Short: "MobileRT-Go: a portable offline ray tracer",
	}

	var renderFlags flagSet
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single frame and write it to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := renderFlags.resolve(cmd)
			if err != nil {
				return err
			}
			return runRender(cfg, renderFlags.output)
		},
	}
	registerFlags(renderCmd.Flags(), &renderFlags)
	root.AddCommand(renderCmd)

	var benchFlags flagSet
	var benchRuns int
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Render the same frame multiple times and report timing",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := benchFlags.resolve(cmd)
			if err != nil {
				return err
			}
			return runBench(cfg, benchRuns)
		},
	}
	registerFlags(benchCmd.Flags(), &benchFlags)
	benchCmd.Flags().IntVar(&benchRuns, "runs", 3, "number of timed render_frame invocations")
	root.AddCommand(benchCmd)

	return root
}

func runRender(cfg config.Config, outputPath string) error {
	logger := renderer.NewDefaultLogger()
	start := time.Now()
	stats, err := app.Render(cfg, logger)
	if err != nil {
		return err
	}
	fmt.Printf("rendered %dx%d in %v (%d samples traced, stopped=%v)\n",
		cfg.Width, cfg.Height, time.Since(start), stats.SamplesTraced, stats.Stopped)

	img, err := app.BitmapToImage(cfg.Width, cfg.Height, cfg.OutputBitmap)
	if err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("mobilert: creating output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("mobilert: encoding PNG: %w", err)
	}
	fmt.Printf("wrote %s\n", outputPath)
	return nil
}

func runBench(cfg config.Config, runs int) error {
	if runs < 1 {
		runs = 1
	}
	logger := renderer.NewDefaultLogger()
	for i := 0; i < runs; i++ {
		start := time.Now()
		stats, err := app.Render(cfg, logger)
		if err != nil {
			return err
		}
		fmt.Printf("run %d/%d: %v (%d samples traced)\n", i+1, runs, time.Since(start), stats.SamplesTraced)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
