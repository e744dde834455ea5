// Command fractaldemo renders a fractal preset to a PNG file.
//
// Scenes come from flags, optionally on top of a TOML file:
//
//	fractaldemo -preset quad-pulse -angle 80 -depth 5 -output quad.png
//	fractaldemo -config scene.toml -depth 7
//	fractaldemo -preset mandelbrot -depth 500 -supersample 2
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/config"
	"github.com/gogpu/fractal/raster"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("fractaldemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath  = fs.String("config", "", "TOML scene file")
		preset      = fs.String("preset", "", "preset name (see -list)")
		angle       = fs.Float64("angle", 0, "peak angle in degrees")
		depth       = fs.Int("depth", 0, "iteration depth")
		mode        = fs.String("mode", "", "points, segments or polyline")
		width       = fs.Int("width", 0, "image width")
		height      = fs.Int("height", 0, "image height")
		workers     = fs.Int("workers", 0, "iterator workers (0 = GOMAXPROCS, 1 = serial)")
		supersample = fs.Int("supersample", 0, "supersampling factor")
		output      = fs.String("output", "fractal.png", "output file")
		list        = fs.Bool("list", false, "list presets and exit")
		verbose     = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	p := message.NewPrinter(language.English)

	if *list {
		for _, pr := range config.Presets() {
			p.Fprintf(stdout, "%-24s %-6s max depth %2d  %s\n", pr.Name, pr.Kind, pr.MaxDepth, pr.Description)
		}
		return nil
	}

	scene := config.Default()
	if *configPath != "" {
		var err error
		if scene, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	// Explicit flags win over the file. -preset resets angle, depth and
	// mode, so it is applied first.
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["preset"] {
		var err error
		if scene, err = scene.WithPreset(*preset); err != nil {
			return err
		}
	}
	if set["angle"] {
		scene.Angle = *angle
	}
	if set["depth"] {
		scene.Depth = *depth
	}
	if set["mode"] {
		scene.Mode = *mode
	}
	if set["width"] {
		scene.Width = *width
	}
	if set["height"] {
		scene.Height = *height
	}
	if set["workers"] {
		scene.Workers = *workers
	}
	if set["supersample"] {
		scene.Supersample = *supersample
	}
	if err := scene.Validate(); err != nil {
		return err
	}

	pr, err := config.Lookup(scene.Preset)
	if err != nil {
		return err
	}
	if pr.IsField() {
		return runField(p, stdout, scene, pr, *output)
	}

	start := time.Now()
	sprite, err := scene.Build()
	if err != nil {
		return err
	}
	built := time.Since(start)

	opts, err := scene.CanvasOptions(sprite.Bounds())
	if err != nil {
		return err
	}
	canvas, err := raster.NewCanvas(opts)
	if err != nil {
		return err
	}
	start = time.Now()
	n := canvas.Draw(sprite)
	drawn := time.Since(start)

	if err := canvas.SavePNG(*output); err != nil {
		return fmt.Errorf("save %s: %w", *output, err)
	}

	p.Fprintf(stdout, "%s depth %d: %d rows, %d primitives\n", scene.Preset, scene.Depth, sprite.Len(), n)
	p.Fprintf(stdout, "built in %v, drawn in %v, saved %s (%d×%d)\n",
		built.Round(time.Millisecond), drawn.Round(time.Millisecond), *output, opts.Width, opts.Height)
	return nil
}

// runField shades an escape-time preset pixel by pixel.
func runField(p *message.Printer, stdout io.Writer, scene config.Scene, pr config.Preset, output string) error {
	shade, err := scene.Shade()
	if err != nil {
		return err
	}
	opts, err := scene.CanvasOptions(pr.Extent())
	if err != nil {
		return err
	}
	canvas, err := raster.NewCanvas(opts)
	if err != nil {
		return err
	}
	start := time.Now()
	if err := canvas.Field(shade); err != nil {
		return err
	}
	shaded := time.Since(start)

	if err := canvas.SavePNG(output); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}

	samples := opts.Width * opts.Height * max(opts.Supersample, 1) * max(opts.Supersample, 1)
	p.Fprintf(stdout, "%s depth %d: %d samples\n", scene.Preset, scene.Depth, samples)
	p.Fprintf(stdout, "shaded in %v, saved %s (%d×%d)\n",
		shaded.Round(time.Millisecond), output, opts.Width, opts.Height)
	return nil
}
