// Command fractalview previews fractal presets in the terminal.
//
//	fractalview [-config scene.toml] [-preset name]
package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/fractal"
	"github.com/gogpu/fractal/config"
	"github.com/gogpu/fractal/internal/tui"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("fractalview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML scene file")
		preset     = fs.String("preset", "", "start with this preset")
		workers    = fs.Int("workers", 0, "iterator workers (0 = GOMAXPROCS)")
		cacheSize  = fs.Int("cache", 32, "number of built sprites to keep")
		logPath    = fs.String("log", "", "write debug log to this file")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return err
		}
		defer f.Close()
		fractal.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer fractal.SetLogger(nil)
	}

	scene, err := loadScene(*configPath, *preset)
	if err != nil {
		return err
	}

	w := *workers
	if w == 0 {
		w = scene.Workers
	}
	m := tui.New(scene, config.NewBuilder(w, *cacheSize))
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// loadScene reads the optional scene file and switches to preset when one
// is named.
func loadScene(path, preset string) (config.Scene, error) {
	scene := config.Default()
	if path != "" {
		var err error
		if scene, err = config.Load(path); err != nil {
			return scene, err
		}
	}
	if preset != "" {
		return scene.WithPreset(preset)
	}
	return scene, nil
}
