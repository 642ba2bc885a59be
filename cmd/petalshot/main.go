// Petal snapshot tool - renders the scene at fixed animation times to PNG files.
//
// Usage: go run ./cmd/petalshot -times 0,1,3.5 -out shots
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blossom/config"
	"github.com/pthm-cable/blossom/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	times := flag.String("times", "0,1,2,3,3.5", "Comma-separated animation times in seconds")
	outDir := flag.String("out", "shots", "Output directory for PNG files")
	width := flag.Int("width", 1280, "Render width")
	height := flag.Int("height", 720, "Render height")
	seed := flag.Int64("seed", 1, "RNG seed for the petal field")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ts, err := parseTimes(*times)
	if err != nil {
		slog.Error("invalid -times", "error", err)
		os.Exit(1)
	}
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	cfg.Window.Width = *width
	cfg.Window.Height = *height

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(*width), int32(*height), "Petal Snapshot")
	defer rl.CloseWindow()

	g, err := game.NewGame(cfg, game.Options{Seed: *seed, Offscreen: true})
	if err != nil {
		slog.Error("failed to build scene", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	for _, t := range ts {
		g.RenderAt(float32(t))

		path := filepath.Join(*outDir, fmt.Sprintf("petals_%06.2f.png", t))
		if err := g.Surface().Export(path); err != nil {
			slog.Error("failed to export", "time", t, "error", err)
			os.Exit(1)
		}
		slog.Info("rendered", "time", t, "path", path, "width", *width, "height", *height)
	}
}

func parseTimes(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("time %q: %w", part, err)
		}
		if t < 0 {
			return nil, fmt.Errorf("time %q: must not be negative", part)
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no times given")
	}
	return out, nil
}
