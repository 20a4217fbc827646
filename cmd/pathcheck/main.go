// pathcheck prints the geometry of the configured path and the first wave
// compositions, for tuning a config without running a session.
//
// Usage:
//
//	go run ./cmd/pathcheck -config config/simulator.yaml
//	go run ./cmd/pathcheck -waves 12
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/udisondev/stronghold/internal/config"
	"github.com/udisondev/stronghold/internal/data"
	"github.com/udisondev/stronghold/internal/model"
	"github.com/udisondev/stronghold/internal/wave"
)

// archetypes fixes the print order; maps iterate randomly.
var archetypes = []model.EnemyType{
	model.EnemyRaider,
	model.EnemyStalker,
	model.EnemyBrute,
	model.EnemyWarbringer,
}

func main() {
	configPath := flag.String("config", "config/simulator.yaml", "path to the simulator config")
	waves := flag.Int("waves", 10, "how many wave compositions to print")
	flag.Parse()

	if err := report(*configPath, *waves); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func report(configPath string, waves int) error {
	// Data loaders log through slog; keep the report clean.
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	cfg, err := config.LoadSimulator(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := data.LoadEnemyTemplates(); err != nil {
		return fmt.Errorf("loading enemy templates: %w", err)
	}

	waypoints := make([]model.Point, len(cfg.Path))
	for i, p := range cfg.Path {
		waypoints[i] = model.NewPoint(p.X, p.Y)
	}
	path, err := model.NewMovementPath(waypoints)
	if err != nil {
		return fmt.Errorf("building movement path: %w", err)
	}

	fmt.Printf("path: %d waypoints\n", len(waypoints))
	segs := path.SegmentLengths()
	for i, p := range path.Waypoints() {
		if i == 0 {
			fmt.Printf("  %2d  (%6.1f, %6.1f)  spawn\n", i, p.X, p.Y)
			continue
		}
		fmt.Printf("  %2d  (%6.1f, %6.1f)  segment %.1f\n", i, p.X, p.Y, segs[i-1])
	}
	fmt.Printf("total length: %.1f\n\n", path.TotalLength())

	fmt.Println("travel times:")
	for _, at := range archetypes {
		tpl := data.GetEnemyTemplate(at)
		if tpl == nil {
			continue
		}
		tt, err := path.TravelTime(tpl.MoveSpeed())
		if err != nil {
			return fmt.Errorf("travel time for %s: %w", at, err)
		}
		fmt.Printf("  %-12s speed %5.1f  %v\n", tpl.Name(), tpl.MoveSpeed(), tt.Round(100*time.Millisecond))
	}
	fmt.Println()

	waveCfg, err := wave.NewConfiguration(
		cfg.Waves.BaseCount,
		cfg.Waves.CountIncrement,
		cfg.Waves.SpawnInterval(),
		cfg.Waves.WaveInterval(),
		wave.DefaultTiers(),
	)
	if err != nil {
		return fmt.Errorf("building wave configuration: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	fmt.Printf("waves (base %d, +%d per wave):\n", cfg.Waves.BaseCount, cfg.Waves.CountIncrement)
	for n := int32(1); n <= int32(waves); n++ {
		types, err := waveCfg.EnemyTypesForWave(n, rng)
		if err != nil {
			return fmt.Errorf("composing wave %d: %w", n, err)
		}
		fmt.Printf("  wave %2d: %2d enemies  %s\n", n, len(types), composition(types))
	}

	return nil
}

// composition renders per-type counts in tier order.
func composition(types []model.EnemyType) string {
	counts := make(map[model.EnemyType]int)
	for _, t := range types {
		counts[t]++
	}

	parts := make([]string, 0, len(counts))
	for _, at := range archetypes {
		if c := counts[at]; c > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", at, c))
		}
	}
	return strings.Join(parts, ", ")
}
