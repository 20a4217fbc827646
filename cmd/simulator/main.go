// simulator runs one headless defense session: waves march along the
// configured path, the autoplay bot spends mana on towers and the final
// result is recorded in PostgreSQL or the local store.
//
// Usage:
//
//	go run ./cmd/simulator
//	go run ./cmd/simulator -config config/simulator.yaml -watch
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/stronghold/internal/config"
	"github.com/udisondev/stronghold/internal/data"
	"github.com/udisondev/stronghold/internal/db"
	"github.com/udisondev/stronghold/internal/engine"
	"github.com/udisondev/stronghold/internal/feedback"
	"github.com/udisondev/stronghold/internal/game/economy"
	"github.com/udisondev/stronghold/internal/game/session"
	"github.com/udisondev/stronghold/internal/game/tower"
	"github.com/udisondev/stronghold/internal/model"
	"github.com/udisondev/stronghold/internal/wave"
)

const DefaultConfigPath = "config/simulator.yaml"

func main() {
	configPath := flag.String("config", DefaultConfigPath, "path to the simulator config")
	watch := flag.Bool("watch", false, "render the battlefield in the terminal")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, *configPath, *watch); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, watch bool) error {
	// Load config FIRST to determine log level
	cfg, err := config.LoadSimulator(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	console := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(console)
	if watch {
		// The watcher owns the terminal; runtime logs would tear the
		// alternate screen, so they go dark until it exits.
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	slog.Info("stronghold simulator starting", "config", configPath, "log_level", cfg.LogLevel)

	if err := data.LoadEnemyTemplates(); err != nil {
		return fmt.Errorf("loading enemy templates: %w", err)
	}
	if err := data.LoadTowerTemplates(); err != nil {
		return fmt.Errorf("loading tower templates: %w", err)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	hand, err := buildHand(cfg.Economy.Hand)
	if err != nil {
		return err
	}

	waypoints := toPoints(cfg.Path)
	slots := toPoints(cfg.BuildSlots)

	eng, err := buildEngine(cfg, seed, hand, waypoints)
	if err != nil {
		return err
	}

	eng.Start(time.Now())

	g, gctx := errgroup.WithContext(ctx)

	// runCtx ends the whole group once the session reaches an outcome.
	runCtx, stopRun := context.WithCancel(gctx)
	defer stopRun()

	g.Go(func() error {
		slog.Info("starting tick loop", "interval", cfg.TickInterval())
		return runTicks(runCtx, eng, cfg.TickInterval(), stopRun)
	})

	if !watch {
		g.Go(func() error {
			slog.Info("starting stats reporter", "interval", cfg.StatsInterval())
			return runStats(runCtx, eng, cfg.StatsInterval())
		})
	}

	if cfg.Autoplay.Enabled {
		g.Go(func() error {
			slog.Info("starting autoplay", "interval", cfg.Autoplay.Interval(), "build_slots", len(slots))
			return runAutoplay(runCtx, eng, hand, slots, cfg.Autoplay.Interval())
		})
	}

	if watch {
		g.Go(func() error {
			return runWatch(runCtx, eng, waypoints, stopRun)
		})
	}

	err = g.Wait()
	slog.SetDefault(console)
	if err != nil {
		return fmt.Errorf("simulator error: %w", err)
	}

	return finish(eng, store)
}

// runTicks drives the simulation clock until the session ends or the
// context is canceled.
func runTicks(ctx context.Context, eng *engine.Engine, interval time.Duration, stopRun context.CancelFunc) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			eng.Tick(now)
			if !eng.Active() {
				stopRun()
				return nil
			}
		}
	}
}

// runStats logs one progress line per interval.
func runStats(ctx context.Context, eng *engine.Engine, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			snap := eng.Snapshot(now)
			slog.Info("session stats",
				"state", snap.State,
				"elapsed", snap.Elapsed.Round(time.Second),
				"wave", snap.Wave,
				"enemies", len(snap.Enemies),
				"towers", len(snap.Towers),
				"base_health", snap.BaseHealth,
				"mana", int(snap.Mana),
				"score", snap.Score,
				"kills", snap.Kills,
				"breaches", snap.Breaches)
		}
	}
}

// finish logs the outcome and records the result of a finished session.
// An interrupted run has no outcome and is not recorded.
func finish(eng *engine.Engine, store db.ResultStore) error {
	res := eng.Result(time.Now())

	slog.Info("session finished",
		"outcome", res.Outcome,
		"waves_completed", res.WavesCompleted,
		"score", res.Score,
		"kills", res.Kills,
		"breaches", res.Breaches,
		"base_health", res.BaseHealth,
		"duration_ms", res.DurationMs)

	if res.Outcome != session.StateVictory.String() && res.Outcome != session.StateDefeat.String() {
		slog.Info("session interrupted, result not recorded")
		return nil
	}

	// The run context may already be canceled; the save gets its own deadline.
	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := store.Save(saveCtx, res)
	if err != nil {
		return fmt.Errorf("saving session result: %w", err)
	}
	slog.Info("session result recorded", "result_id", id)

	recent, err := store.Recent(saveCtx, 5)
	if err != nil {
		return fmt.Errorf("listing recent results: %w", err)
	}
	for _, r := range recent {
		slog.Info("recent result",
			"id", r.ID,
			"outcome", r.Outcome,
			"waves_completed", r.WavesCompleted,
			"score", r.Score,
			"duration_ms", r.DurationMs)
	}

	return nil
}

// openStore picks PostgreSQL when the database block is enabled, the local
// gdata store otherwise.
func openStore(ctx context.Context, cfg config.Simulator) (db.ResultStore, func(), error) {
	if !cfg.Database.Enabled {
		local, err := db.NewLocalResultStore(cfg.AppName)
		if err != nil {
			return nil, nil, fmt.Errorf("opening local result store: %w", err)
		}
		slog.Info("using local result store", "app", cfg.AppName)
		return local, func() {}, nil
	}

	dsn := cfg.Database.DSN()
	database, err := db.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := db.RunMigrations(ctx, dsn); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database connected", "host", cfg.Database.Host, "database", cfg.Database.DBName)
	return db.NewResultRepository(database.Pool()), database.Close, nil
}

// buildHand resolves configured card ids against the full deck. An empty
// list means every archetype.
func buildHand(ids []string) ([]economy.Card, error) {
	deck := data.DefaultHand()
	if len(ids) == 0 {
		return deck, nil
	}

	byID := make(map[string]economy.Card, len(deck))
	for _, c := range deck {
		byID[c.ID] = c
	}

	hand := make([]economy.Card, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("unknown card id %q in economy.hand", id)
		}
		hand = append(hand, c)
	}
	return hand, nil
}

func buildEngine(cfg config.Simulator, seed int64, hand []economy.Card, waypoints []model.Point) (*engine.Engine, error) {
	sess, err := session.NewSession(seed, cfg.Session.BaseHealth, cfg.Session.TotalWaves)
	if err != nil {
		return nil, fmt.Errorf("building session: %w", err)
	}

	pool, err := economy.NewPool(cfg.Economy.InitialMana, cfg.Economy.ManaCapacity, cfg.Economy.ManaRegenPerSecond, hand)
	if err != nil {
		return nil, fmt.Errorf("building mana pool: %w", err)
	}

	waveCfg, err := wave.NewConfiguration(
		cfg.Waves.BaseCount,
		cfg.Waves.CountIncrement,
		cfg.Waves.SpawnInterval(),
		cfg.Waves.WaveInterval(),
		wave.DefaultTiers(),
	)
	if err != nil {
		return nil, fmt.Errorf("building wave configuration: %w", err)
	}

	path, err := model.NewMovementPath(waypoints)
	if err != nil {
		return nil, fmt.Errorf("building movement path: %w", err)
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	towers := tower.NewManager(slog.Default())

	return engine.New(
		sess,
		pool,
		towers,
		waveCfg,
		path,
		data.GetEnemyTemplate,
		data.GetTowerTemplate,
		rng,
		slog.Default(),
		feedback.NewSlogSink(slog.Default()),
	)
}

func toPoints(points []config.PathPoint) []model.Point {
	out := make([]model.Point, len(points))
	for i, p := range points {
		out[i] = model.NewPoint(p.X, p.Y)
	}
	return out
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
