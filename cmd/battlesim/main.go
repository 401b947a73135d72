// battlesim runs Monte Carlo resolutions of a scripted attack and prints
// the aggregated outcome distribution. With store_replays enabled it also
// seals one verifiable replay per distinct damage amount.
//
// Usage:
//
//	go run ./cmd/battlesim -scenario scenarios/waterfall.yaml
//	go run ./cmd/battlesim -verify 7f9c24e9-...
//	go run ./cmd/battlesim -list 10
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/mivora/battlecalc/internal/battle"
	"github.com/mivora/battlecalc/internal/config"
	"github.com/mivora/battlecalc/internal/db"
	"github.com/mivora/battlecalc/internal/replay"
	"github.com/mivora/battlecalc/internal/rng"
	"github.com/mivora/battlecalc/internal/scenario"
	"github.com/mivora/battlecalc/internal/sim"
)

const ConfigPath = "config/battlesim.yaml"

func main() {
	scenarioPath := flag.String("scenario", "", "scenario YAML file to simulate")
	verifyID := flag.String("verify", "", "verify the stored replay with this ID")
	listN := flag.Int("list", 0, "print the n most recent stored replays")
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

	if err := run(ctx, *scenarioPath, *verifyID, *listN); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, scenarioPath, verifyID string, listN int) error {
	cfgPath := ConfigPath
	if p := os.Getenv("BATTLESIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSim(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	switch {
	case verifyID != "":
		return runVerify(ctx, cfg, verifyID)
	case listN > 0:
		return runList(ctx, cfg, listN)
	case scenarioPath != "":
		return runSim(ctx, cfg, scenarioPath)
	default:
		return fmt.Errorf("one of -scenario, -verify or -list is required")
	}
}

func runSim(ctx context.Context, cfg config.Sim, scenarioPath string) error {
	sc, err := scenario.Load(scenarioPath)
	if err != nil {
		return err
	}
	b, err := sc.Build()
	if err != nil {
		return fmt.Errorf("building scenario: %w", err)
	}

	rounding, err := battle.ParseRoundingMode(cfg.Engine.Rounding)
	if err != nil {
		return fmt.Errorf("config rounding: %w", err)
	}
	seed := cfg.Engine.Seed
	if seed == 0 {
		seed, err = rng.NewSeed()
		if err != nil {
			return fmt.Errorf("drawing seed: %w", err)
		}
	}
	slog.Info("starting simulation",
		"scenario", b.Name,
		"iterations", cfg.Iterations,
		"workers", cfg.Workers,
		"seed", seed,
		"rounding", rounding)

	runner := sim.NewRunner(sim.Config{
		Iterations: cfg.Iterations,
		Workers:    cfg.Workers,
		Seed:       seed,
		Rounding:   rounding,
	})
	summary, err := runner.Run(ctx, &sim.Matchup{
		Attacker:   b.Attacker,
		Defender:   b.Defender,
		Move:       b.Move,
		Field:      b.Field,
		Protection: b.Protection,
		Crit:       b.Crit,
	})
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	printSummary(b, summary)

	if cfg.StoreReplays {
		if err := storeWitnesses(ctx, cfg, b, summary, rounding); err != nil {
			return fmt.Errorf("storing replays: %w", err)
		}
	}
	return nil
}

func printSummary(b *scenario.Battle, s *sim.Summary) {
	fmt.Printf("scenario:   %s\n", b.Name)
	fmt.Printf("iterations: %d\n", s.Iterations)
	fmt.Printf("hit rate:   %.4f\n", s.HitRate())
	fmt.Printf("crit rate:  %.4f\n", s.CritRate())
	fmt.Printf("ko chance:  %.4f\n", s.KOProbability())
	if s.Blocked > 0 {
		fmt.Printf("blocked:    %d\n", s.Blocked)
	}
	if s.Hits == 0 {
		return
	}
	fmt.Printf("damage:     %d..%d, mean %.1f\n", s.MinDamage, s.MaxDamage, s.MeanDamage())

	for _, dmg := range sortedKeys(s.Distribution) {
		n := s.Distribution[dmg]
		fmt.Printf("  %5d %7d  %5.2f%%\n", dmg, n, 100*float64(n)/float64(s.Iterations))
	}
}

// storeWitnesses persists one digest-deduplicated replay per distinct
// damage amount, each resolved from the seed the simulation recorded for
// that bucket.
func storeWitnesses(ctx context.Context, cfg config.Sim, b *scenario.Battle, s *sim.Summary, rounding battle.RoundingMode) error {
	repo, closeDB, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	stored, err := replay.CaptureWitnesses(ctx, repo, b.Name,
		b.Attacker, b.Defender, b.Move, b.Field, b.Protection, b.Crit,
		rounding, s.WitnessSeeds)
	if err != nil {
		return err
	}

	total, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	slog.Info("replays stored", "new", stored, "total", total)
	return nil
}

func runVerify(ctx context.Context, cfg config.Sim, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("parsing replay id %q: %w", rawID, err)
	}

	repo, closeDB, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	rec, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("replay %s not found", id)
	}

	if err := rec.Verify(); err != nil {
		return fmt.Errorf("digest check: %w", err)
	}
	if err := rec.Replay(); err != nil {
		return fmt.Errorf("re-resolution: %w", err)
	}

	fmt.Printf("replay:  %s\n", rec.ID)
	fmt.Printf("name:    %s\n", rec.Name)
	fmt.Printf("seed:    %d\n", rec.Seed)
	fmt.Printf("digest:  ok\n")
	fmt.Printf("outcome: reproduced\n")
	return nil
}

func runList(ctx context.Context, cfg config.Sim, n int) error {
	repo, closeDB, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	recs, err := repo.ListRecent(ctx, n)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("no replays stored")
		return nil
	}
	for _, rec := range recs {
		damage := "miss"
		if rec.Outcome.Damage != nil {
			damage = fmt.Sprintf("%d", rec.Outcome.Damage.Amount)
		}
		fmt.Printf("%s  %s  seed=%-12d damage=%-6s %s\n",
			rec.ID, rec.CreatedAt.Format(time.RFC3339), rec.Seed, damage, rec.Name)
	}
	return nil
}

// openStore connects, migrates and returns the replay repository plus a
// closer for the underlying pool.
func openStore(ctx context.Context, cfg config.Sim) (*db.ReplayRepository, func(), error) {
	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}
	return db.NewReplayRepository(database.Pool()), database.Close, nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

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
