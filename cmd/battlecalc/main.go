// battlecalc resolves a single scripted attack and prints the outcome.
//
// Usage:
//
//	go run ./cmd/battlecalc -scenario scenarios/waterfall.yaml
//	go run ./cmd/battlecalc -scenario scenarios/waterfall.yaml -json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mivora/battlecalc/internal/battle"
	"github.com/mivora/battlecalc/internal/config"
	"github.com/mivora/battlecalc/internal/replay"
	"github.com/mivora/battlecalc/internal/rng"
	"github.com/mivora/battlecalc/internal/scenario"
)

const ConfigPath = "config/battlecalc.yaml"

func main() {
	cfgPath := flag.String("config", ConfigPath, "config file")
	scenarioPath := flag.String("scenario", "", "scenario YAML file")
	asJSON := flag.Bool("json", false, "print the sealed replay record as JSON")
	flag.Parse()

	if err := run(*cfgPath, *scenarioPath, *asJSON); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, scenarioPath string, asJSON bool) error {
	if scenarioPath == "" {
		return fmt.Errorf("missing -scenario flag")
	}

	cfg, err := config.LoadCalc(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Diagnostics go to stderr so stdout stays parseable.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

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
	slog.Debug("resolving", "scenario", b.Name, "seed", seed, "rounding", rounding)

	rec, err := replay.Capture(b.Name, b.Attacker, b.Defender, b.Move, b.Field, b.Protection, b.Crit, seed, rounding)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", b.Name, err)
	}

	if asJSON {
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printOutcome(b, rec, cfg.Verbose)
	return nil
}

func printOutcome(b *scenario.Battle, rec *replay.Record, verbose bool) {
	fmt.Printf("scenario: %s\n", b.Name)
	fmt.Printf("move:     %s (%s %s, power %d)\n", b.Move.Name, b.Move.Type, b.Move.Category, b.Move.Power)
	fmt.Printf("seed:     %d\n", rec.Seed)

	hit := rec.Outcome.Hit
	if !hit.Hits {
		fmt.Printf("hit:      no (%s)\n", hit.Reason)
		return
	}
	fmt.Printf("hit:      yes (%s)\n", hit.Reason)

	res := rec.Outcome.Damage
	if res.BlockedBy != battle.BlockedByNone {
		fmt.Printf("damage:   0 (blocked by %s)\n", res.BlockedBy)
	} else {
		fmt.Printf("damage:   %d\n", res.Amount)
	}
	fmt.Printf("type:     %s, %s\n", res.MoveType, res.Effectiveness)
	fmt.Printf("crit:     %v\n", res.IsCritical)

	switch {
	case res.WouldKOFromCurrentHP && res.WouldSurviveAt1:
		fmt.Printf("ko:       endured at 1 HP (%d vs %d)\n", res.Amount, b.Defender.CurrentHP)
	case res.WouldKOFromCurrentHP:
		fmt.Printf("ko:       yes (%d vs %d HP)\n", res.Amount, b.Defender.CurrentHP)
	default:
		fmt.Printf("ko:       no (%d vs %d HP)\n", res.Amount, b.Defender.CurrentHP)
	}

	if verbose {
		for _, e := range res.SideEffects {
			fmt.Printf("effect:   %s\n", e)
		}
		fmt.Printf("digest:   %s\n", rec.Digest)
	}
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
