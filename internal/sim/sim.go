// Package sim runs Monte Carlo evaluation on top of the damage resolver:
// many independent resolutions of one matchup, aggregated into a damage
// distribution and KO probability.
//
// Runs are deterministic: iteration i always draws from a source seeded
// with baseSeed+i, so the result is independent of scheduling and worker
// count.
package sim

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mivora/battlecalc/internal/battle"
	"github.com/mivora/battlecalc/internal/model"
	"github.com/mivora/battlecalc/internal/rng"
)

// ErrNoIterations is returned when a run is asked for zero or fewer
// iterations.
var ErrNoIterations = errors.New("iterations must be positive")

// Matchup is one attacker/move/defender configuration to evaluate. The
// combatant snapshots are shared across workers and never mutated.
type Matchup struct {
	Attacker   *model.Combatant
	Defender   *model.Combatant
	Move       *model.Move
	Field      model.Field
	Protection model.ProtectionState
	Crit       battle.CritOverride
}

// Config tunes one simulation run.
type Config struct {
	// Iterations is the number of independent resolutions.
	Iterations int

	// Workers bounds the parallel goroutines. Zero means one per CPU.
	Workers int

	// Seed is the base seed; iteration i draws from Seed+i.
	Seed uint64

	// Rounding selects the resolver's modifier rounding mode.
	Rounding battle.RoundingMode
}

// Summary aggregates a full run. Every iteration lands in exactly one of
// Misses, Blocked or Hits; the damage distribution covers Hits only.
type Summary struct {
	Iterations int

	// Hits are resolutions that connected and dealt damage.
	Hits int
	// Misses are failed accuracy checks and unreachable targets.
	Misses int
	// Blocked are connected hits stopped by protection, immunity, Wonder
	// Guard or Disguise.
	Blocked int

	Crits int
	// KOs counts hits with damage at or above the defender's current HP.
	KOs int

	MinDamage int
	MaxDamage int

	// Distribution maps final damage to how many hits produced it.
	Distribution map[int]int

	// WitnessSeeds maps each damage amount to the lowest seed that
	// produced it, so every bucket can be replayed on a single source.
	WitnessSeeds map[int]uint64

	totalDamage int64
}

// HitRate is the share of iterations that connected and dealt damage.
func (s *Summary) HitRate() float64 {
	if s.Iterations == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Iterations)
}

// KOProbability is the share of iterations that would KO the defender
// from its current HP.
func (s *Summary) KOProbability() float64 {
	if s.Iterations == 0 {
		return 0
	}
	return float64(s.KOs) / float64(s.Iterations)
}

// CritRate is the share of damaging hits that were critical.
func (s *Summary) CritRate() float64 {
	if s.Hits == 0 {
		return 0
	}
	return float64(s.Crits) / float64(s.Hits)
}

// MeanDamage is the average damage over damaging hits.
func (s *Summary) MeanDamage() float64 {
	if s.Hits == 0 {
		return 0
	}
	return float64(s.totalDamage) / float64(s.Hits)
}

func (s *Summary) addHit(res *battle.DamageResult, seed uint64) {
	s.Hits++
	if res.IsCritical {
		s.Crits++
	}
	if res.WouldKOFromCurrentHP {
		s.KOs++
	}
	if s.Distribution == nil {
		s.Distribution = make(map[int]int)
	}
	s.Distribution[res.Amount]++
	if s.WitnessSeeds == nil {
		s.WitnessSeeds = make(map[int]uint64)
	}
	if cur, ok := s.WitnessSeeds[res.Amount]; !ok || seed < cur {
		s.WitnessSeeds[res.Amount] = seed
	}
	s.totalDamage += int64(res.Amount)
	if s.Hits == 1 || res.Amount < s.MinDamage {
		s.MinDamage = res.Amount
	}
	if res.Amount > s.MaxDamage {
		s.MaxDamage = res.Amount
	}
}

func (s *Summary) merge(o *Summary) {
	if o.Hits > 0 {
		if s.Hits == 0 || o.MinDamage < s.MinDamage {
			s.MinDamage = o.MinDamage
		}
		if o.MaxDamage > s.MaxDamage {
			s.MaxDamage = o.MaxDamage
		}
	}
	s.Hits += o.Hits
	s.Misses += o.Misses
	s.Blocked += o.Blocked
	s.Crits += o.Crits
	s.KOs += o.KOs
	s.totalDamage += o.totalDamage
	for dmg, n := range o.Distribution {
		if s.Distribution == nil {
			s.Distribution = make(map[int]int)
		}
		s.Distribution[dmg] += n
	}
	for dmg, seed := range o.WitnessSeeds {
		if s.WitnessSeeds == nil {
			s.WitnessSeeds = make(map[int]uint64)
		}
		if cur, ok := s.WitnessSeeds[dmg]; !ok || seed < cur {
			s.WitnessSeeds[dmg] = seed
		}
	}
}

// Runner evaluates matchups under one configuration.
type Runner struct {
	cfg      Config
	resolver *battle.Resolver
}

// NewRunner returns a Runner for the given configuration.
func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:      cfg,
		resolver: battle.NewResolver(cfg.Rounding),
	}
}

// Run resolves the matchup cfg.Iterations times and aggregates the
// outcomes. Resolution errors abort the whole run: they mean broken
// inputs, not bad luck.
func (r *Runner) Run(ctx context.Context, m *Matchup) (*Summary, error) {
	if r.cfg.Iterations <= 0 {
		return nil, ErrNoIterations
	}
	workers := r.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > r.cfg.Iterations {
		workers = r.cfg.Iterations
	}

	var (
		mu    sync.Mutex
		total Summary
	)
	total.Iterations = r.cfg.Iterations

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			var local Summary
			for i := w; i < r.cfg.Iterations; i += workers {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				if err := r.resolveOnce(m, r.cfg.Seed+uint64(i), &local); err != nil {
					return fmt.Errorf("iteration %d: %w", i, err)
				}
			}
			mu.Lock()
			total.merge(&local)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &total, nil
}

// resolveOnce plays a single accuracy-then-damage resolution into the
// local tally. Draw order per iteration: accuracy, crit, damage roll.
func (r *Runner) resolveOnce(m *Matchup, seed uint64, local *Summary) error {
	src := rng.New(seed)

	hit, err := r.resolver.ResolveHit(m.Attacker, m.Defender, m.Move, m.Field, src)
	if err != nil {
		return err
	}
	if !hit.Hits {
		local.Misses++
		return nil
	}

	res, err := r.resolver.ResolveDamage(m.Attacker, m.Defender, m.Move, m.Field, m.Protection, src, m.Crit)
	if err != nil {
		return err
	}
	if res.BlockedBy != battle.BlockedByNone {
		local.Blocked++
		return nil
	}
	local.addHit(&res, seed)
	return nil
}
