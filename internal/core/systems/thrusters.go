package systems

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/thrusters/internal/core/observability/log"
	"github.com/zeusync/thrusters/internal/core/strategy"
	"github.com/zeusync/thrusters/internal/core/vehicle"
)

const (
	PrepareThrustersName  = "prepare_thrusters"
	AllocateThrustersName = "allocate_thrusters"
	SyncForcesName        = "sync_forces"
)

// PrepareThrusters gives newly mounted thrusters a force slot so SyncForces can drive them.
type PrepareThrusters struct {
	Logger log.Log
}

func (PrepareThrusters) Name() string                   { return PrepareThrustersName }
func (PrepareThrusters) Priority() Priority             { return PriorityNormal }
func (PrepareThrusters) ExecutionPhase() ExecutionPhase { return PhasePreUpdate }

func (p PrepareThrusters) Update(_ context.Context, _ float64, world World) error {
	for _, v := range world.Vehicles() {
		if n := v.Prepare(); n > 0 {
			loggerOr(p.Logger).Debug("prepared thrusters",
				log.String("vehicle", v.Name()),
				log.Int("count", n))
		}
	}
	return nil
}

// Allocation is the raw strategy output for one vehicle.
type Allocation struct {
	Vehicle   string
	Strengths map[vehicle.ThrusterID]float64
	Skipped   int
}

// AllocateThrusters runs the strategy for every vehicle. Vehicles are processed
// concurrently, at most Workers at a time (unbounded when Workers <= 0).
// Each vehicle's gather and apply steps hold that vehicle's lock only.
type AllocateThrusters struct {
	Strategy strategy.PureStrategy[vehicle.ThrusterID]
	Workers  int
	Logger   log.Log
	// OnAllocated, when set, receives every vehicle's result. It may be called concurrently.
	OnAllocated func(Allocation)
}

func (AllocateThrusters) Name() string                   { return AllocateThrustersName }
func (AllocateThrusters) Priority() Priority             { return PriorityNormal }
func (AllocateThrusters) ExecutionPhase() ExecutionPhase { return PhaseUpdate }

func (a AllocateThrusters) Update(ctx context.Context, _ float64, world World) error {
	s := a.Strategy
	if s == nil {
		s = strategy.ExactAxis[vehicle.ThrusterID]{}
	}
	logger := loggerOr(a.Logger)

	g, gctx := errgroup.WithContext(ctx)
	if a.Workers > 0 {
		g.SetLimit(a.Workers)
	}
	for _, v := range world.Vehicles() {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			strengths, skipped := v.Allocate(s)
			if skipped > 0 {
				logger.Warn("thrusters unmounted during allocation",
					log.String("vehicle", v.Name()),
					log.Int("skipped", skipped))
			}
			logger.Debug("allocated thrusters",
				log.String("vehicle", v.Name()),
				log.String("strategy", s.Name()),
				log.Int("thrusters", len(strengths)))
			if a.OnAllocated != nil {
				a.OnAllocated(Allocation{Vehicle: v.Name(), Strengths: strengths, Skipped: skipped})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// SyncForces converts every prepared thruster's status into a physical force.
type SyncForces struct {
	Logger log.Log
}

func (SyncForces) Name() string                   { return SyncForcesName }
func (SyncForces) Priority() Priority             { return PriorityNormal }
func (SyncForces) ExecutionPhase() ExecutionPhase { return PhasePostUpdate }

func (s SyncForces) Update(_ context.Context, _ float64, world World) error {
	for _, v := range world.Vehicles() {
		forces := v.SyncForces()
		loggerOr(s.Logger).Debug("synced forces",
			log.String("vehicle", v.Name()),
			log.Int("thrusters", len(forces)))
	}
	return nil
}

// Pipeline returns the prepare, allocate and sync systems wired to one strategy.
func Pipeline(s strategy.PureStrategy[vehicle.ThrusterID], workers int, logger log.Log) []System {
	return []System{
		PrepareThrusters{Logger: logger},
		AllocateThrusters{Strategy: s, Workers: workers, Logger: logger},
		SyncForces{Logger: logger},
	}
}

func loggerOr(l log.Log) log.Log {
	if l == nil {
		return log.Provide()
	}
	return l
}
