package injector

import (
	"context"

	"github.com/zeusync/thrusters/internal/config"
	"github.com/zeusync/thrusters/internal/core/observability/log"
	"github.com/zeusync/thrusters/internal/core/physics"
	"github.com/zeusync/thrusters/internal/core/systems"
	"github.com/zeusync/thrusters/internal/core/vehicle"
	"github.com/zeusync/thrusters/internal/core/world"
)

// App is a fully wired allocator runtime.
type App struct {
	Config    *config.Config
	Logger    *log.Logger
	World     *world.World
	Scheduler *systems.Scheduler
}

func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.New(cfg.Level())
}

func ProvideWorld(cfg *config.Config) (*world.World, error) {
	w := world.New(cfg.Shards)
	if err := cfg.Build(w); err != nil {
		return nil, err
	}
	return w, nil
}

func ProvideScheduler(cfg *config.Config, logger *log.Logger) (*systems.Scheduler, error) {
	s, err := cfg.NewStrategy()
	if err != nil {
		return nil, err
	}
	scheduler := systems.NewScheduler(logger)
	if err = scheduler.Register(systems.Pipeline(s, cfg.Workers, logger)...); err != nil {
		return nil, err
	}
	return scheduler, nil
}

func NewApp(cfg *config.Config, logger *log.Logger, w *world.World, scheduler *systems.Scheduler) *App {
	return &App{Config: cfg, Logger: logger, World: w, Scheduler: scheduler}
}

// Step runs one prepare, allocate and sync pass over every vehicle.
func (a *App) Step(ctx context.Context, deltaTime float64) error {
	return a.Scheduler.Update(ctx, deltaTime, a.World)
}

// ThrusterReport is the state of one thruster after a step.
type ThrusterReport struct {
	Vehicle        string
	ID             vehicle.ThrusterID
	Name           string
	Status         float64
	StrengthFactor float64
	Force          physics.Vec3
}

// Report lists every thruster in vehicle name, then mount order.
func (a *App) Report() []ThrusterReport {
	var out []ThrusterReport
	a.World.Range(func(v *vehicle.Vehicle) bool {
		for _, m := range v.Thrusters() {
			r := ThrusterReport{
				Vehicle:        v.Name(),
				ID:             m.ID,
				Name:           m.Name,
				Status:         m.Thruster.CurrentStatus(),
				StrengthFactor: m.Thruster.StrengthFactor(),
			}
			if m.Force != nil {
				r.Force = *m.Force
			}
			out = append(out, r)
		}
		return true
	})
	return out
}
