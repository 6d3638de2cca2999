package systems

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/zeusync/thrusters/internal/core/observability/log"
)

var (
	ErrAlreadyRegistered = errors.New("system already registered")
	ErrNotRegistered     = errors.New("system not registered")
)

// Scheduler runs registered systems ordered by phase, then priority, then
// registration order. Systems of one Update call run sequentially.
type Scheduler struct {
	logger log.Log

	mu      sync.Mutex
	systems []System
	metrics map[string]*Metrics
}

func NewScheduler(logger log.Log) *Scheduler {
	if logger == nil {
		logger = log.Provide()
	}
	return &Scheduler{
		logger:  logger,
		metrics: make(map[string]*Metrics),
	}
}

func (s *Scheduler) Register(systems ...System) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make(map[string]struct{}, len(systems))
	for _, sys := range systems {
		_, registered := s.metrics[sys.Name()]
		_, repeated := batch[sys.Name()]
		if registered || repeated {
			return fmt.Errorf("%w: %s", ErrAlreadyRegistered, sys.Name())
		}
		batch[sys.Name()] = struct{}{}
	}

	for _, sys := range systems {
		s.systems = append(s.systems, sys)
		s.metrics[sys.Name()] = &Metrics{}
	}
	slices.SortStableFunc(s.systems, func(a, b System) int {
		if a.ExecutionPhase() != b.ExecutionPhase() {
			return int(a.ExecutionPhase()) - int(b.ExecutionPhase())
		}
		return int(b.Priority()) - int(a.Priority())
	})
	return nil
}

func (s *Scheduler) Unregister(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.metrics[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	s.systems = slices.DeleteFunc(s.systems, func(sys System) bool { return sys.Name() == name })
	delete(s.metrics, name)
	return nil
}

// ExecutionOrder lists system names in the order Update runs them.
func (s *Scheduler) ExecutionOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, len(s.systems))
	for i, sys := range s.systems {
		names[i] = sys.Name()
	}
	return names
}

// Update runs every system once. The first failing system stops the pass.
func (s *Scheduler) Update(ctx context.Context, deltaTime float64, world World) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sys := range s.systems {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		err := sys.Update(ctx, deltaTime, world)
		s.record(sys.Name(), time.Since(start), err)
		if err != nil {
			s.logger.Error("system update failed",
				log.String("system", sys.Name()),
				log.Stringer("phase", sys.ExecutionPhase()),
				log.Error(err))
			return fmt.Errorf("system %s: %w", sys.Name(), err)
		}
	}
	return nil
}

// SystemMetrics returns a copy of the metrics collected for name.
func (s *Scheduler) SystemMetrics(name string) (Metrics, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.metrics[name]
	if !ok {
		return Metrics{}, false
	}
	return *m, true
}

func (s *Scheduler) record(name string, elapsed time.Duration, err error) {
	m := s.metrics[name]
	m.ExecutionCount++
	m.TotalExecutionTime += elapsed
	m.MaxExecutionTime = max(m.MaxExecutionTime, elapsed)
	m.LastExecutionTime = time.Now()
	if err != nil {
		m.ErrorCount++
		m.LastError = err
	}
}
