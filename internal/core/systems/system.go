package systems

import (
	"context"
	"time"

	"github.com/zeusync/thrusters/internal/core/vehicle"
)

// System represents one stage of the thruster update pipeline.
type System interface {
	Name() string
	Priority() Priority
	ExecutionPhase() ExecutionPhase

	Update(ctx context.Context, deltaTime float64, world World) error
}

// World is the part of the host world the systems read from.
type World interface {
	Vehicles() []*vehicle.Vehicle
}

// Priority orders systems within one phase; higher runs first.
type Priority uint16

// System priorities
const (
	PriorityLowest  Priority = 200
	PriorityLow     Priority = 500
	PriorityNormal  Priority = 600
	PriorityHigh    Priority = 1000
	PriorityHighest Priority = 1300
)

// ExecutionPhase defines when a system runs
type ExecutionPhase uint8

const (
	PhasePreUpdate ExecutionPhase = iota
	PhaseUpdate
	PhasePostUpdate
)

func (p ExecutionPhase) String() string {
	switch p {
	case PhasePreUpdate:
		return "pre_update"
	case PhaseUpdate:
		return "update"
	case PhasePostUpdate:
		return "post_update"
	default:
		return "unknown"
	}
}

// Metrics provides runtime metrics for a system
type Metrics struct {
	ExecutionCount     uint64
	TotalExecutionTime time.Duration
	MaxExecutionTime   time.Duration
	ErrorCount         uint64
	LastError          error
	LastExecutionTime  time.Time
}

// AverageExecutionTime is the mean duration of one Update call.
func (m Metrics) AverageExecutionTime() time.Duration {
	if m.ExecutionCount == 0 {
		return 0
	}
	return m.TotalExecutionTime / time.Duration(m.ExecutionCount)
}
