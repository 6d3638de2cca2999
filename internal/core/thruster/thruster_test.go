package thruster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zeusync/thrusters/internal/core/observability/log"
	"github.com/zeusync/thrusters/internal/core/physics"
	"github.com/zeusync/thrusters/internal/core/physics/sixdof"
)

func observeWarnings(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	prev := log.Provide()
	core, logs := observer.New(zapcore.WarnLevel)
	log.SetDefault(log.NewWithCore(core))
	t.Cleanup(func() { log.SetDefault(prev) })
	return logs
}

func TestDefaults(t *testing.T) {
	th := New()
	assert.Equal(t, 1.0, th.StrengthFactor())
	assert.Equal(t, 0.0, th.CurrentStatus())

	var zero Thruster
	assert.Equal(t, 0.0, zero.StrengthFactor())
	assert.Equal(t, 0.0, zero.Strength())
}

func TestCurrentStatusClamp(t *testing.T) {
	cases := []struct {
		in, want float64
		warns    bool
	}{
		{in: 0, want: 0},
		{in: 0.25, want: 0.25},
		{in: 1, want: 1},
		{in: 2, want: 1, warns: true},
		{in: -1, want: 0, warns: true},
		{in: math.Inf(1), want: 1, warns: true},
		{in: math.NaN(), want: 0, warns: true},
	}

	for _, c := range cases {
		logs := observeWarnings(t)
		th := New()
		th.SetCurrentStatus(c.in)
		assert.Equal(t, c.want, th.CurrentStatus(), "in=%v", c.in)

		// writing an already clamped value is a no-op
		th.SetCurrentStatus(th.CurrentStatus())
		assert.Equal(t, c.want, th.CurrentStatus(), "in=%v", c.in)

		if c.warns {
			assert.Equal(t, 1, logs.Len(), "in=%v", c.in)
		} else {
			assert.Zero(t, logs.Len(), "in=%v", c.in)
		}
	}
}

func TestStrengthFactorClamp(t *testing.T) {
	logs := observeWarnings(t)

	th := NewWithStrengthFactor(-3)
	assert.Equal(t, 0.0, th.StrengthFactor())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, -3.0, logs.All()[0].ContextMap()["strength_factor"])

	th.SetStrengthFactor(250)
	th.SetStrengthFactor(th.StrengthFactor())
	assert.Equal(t, 250.0, th.StrengthFactor())
	assert.Equal(t, 1, logs.Len())
}

func TestStrengthAlias(t *testing.T) {
	th := New()
	th.SetStrength(0.4)
	assert.Equal(t, 0.4, th.CurrentStatus())
	th.SetCurrentStatus(0.7)
	assert.Equal(t, 0.7, th.Strength())
}

func TestUpdateStatusReclamps(t *testing.T) {
	_ = observeWarnings(t)

	th := New()
	th.SetCurrentStatus(0.5)
	th.UpdateStatus(func(s float64) float64 { return s * 4 })
	assert.Equal(t, 1.0, th.CurrentStatus())
	th.UpdateStatus(func(s float64) float64 { return s - 3 })
	assert.Equal(t, 0.0, th.CurrentStatus())
}

func TestForce(t *testing.T) {
	th := NewWithStrengthFactor(20)
	th.SetCurrentStatus(0.5)
	assert.Equal(t, physics.Vec3{Zv: 10}, th.Force())
	assert.Equal(t, physics.Vec3{}, New().Force())
}

func TestAxisAndVelocitiesAreRelative6D(t *testing.T) {
	axis := NewForceAxis(sixdof.New(1, 0, 0, 0, 0, 1))
	current := NewCurrentVelocity(sixdof.New(1, 1, 1, 1, 1, 1))
	intended := NewIntendedVelocity(sixdof.New(3, 1, 1, 1, 1, 0))

	assert.Equal(t, 2.0, sixdof.Dot(axis, current))
	assert.Equal(t, sixdof.Dot(current, axis), sixdof.Dot(axis, current))
	assert.Equal(t, sixdof.New(2, 0, 0, 0, 0, -1), sixdof.Generic(intended).Sub(sixdof.Generic(current)))

	var zero ForceAxis
	assert.Equal(t, 0.0, zero.Dot(intended))
}
