package strategy

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/thrusters/internal/core/physics/sixdof"
	"github.com/zeusync/thrusters/internal/core/thruster"
)

type entityID struct{ index, generation uint32 }

func info(axis sixdof.Vec6) ThrusterInfo {
	return ThrusterInfo{Thruster: thruster.New(), ForceAxis: thruster.NewForceAxis(axis)}
}

func aimAt(v sixdof.Vec6) ParentInfo {
	return ParentInfo{IntendedVelocity: thruster.NewIntendedVelocity(v)}
}

func allStrategies[ID comparable](t *testing.T) []PureStrategy[ID] {
	t.Helper()
	var out []PureStrategy[ID]
	for _, name := range Names() {
		s, err := New[ID](name)
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

func TestDifference(t *testing.T) {
	p := ParentInfo{
		CurrentVelocity:  thruster.NewCurrentVelocity(sixdof.New(1, 2, 3, 0, 0, 0)),
		IntendedVelocity: thruster.NewIntendedVelocity(sixdof.New(4, 2, 0, 0, 1, 0)),
	}
	assert.Equal(t, sixdof.New(3, 0, -3, 0, 1, 0), p.Difference())
}

func TestExactAxisScenarios(t *testing.T) {
	forward := sixdof.New(1, 0, 0, 0, 0, 0)
	cases := []struct {
		name string
		axis sixdof.Vec6
		aim  sixdof.Vec6
		raw  float64
		set  float64
	}{
		{name: "parallel", axis: forward, aim: sixdof.New(2, 0, 0, 0, 0, 0), raw: 2, set: 1},
		{name: "opposed", axis: forward, aim: sixdof.New(-1, 0, 0, 0, 0, 0), raw: -1, set: 0},
		{name: "partial", axis: forward, aim: sixdof.New(0.5, 3, 0, 0, 0, 0), raw: 0.5, set: 0.5},
		{name: "zero axis", axis: sixdof.Vec6{}, aim: sixdof.New(5, -2, 1, 3, 4, 9), raw: 0, set: 0},
		{name: "zero aim", axis: sixdof.New(1, 1, 1, 1, 1, 1), aim: sixdof.Vec6{}, raw: 0, set: 0},
		{name: "rotation", axis: sixdof.New(0, 0, 0, 0.5, 0, -0.5), aim: sixdof.New(0, 0, 0, 1, 0, -1), raw: 1, set: 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ExactAxis[string]{}.Calculate(map[string]ThrusterInfo{"t": info(c.axis)}, aimAt(c.aim))
			require.Len(t, got, 1)
			assert.Equal(t, c.raw, got["t"])

			th := thruster.New()
			th.SetCurrentStatus(got["t"])
			assert.Equal(t, c.set, th.CurrentStatus())
		})
	}
}

func TestExactMatchScoresZero(t *testing.T) {
	v := sixdof.New(3, -1, 2, 0.5, 0, 7)
	parent := ParentInfo{
		CurrentVelocity:  thruster.NewCurrentVelocity(v),
		IntendedVelocity: thruster.NewIntendedVelocity(v),
	}
	blocks := map[int]ThrusterInfo{
		1: info(sixdof.New(1, 0, 0, 0, 0, 0)),
		2: info(sixdof.New(-1, 4, 0, 0, 2, 0)),
		3: info(sixdof.New(9, 9, 9, 9, 9, 9)),
	}
	for _, s := range allStrategies[int](t) {
		for id, score := range s.Calculate(blocks, parent) {
			assert.Equal(t, 0.0, score, "%s id=%d", s.Name(), id)
		}
	}
}

func TestShapePreserved(t *testing.T) {
	blocks := map[entityID]ThrusterInfo{
		{0, 1}: info(sixdof.New(1, 0, 0, 0, 0, 0)),
		{1, 1}: info(sixdof.New(0, 1, 0, 0, 0, 0)),
		{2, 7}: info(sixdof.Vec6{}),
	}
	parent := aimAt(sixdof.New(1, -1, 0, 0, 0, 0))

	for _, s := range allStrategies[entityID](t) {
		got := s.Calculate(blocks, parent)
		require.Len(t, got, len(blocks), s.Name())
		for id := range blocks {
			assert.Contains(t, got, id, s.Name())
		}

		empty := s.Calculate(map[entityID]ThrusterInfo{}, parent)
		assert.NotNil(t, empty, s.Name())
		assert.Empty(t, empty, s.Name())

		assert.Empty(t, s.Calculate(nil, parent), s.Name())
	}
}

func TestInputsNotMutated(t *testing.T) {
	th := thruster.New()
	th.SetCurrentStatus(0.3)
	blocks := map[string]ThrusterInfo{"a": {Thruster: th, ForceAxis: thruster.NewForceAxis(sixdof.New(1, 0, 0, 0, 0, 0))}}
	before := blocks["a"]

	for _, s := range allStrategies[string](t) {
		_ = s.Calculate(blocks, aimAt(sixdof.New(5, 0, 0, 0, 0, 0)))
		assert.Equal(t, before, blocks["a"], s.Name())
		assert.Len(t, blocks, 1)
	}
}

func TestDeterministic(t *testing.T) {
	blocks := map[string]ThrusterInfo{
		"a": info(sixdof.New(0.2, 0.3, 0, 0, 0, 0)),
		"b": info(sixdof.New(-0.5, 0, 1, 0, 0, 0)),
	}
	parent := aimAt(sixdof.New(1, 2, 3, 0, 0, 0))
	for _, s := range allStrategies[string](t) {
		assert.Equal(t, s.Calculate(blocks, parent), s.Calculate(blocks, parent), s.Name())
	}
}

func TestSaturating(t *testing.T) {
	blocks := map[string]ThrusterInfo{
		"fwd":  info(sixdof.New(1, 0, 0, 0, 0, 0)),
		"back": info(sixdof.New(-1, 0, 0, 0, 0, 0)),
		"half": info(sixdof.New(0.25, 0, 0, 0, 0, 0)),
	}
	got := Saturating[string]{}.Calculate(blocks, aimAt(sixdof.New(2, 0, 0, 0, 0, 0)))
	assert.Equal(t, map[string]float64{"fwd": 1, "back": 0, "half": 0.5}, got)
}

func TestProportional(t *testing.T) {
	blocks := map[string]ThrusterInfo{
		"fwd":  info(sixdof.New(1, 0, 0, 0, 0, 0)),
		"back": info(sixdof.New(-1, 0, 0, 0, 0, 0)),
		"half": info(sixdof.New(0.5, 0, 0, 0, 0, 0)),
	}

	got := Proportional[string]{}.Calculate(blocks, aimAt(sixdof.New(4, 0, 0, 0, 0, 0)))
	assert.Equal(t, map[string]float64{"fwd": 1, "back": 0, "half": 0.5}, got)

	// below saturation the raw projection is kept
	got = Proportional[string]{}.Calculate(blocks, aimAt(sixdof.New(0.5, 0, 0, 0, 0, 0)))
	assert.Equal(t, map[string]float64{"fwd": 0.5, "back": 0, "half": 0.25}, got)
}

func TestProportionalInfiniteAxis(t *testing.T) {
	blocks := map[string]ThrusterInfo{
		"a": info(sixdof.New(math.Inf(1), 0, 0, 0, 0, 0)),
		"b": info(sixdof.New(1, 0, 0, 0, 0, 0)),
		"c": info(sixdof.New(-1, 0, 0, 0, 0, 0)),
	}
	got := Proportional[string]{}.Calculate(blocks, aimAt(sixdof.New(1, 0, 0, 0, 0, 0)))
	assert.Equal(t, map[string]float64{"a": 1, "b": 0, "c": 0}, got)
	for id, score := range got {
		assert.False(t, math.IsNaN(score), id)
	}

	// NaN projections are neutral in every strategy
	nan := map[string]ThrusterInfo{"n": info(sixdof.New(math.NaN(), 0, 0, 0, 0, 0))}
	for _, s := range allStrategies[string](t) {
		assert.Equal(t, 0.0, s.Calculate(nan, aimAt(sixdof.New(1, 0, 0, 0, 0, 0)))["n"], s.Name())
	}
}

func TestFunc(t *testing.T) {
	s := Func[string]{
		StrategyName: "constant",
		Score:        func(ThrusterInfo, sixdof.Vec6) float64 { return 0.5 },
	}
	assert.Equal(t, "constant", s.Name())
	assert.Equal(t, map[string]float64{"a": 0.5}, s.Calculate(map[string]ThrusterInfo{"a": {}}, ParentInfo{}))
}

func TestRegistry(t *testing.T) {
	s, err := New[string]("")
	require.NoError(t, err)
	assert.Equal(t, ExactAxisName, s.Name())

	for _, name := range Names() {
		s, err := New[uint64](name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}

	_, err = New[string]("magic")
	require.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Contains(t, err.Error(), "magic")
}

func TestConcurrentUse(t *testing.T) {
	blocks := map[int]ThrusterInfo{}
	for i := 0; i < 32; i++ {
		blocks[i] = info(sixdof.New(float64(i%3)-1, 0, 0, 0, 0, 0))
	}
	parent := aimAt(sixdof.New(1, 0, 0, 0, 0, 0))
	want := ExactAxis[int]{}.Calculate(blocks, parent)

	var s PureStrategy[int] = ExactAxis[int]{}
	wg := sync.WaitGroup{}
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, s.Calculate(blocks, parent))
		}()
	}
	wg.Wait()
}

func BenchmarkExactAxis(b *testing.B) {
	blocks := map[int]ThrusterInfo{}
	for i := 0; i < 64; i++ {
		blocks[i] = info(sixdof.New(float64(i), 1, 0, 0, 0, -1))
	}
	parent := aimAt(sixdof.New(1, 2, 3, 4, 5, 6))
	s := ExactAxis[int]{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Calculate(blocks, parent)
	}
}
