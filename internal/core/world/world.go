package world

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/thrusters/internal/core/vehicle"
)

const defaultShardCount = 16

var (
	ErrVehicleExists   = errors.New("vehicle already exists")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrEmptyName       = errors.New("vehicle name is empty")
)

// World stores vehicles by name, sharded by the xxhash of the name.
type World struct {
	shards []shard
}

type shard struct {
	mx       sync.RWMutex
	vehicles map[string]*vehicle.Vehicle
}

// New creates a World with shardCount shards; non-positive counts use the default.
func New(shardCount int) *World {
	if shardCount <= 0 {
		shardCount = defaultShardCount
	}
	w := &World{shards: make([]shard, shardCount)}
	for i := range w.shards {
		w.shards[i].vehicles = make(map[string]*vehicle.Vehicle)
	}
	return w
}

func (w *World) shardFor(name string) *shard {
	return &w.shards[xxhash.Sum64String(name)%uint64(len(w.shards))]
}

func (w *World) Add(v *vehicle.Vehicle) error {
	if v.Name() == "" {
		return ErrEmptyName
	}
	sh := w.shardFor(v.Name())
	sh.mx.Lock()
	defer sh.mx.Unlock()

	if _, ok := sh.vehicles[v.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrVehicleExists, v.Name())
	}
	sh.vehicles[v.Name()] = v
	return nil
}

func (w *World) Get(name string) (*vehicle.Vehicle, error) {
	sh := w.shardFor(name)
	sh.mx.RLock()
	defer sh.mx.RUnlock()

	v, ok := sh.vehicles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVehicleNotFound, name)
	}
	return v, nil
}

func (w *World) Remove(name string) error {
	sh := w.shardFor(name)
	sh.mx.Lock()
	defer sh.mx.Unlock()

	if _, ok := sh.vehicles[name]; !ok {
		return fmt.Errorf("%w: %s", ErrVehicleNotFound, name)
	}
	delete(sh.vehicles, name)
	return nil
}

func (w *World) Len() int {
	n := 0
	for i := range w.shards {
		sh := &w.shards[i]
		sh.mx.RLock()
		n += len(sh.vehicles)
		sh.mx.RUnlock()
	}
	return n
}

// Vehicles returns every vehicle sorted by name.
func (w *World) Vehicles() []*vehicle.Vehicle {
	var out []*vehicle.Vehicle
	for i := range w.shards {
		sh := &w.shards[i]
		sh.mx.RLock()
		for _, v := range sh.vehicles {
			out = append(out, v)
		}
		sh.mx.RUnlock()
	}
	slices.SortFunc(out, func(a, b *vehicle.Vehicle) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return out
}

// Range calls action for each vehicle in name order until it returns false.
// Shard locks are not held while action runs.
func (w *World) Range(action func(v *vehicle.Vehicle) bool) {
	for _, v := range w.Vehicles() {
		if !action(v) {
			return
		}
	}
}
