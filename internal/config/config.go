// Package config loads vehicle definitions and allocator settings from YAML or JSON.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/thrusters/internal/core/observability/log"
	"github.com/zeusync/thrusters/internal/core/physics/sixdof"
	"github.com/zeusync/thrusters/internal/core/strategy"
	"github.com/zeusync/thrusters/internal/core/thruster"
	"github.com/zeusync/thrusters/internal/core/vehicle"
	"github.com/zeusync/thrusters/internal/core/world"
)

var (
	ErrNoVehicles        = errors.New("no vehicles configured")
	ErrInvalidVehicle    = errors.New("invalid vehicle")
	ErrUnsupportedFormat = errors.New("unsupported config file extension")
)

type Config struct {
	LogLevel string    `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	Strategy string    `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Workers  int       `json:"workers,omitempty" yaml:"workers,omitempty"`
	Shards   int       `json:"shards,omitempty" yaml:"shards,omitempty"`
	Vehicles []Vehicle `json:"vehicles" yaml:"vehicles"`
}

type Vehicle struct {
	Name             string      `json:"name" yaml:"name"`
	CurrentVelocity  sixdof.Vec6 `json:"current_velocity" yaml:"current_velocity"`
	IntendedVelocity sixdof.Vec6 `json:"intended_velocity" yaml:"intended_velocity"`
	Thrusters        []Thruster  `json:"thrusters" yaml:"thrusters"`
}

// Thruster describes one mounted thruster. StrengthFactor defaults to 1 when omitted.
type Thruster struct {
	Name           string      `json:"name" yaml:"name"`
	StrengthFactor *float64    `json:"strength_factor,omitempty" yaml:"strength_factor,omitempty"`
	Axis           sixdof.Vec6 `json:"axis" yaml:"axis"`
}

// LoadJSON loads config from JSON reader.
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode json config: %w", err)
	}
	return &c, nil
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode yaml config: %w", err)
	}
	return &c, nil
}

// LoadFile picks the decoder from the file extension and validates the result.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c *Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c, err = LoadYAML(f)
	case ".json":
		c, err = LoadJSON(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate reports every problem found, joined.
func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := strategy.New[vehicle.ThrusterID](c.Strategy); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", c.Workers))
	}
	if len(c.Vehicles) == 0 {
		errs = append(errs, ErrNoVehicles)
	}

	seen := make(map[string]struct{}, len(c.Vehicles))
	for i, v := range c.Vehicles {
		if v.Name == "" {
			errs = append(errs, fmt.Errorf("%w: vehicles[%d] has no name", ErrInvalidVehicle, i))
			continue
		}
		if _, ok := seen[v.Name]; ok {
			errs = append(errs, fmt.Errorf("%w: duplicate name %q", ErrInvalidVehicle, v.Name))
		}
		seen[v.Name] = struct{}{}
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level, info when unset or invalid.
func (c *Config) Level() log.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

// NewStrategy returns the configured strategy.
func (c *Config) NewStrategy() (strategy.PureStrategy[vehicle.ThrusterID], error) {
	return strategy.New[vehicle.ThrusterID](c.Strategy)
}

// Build adds every configured vehicle to w. Out-of-range strength factors are
// clamped by the thruster, not rejected.
func (c *Config) Build(w *world.World) error {
	for _, vc := range c.Vehicles {
		v := vehicle.New(vc.Name)
		v.SetVelocities(vc.CurrentVelocity, vc.IntendedVelocity)
		for _, tc := range vc.Thrusters {
			t := thruster.New()
			if tc.StrengthFactor != nil {
				t.SetStrengthFactor(*tc.StrengthFactor)
			}
			v.Mount(tc.Name, t, thruster.NewForceAxis(tc.Axis))
		}
		if err := w.Add(v); err != nil {
			return fmt.Errorf("build vehicle %q: %w", vc.Name, err)
		}
	}
	return nil
}
