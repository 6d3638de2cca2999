package strategy

import (
	"errors"
	"fmt"
	"slices"
)

const (
	ExactAxisName    = "exact_axis"
	SaturatingName   = "saturating"
	ProportionalName = "proportional"

	DefaultName = ExactAxisName
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// New returns the built-in strategy registered under name.
// An empty name selects DefaultName.
func New[ID comparable](name string) (PureStrategy[ID], error) {
	switch name {
	case "", ExactAxisName:
		return ExactAxis[ID]{}, nil
	case SaturatingName:
		return Saturating[ID]{}, nil
	case ProportionalName:
		return Proportional[ID]{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownStrategy, name, Names())
	}
}

// Names lists the built-in strategies in sorted order.
func Names() []string {
	names := []string{ExactAxisName, SaturatingName, ProportionalName}
	slices.Sort(names)
	return names
}
