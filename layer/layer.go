package layer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLayer is returned for an unrecognized layer name.
var ErrUnknownLayer = errors.New("unknown layer")

// Layer is a named depth policy applied to a profile's total budget.
type Layer struct {
	// Name identifies the layer (headline, one_screen, deep).
	Name string

	// BudgetMultiplier is the fraction of the total budget this layer
	// may use, in (0, 1].
	BudgetMultiplier float64

	// MaxSentences optionally caps the sentence count; 0 means no cap.
	// The character ceiling always governs when both constrain.
	MaxSentences int

	// IncludeHash appends a content fingerprint of the source text,
	// used by the deep layer for traceability.
	IncludeHash bool
}

// Builtin layers in canonical depth order. Multipliers are
// non-decreasing with depth by convention, not enforcement.
var builtins = []Layer{
	{Name: "headline", BudgetMultiplier: 0.1, MaxSentences: 2},
	{Name: "one_screen", BudgetMultiplier: 0.8},
	{Name: "deep", BudgetMultiplier: 1.0, IncludeHash: true},
}

// BuiltinNames returns the builtin layer names in canonical order.
func BuiltinNames() []string {
	names := make([]string, len(builtins))
	for i, l := range builtins {
		names[i] = l.Name
	}
	return names
}

// Builtin returns the named builtin layer.
func Builtin(name string) (Layer, bool) {
	for _, l := range builtins {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// Resolve maps layer names to builtin layers, preserving request
// order. An unrecognized name fails with ErrUnknownLayer listing the
// valid names.
func Resolve(names []string) ([]Layer, error) {
	layers := make([]Layer, 0, len(names))
	for _, name := range names {
		l, ok := Builtin(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q (available: %s)",
				ErrUnknownLayer, name, strings.Join(BuiltinNames(), ", "))
		}
		layers = append(layers, l)
	}
	return layers, nil
}

// Allocation is one layer's share of a total budget.
type Allocation struct {
	Layer   Layer
	Ceiling int
}

// Partition splits a total character budget into per-layer ceilings,
// preserving request order. Each ceiling is floored at 1 so every
// layer keeps a usable budget.
func Partition(totalBudget int, layers []Layer) []Allocation {
	allocations := make([]Allocation, len(layers))
	for i, l := range layers {
		ceiling := int(float64(totalBudget) * l.BudgetMultiplier)
		if ceiling < 1 {
			ceiling = 1
		}
		allocations[i] = Allocation{Layer: l, Ceiling: ceiling}
	}
	return allocations
}
