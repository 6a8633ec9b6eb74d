package skiplist

import "fmt"

const (
	DefaultMaxLevel    = 16
	DefaultProbability = 0.5
)

// Source yields uniform draws in [0,1). It is the list's only source of
// structural randomness; tests inject a fixed-seed source so node
// heights are reproducible.
type Source interface {
	Float64() float64
}

// Options configure a new list. Both knobs are fixed at construction.
type Options struct {
	// MaxLevel is the level ceiling: nodes occupy levels 0..MaxLevel at
	// most, however many promotions they draw.
	MaxLevel int
	// Probability is the chance a node is promoted one further level.
	Probability float64
	// Rand supplies promotion draws. Nil selects a time-seeded default.
	Rand Source
}

func NewDefaultOptions() Options {
	return Options{
		MaxLevel:    DefaultMaxLevel,
		Probability: DefaultProbability,
	}
}

// Validate will check the requirements of options
func (o Options) Validate() []error {
	errs := []error{}
	if o.MaxLevel < 0 {
		errs = append(errs, fmt.Errorf("max level must be non-negative, got %d", o.MaxLevel))
	}
	if !(0 < o.Probability && o.Probability < 1) {
		errs = append(errs, fmt.Errorf("promotion probability must be inside (0,1), got %v", o.Probability))
	}
	return errs
}
