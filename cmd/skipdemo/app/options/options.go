package options

import (
	"Skipdex/pkg/skiplist"
	"Skipdex/pkg/util/random"

	"github.com/spf13/pflag"
)

type Options struct {
	MaxLevel    int     `mapstructure:"max-level"`
	Probability float64 `mapstructure:"probability"`
	Seed        uint32  `mapstructure:"seed"`
	Employees   bool    `mapstructure:"employees"`
	DumpLevels  bool    `mapstructure:"dump-levels"`
}

func New() *Options {
	return &Options{
		MaxLevel:    skiplist.DefaultMaxLevel,
		Probability: skiplist.DefaultProbability,
		Seed:        0,
		Employees:   true,
		DumpLevels:  true,
	}
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.MaxLevel, "max-level", o.MaxLevel,
		"Skip list level ceiling")
	fs.Float64Var(&o.Probability, "probability", o.Probability,
		"Level promotion probability, inside (0,1)")
	fs.Uint32Var(&o.Seed, "seed", o.Seed,
		"Random seed for node heights, 0 picks the current time")
	fs.BoolVar(&o.Employees, "employees", o.Employees,
		"Run the employee database demo")
	fs.BoolVar(&o.DumpLevels, "dump-levels", o.DumpLevels,
		"Print the per-level structure dumps")
}

// Validate will check the requirements of options
func (o *Options) Validate() []error {
	return o.IndexOptions().Validate()
}

// IndexOptions translates the cli options into skip list options.
func (o *Options) IndexOptions() skiplist.Options {
	opts := skiplist.Options{
		MaxLevel:    o.MaxLevel,
		Probability: o.Probability,
	}
	if o.Seed != 0 {
		opts.Rand = random.New(o.Seed)
	}
	return opts
}
