package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	Seed   int64
	Width  int
	Height int
	Types  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "membrane", Scale: 6, TPS: 30, Seed: 42, Width: 96, Height: 96, Types: 3}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "rounds per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for lattice population and move decisions")
	fs.IntVar(&c.Width, "w", c.Width, "lattice columns")
	fs.IntVar(&c.Height, "h", c.Height, "lattice rows")
	fs.IntVar(&c.Types, "types", c.Types, "number of lipid types")
}

// SimOptions converts the flag values into the registry's key/value form.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"types": strconv.Itoa(c.Types),
		"seed":  strconv.FormatInt(c.Seed, 10),
	}
}
