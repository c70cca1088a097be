package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"orbit-lod/internal/sim"
	"orbit-lod/internal/surface"
	"orbit-lod/pkg/core"
)

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Elevation float64
	Threshold float64
	Margin    float64
	Tick      time.Duration
	TPS       int
	Seed      int64
	Profile   string
	Min       float64
	Max       float64
	Width     int
	Height    int
	Out       string
	Audio     bool
	Verbose   bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Elevation: 10,
		Threshold: 20,
		Margin:    20,
		Tick:      sim.DefaultPeriod,
		TPS:       60,
		Profile:   "asteroid",
		Min:       50,
		Max:       100,
		Width:     800,
		Height:    800,
		Out:       "orbit.png",
		Audio:     true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.Elevation, "elevation", c.Elevation, "viewer elevation in world units")
	fs.Float64Var(&c.Threshold, "threshold", c.Threshold, "largest screen chord in pixels")
	fs.Float64Var(&c.Margin, "margin", c.Margin, "pixels between horizon and viewport edge")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "simulation tick period")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ebiten updates per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "surface seed (0 picks one from the clock)")
	fs.StringVar(&c.Profile, "profile", c.Profile, "surface profile: "+strings.Join(surface.Names(), "|"))
	fs.Float64Var(&c.Min, "min", c.Min, "smallest surface radius")
	fs.Float64Var(&c.Max, "max", c.Max, "largest surface radius")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.StringVar(&c.Out, "out", c.Out, "snapshot output path")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "play thruster audio")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "log renderer diagnostics")
}

// Validate reports the first setting the viewers cannot work with.
func (c *Config) Validate() error {
	switch {
	case c.Elevation <= 0:
		return fmt.Errorf("elevation must be positive, got %v", c.Elevation)
	case c.Threshold <= 0:
		return fmt.Errorf("threshold must be positive, got %v", c.Threshold)
	case c.Min < 0 || c.Min > c.Max:
		return fmt.Errorf("surface radius range [%v, %v] is empty", c.Min, c.Max)
	case c.Tick <= 0:
		return errors.New("tick must be positive")
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("viewport %dx%d is empty", c.Width, c.Height)
	}
	if _, ok := surface.Profiles()[c.Profile]; !ok {
		return fmt.Errorf("unknown profile %q (have %s)", c.Profile, strings.Join(surface.Names(), ", "))
	}
	return nil
}

// SurfaceSeed builds the surface seed from -seed, drawing one from the clock
// when it is zero.
func (c *Config) SurfaceSeed() core.Seed {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.NewSeed(seed)
}
