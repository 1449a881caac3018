// Package riskmodel implements a self-contained credit risk laboratory:
// a seeded synthetic portfolio generator, a segment-level PD calibrator,
// a scorer applying calibration state, and a stress engine. Everything is
// in-memory and single-threaded; one Model instance owns one random stream
// and one set of calibration scalers.
package riskmodel

import (
	"golang.org/x/exp/rand"
)

// Config holds construction-time model parameters. It is immutable once the
// model is built. Ranges are inclusive for integer draws (EAD, term) and
// half-open uniform for float draws (LGD, coupon), matching the generator.
type Config struct {
	Seed            uint64
	Segments        []string
	BasePD          map[string]float64
	PDFloor         float64
	PDCap           float64
	LGDRange        [2]float64
	EADRange        [2]int
	CouponRange     [2]float64
	TermRangeMonths [2]int
}

// DefaultConfig returns the reference parameterization: three consumer credit
// segments with base annual PDs and plausible LGD/EAD/coupon/term ranges.
func DefaultConfig() Config {
	return Config{
		Seed:     42,
		Segments: []string{"Prime", "Near-Prime", "Subprime"},
		BasePD: map[string]float64{
			"Prime":      0.005,
			"Near-Prime": 0.015,
			"Subprime":   0.045,
		},
		PDFloor:         0.0005,
		PDCap:           0.40,
		LGDRange:        [2]float64{0.25, 0.65},
		EADRange:        [2]int{1_000, 25_000},
		CouponRange:     [2]float64{0.025, 0.175},
		TermRangeMonths: [2]int{12, 72},
	}
}

// Option configures a Model at construction.
type Option func(*Config)

// WithSeed sets the random seed.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithSegments sets the ordered segment list.
func WithSegments(segments ...string) Option {
	return func(c *Config) { c.Segments = segments }
}

// WithBasePD sets the per-segment baseline PD map.
func WithBasePD(basePD map[string]float64) Option {
	return func(c *Config) { c.BasePD = basePD }
}

// WithPDBounds sets the PD floor and cap applied to every PD column.
func WithPDBounds(floor, cap float64) Option {
	return func(c *Config) { c.PDFloor, c.PDCap = floor, cap }
}

// WithLGDRange sets the uniform LGD draw range.
func WithLGDRange(lo, hi float64) Option {
	return func(c *Config) { c.LGDRange = [2]float64{lo, hi} }
}

// WithEADRange sets the inclusive integer EAD draw range.
func WithEADRange(lo, hi int) Option {
	return func(c *Config) { c.EADRange = [2]int{lo, hi} }
}

// WithCouponRange sets the uniform coupon draw range.
func WithCouponRange(lo, hi float64) Option {
	return func(c *Config) { c.CouponRange = [2]float64{lo, hi} }
}

// WithTermRange sets the inclusive integer term draw range in months.
func WithTermRange(lo, hi int) Option {
	return func(c *Config) { c.TermRangeMonths = [2]int{lo, hi} }
}

// Model owns the seeded random stream and the mutable calibration state.
// Two models built with the same options and driven through the same call
// sequence produce identical tables. A Model is not safe for concurrent use;
// callers needing parallelism own one seeded instance each.
type Model struct {
	cfg     Config
	src     rand.Source
	rng     *rand.Rand
	scalers map[string]float64
}

// New builds a Model from the default config plus options. Calibration
// scalers start at 1.0 for every configured segment.
func New(opts ...Option) *Model {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	src := rand.NewSource(cfg.Seed)
	m := &Model{
		cfg:     cfg,
		src:     src,
		rng:     rand.New(src),
		scalers: make(map[string]float64, len(cfg.Segments)),
	}
	for _, seg := range cfg.Segments {
		m.scalers[seg] = 1.0
	}
	return m
}

// Config returns the model configuration.
func (m *Model) Config() Config { return m.cfg }

// Scalers returns a copy of the current per-segment calibration scalers.
func (m *Model) Scalers() map[string]float64 {
	out := make(map[string]float64, len(m.scalers))
	for k, v := range m.scalers {
		out[k] = v
	}
	return out
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
