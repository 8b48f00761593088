// Package numbering generates invoice numbers for new drafts.
package numbering

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Prefix starts every generated invoice number.
const Prefix = "INV"

// Generator produces numbers of the form INV-YYMM-NNN.
// Numbers are suggestions for the form; collisions are possible and the
// user may overwrite them.
type Generator struct {
	now    func() time.Time
	random func(n int) int
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRandom sets the source of the trailing number. random(n) must return
// a value in [0, n).
func WithRandom(random func(n int) int) Option {
	return func(g *Generator) { g.random = random }
}

// NewGenerator creates a generator using the wall clock and math/rand.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		now:    time.Now,
		random: rand.IntN,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next returns a new invoice number, e.g. "INV-2410-042" for October 2024.
func (g *Generator) Next() string {
	t := g.now()
	return fmt.Sprintf("%s-%02d%02d-%03d", Prefix, t.Year()%100, int(t.Month()), g.random(1000))
}
