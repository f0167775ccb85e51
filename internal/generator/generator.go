// Package generator produces random drill targets.
package generator

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/verte-zerg/numdrill/internal/model"
)

// Generator produces randomized digit-string targets.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewWithSource returns a Generator backed by the given source.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Generate samples a target of exactly digits decimal digits. Multi-digit
// targets never start with zero because the sampled range excludes it.
// Levels outside the supported range clamp to the nearest level.
func (g *Generator) Generate(digits int) string {
	if digits < model.MinDigits {
		digits = model.MinDigits
	}
	if digits > model.MaxDigits {
		digits = model.MaxDigits
	}
	var lo, hi int
	switch digits {
	case 1:
		lo, hi = 0, 9
	case 2:
		lo, hi = 10, 99
	default:
		lo, hi = 100, 999
	}
	n := lo + g.rnd.Intn(hi-lo+1)
	return strconv.Itoa(n)
}
