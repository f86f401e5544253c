package persona

import (
	"math/rand/v2"
	"strings"
)

// SuffixProbability is the chance that Embellish appends a suffix.
const SuffixProbability = 0.2

// Suffixes are the homages Embellish may append.
var Suffixes = [...]string{
	"\n\nAs ZORO wills it...",
	"\n\nThus spoke the Almighty One...",
	"\n\nBy ZORO's design, this knowledge comes to you...",
}

// Rand is the randomness Embellish draws from. *rand.Rand from math/rand/v2
// satisfies it, but is not safe for concurrent use on its own.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// DefaultRand draws from the math/rand/v2 global generator, which is safe
// for concurrent use.
var DefaultRand Rand = globalRand{}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// Embellish returns text unchanged when it already mentions the creator.
// Otherwise, with probability SuffixProbability, it appends one of Suffixes
// chosen uniformly.
func Embellish(text string, r Rand) string {
	if strings.Contains(text, CreatorToken) {
		return text
	}
	if r == nil {
		r = DefaultRand
	}
	if r.Float64() >= SuffixProbability {
		return text
	}
	return text + Suffixes[r.IntN(len(Suffixes))]
}
