package growtree

import (
	"fmt"
	"math/rand"
	"strings"
)

// Strategy decides which frontier candidate the next step grows from.
type Strategy int

const (
	// Newest always picks the most recently added candidate. Long, winding
	// corridors with few branches, like a recursive backtracker.
	Newest Strategy = iota
	// Random picks a uniformly random candidate. Short, highly branched
	// corridors, like Prim's algorithm.
	Random
	// NewestRandom flips a fair coin each step between Newest and Random.
	NewestRandom
)

// newestBias is the probability NewestRandom behaves as Newest.
const newestBias = 0.5

var strategyNames = map[Strategy]string{
	Newest:       "newest",
	Random:       "random",
	NewestRandom: "newest-random",
}

// Valid reports whether s is a defined strategy.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy resolves a case-insensitive strategy name. Underscores are
// accepted in place of the dash ("newest_random").
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for s, n := range strategyNames {
		if n == key {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Select returns an index in [0, n) for a frontier of size n.
// For NewestRandom the coin flip and the index draw are independent draws
// from rng. Select panics if n <= 0 or s is undefined.
// Complexity: O(1).
func (s Strategy) Select(rng *rand.Rand, n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("growtree: Select on empty frontier (n=%d)", n))
	}
	switch s {
	case Newest:
		return n - 1
	case Random:
		return rng.Intn(n)
	case NewestRandom:
		if rng.Float64() < newestBias {
			return n - 1
		}
		return rng.Intn(n)
	}
	panic(fmt.Sprintf("growtree: Select with %s", s))
}
