package dice

import (
	"math/rand/v2"
	"sync"
)

// randomRoller implements Roller with a PCG source.
// Not safe for concurrent use; take one per resolution.
type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the runtime's entropy
func NewRandomRoller() Roller {
	return &randomRoller{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewSeededRoller creates a roller whose sequence is fully determined by seed
func NewSeededRoller(seed uint64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Float64 implements Roller.Float64
func (r *randomRoller) Float64() float64 {
	return r.rng.Float64()
}

// IntN implements Roller.IntN
func (r *randomRoller) IntN(n int) int {
	return r.rng.IntN(n)
}

// seededFactory derives one deterministic stream per New call
type seededFactory struct {
	mu    sync.Mutex
	seed  uint64
	count uint64
}

// NewSeededFactory creates a factory whose Nth roller is always the same stream
func NewSeededFactory(seed uint64) Factory {
	return &seededFactory{seed: seed}
}

// New implements Factory.New
func (f *seededFactory) New() Roller {
	f.mu.Lock()
	defer f.mu.Unlock()

	stream := f.count
	f.count++
	return &randomRoller{
		rng: rand.New(rand.NewPCG(f.seed, stream)),
	}
}

type randomFactory struct{}

// NewRandomFactory creates a factory of entropy-seeded rollers
func NewRandomFactory() Factory {
	return randomFactory{}
}

// New implements Factory.New
func (randomFactory) New() Roller {
	return NewRandomRoller()
}
