package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides uniform random draws
// This allows us to inject seeded or scripted sources for testing and replay
type Roller interface {
	// Float64 returns a value in [0, 1)
	Float64() float64

	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// Factory hands out an independent Roller per resolution
type Factory interface {
	New() Roller
}
