package mockdice

import (
	"fmt"
	"sync"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu        sync.Mutex
	values    []float64
	nextIndex int
}

// NewManualMockRoller creates a new mock roller
func NewManualMockRoller(values ...float64) *ManualMockRoller {
	m := &ManualMockRoller{}
	m.SetValues(values)
	return m
}

// SetNextValue queues the next Float64 result
func (m *ManualMockRoller) SetNextValue(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = append(m.values, v)
}

// SetValues replaces the queued results
func (m *ManualMockRoller) SetValues(values []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = append([]float64{}, values...)
	m.nextIndex = 0
}

// Reset clears all values and resets the index
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = []float64{}
	m.nextIndex = 0
}

// Used returns how many values have been consumed
func (m *ManualMockRoller) Used() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nextIndex
}

func (m *ManualMockRoller) next() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nextIndex >= len(m.values) {
		panic(fmt.Sprintf("no more predetermined values available (used %d of %d)", m.nextIndex, len(m.values)))
	}

	v := m.values[m.nextIndex]
	m.nextIndex++
	return v
}

// Float64 implements dice.Roller.Float64
func (m *ManualMockRoller) Float64() float64 {
	v := m.next()
	if v < 0 || v >= 1 {
		panic(fmt.Sprintf("invalid predetermined value %v, want [0, 1)", v))
	}
	return v
}

// IntN implements dice.Roller.IntN by scaling the next value onto [0, n)
func (m *ManualMockRoller) IntN(n int) int {
	if n <= 0 {
		panic("invalid argument to IntN")
	}
	return int(m.Float64() * float64(n))
}
