package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Deterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestNew_ZeroSeed(t *testing.T) {
	assert.Equal(t, New(1).Int63(), New(0).Int63())
}
