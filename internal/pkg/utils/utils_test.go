package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIDIsMonotonic(t *testing.T) {
	prev := NextID()
	for i := 0; i < 1000; i++ {
		next := NextID()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestGenerateUUID(t *testing.T) {
	assert.Len(t, GenerateUUID(), 36)
	assert.NotEqual(t, GenerateUUID(), GenerateUUID())
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"u1", "u2", "CREATOR"}, Distinct([]string{"u1", " u2", "", "u1", "CREATOR", "u2 "}))
	assert.Empty(t, Distinct(nil))
}
