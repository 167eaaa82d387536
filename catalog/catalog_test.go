package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIntegrity(t *testing.T) {
	cat := Seed()

	properties := cat.Properties()
	require.Len(t, properties, 9)

	seen := make(map[int]bool)
	for _, p := range properties {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Address)
		assert.Greater(t, p.SqFt, 0)
		assert.GreaterOrEqual(t, p.Bedrooms, 0)
	}

	assert.Len(t, cat.Agents(), 4)
}

func TestPropertyByID(t *testing.T) {
	cat := Seed()

	p, err := cat.PropertyByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Classic Suburban Home", p.Title)

	_, err = cat.PropertyByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccessorsReturnCopies(t *testing.T) {
	cat := Seed()

	first := cat.Properties()
	first[0].Title = "scribbled over"

	again := cat.Properties()
	assert.Equal(t, "Modern Luxury Villa", again[0].Title)

	agents := cat.Agents()
	agents[0].Name = "nobody"
	assert.Equal(t, "Jennifer Moore", cat.Agents()[0].Name)
}
