package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStarterCatalog(t *testing.T) {
	assert.Len(t, StarterCategories, 4)
	assert.Len(t, StarterServices, 20)

	known := map[string]bool{}
	for _, c := range StarterCategories {
		known[c.Name] = true
	}

	names := map[string]bool{}
	perCategory := map[string]int{}
	for _, s := range StarterServices {
		assert.True(t, known[s.Category], s.Name)
		assert.False(t, names[s.Name], "duplicate %s", s.Name)
		assert.Positive(t, s.DurationMinutes, s.Name)
		assert.GreaterOrEqual(t, s.Price, 0.0, s.Name)
		names[s.Name] = true
		perCategory[s.Category]++
	}

	assert.Equal(t, 5, perCategory["Podstawowe zabiegi"])
	assert.Equal(t, 5, perCategory["Zabiegi specjalistyczne"])
	assert.Equal(t, 7, perCategory["Korekcja i ortopedia"])
	assert.Equal(t, 3, perCategory["Usługi dodatkowe"])
}
