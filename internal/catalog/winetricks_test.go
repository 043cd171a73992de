package catalog_test

import (
	"testing"

	"lpm/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func TestSearch_MinimumQueryLength(t *testing.T) {
	assert.Nil(t, catalog.Search(""))
	assert.Nil(t, catalog.Search("v"))
	assert.Nil(t, catalog.Search(" v "))
	assert.NotEmpty(t, catalog.Search("vc"))
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	lower := catalog.Search("vcrun")
	upper := catalog.Search("VCRUN")
	assert.Equal(t, lower, upper)
	assert.Contains(t, lower, "vcrun2019")

	assert.Contains(t, catalog.Search("net4"), "dotnet40")
}

func TestSearch_NoMatches(t *testing.T) {
	assert.Empty(t, catalog.Search("zzzz"))
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := catalog.All()
	a[0] = "mutated"
	assert.NotEqual(t, a[0], catalog.All()[0])
}
