package seed

import (
	"testing"

	"github.com/DRSN-tech/catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical_IsValid(t *testing.T) {
	set := Canonical()

	require.NotEmpty(t, set.Categories)
	require.NotEmpty(t, set.Products)
	require.NotEmpty(t, set.Testimonials)

	for _, c := range set.Categories {
		assert.NoError(t, domain.Validate(c))
	}
	for _, tm := range set.Testimonials {
		assert.NoError(t, domain.Validate(tm))
	}
}

func TestCanonical_ProductsReferenceSeededCategories(t *testing.T) {
	set := Canonical()

	slugs := make(map[string]bool, len(set.Categories))
	for _, c := range set.Categories {
		assert.False(t, slugs[c.Slug], "duplicate slug %s", c.Slug)
		slugs[c.Slug] = true
	}

	for _, p := range set.Products {
		assert.True(t, slugs[p.CategorySlug], "product %q references unknown category %q", p.Name, p.CategorySlug)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.NoError(t, domain.Validate(domain.ProductInput{Name: p.Name, Price: domain.Ptr(p.Price), CategoryID: 1}))
	}
}

func TestCanonical_ReturnsIndependentCopies(t *testing.T) {
	a := Canonical()
	b := Canonical()

	*a.Categories[0].ImageURL = "changed"
	assert.NotEqual(t, "changed", *b.Categories[0].ImageURL)
}
