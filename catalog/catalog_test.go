package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crocsdkr/models"
)

func sampleSet() models.ColorImageSet {
	return models.ColorImageSet{
		"Crocs Classic": {
			"Noir":       {"/images/crocs classic noir 2.jpeg", "/images/crocs classic noir 1.jpeg"},
			"Blanc":      {"/images/crocs classic blanc 1.jpeg"},
			"Bleu Foncé": {"/images/crocs classic bleu fonce 1.jpeg"},
			"Rose":       {}, // no images, must not become a variant
		},
		"Bape x Crocs Classic Clog": {
			"Classique": {"/images/bape 1.jpeg"},
		},
		"Unknown Type": {
			"Noir": {"/images/unknown 1.jpeg"}, // not a known product line
		},
	}
}

func TestDeriveVariants(t *testing.T) {
	products := DeriveVariants(sampleSet())
	require.Len(t, products, 4)

	slugs := make([]string, 0, len(products))
	for _, p := range products {
		slugs = append(slugs, p.Slug)
	}
	assert.Contains(t, slugs, "crocs-classic-noir")
	assert.Contains(t, slugs, "crocs-classic-blanc")
	assert.Contains(t, slugs, "crocs-classic-bleu-fonce")
	assert.Contains(t, slugs, "bape-x-crocs-classic-clog-classique")
	assert.NotContains(t, slugs, "crocs-classic-rose")
}

func TestDeriveVariantsAttributes(t *testing.T) {
	noir, ok := BySlug(sampleSet(), "crocs-classic-noir")
	require.True(t, ok)

	assert.Equal(t, "Crocs Classic Noir Profond", noir.Name)
	assert.Equal(t, "Noir Profond", noir.Color)
	assert.Equal(t, 15000, noir.BasePrice)
	assert.Equal(t, "classic", noir.Category)
	assert.Equal(t, noir.Slug, noir.ID)
	// images come back sorted
	assert.Equal(t, []string{
		"/images/crocs classic noir 1.jpeg",
		"/images/crocs classic noir 2.jpeg",
	}, noir.Images)
	assert.Equal(t, []int{36, 37, 38, 39, 40, 41, 42, 43, 44, 45}, noir.Sizes)
}

func TestDeriveVariantsSortedByName(t *testing.T) {
	products := DeriveVariants(sampleSet())
	require.NotEmpty(t, products)
	// "Bape x ..." sorts before "Crocs ..." case-insensitively
	assert.Equal(t, "bape-x-crocs-classic-clog-classique", products[0].Slug)
}

func TestDeriveVariantsTotal(t *testing.T) {
	assert.Empty(t, DeriveVariants(nil))
	assert.Empty(t, DeriveVariants(models.ColorImageSet{}))
	assert.Empty(t, DeriveVariants(models.ColorImageSet{"Crocs Classic": nil}))
}

func TestColorLabelFallback(t *testing.T) {
	set := models.ColorImageSet{
		"Crocs Classic": {
			"Turquoise": {"/images/t1.jpeg"},
		},
	}
	products := DeriveVariants(set)
	require.Len(t, products, 1)
	assert.Equal(t, "Turquoise", products[0].Color)
	assert.Equal(t, "Crocs Classic Turquoise", products[0].Name)
}

func TestByCategoryAndColor(t *testing.T) {
	set := sampleSet()

	classics := ByCategory(set, "classic")
	assert.Len(t, classics, 3)
	collabs := ByCategory(set, "collaboration")
	assert.Len(t, collabs, 1)

	noirs := ByColor(set, "Noir Profond")
	require.Len(t, noirs, 1)
	assert.Equal(t, "crocs-classic-noir", noirs[0].Slug)

	colors := AllColors(set)
	assert.Equal(t, []string{"Blanc Pur", "Bleu Marine", "Coloris Classique", "Noir Profond"}, colors)
}
