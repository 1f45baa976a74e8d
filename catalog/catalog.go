package catalog

import (
	"sort"
	"strings"

	"crocsdkr/models"
)

// BaseProduct holds the fixed, code-owned metadata for a product line.
// Only the color -> images mapping is persisted; price, sizes, description
// and category never leave this table.
type BaseProduct struct {
	Name        string
	BasePrice   int
	Sizes       []int
	Category    string
	Description string
}

// baseProducts is ordered; derivation walks it in this order before the
// final name sort.
var baseProducts = []BaseProduct{
	{
		Name:        "Crocs Classic",
		BasePrice:   15000,
		Sizes:       []int{36, 37, 38, 39, 40, 41, 42, 43, 44, 45},
		Category:    "classic",
		Description: "Le modèle emblématique de Crocs, confortable et polyvalent pour toutes les occasions.",
	},
	{
		Name:        "Bape x Crocs Classic Clog",
		BasePrice:   20000,
		Sizes:       []int{36, 37, 38, 39, 40, 41, 42, 43, 44, 45},
		Category:    "collaboration",
		Description: "Édition limitée en collaboration avec Bape. Design exclusif et confort légendaire.",
	},
}

// colorLabels maps raw color names from the catalog document to the labels
// shown to customers. Unknown colors fall back to the raw name.
var colorLabels = map[string]string{
	"Classique":       "Coloris Classique",
	"Blanc":           "Blanc Pur",
	"Noir":            "Noir Profond",
	"Bleu":            "Bleu Royal",
	"Bleu Foncé":      "Bleu Marine",
	"Rose":            "Rose Pastel",
	"Vert":            "Vert Kaki",
	"Gris Anthracite": "Gris Anthracite",
}

// BaseProducts returns the static product line table.
func BaseProducts() []BaseProduct {
	return baseProducts
}

// DisplayColor returns the customer-facing label for a raw color name.
func DisplayColor(colorName string) string {
	if label, ok := colorLabels[colorName]; ok {
		return label
	}
	return colorName
}

// DeriveVariants expands the raw catalog document into the flat list of
// sellable products. Total: a nil or malformed document yields an empty list,
// never an error. Colors with no images are skipped. The result is sorted by
// name, case-insensitive.
func DeriveVariants(set models.ColorImageSet) []models.Product {
	products := []models.Product{}
	if set == nil {
		return products
	}

	for _, base := range baseProducts {
		colors, ok := set[base.Name]
		if !ok {
			continue
		}

		// Sort color names so derivation is deterministic; the original data
		// relied on insertion order, which Go maps do not preserve.
		names := make([]string, 0, len(colors))
		for colorName := range colors {
			names = append(names, colorName)
		}
		sort.Strings(names)

		for _, colorName := range names {
			images := colors[colorName]
			if len(images) == 0 {
				continue
			}

			display := DisplayColor(colorName)
			slug := VariantSlug(base.Name, colorName)

			sorted := append([]string(nil), images...)
			sort.Strings(sorted)

			products = append(products, models.Product{
				ID:          slug,
				Name:        base.Name + " " + display,
				Slug:        slug,
				Description: base.Description,
				BasePrice:   base.BasePrice,
				Color:       display,
				Images:      sorted,
				Sizes:       base.Sizes,
				Category:    base.Category,
			})
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
	})
	return products
}

// BySlug finds a variant by its slug.
func BySlug(set models.ColorImageSet, slug string) (models.Product, bool) {
	for _, p := range DeriveVariants(set) {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Product{}, false
}

// ByCategory filters variants by their category tag.
func ByCategory(set models.ColorImageSet, category string) []models.Product {
	filtered := []models.Product{}
	for _, p := range DeriveVariants(set) {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ByColor filters variants by their display color label.
func ByColor(set models.ColorImageSet, color string) []models.Product {
	filtered := []models.Product{}
	for _, p := range DeriveVariants(set) {
		if p.Color == color {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// AllColors returns the distinct display colors across all variants, sorted.
func AllColors(set models.ColorImageSet) []string {
	seen := make(map[string]bool)
	colors := []string{}
	for _, p := range DeriveVariants(set) {
		if !seen[p.Color] {
			seen[p.Color] = true
			colors = append(colors, p.Color)
		}
	}
	sort.Strings(colors)
	return colors
}
