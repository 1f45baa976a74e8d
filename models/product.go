package models

// ColorImageSet is the raw catalog document: product type name -> color name -> image paths.
// This is the only persisted catalog state; everything else about a product is derived.
type ColorImageSet map[string]map[string][]string

// Product represents a sellable variant derived from the catalog document
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	BasePrice   int      `json:"basePrice"`
	Color       string   `json:"color"`
	Images      []string `json:"images"`
	Sizes       []int    `json:"sizes"`
	Category    string   `json:"category"`
}

// SetColorRequest represents the request body for adding a color entry
// Example: {"productType": "Crocs Classic", "color": "Noir", "images": ["/images/crocs classic noir 1.jpeg"]}
type SetColorRequest struct {
	ProductType string   `json:"productType"`
	Color       string   `json:"color"`
	Images      []string `json:"images"`
}

// UpdateColorRequest represents the request body for updating a color entry,
// optionally renaming the color
type UpdateColorRequest struct {
	ProductType string   `json:"productType"`
	OldColor    string   `json:"oldColor,omitempty"`
	NewColor    string   `json:"newColor"`
	Images      []string `json:"images"`
}
