package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"crocsdkr/catalog"
	"crocsdkr/models"
	"crocsdkr/repository"
	"crocsdkr/service"
)

// CatalogController serves the derived storefront catalog and its
// shareable export
type CatalogController struct {
	products repository.ProductsRepositoryInterface
	settings repository.SettingsRepositoryInterface
	export   *service.ExportService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(
	products repository.ProductsRepositoryInterface,
	settings repository.SettingsRepositoryInterface,
	export *service.ExportService,
) *CatalogController {
	return &CatalogController{products: products, settings: settings, export: export}
}

// GetCatalog handles GET /catalog with optional slug, category and color
// filters. The response is the derived variant list, never the raw document.
func (c *CatalogController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	set, err := c.products.Get(r.Context())
	if err != nil {
		log.Printf("❌ GetCatalog: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de la lecture des produits")
		return
	}

	query := r.URL.Query()
	if slug := query.Get("slug"); slug != "" {
		product, ok := catalog.BySlug(set, slug)
		if !ok {
			writeError(w, http.StatusNotFound, "Produit introuvable")
			return
		}
		writeJSON(w, http.StatusOK, product)
		return
	}

	var products []models.Product
	switch {
	case query.Get("category") != "":
		products = catalog.ByCategory(set, query.Get("category"))
	case query.Get("color") != "":
		products = catalog.ByColor(set, query.Get("color"))
	default:
		products = catalog.DeriveVariants(set)
	}
	writeJSON(w, http.StatusOK, products)
}

// Render handles GET /admin/catalog/render: the HTML page headless Chrome
// prints for the export
func (c *CatalogController) Render(w http.ResponseWriter, r *http.Request) {
	set, err := c.products.Get(r.Context())
	if err != nil {
		log.Printf("❌ Render: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de la lecture des produits")
		return
	}

	store := c.storeSettings(r)
	html, err := c.export.RenderCatalogHTML(catalog.DeriveVariants(set), store)
	if err != nil {
		log.Printf("❌ Render: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors du rendu du catalogue")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, html)
}

// Export handles GET /admin/catalog/export and returns the catalog PDF
func (c *CatalogController) Export(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Export: Received %s request to %s", r.Method, r.URL.Path)

	pdf, err := c.export.GeneratePDF(r.Context())
	if err != nil {
		log.Printf("❌ Export: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de la génération du PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="catalogue-crocsdkr.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// storeSettings reads the store identity section, falling back to defaults
// when settings are unavailable; the export must not fail over a banner name
func (c *CatalogController) storeSettings(r *http.Request) models.StoreSettings {
	store := models.StoreSettings{Name: "Crocsdkr", Slogan: "Le confort à vos pieds"}
	raw, err := c.settings.GetSection(r.Context(), models.SectionStore)
	if err != nil {
		return store
	}
	if err := json.Unmarshal(raw, &store); err != nil {
		return models.StoreSettings{Name: "Crocsdkr", Slogan: "Le confort à vos pieds"}
	}
	return store
}
