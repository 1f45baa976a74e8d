package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"crocsdkr/models"
	"crocsdkr/repository"
)

// ProductController handles HTTP requests for the raw catalog document
type ProductController struct {
	products repository.ProductsRepositoryInterface
}

// NewProductController creates a new ProductController
func NewProductController(products repository.ProductsRepositoryInterface) *ProductController {
	return &ProductController{products: products}
}

// GetProducts handles GET /products
// Example response:
// {
//   "Crocs Classic": {
//     "Noir": ["/images/crocs classic noir 1.jpeg"]
//   }
// }
func (c *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	set, err := c.products.Get(r.Context())
	if err != nil {
		log.Printf("❌ GetProducts: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de la lecture des produits")
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// CreateColor handles POST /products
// Example request: {"productType": "Crocs Classic", "color": "Noir", "images": ["/images/crocs classic noir 1.jpeg"]}
func (c *ProductController) CreateColor(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateColor: Received %s request to %s", r.Method, r.URL.Path)

	var req models.SetColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateColor: invalid body: %v", err)
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	if err := c.products.SetColor(r.Context(), req.ProductType, req.Color, req.Images); err != nil {
		log.Printf("❌ CreateColor: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de l'ajout du produit")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Produit ajouté avec succès",
	})
}

// UpdateColor handles PUT /products
// Example request: {"productType": "Crocs Classic", "oldColor": "Noir", "newColor": "Bleu Foncé", "images": [...]}
func (c *ProductController) UpdateColor(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateColor: Received %s request to %s", r.Method, r.URL.Path)

	var req models.UpdateColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateColor: invalid body: %v", err)
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	if err := c.products.UpdateColor(r.Context(), req.ProductType, req.OldColor, req.NewColor, req.Images); err != nil {
		log.Printf("❌ UpdateColor: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de la modification du produit")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Produit modifié avec succès",
	})
}

// DeleteColor handles DELETE /products?productType=&color=
func (c *ProductController) DeleteColor(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteColor: Received %s request to %s", r.Method, r.URL.RequestURI())

	productType := r.URL.Query().Get("productType")
	color := r.URL.Query().Get("color")
	if productType == "" || color == "" {
		writeError(w, http.StatusBadRequest, "Paramètres manquants")
		return
	}

	if err := c.products.DeleteColor(r.Context(), productType, color); err != nil {
		log.Printf("❌ DeleteColor: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de la suppression du produit")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Produit supprimé avec succès",
	})
}
