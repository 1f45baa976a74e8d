package controller

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"crocsdkr/repository"
	"crocsdkr/service"
)

// maxUploadMemory caps in-memory multipart parsing; larger parts spill to disk
const maxUploadMemory = 32 << 20

// ImageController handles catalog image upload, listing and deletion
type ImageController struct {
	images *service.ImageService
}

// NewImageController creates a new ImageController
func NewImageController(images *service.ImageService) *ImageController {
	return &ImageController{images: images}
}

// Upload handles POST /upload (multipart form: files[], productName, color)
// Example response:
// {"success": true, "paths": ["/images/crocs classic noir 1.jpeg"], "message": "1 image(s) uploadée(s) avec succès"}
func (c *ImageController) Upload(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Upload: Received %s request to %s", r.Method, r.URL.Path)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		log.Printf("❌ Upload: invalid multipart form: %v", err)
		writeError(w, http.StatusBadRequest, "Formulaire invalide")
		return
	}

	var files []service.UploadFile
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["files"] {
			f, err := header.Open()
			if err != nil {
				log.Printf("❌ Upload: failed to open %s: %v", header.Filename, err)
				writeError(w, http.StatusInternalServerError, "Erreur lors de l'upload")
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				log.Printf("❌ Upload: failed to read %s: %v", header.Filename, err)
				writeError(w, http.StatusInternalServerError, "Erreur lors de l'upload")
				return
			}
			files = append(files, service.UploadFile{Name: header.Filename, Data: data})
		}
	}

	productName := r.FormValue("productName")
	color := r.FormValue("color")

	paths, err := c.images.Upload(r.Context(), files, productName, color)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			writeError(w, http.StatusBadRequest, vErr.Message)
			return
		}
		log.Printf("❌ Upload: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de l'upload")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"paths":   paths,
		"message": fmt.Sprintf("%d image(s) uploadée(s) avec succès", len(paths)),
	})
}

// ListImages handles GET /images
// Example response: {"images": ["/images/crocs classic noir 1.jpeg"]}
func (c *ImageController) ListImages(w http.ResponseWriter, r *http.Request) {
	images, err := c.images.List(r.Context())
	if err != nil {
		log.Printf("❌ ListImages: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de la lecture des images")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"images": images})
}

// DeleteImage handles DELETE /images?path=
func (c *ImageController) DeleteImage(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteImage: Received %s request to %s", r.Method, r.URL.RequestURI())

	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "Chemin de l'image manquant")
		return
	}

	if err := c.images.Delete(r.Context(), path); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidImagePath):
			writeError(w, http.StatusBadRequest, "Chemin invalide")
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "Image non trouvée")
		default:
			log.Printf("❌ DeleteImage: %v", err)
			writeError(w, http.StatusInternalServerError, "Erreur lors de la suppression")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Image supprimée",
	})
}
