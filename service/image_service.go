package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrInvalidImagePath is returned when a delete targets a path outside the
// public images directory
var ErrInvalidImagePath = errors.New("invalid image path")

const (
	// Uploads larger than this are resized down before storage.
	maxImageDimension = 1600
	jpegQuality       = 85
)

// imageExtensions are the file extensions served as catalog images
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// ImageStorageInterface defines the contract for the image backend (local
// directory or Drive folder). Save returns the public-facing path.
type ImageStorageInterface interface {
	Save(ctx context.Context, fileName string, data []byte) (string, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, publicPath string) error
}

// UploadFile is one file from a multipart upload
type UploadFile struct {
	Name string
	Data []byte
}

// ImageService names, optimizes and stores catalog images
type ImageService struct {
	storage ImageStorageInterface
}

// NewImageService creates a new ImageService
func NewImageService(storage ImageStorageInterface) *ImageService {
	return &ImageService{storage: storage}
}

// Upload stores each file under a name derived from the product and color
// ("crocs classic noir 1.jpeg", "... 2.jpeg", ...) and returns the public
// paths. The first failure aborts the batch.
func (s *ImageService) Upload(ctx context.Context, files []UploadFile, productName, color string) ([]string, error) {
	if len(files) == 0 {
		return nil, &ValidationError{Message: "Aucun fichier reçu"}
	}

	cleanProduct := cleanNamePart(productName, "produit")
	cleanColor := cleanNamePart(color, "default")

	paths := make([]string, 0, len(files))
	for i, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Name))
		if ext == "" {
			ext = ".jpeg"
		}

		data := s.optimize(file.Data, ext)
		fileName := fmt.Sprintf("%s %s %d%s", cleanProduct, cleanColor, i+1, ext)

		path, err := s.storage.Save(ctx, fileName, data)
		if err != nil {
			return nil, fmt.Errorf("failed to store %s: %w", fileName, err)
		}
		paths = append(paths, path)
	}

	log.Printf("✓ Upload: stored %d image(s) for %s / %s", len(paths), productName, color)
	return paths, nil
}

// List returns the public paths of all stored images
func (s *ImageService) List(ctx context.Context) ([]string, error) {
	return s.storage.List(ctx)
}

// Delete removes one stored image by its public path
func (s *ImageService) Delete(ctx context.Context, publicPath string) error {
	return s.storage.Delete(ctx, publicPath)
}

// optimize re-encodes oversized JPEG/PNG uploads capped at maxImageDimension.
// Anything that cannot be decoded is stored untouched.
func (s *ImageService) optimize(data []byte, ext string) []byte {
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return data
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return data
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxImageDimension && bounds.Dy() <= maxImageDimension {
		return data
	}

	resized := imaging.Fit(img, maxImageDimension, maxImageDimension, imaging.Lanczos)

	var buf bytes.Buffer
	format := imaging.JPEG
	opts := []imaging.EncodeOption{imaging.JPEGQuality(jpegQuality)}
	if ext == ".png" {
		format = imaging.PNG
		opts = nil
	}
	if err := imaging.Encode(&buf, resized, format, opts...); err != nil {
		return data
	}

	log.Printf("✓ Optimized image: %dx%d -> fit %d (%d -> %d bytes)",
		bounds.Dx(), bounds.Dy(), maxImageDimension, len(data), buf.Len())
	return buf.Bytes()
}

// cleanNamePart lowercases and strips everything but letters and digits,
// collapsing the rest to single spaces
func cleanNamePart(value, fallback string) string {
	lowered := strings.ToLower(strings.TrimSpace(value))
	var b strings.Builder
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	cleaned := strings.Join(strings.Fields(b.String()), " ")
	if cleaned == "" {
		return fallback
	}
	return cleaned
}
