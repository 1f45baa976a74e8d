package router

import (
	"net/http"
	"path/filepath"

	"crocsdkr/app/controller"
)

type Controllers struct {
	Product  *controller.ProductController
	Catalog  *controller.CatalogController
	Order    *controller.OrderController
	Settings *controller.SettingsController
	Image    *controller.ImageController
	Push     *controller.PushController
	Auth     *controller.AuthController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers every route on the default mux. publicDir is the
// directory whose images/ subfolder is served statically; it is empty when
// the Drive backend hosts the catalog images.
func SetupRoutes(controllers *Controllers, publicDir string) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Raw product document routes (admin color management)
	http.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			controllers.Product.GetProducts(w, r)
		case http.MethodPost:
			controllers.Product.CreateColor(w, r)
		case http.MethodPut:
			controllers.Product.UpdateColor(w, r)
		case http.MethodDelete:
			controllers.Product.DeleteColor(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Derived storefront catalog
	http.HandleFunc("/catalog", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Catalog.GetCatalog(w, r)
	})

	// Orders routes
	http.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Order.CreateOrder(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Order.ListOrders(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Site settings routes - GET (read), PUT (replace/merge section),
	// POST (append list item), DELETE (remove list item)
	http.HandleFunc("/settings", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			controllers.Settings.GetSettings(w, r)
		case http.MethodPut:
			controllers.Settings.UpdateSettings(w, r)
		case http.MethodPost:
			controllers.Settings.AppendItem(w, r)
		case http.MethodDelete:
			controllers.Settings.DeleteItem(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Image upload
	http.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Image.Upload(w, r)
	})

	// Image listing and deletion
	http.HandleFunc("/images", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Image.ListImages(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Image.DeleteImage(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Push notifications routes
	http.HandleFunc("/push-subscribe", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Push.Subscribe(w, r)
	})
	http.HandleFunc("/push-public-key", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Push.PublicKey(w, r)
	})

	// Admin routes
	http.HandleFunc("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Auth.Login(w, r)
	})

	// Catalog export: the HTML page headless Chrome prints, and the PDF itself
	http.HandleFunc("/admin/catalog/render", controllers.Catalog.Render)
	http.HandleFunc("/admin/catalog/export", controllers.Catalog.Export)

	// Static catalog images when the local storage backend is active
	if publicDir != "" {
		imagesDir := filepath.Join(publicDir, "images")
		http.Handle("/images/", http.StripPrefix("/images/", http.FileServer(http.Dir(imagesDir))))
	}
}
