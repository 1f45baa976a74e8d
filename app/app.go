package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"crocsdkr/app/controller"
	"crocsdkr/app/router"
	"crocsdkr/db"
	"crocsdkr/repository"
	"crocsdkr/service"
)

// Initialize initializes the application. The persistence backend is chosen
// once at startup from the environment: when database variables are set the
// hosted Postgres store is used, otherwise JSON files under DATA_DIR.
func Initialize() error {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	publicDir := os.Getenv("PUBLIC_DIR")
	if publicDir == "" {
		publicDir = "public"
	}

	productsFile := repository.NewFileStore(filepath.Join(dataDir, "products-data.json"))
	settingsFile := repository.NewFileStore(filepath.Join(dataDir, "site-settings.json"))

	var productsStore repository.DocumentStore
	var settingsStore repository.DocumentStore
	var ordersRepo repository.OrdersRepositoryInterface

	if db.Configured() {
		// Initialize database connection
		if err := db.InitDB(); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		// Hosted documents are seeded from the local files on first read
		productsStore = repository.NewSeededStore(
			repository.NewPostgresStore(db.DB, repository.ProductsTable, repository.ProductsKey),
			productsFile,
		)
		settingsStore = repository.NewSeededStore(
			repository.NewPostgresStore(db.DB, repository.SettingsTable, repository.SettingsKey),
			settingsFile,
		)
		ordersRepo = repository.NewPostgresOrdersRepository(db.DB)
		log.Printf("✓ Using hosted Postgres backend")
	} else {
		productsStore = productsFile
		settingsStore = settingsFile
		ordersRepo = repository.NewFileOrdersRepository(repository.NewFileStore(filepath.Join(dataDir, "orders.json")))
		log.Printf("✓ Using local file backend (%s)", dataDir)
	}

	// Initialize repositories
	productsRepo := repository.NewProductsRepository(productsStore)
	settingsRepo := repository.NewSettingsRepository(settingsStore)
	subscriptionsRepo := repository.NewSubscriptionsRepository(
		repository.NewFileStore(filepath.Join(dataDir, "push-subscriptions.json")),
	)

	// Image storage: Google Drive when credentials and a folder are
	// configured, the local public/images directory otherwise
	var imageStorage service.ImageStorageInterface
	staticDir := publicDir
	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	folderID := os.Getenv("DRIVE_IMAGES_FOLDER_ID")
	if credentialsPath != "" && folderID != "" {
		driveStorage, err := service.NewDriveImageStorage(context.Background(), credentialsPath, folderID)
		if err != nil {
			return fmt.Errorf("failed to initialize Drive storage: %w", err)
		}
		imageStorage = driveStorage
		staticDir = ""
		log.Printf("✓ Using Google Drive image storage")
	} else {
		imageStorage = service.NewLocalImageStorage(filepath.Join(publicDir, "images"))
	}

	// Initialize services
	pushService := service.NewPushService(
		subscriptionsRepo,
		os.Getenv("VAPID_PUBLIC_KEY"),
		os.Getenv("VAPID_PRIVATE_KEY"),
	)
	orderService := service.NewOrderService(ordersRepo, pushService)
	imageService := service.NewImageService(imageStorage)

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	exportService := service.NewExportService(baseURL)

	// Create controllers
	controllers := &router.Controllers{
		Product:  controller.NewProductController(productsRepo),
		Catalog:  controller.NewCatalogController(productsRepo, settingsRepo, exportService),
		Order:    controller.NewOrderController(orderService),
		Settings: controller.NewSettingsController(settingsRepo),
		Image:    controller.NewImageController(imageService),
		Push:     controller.NewPushController(subscriptionsRepo, pushService),
		Auth:     controller.NewAuthController(settingsRepo),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers, staticDir)

	return nil
}
