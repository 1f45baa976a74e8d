package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"crocsdkr/models"
	"crocsdkr/utils"
)

// ExportService renders the derived catalog as a shareable HTML page and
// prints it to PDF through headless Chrome. The PDF is what gets forwarded
// to customers over WhatsApp.
type ExportService struct {
	baseURL string
}

// NewExportService creates a new ExportService. baseURL is where this
// server is reachable by the local Chrome instance.
func NewExportService(baseURL string) *ExportService {
	return &ExportService{baseURL: baseURL}
}

// detectChromePath checks CHROME_PATH first, then common install locations
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// catalogPage is one page of the rendered catalog
type catalogPage struct {
	Products []catalogProduct
}

type catalogProduct struct {
	Name  string
	Color string
	Price string
	Image string
	Sizes []int
}

const productsPerPage = 6

// RenderCatalogHTML renders the catalog template for the given variants
func (s *ExportService) RenderCatalogHTML(products []models.Product, store models.StoreSettings) (string, error) {
	pages := []catalogPage{}
	current := catalogPage{}
	for _, p := range products {
		image := ""
		if len(p.Images) > 0 {
			image = p.Images[0]
			if len(image) > 0 && image[0] == '/' {
				image = s.baseURL + image
			}
		}
		current.Products = append(current.Products, catalogProduct{
			Name:  p.Name,
			Color: p.Color,
			Price: utils.FormatFCFA(p.BasePrice),
			Image: image,
			Sizes: p.Sizes,
		})
		if len(current.Products) == productsPerPage {
			pages = append(pages, current)
			current = catalogPage{}
		}
	}
	if len(current.Products) > 0 {
		pages = append(pages, current)
	}

	templatePath := filepath.Join("templates", "catalog.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse catalog template: %w", err)
	}

	data := struct {
		StoreName string
		Slogan    string
		Date      string
		Pages     []catalogPage
	}{
		StoreName: store.Name,
		Slogan:    store.Slogan,
		Date:      time.Now().Format("02/01/2006"),
		Pages:     pages,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute catalog template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF navigates headless Chrome to the render endpoint and prints it
func (s *ExportService) GeneratePDF(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // required in containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromeCtx, chromeCancel := chromedp.NewContext(allocCtx)
	defer chromeCancel()

	renderURL := s.baseURL + "/admin/catalog/render"

	var pdf []byte
	err := chromedp.Run(chromeCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second), // let images finish loading
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print catalog to PDF: %w", err)
	}
	return pdf, nil
}
