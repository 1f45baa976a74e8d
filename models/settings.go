package models

import "encoding/json"

// SettingsDocument is the whole site-settings document, keyed by section
// name. Sections are stored as raw JSON so section-level merge and list
// operations work uniformly without knowing every field.
type SettingsDocument map[string]json.RawMessage

// Known section names.
const (
	SectionHero         = "hero"
	SectionContact      = "contact"
	SectionStore        = "store"
	SectionTestimonials = "testimonials"
	SectionWhyUs        = "whyUs"
	SectionCategories   = "categories"
	SectionMaintenance  = "maintenance"
	SectionAdmin        = "admin"
)

// ListSections are the sections whose value is an array of items with
// unique ids; only these accept append/delete item operations.
var ListSections = map[string]bool{
	SectionTestimonials: true,
	SectionWhyUs:        true,
	SectionCategories:   true,
}

// HeroSettings is the home page banner section
type HeroSettings struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	ButtonText      string `json:"buttonText"`
	BackgroundImage string `json:"backgroundImage"`
}

// ContactSettings holds the shop's contact channels
type ContactSettings struct {
	Whatsapp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
	Location  string `json:"location"`
	Email     string `json:"email"`
	Hours     string `json:"hours"`
}

// StoreSettings is the shop identity shown in headers and footers
type StoreSettings struct {
	Name        string `json:"name"`
	Slogan      string `json:"slogan"`
	Description string `json:"description"`
}

// Testimonial is one customer quote on the home page
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
	Active  bool   `json:"active"`
}

// WhyUsItem is one selling-point card on the home page
type WhyUsItem struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// Category is a storefront navigation category. Order drives display
// position; the admin UI reorders by swapping the order values of two
// adjacent items.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	BasePrice   int    `json:"basePrice"`
	Active      bool   `json:"active"`
	Order       int    `json:"order"`
}

// MaintenanceSettings gates the whole storefront behind a message
type MaintenanceSettings struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
}

// AdminSettings holds the admin panel credentials. Updates to this section
// are shallow-merged so changing the password never clears the urlCode and
// vice versa.
type AdminSettings struct {
	Password string `json:"password"`
	URLCode  string `json:"urlCode"`
}

// UpdateSettingsRequest is the PUT /settings body. Section empty means the
// data object is merged into the top level of the document.
type UpdateSettingsRequest struct {
	Section string          `json:"section"`
	Data    json.RawMessage `json:"data"`
}

// AppendItemRequest is the POST /settings body for list-valued sections
type AppendItemRequest struct {
	Section string          `json:"section"`
	Item    json.RawMessage `json:"item"`
}

// LoginRequest is the POST /admin/login body
type LoginRequest struct {
	Password string `json:"password"`
}
