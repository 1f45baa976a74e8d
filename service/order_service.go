package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"crocsdkr/models"
	"crocsdkr/repository"
	"crocsdkr/utils"
)

// ValidationError is a rejected order submission; the message is shown to
// the customer as-is
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

const (
	errMissingCustomerFields = "Champs obligatoires manquants : prénom, nom, téléphone, adresse."
	errMissingProductFields  = "Champs obligatoires manquants : produit, pointure, prix."
)

// OrderService validates and records order submissions
type OrderService struct {
	orders repository.OrdersRepositoryInterface
	push   PushSenderInterface

	mu     sync.Mutex
	lastID int64
}

// NewOrderService creates a new OrderService
func NewOrderService(orders repository.OrdersRepositoryInterface, push PushSenderInterface) *OrderService {
	return &OrderService{orders: orders, push: push}
}

// Submit validates the payload, shapes it into an Order, appends it to the
// store and notifies the admin devices. Validation fails fast on the first
// violated rule. Notification is best-effort and never fails the submission.
func (s *OrderService) Submit(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	order, err := s.shape(req)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Add(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	title, body := NotificationText(order)
	go func() {
		// Detached from the request: the customer never waits on, or hears
		// about, push delivery.
		s.push.SendToAll(context.Background(), title, body)
	}()

	log.Printf("✓ Submit: recorded order %s (%s)", order.ID, utils.FormatFCFA(order.Total()))
	return order, nil
}

// List returns all orders, newest first
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) shape(req *models.CreateOrderRequest) (*models.Order, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	phone := strings.TrimSpace(req.Phone)
	address := strings.TrimSpace(req.Address)

	if firstName == "" || lastName == "" || phone == "" || address == "" {
		return nil, &ValidationError{Message: errMissingCustomerFields}
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		city = "Dakar"
	}

	order := &models.Order{
		ID:        s.freshID(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Status:    "pending",
		Customer: models.Customer{
			FirstName: firstName,
			LastName:  lastName,
			Phone:     phone,
			Email:     strings.TrimSpace(req.Email),
		},
		Delivery: models.Delivery{
			Address: address,
			City:    city,
		},
		Message: strings.TrimSpace(req.Message),
	}

	if len(req.Items) > 0 {
		total := 0
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			qty := it.Quantity
			if qty < 1 {
				qty = 1
			}
			items = append(items, models.OrderItem{
				Name:     it.Name,
				Slug:     it.Slug,
				Color:    it.Color,
				Size:     it.Size,
				Quantity: qty,
				Price:    it.Price,
			})
			total += it.Price * qty
		}
		order.Items = items
		order.TotalPrice = total
		return order, nil
	}

	// Legacy single-product shape.
	if req.ProductName == "" || req.Size == 0 || req.TotalPrice == nil {
		return nil, &ValidationError{Message: errMissingProductFields}
	}
	qty := req.Quantity
	if qty < 1 {
		qty = 1
	}
	order.Product = &models.OrderProduct{
		Name:       req.ProductName,
		Slug:       req.ProductSlug,
		Color:      req.Color,
		Size:       req.Size,
		Quantity:   qty,
		TotalPrice: *req.TotalPrice,
	}
	return order, nil
}

// freshID builds a time-based order id, bumped when two submissions land on
// the same millisecond so ids stay unique and ordered
func (s *OrderService) freshID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return fmt.Sprintf("ORD-%d", now)
}

// NotificationText builds the push notification for a recorded order
func NotificationText(order *models.Order) (title, body string) {
	title = "Nouvelle commande Crocsdkr"

	var summary string
	if order.Items != nil {
		summary = fmt.Sprintf("%d article(s) • %s", len(order.Items), utils.FormatFCFA(order.TotalPrice))
	} else if order.Product != nil {
		summary = fmt.Sprintf("%s • %s", order.Product.Name, utils.FormatFCFA(order.Product.TotalPrice))
	}

	body = fmt.Sprintf("%s %s — %s", order.Customer.FirstName, order.Customer.LastName, summary)
	return title, body
}
