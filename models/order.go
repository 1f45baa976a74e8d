package models

// Customer identifies who placed an order. Phone is the primary contact
// channel: orders are confirmed by calling the customer back.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// Delivery holds the drop-off address for an order
type Delivery struct {
	Address string `json:"address"`
	City    string `json:"city"`
}

// OrderItem is one cart line inside a multi-item order
type OrderItem struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Color    string `json:"color"`
	Size     int    `json:"size"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// OrderProduct is the legacy single-product order shape, kept for direct
// "order this pair" submissions that bypass the cart
type OrderProduct struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Color      string `json:"color"`
	Size       int    `json:"size"`
	Quantity   int    `json:"quantity"`
	TotalPrice int    `json:"totalPrice"`
}

// Order is the persisted record for one checkout. Exactly one of Items or
// Product is set. Orders are immutable once recorded; status starts at
// "pending" and is only ever advanced manually.
// Example:
//
//	{
//	  "id": "ORD-1736954712345",
//	  "createdAt": "2026-01-15T14:25:12Z",
//	  "status": "pending",
//	  "customer": {"firstName": "Awa", "lastName": "Diop", "phone": "771234567", "email": ""},
//	  "delivery": {"address": "Sacré-Cœur 3", "city": "Dakar"},
//	  "items": [{"name": "Crocs Classic Noir Profond", "slug": "crocs-classic-noir", "color": "Noir Profond", "size": 42, "quantity": 1, "price": 15000}],
//	  "totalPrice": 15000,
//	  "message": ""
//	}
type Order struct {
	ID         string        `json:"id"`
	CreatedAt  string        `json:"createdAt"`
	Status     string        `json:"status"`
	Customer   Customer      `json:"customer"`
	Delivery   Delivery      `json:"delivery"`
	Items      []OrderItem   `json:"items,omitempty"`
	TotalPrice int           `json:"totalPrice,omitempty"`
	Product    *OrderProduct `json:"product,omitempty"`
	Message    string        `json:"message"`
}

// Total returns the order's grand total regardless of shape.
func (o *Order) Total() int {
	if o.Items != nil {
		return o.TotalPrice
	}
	if o.Product != nil {
		return o.Product.TotalPrice
	}
	return 0
}

// OrderItemInput is one cart line as submitted by the checkout form
type OrderItemInput struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Color    string `json:"color"`
	Size     int    `json:"size"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// CreateOrderRequest represents the checkout form payload. A cart checkout
// sends items; the single-product form sends productName/productSlug/color/
// size/quantity/totalPrice instead.
type CreateOrderRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Message   string `json:"message"`

	Items []OrderItemInput `json:"items,omitempty"`

	ProductName string `json:"productName,omitempty"`
	ProductSlug string `json:"productSlug,omitempty"`
	Color       string `json:"color,omitempty"`
	Size        int    `json:"size,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	TotalPrice  *int   `json:"totalPrice,omitempty"`
}

// CreateOrderResponse is returned on a successful submission
type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}
