package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"crocsdkr/models"
	"crocsdkr/service"
)

// OrderController handles HTTP requests for orders
type OrderController struct {
	orders *service.OrderService
}

// NewOrderController creates a new OrderController
func NewOrderController(orders *service.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// ListOrders handles GET /orders. A failing store degrades to an empty list:
// the admin dashboard must render even when the backend is unhappy.
func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.List(r.Context())
	if err != nil {
		log.Printf("❌ ListOrders: %v", err)
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// CreateOrder handles POST /orders
// Example request:
// {
//   "firstName": "Awa", "lastName": "Diop", "phone": "771234567",
//   "address": "Sacré-Cœur 3", "city": "Dakar",
//   "items": [{"name": "Crocs Classic Noir Profond", "slug": "crocs-classic-noir",
//              "color": "Noir Profond", "size": 42, "quantity": 1, "price": 15000}]
// }
// Example response: {"success": true, "orderId": "ORD-1736954712345"}
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateOrder: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateOrder: invalid body: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de l'enregistrement de la commande")
		return
	}

	order, err := c.orders.Submit(r.Context(), &req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			log.Printf("❌ CreateOrder: rejected: %s", vErr.Message)
			writeError(w, http.StatusBadRequest, vErr.Message)
			return
		}
		log.Printf("❌ CreateOrder: %v", err)
		writeError(w, http.StatusInternalServerError, "Erreur lors de l'enregistrement de la commande")
		return
	}

	writeJSON(w, http.StatusOK, models.CreateOrderResponse{
		Success: true,
		OrderID: order.ID,
	})
}
