package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crocsdkr/models"
	"crocsdkr/repository"
	"crocsdkr/service"
)

type silentPush struct{}

func (silentPush) Enabled() bool                            { return false }
func (silentPush) PublicKey() string                        { return "" }
func (silentPush) SendToAll(_ context.Context, _, _ string) {}

func newTestOrderController(t *testing.T) *OrderController {
	t.Helper()
	store := repository.NewFileStore(filepath.Join(t.TempDir(), "orders.json"))
	orders := repository.NewFileOrdersRepository(store)
	return NewOrderController(service.NewOrderService(orders, silentPush{}))
}

func postOrder(t *testing.T, c *OrderController, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	c.CreateOrder(rec, req)
	return rec
}

func TestCreateOrderThenList(t *testing.T) {
	c := newTestOrderController(t)

	first := postOrder(t, c, `{
		"firstName": "Awa", "lastName": "Diop", "phone": "771234567",
		"address": "Sacré-Cœur 3",
		"items": [{"name": "Crocs Classic Noir Profond", "slug": "crocs-classic-noir",
		           "color": "Noir Profond", "size": 42, "quantity": 2, "price": 15000}]
	}`)
	require.Equal(t, http.StatusOK, first.Code)

	var created models.CreateOrderResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.Contains(t, created.OrderID, "ORD-")

	second := postOrder(t, c, `{
		"firstName": "Moussa", "lastName": "Ndiaye", "phone": "781234567",
		"address": "Ouakam",
		"items": [{"name": "Crocs Classic Vert", "slug": "crocs-classic-vert",
		           "color": "Vert", "size": 40, "quantity": 1, "price": 15000}]
	}`)
	require.Equal(t, http.StatusOK, second.Code)

	rec := httptest.NewRecorder()
	c.ListOrders(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)

	// Newest first
	assert.Equal(t, "Moussa", orders[0].Customer.FirstName)
	assert.Equal(t, "Awa", orders[1].Customer.FirstName)
	assert.Equal(t, 30000, orders[1].TotalPrice)
	assert.Equal(t, "pending", orders[0].Status)
	assert.Equal(t, "Dakar", orders[0].Delivery.City)
}

func TestCreateOrderValidationFailure(t *testing.T) {
	c := newTestOrderController(t)

	rec := postOrder(t, c, `{
		"firstName": "Awa", "lastName": "Diop", "address": "Sacré-Cœur 3",
		"items": [{"name": "Crocs Classic Noir Profond", "size": 42, "quantity": 1, "price": 15000}]
	}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Champs obligatoires manquants : prénom, nom, téléphone, adresse.", body["error"])

	// Nothing recorded
	list := httptest.NewRecorder()
	c.ListOrders(list, httptest.NewRequest(http.MethodGet, "/orders", nil))
	var orders []models.Order
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &orders))
	assert.Empty(t, orders)
}
