package controllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"phihorizon/models"
	"phihorizon/store"
)

// OrderController handles order-related requests
type OrderController struct {
	Store *store.Store
	Log   *logrus.Entry

	// Idempotency-Key header -> created order id, so a retried checkout
	// submission replays the original order instead of creating a duplicate.
	idemMu sync.Mutex
	idem   map[string]string
}

// NewOrderController creates a new OrderController
func NewOrderController(s *store.Store, logger *logrus.Logger) *OrderController {
	return &OrderController{
		Store: s,
		Log:   logger.WithField("controller", "order"),
		idem:  make(map[string]string),
	}
}

// CreateOrder snapshots the current cart into a new order and clears the cart
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ShippingAddress models.Address `json:"shippingAddress"`
		PaymentMethod   string         `json:"paymentMethod"`
		CouponCode      string         `json:"couponCode"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	idemKey := r.Header.Get("Idempotency-Key")
	if idemKey != "" {
		oc.idemMu.Lock()
		orderID, seen := oc.idem[idemKey]
		oc.idemMu.Unlock()
		if seen {
			if order, ok := oc.Store.OrderByID(orderID); ok {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(order)
				return
			}
		}
	}

	order, err := oc.Store.CreateOrder(body.ShippingAddress, body.PaymentMethod)
	if err != nil {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	if idemKey != "" {
		oc.idemMu.Lock()
		oc.idem[idemKey] = order.ID
		oc.idemMu.Unlock()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// GetOrders returns the order history, newest first
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(oc.Store.Orders())
}

// GetOrderByID returns a single order, used by order tracking
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	order, ok := oc.Store.OrderByID(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(order)
}

// UpdateOrderStatus overwrites the status of an order (Admin only)
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status models.OrderStatus `json:"status"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	orderID := mux.Vars(r)["id"]
	switch err := oc.Store.UpdateOrderStatus(orderID, body.Status); err {
	case nil:
	case store.ErrInvalidStatus:
		http.Error(w, "Invalid order status", http.StatusBadRequest)
		return
	default:
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	oc.Log.WithFields(logrus.Fields{"order": orderID, "status": body.Status}).Info("order status updated")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Order status updated successfully"})
}
