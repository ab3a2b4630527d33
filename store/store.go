// Package store implements the commerce state manager: user session, cart,
// wishlist, orders and the active coupon, persisted write-through to a
// key-value backend and rehydrated on startup.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"phihorizon/models"
	"phihorizon/storage"
)

// Storage keys. The whole slice is rewritten on every mutation.
const (
	keyUser     = "user"
	keyCart     = "cart"
	keyWishlist = "wishlist"
	keyOrders   = "orders"
)

// AdminEmail is the reserved address that logs in with admin privileges.
const AdminEmail = "admin@phihorizon.com"

var (
	ErrNoUser          = errors.New("no user logged in")
	ErrAddressNotFound = errors.New("address not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrEmptyCart       = errors.New("cart is empty")
)

// Store owns the session state. All access is serialized by a single mutex
// so the HTTP layer cannot observe a partially applied mutation.
type Store struct {
	mu      sync.RWMutex
	backend storage.Backend
	log     *logrus.Entry

	user     *models.User
	cart     []models.CartItem
	wishlist []models.WishlistItem
	orders   []models.Order
	coupon   string

	// last issued time-based id, so two creations in the same millisecond
	// still get distinct ids
	lastID int64
}

// New loads any previously persisted state from the backend. Missing or
// corrupt entries fall back to empty state; load never fails.
func New(backend storage.Backend, logger *logrus.Logger) *Store {
	s := &Store{
		backend: backend,
		log:     logger.WithField("component", "store"),
	}
	s.load(keyUser, &s.user)
	s.load(keyCart, &s.cart)
	s.load(keyWishlist, &s.wishlist)
	s.load(keyOrders, &s.orders)
	return s
}

func (s *Store) load(key string, dest interface{}) {
	data, err := s.backend.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.WithError(err).WithField("key", key).Warn("failed to read persisted state")
		}
		return
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("discarding corrupt persisted state")
	}
}

func (s *Store) persist(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Error("failed to encode state")
		return
	}
	if err := s.backend.Set(key, data); err != nil {
		s.log.WithError(err).WithField("key", key).Error("failed to persist state")
	}
}

func (s *Store) persistUser() {
	if s.user == nil {
		if err := s.backend.Delete(keyUser); err != nil {
			s.log.WithError(err).Error("failed to remove persisted user")
		}
		return
	}
	s.persist(keyUser, s.user)
}

// Login succeeds for any non-empty email and password. The reserved admin
// address gets the admin flag; no password verification happens here, this
// is a demo session, not an auth boundary.
func (s *Store) Login(email, password string) bool {
	if email == "" || password == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	isAdmin := email == AdminEmail
	name := strings.SplitN(email, "@", 2)[0]
	if isAdmin {
		name = "Admin User"
	}
	s.user = &models.User{
		ID:        "1",
		Email:     email,
		Name:      name,
		IsAdmin:   isAdmin,
		Addresses: []models.Address{},
	}
	s.persistUser()
	s.log.WithFields(logrus.Fields{"email": email, "admin": isAdmin}).Info("user logged in")
	return true
}

// Register succeeds for any non-empty email, password and name.
func (s *Store) Register(email, password, name string) bool {
	if email == "" || password == "" || name == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &models.User{
		ID:        fmt.Sprintf("%d", s.nextID()),
		Email:     email,
		Name:      name,
		IsAdmin:   false,
		Addresses: []models.Address{},
	}
	s.persistUser()
	s.log.WithField("email", email).Info("user registered")
	return true
}

// Logout clears the user, cart, wishlist and coupon. Orders are kept; the
// order history belongs to the demo session.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.cart = nil
	s.wishlist = nil
	s.coupon = ""
	s.persistUser()
	s.persist(keyCart, s.cartLocked())
	s.persist(keyWishlist, s.wishlistLocked())
}

// User returns a copy of the current user, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	u.Addresses = append([]models.Address{}, s.user.Addresses...)
	return &u
}

// IsAdmin reports whether the current user has the admin flag.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin
}

// UpdateProfile sets the user's display name and phone.
func (s *Store) UpdateProfile(name, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNoUser
	}
	s.user.Name = name
	s.user.Phone = phone
	s.persistUser()
	return nil
}

// AddAddress appends an address to the current user, generating its id.
// When the new address is flagged default, the flag is cleared on all others.
func (s *Store) AddAddress(addr models.Address) (models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.Address{}, ErrNoUser
	}
	addr.ID = fmt.Sprintf("%d", s.nextID())
	if addr.IsDefault {
		s.clearDefaultAddress()
	}
	s.user.Addresses = append(s.user.Addresses, addr)
	s.persistUser()
	return addr, nil
}

// UpdateAddress replaces the address with the matching id.
func (s *Store) UpdateAddress(addr models.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNoUser
	}
	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID == addr.ID {
			if addr.IsDefault {
				s.clearDefaultAddress()
			}
			s.user.Addresses[i] = addr
			s.persistUser()
			return nil
		}
	}
	return ErrAddressNotFound
}

// DeleteAddress removes the address with the matching id.
func (s *Store) DeleteAddress(addressID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNoUser
	}
	for i := range s.user.Addresses {
		if s.user.Addresses[i].ID == addressID {
			s.user.Addresses = append(s.user.Addresses[:i], s.user.Addresses[i+1:]...)
			s.persistUser()
			return nil
		}
	}
	return ErrAddressNotFound
}

func (s *Store) clearDefaultAddress() {
	for i := range s.user.Addresses {
		s.user.Addresses[i].IsDefault = false
	}
}

// AddToCart adds quantity of a product with the given variant selection.
// An existing line for the same (product, variants) pair is incremented
// rather than duplicated.
func (s *Store) AddToCart(product models.Product, quantity int, variants map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := product.ID + "|" + models.VariantKey(variants)
	for i := range s.cart {
		if s.cart[i].LineKey() == key {
			s.cart[i].Quantity += quantity
			s.persist(keyCart, s.cart)
			return
		}
	}
	s.cart = append(s.cart, models.CartItem{
		ProductID:        product.ID,
		Product:          product,
		Quantity:         quantity,
		SelectedVariants: variants,
	})
	s.persist(keyCart, s.cart)
}

// UpdateCartItem sets the quantity of the line matching the product id and
// variant selection. A quantity of zero or less removes the line.
func (s *Store) UpdateCartItem(productID string, variants map[string]string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := productID + "|" + models.VariantKey(variants)
	for i := range s.cart {
		if s.cart[i].LineKey() != key {
			continue
		}
		if quantity <= 0 {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
		} else {
			s.cart[i].Quantity = quantity
		}
		s.persist(keyCart, s.cart)
		return
	}
}

// RemoveFromCart removes every line for the product id, across all variant
// selections.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.cart = kept
	s.persist(keyCart, s.cart)
}

// ClearCart empties the cart and drops the active coupon.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCartLocked()
}

func (s *Store) clearCartLocked() {
	s.cart = nil
	s.coupon = ""
	s.persist(keyCart, s.cartLocked())
}

// Cart returns a copy of the cart lines.
func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartLocked()
}

func (s *Store) cartLocked() []models.CartItem {
	return append([]models.CartItem{}, s.cart...)
}

// AddToWishlist saves a product. Adding an already-saved product is a no-op.
func (s *Store) AddToWishlist(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.wishlist {
		if item.ProductID == product.ID {
			return
		}
	}
	s.wishlist = append(s.wishlist, models.WishlistItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Product:   product,
	})
	s.persist(keyWishlist, s.wishlist)
}

// RemoveFromWishlist drops the entry for the product id, if present.
func (s *Store) RemoveFromWishlist(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.wishlist {
		if s.wishlist[i].ProductID == productID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			s.persist(keyWishlist, s.wishlist)
			return
		}
	}
}

// Wishlist returns a copy of the wishlist entries.
func (s *Store) Wishlist() []models.WishlistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wishlistLocked()
}

func (s *Store) wishlistLocked() []models.WishlistItem {
	return append([]models.WishlistItem{}, s.wishlist...)
}

// ApplyCoupon activates a coupon code if it is one of the known codes,
// matched case-insensitively. An unknown code leaves the active coupon
// untouched and returns false.
func (s *Store) ApplyCoupon(code string) bool {
	upper := strings.ToUpper(code)
	if !validCoupon(upper) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.coupon = upper
	return true
}

// Coupon returns the active coupon code, or "" when none is applied.
func (s *Store) Coupon() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coupon
}

// Totals computes the derived pricing for the current cart and coupon.
func (s *Store) Totals() models.CartTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeTotals(s.cart, s.coupon)
}

// CreateOrder snapshots the cart and its totals into a new order, prepends
// it to the order history, then clears the cart and coupon. Readers can
// never see the order created with the cart still populated, or the other
// way around.
func (s *Store) CreateOrder(shippingAddress models.Address, paymentMethod string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	userID := "guest"
	if s.user != nil {
		userID = s.user.ID
	}

	now := time.Now()
	totals := ComputeTotals(s.cart, s.coupon)
	order := models.Order{
		ID:                fmt.Sprintf("ORD-%d", s.nextID()),
		UserID:            userID,
		Items:             s.cartLocked(),
		Subtotal:          totals.Subtotal,
		Discount:          totals.Discount,
		Tax:               totals.Tax,
		Shipping:          totals.Shipping,
		Total:             totals.Total,
		Status:            models.StatusProcessing,
		ShippingAddress:   shippingAddress,
		PaymentMethod:     paymentMethod,
		TrackingNumber:    trackingNumber(),
		CreatedAt:         now,
		EstimatedDelivery: now.Add(7 * 24 * time.Hour),
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.clearCartLocked()
	s.persist(keyOrders, s.orders)

	s.log.WithFields(logrus.Fields{
		"order": order.ID,
		"total": order.Total,
		"items": len(order.Items),
	}).Info("order created")
	return order, nil
}

// Orders returns a copy of the order history, newest first.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order{}, s.orders...)
}

// OrderByID looks up a single order.
func (s *Store) OrderByID(orderID string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.orders {
		if order.ID == orderID {
			return order, true
		}
	}
	return models.Order{}, false
}

// UpdateOrderStatus overwrites the status of the matching order. Any known
// status may replace any other; there is no transition graph.
func (s *Store) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			s.persist(keyOrders, s.orders)
			return nil
		}
	}
	return ErrOrderNotFound
}

// nextID issues a time-based id. Callers must hold s.mu.
func (s *Store) nextID() int64 {
	ms := time.Now().UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return ms
}

func trackingNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "TRK" + raw[:9]
}
