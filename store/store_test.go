package store_test

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phihorizon/models"
	"phihorizon/storage"
	"phihorizon/store"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func setup(t *testing.T) (*store.Store, *storage.MemoryStore) {
	t.Helper()
	backend := storage.NewMemoryStore()
	return store.New(backend, newTestLogger()), backend
}

func testProduct(id string, price float64) models.Product {
	return models.Product{
		ID:    id,
		Name:  "Product " + id,
		Price: price,
		Stock: 10,
	}
}

func TestLogin(t *testing.T) {
	t.Run("any non-empty credentials succeed", func(t *testing.T) {
		s, _ := setup(t)

		require.True(t, s.Login("user@demo.com", "anything-nonempty"))

		user := s.User()
		require.NotNil(t, user)
		assert.Equal(t, "1", user.ID)
		assert.Equal(t, "user", user.Name)
		assert.False(t, user.IsAdmin)
	})

	t.Run("reserved admin email gets the admin flag", func(t *testing.T) {
		s, _ := setup(t)

		require.True(t, s.Login(store.AdminEmail, "pw"))

		user := s.User()
		require.NotNil(t, user)
		assert.True(t, user.IsAdmin)
		assert.Equal(t, "Admin User", user.Name)
		assert.True(t, s.IsAdmin())
	})

	t.Run("empty email fails", func(t *testing.T) {
		s, _ := setup(t)

		assert.False(t, s.Login("", "pw"))
		assert.Nil(t, s.User())
	})

	t.Run("empty password fails", func(t *testing.T) {
		s, _ := setup(t)

		assert.False(t, s.Login("user@demo.com", ""))
		assert.Nil(t, s.User())
	})
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, _ := setup(t)

		require.True(t, s.Register("new@demo.com", "pw", "New User"))

		user := s.User()
		require.NotNil(t, user)
		assert.Equal(t, "New User", user.Name)
		assert.False(t, user.IsAdmin)
		assert.Empty(t, user.Addresses)
		assert.NotEmpty(t, user.ID)
	})

	t.Run("missing field fails", func(t *testing.T) {
		s, _ := setup(t)

		assert.False(t, s.Register("new@demo.com", "pw", ""))
		assert.False(t, s.Register("new@demo.com", "", "New User"))
		assert.False(t, s.Register("", "pw", "New User"))
		assert.Nil(t, s.User())
	})
}

func TestLogout(t *testing.T) {
	s, backend := setup(t)
	require.True(t, s.Login("user@demo.com", "pw"))
	s.AddToCart(testProduct("p1", 10), 1, nil)
	s.AddToWishlist(testProduct("p2", 20))
	require.True(t, s.ApplyCoupon("SAVE20"))
	_, err := s.CreateOrder(models.Address{City: "Berlin"}, "card")
	require.NoError(t, err)
	s.AddToCart(testProduct("p1", 10), 1, nil)

	s.Logout()

	assert.Nil(t, s.User())
	assert.Empty(t, s.Cart())
	assert.Empty(t, s.Wishlist())
	assert.Empty(t, s.Coupon())
	// Order history belongs to the session and survives logout.
	assert.Len(t, s.Orders(), 1)

	_, err = backend.Get("user")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestAddToCart(t *testing.T) {
	t.Run("same product and variants merge into one line", func(t *testing.T) {
		s, _ := setup(t)
		variants := map[string]string{"Color": "Black"}

		s.AddToCart(testProduct("p1", 10), 2, variants)
		s.AddToCart(testProduct("p1", 10), 3, map[string]string{"Color": "Black"})

		cart := s.Cart()
		require.Len(t, cart, 1)
		assert.Equal(t, 5, cart[0].Quantity)
	})

	t.Run("different variants are distinct lines", func(t *testing.T) {
		s, _ := setup(t)

		s.AddToCart(testProduct("p1", 10), 1, map[string]string{"Color": "Black"})
		s.AddToCart(testProduct("p1", 10), 1, map[string]string{"Color": "White"})

		assert.Len(t, s.Cart(), 2)
	})

	t.Run("no variants merges too", func(t *testing.T) {
		s, _ := setup(t)

		s.AddToCart(testProduct("p1", 10), 1, nil)
		s.AddToCart(testProduct("p1", 10), 1, map[string]string{})

		cart := s.Cart()
		require.Len(t, cart, 1)
		assert.Equal(t, 2, cart[0].Quantity)
	})
}

func TestUpdateCartItem(t *testing.T) {
	black := map[string]string{"Color": "Black"}
	white := map[string]string{"Color": "White"}

	t.Run("sets quantity on the matching line only", func(t *testing.T) {
		s, _ := setup(t)
		s.AddToCart(testProduct("p1", 10), 2, black)
		s.AddToCart(testProduct("p1", 10), 2, white)

		s.UpdateCartItem("p1", black, 7)

		cart := s.Cart()
		require.Len(t, cart, 2)
		for _, line := range cart {
			if line.SelectedVariants["Color"] == "Black" {
				assert.Equal(t, 7, line.Quantity)
			} else {
				assert.Equal(t, 2, line.Quantity)
			}
		}
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		s, _ := setup(t)
		s.AddToCart(testProduct("p1", 10), 2, black)
		s.AddToCart(testProduct("p1", 10), 2, white)

		s.UpdateCartItem("p1", black, 0)

		cart := s.Cart()
		require.Len(t, cart, 1)
		assert.Equal(t, "White", cart[0].SelectedVariants["Color"])
	})

	t.Run("unknown line is a no-op", func(t *testing.T) {
		s, _ := setup(t)
		s.AddToCart(testProduct("p1", 10), 2, black)

		s.UpdateCartItem("p9", black, 5)

		require.Len(t, s.Cart(), 1)
		assert.Equal(t, 2, s.Cart()[0].Quantity)
	})
}

func TestRemoveFromCart(t *testing.T) {
	s, _ := setup(t)
	s.AddToCart(testProduct("p0", 5), 1, nil)
	s.AddToCart(testProduct("p1", 10), 1, map[string]string{"Color": "Black"})
	s.AddToCart(testProduct("p1", 10), 1, map[string]string{"Color": "White"})

	s.RemoveFromCart("p1")

	// All variant lines for the product go at once.
	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "p0", cart[0].ProductID)
}

func TestClearCart(t *testing.T) {
	s, _ := setup(t)
	s.AddToCart(testProduct("p1", 200), 1, nil)
	require.True(t, s.ApplyCoupon("WELCOME10"))

	s.ClearCart()

	assert.Empty(t, s.Cart())
	assert.Empty(t, s.Coupon())
}

func TestWishlist(t *testing.T) {
	t.Run("add is idempotent per product", func(t *testing.T) {
		s, _ := setup(t)

		s.AddToWishlist(testProduct("p1", 10))
		s.AddToWishlist(testProduct("p1", 10))
		s.AddToWishlist(testProduct("p2", 20))

		assert.Len(t, s.Wishlist(), 2)
	})

	t.Run("remove", func(t *testing.T) {
		s, _ := setup(t)
		s.AddToWishlist(testProduct("p1", 10))

		s.RemoveFromWishlist("p1")
		s.RemoveFromWishlist("p1")

		assert.Empty(t, s.Wishlist())
	})
}

func TestApplyCoupon(t *testing.T) {
	t.Run("matches case-insensitively", func(t *testing.T) {
		s, _ := setup(t)

		require.True(t, s.ApplyCoupon("welcome10"))
		assert.Equal(t, "WELCOME10", s.Coupon())
	})

	t.Run("invalid code leaves the active coupon untouched", func(t *testing.T) {
		s, _ := setup(t)
		require.True(t, s.ApplyCoupon("SAVE20"))

		assert.False(t, s.ApplyCoupon("BOGUS"))
		assert.Equal(t, "SAVE20", s.Coupon())
	})

	t.Run("idempotent", func(t *testing.T) {
		s, _ := setup(t)
		s.AddToCart(testProduct("p1", 150), 1, nil)

		require.True(t, s.ApplyCoupon("SAVE20"))
		first := s.Totals()
		require.True(t, s.ApplyCoupon("SAVE20"))

		assert.Equal(t, "SAVE20", s.Coupon())
		assert.Equal(t, first, s.Totals())
	})
}

func TestCreateOrder(t *testing.T) {
	t.Run("snapshots cart and totals, then clears both cart and coupon", func(t *testing.T) {
		s, _ := setup(t)
		require.True(t, s.Login("user@demo.com", "pw"))
		s.AddToCart(testProduct("p1", 150), 1, nil)
		require.True(t, s.ApplyCoupon("SAVE20"))
		addr := models.Address{Label: "Home", City: "Berlin"}

		order, err := s.CreateOrder(addr, "card")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
		assert.Equal(t, "1", order.UserID)
		assert.Equal(t, models.StatusProcessing, order.Status)
		assert.Equal(t, addr, order.ShippingAddress)
		assert.Equal(t, "card", order.PaymentMethod)
		assert.True(t, strings.HasPrefix(order.TrackingNumber, "TRK"))
		assert.Len(t, order.TrackingNumber, 12)
		require.Len(t, order.Items, 1)
		assert.InDelta(t, 150, order.Subtotal, 1e-9)
		assert.InDelta(t, 30, order.Discount, 1e-9)
		assert.InDelta(t, 9.60, order.Tax, 1e-9)
		assert.InDelta(t, 0, order.Shipping, 1e-9)
		assert.InDelta(t, 129.60, order.Total, 1e-9)
		assert.WithinDuration(t, order.CreatedAt.Add(7*24*time.Hour), order.EstimatedDelivery, time.Second)

		assert.Empty(t, s.Cart())
		assert.Empty(t, s.Coupon())
		require.Len(t, s.Orders(), 1)
		assert.Equal(t, order.ID, s.Orders()[0].ID)
	})

	t.Run("without user the order belongs to guest", func(t *testing.T) {
		s, _ := setup(t)
		s.AddToCart(testProduct("p1", 10), 1, nil)

		order, err := s.CreateOrder(models.Address{}, "card")

		require.NoError(t, err)
		assert.Equal(t, "guest", order.UserID)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		s, _ := setup(t)

		_, err := s.CreateOrder(models.Address{}, "card")

		assert.ErrorIs(t, err, store.ErrEmptyCart)
		assert.Empty(t, s.Orders())
	})

	t.Run("order snapshot is isolated from later cart mutation", func(t *testing.T) {
		s, _ := setup(t)
		s.AddToCart(testProduct("p1", 10), 1, nil)

		order, err := s.CreateOrder(models.Address{}, "card")
		require.NoError(t, err)

		s.AddToCart(testProduct("p2", 20), 3, nil)
		s.UpdateCartItem("p2", nil, 5)

		stored, ok := s.OrderByID(order.ID)
		require.True(t, ok)
		require.Len(t, stored.Items, 1)
		assert.Equal(t, "p1", stored.Items[0].ProductID)
	})

	t.Run("orders are newest first", func(t *testing.T) {
		s, _ := setup(t)
		s.AddToCart(testProduct("p1", 10), 1, nil)
		first, err := s.CreateOrder(models.Address{}, "card")
		require.NoError(t, err)

		s.AddToCart(testProduct("p2", 20), 1, nil)
		second, err := s.CreateOrder(models.Address{}, "card")
		require.NoError(t, err)

		orders := s.Orders()
		require.Len(t, orders, 2)
		assert.Equal(t, second.ID, orders[0].ID)
		assert.Equal(t, first.ID, orders[1].ID)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	newOrder := func(t *testing.T) (*store.Store, models.Order) {
		t.Helper()
		s, _ := setup(t)
		s.AddToCart(testProduct("p1", 10), 1, nil)
		order, err := s.CreateOrder(models.Address{}, "card")
		require.NoError(t, err)
		return s, order
	}

	t.Run("any known status may replace any other", func(t *testing.T) {
		s, order := newOrder(t)

		for _, status := range []models.OrderStatus{
			models.StatusShipped,
			models.StatusPacked, // backwards is allowed, there is no transition graph
			models.StatusDelivered,
			models.StatusCancelled,
			models.StatusProcessing,
		} {
			require.NoError(t, s.UpdateOrderStatus(order.ID, status))
			got, ok := s.OrderByID(order.ID)
			require.True(t, ok)
			assert.Equal(t, status, got.Status)
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		s, order := newOrder(t)

		err := s.UpdateOrderStatus(order.ID, models.OrderStatus("lost"))

		assert.ErrorIs(t, err, store.ErrInvalidStatus)
	})

	t.Run("unknown order", func(t *testing.T) {
		s, _ := setup(t)

		err := s.UpdateOrderStatus("ORD-0", models.StatusShipped)

		assert.ErrorIs(t, err, store.ErrOrderNotFound)
	})
}

func TestAddresses(t *testing.T) {
	t.Run("require a logged-in user", func(t *testing.T) {
		s, _ := setup(t)

		_, err := s.AddAddress(models.Address{Label: "Home"})
		assert.ErrorIs(t, err, store.ErrNoUser)
		assert.ErrorIs(t, s.UpdateAddress(models.Address{ID: "x"}), store.ErrNoUser)
		assert.ErrorIs(t, s.DeleteAddress("x"), store.ErrNoUser)
		assert.ErrorIs(t, s.UpdateProfile("Name", ""), store.ErrNoUser)
	})

	t.Run("add generates an id", func(t *testing.T) {
		s, _ := setup(t)
		require.True(t, s.Login("user@demo.com", "pw"))

		created, err := s.AddAddress(models.Address{Label: "Home", City: "Berlin"})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		require.Len(t, s.User().Addresses, 1)
	})

	t.Run("only one default address at a time", func(t *testing.T) {
		s, _ := setup(t)
		require.True(t, s.Login("user@demo.com", "pw"))

		first, err := s.AddAddress(models.Address{Label: "Home", IsDefault: true})
		require.NoError(t, err)
		_, err = s.AddAddress(models.Address{Label: "Work", IsDefault: true})
		require.NoError(t, err)

		var defaults int
		for _, addr := range s.User().Addresses {
			if addr.IsDefault {
				defaults++
				assert.Equal(t, "Work", addr.Label)
			}
		}
		assert.Equal(t, 1, defaults)

		// Promoting the first one back demotes the second.
		first.IsDefault = true
		require.NoError(t, s.UpdateAddress(first))
		defaults = 0
		for _, addr := range s.User().Addresses {
			if addr.IsDefault {
				defaults++
				assert.Equal(t, "Home", addr.Label)
			}
		}
		assert.Equal(t, 1, defaults)
	})

	t.Run("update and delete", func(t *testing.T) {
		s, _ := setup(t)
		require.True(t, s.Login("user@demo.com", "pw"))
		created, err := s.AddAddress(models.Address{Label: "Home", City: "Berlin"})
		require.NoError(t, err)

		created.City = "Hamburg"
		require.NoError(t, s.UpdateAddress(created))
		assert.Equal(t, "Hamburg", s.User().Addresses[0].City)

		require.NoError(t, s.DeleteAddress(created.ID))
		assert.Empty(t, s.User().Addresses)

		assert.ErrorIs(t, s.UpdateAddress(created), store.ErrAddressNotFound)
		assert.ErrorIs(t, s.DeleteAddress(created.ID), store.ErrAddressNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	s, _ := setup(t)
	require.True(t, s.Login("user@demo.com", "pw"))

	require.NoError(t, s.UpdateProfile("Renamed", "+49123"))

	user := s.User()
	assert.Equal(t, "Renamed", user.Name)
	assert.Equal(t, "+49123", user.Phone)
}

func TestPersistence(t *testing.T) {
	t.Run("round-trips cart, wishlist, orders and user", func(t *testing.T) {
		backend := storage.NewMemoryStore()
		s1 := store.New(backend, newTestLogger())
		require.True(t, s1.Login("user@demo.com", "pw"))
		s1.AddToCart(testProduct("p1", 10), 2, map[string]string{"Color": "Black"})
		s1.AddToCart(testProduct("p2", 25), 1, nil)
		s1.AddToWishlist(testProduct("p3", 99))
		_, err := s1.CreateOrder(models.Address{City: "Berlin"}, "card")
		require.NoError(t, err)
		s1.AddToCart(testProduct("p1", 10), 2, map[string]string{"Color": "Black"})

		s2 := store.New(backend, newTestLogger())

		assert.Equal(t, s1.Cart(), s2.Cart())
		assert.Equal(t, s1.Wishlist(), s2.Wishlist())
		require.Len(t, s2.Orders(), 1)
		assert.Equal(t, s1.Orders()[0].ID, s2.Orders()[0].ID)
		require.NotNil(t, s2.User())
		assert.Equal(t, "user@demo.com", s2.User().Email)
	})

	t.Run("coupon is session state, not persisted", func(t *testing.T) {
		backend := storage.NewMemoryStore()
		s1 := store.New(backend, newTestLogger())
		s1.AddToCart(testProduct("p1", 150), 1, nil)
		require.True(t, s1.ApplyCoupon("SAVE20"))

		s2 := store.New(backend, newTestLogger())

		assert.Empty(t, s2.Coupon())
	})

	t.Run("corrupt entries fall back to empty state", func(t *testing.T) {
		backend := storage.NewMemoryStore()
		require.NoError(t, backend.Set("cart", []byte("{not json")))
		require.NoError(t, backend.Set("user", []byte("42")))

		s := store.New(backend, newTestLogger())

		assert.Empty(t, s.Cart())
		assert.Nil(t, s.User())
	})
}
