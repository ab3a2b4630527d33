// routes/routes.go
package routes

import (
	"phihorizon/controllers"
	"phihorizon/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, productController *controllers.ProductController, cartController *controllers.CartController, wishlistController *controllers.WishlistController, orderController *controllers.OrderController) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")
	router.HandleFunc("/logout", userController.Logout).Methods("POST")

	// Protected profile routes
	protected := router.PathPrefix("/profile").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("", userController.GetProfile).Methods("GET")
	protected.HandleFunc("", userController.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/addresses", userController.AddAddress).Methods("POST")
	protected.HandleFunc("/addresses/{id}", userController.UpdateAddress).Methods("PUT")
	protected.HandleFunc("/addresses/{id}", userController.DeleteAddress).Methods("DELETE")

	// Product routes
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Admin routes
	admin := router.PathPrefix("/products").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/{id}", productController.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/{id}", productController.DeleteProduct).Methods("DELETE")

	// Cart Routes
	router.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	router.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	router.HandleFunc("/cart", cartController.UpdateCartItem).Methods("PUT")
	router.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	router.HandleFunc("/cart/coupon", cartController.ApplyCoupon).Methods("POST")
	router.HandleFunc("/cart/{product_id}", cartController.RemoveFromCart).Methods("DELETE")

	// Wishlist Routes
	router.HandleFunc("/wishlist", wishlistController.GetWishlist).Methods("GET")
	router.HandleFunc("/wishlist", wishlistController.AddToWishlist).Methods("POST")
	router.HandleFunc("/wishlist/{product_id}", wishlistController.RemoveFromWishlist).Methods("DELETE")

	// Order Routes
	router.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	router.HandleFunc("/order", orderController.CreateOrder).Methods("POST")
	router.HandleFunc("/order/{id}", orderController.GetOrderByID).Methods("GET")

	adminOrders := router.PathPrefix("/order").Subrouter()
	adminOrders.Use(middleware.AuthMiddleware)
	adminOrders.Use(middleware.AdminMiddleware)
	adminOrders.HandleFunc("/{id}/status", orderController.UpdateOrderStatus).Methods("PUT")
}
