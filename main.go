// main.go
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"phihorizon/catalog"
	"phihorizon/controllers"
	"phihorizon/routes"
	"phihorizon/storage"
	"phihorizon/store"
	"phihorizon/utils"
)

func main() {
	app := &cli.App{
		Name:  "phihorizon",
		Usage: "PhiHorizon storefront server",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server",
				Action: serve,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func serve(_ *cli.Context) error {
	logger := logrus.New()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found. Proceeding with environment variables.")
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	// The persistence medium: one JSON file per state key
	backend, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		return err
	}

	commerceStore := store.New(backend, logger)
	productCatalog := catalog.New()

	// Initialize controllers
	userController := controllers.NewUserController(commerceStore, logger)
	productController := controllers.NewProductController(productCatalog)
	cartController := controllers.NewCartController(commerceStore, productCatalog)
	wishlistController := controllers.NewWishlistController(commerceStore, productCatalog)
	orderController := controllers.NewOrderController(commerceStore, logger)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, cartController, wishlistController, orderController)

	logger.WithField("port", cfg.Port).Info("server is running")
	return http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), router)
}
