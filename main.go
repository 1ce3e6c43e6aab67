package main

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"ecofinds_backend/config"
	"ecofinds_backend/handlers"
	"ecofinds_backend/internal/catalog"
	"ecofinds_backend/internal/identity"
	"ecofinds_backend/middleware"
	"ecofinds_backend/utils"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg := config.LoadConfig()

	app := fiber.New(fiber.Config{
		AppName:      "EcoFinds Backend",
		ServerHeader: "EcoFinds Backend Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app)

	// Pick the persistence provider. Both sides of the switch satisfy the same
	// store contracts, everything above them is provider-agnostic.
	var productStore catalog.Store
	var userStore identity.UserStore

	if cfg.Store == "memory" {
		log.Info("Using in-memory stores")
		productStore = catalog.NewMemoryStore()
		userStore = identity.NewMemoryStore()
	} else {
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to database")
		}
		if cfg.ResetDB {
			if err := config.ResetAndMigrate(db); err != nil {
				log.WithError(err).Fatal("Failed to reset database")
			}
		} else {
			if err := config.Migrate(db); err != nil {
				log.WithError(err).Fatal("Failed to migrate database")
			}
		}
		productStore = catalog.NewGormStore(db)
		userStore = identity.NewGormStore(db)
	}

	catalogService := catalog.NewService(productStore)
	identityProvider := identity.NewProvider(userStore)

	authHandler := handlers.NewAuthHandler(identityProvider)
	productHandler := handlers.NewProductHandler(catalogService)
	categoryHandler := handlers.NewCategoryHandler(catalogService)
	uploadHandler := handlers.NewUploadHandler(cfg.UploadDir)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", utils.AuthMiddleware, authHandler.Me)

	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Get("/mine", utils.AuthMiddleware, productHandler.GetMyProducts)
	products.Get("/:id", productHandler.GetProduct)
	products.Post("/", utils.AuthMiddleware, productHandler.CreateProduct)
	products.Put("/:id", utils.AuthMiddleware, productHandler.UpdateProduct)
	products.Delete("/:id", utils.AuthMiddleware, productHandler.DeleteProduct)

	api.Get("/categories", categoryHandler.GetCategories)
	api.Post("/upload", utils.AuthMiddleware, uploadHandler.UploadImage)

	app.Static("/uploads", cfg.UploadDir)

	middleware.SetupErrorHandler(app)

	log.WithFields(log.Fields{"host": cfg.Host, "port": cfg.AppPort}).Info("Server starting")

	if err := app.Listen(cfg.Host + ":" + cfg.AppPort); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
