package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"zimlicense-backend/internal/auth"
	"zimlicense-backend/internal/company"
	"zimlicense-backend/internal/config"
	"zimlicense-backend/internal/database"
	"zimlicense-backend/internal/license"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	companySvc := company.NewService(company.NewRepository(db))
	licenseSvc := license.NewService(license.NewRepository(db))
	authSvc := auth.NewService(auth.NewRepository(db), cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logger.Error("unexpected error", zap.Error(err), zap.String("path", c.Path()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "unexpected server error",
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	api.Post("/auth/register", auth.RegisterHandler(authSvc))
	api.Post("/auth/login", auth.LoginHandler(authSvc))
	api.Get("/auth/validate", auth.ValidateTokenHandler())

	api.Get("/companies", company.ListCompaniesHandler(companySvc))
	api.Get("/companies/:id", company.GetCompanyHandler(companySvc))
	api.Post("/companies", company.CreateCompanyHandler(companySvc))
	api.Put("/companies/:id", company.UpdateCompanyHandler(companySvc))
	api.Delete("/companies/:id", company.DeleteCompanyHandler(companySvc))

	api.Get("/licenses", license.ListLicensesHandler(licenseSvc))
	api.Get("/licenses/:id", license.GetLicenseHandler(licenseSvc))
	api.Post("/licenses", license.CreateLicenseHandler(licenseSvc))
	api.Put("/licenses/:id", license.UpdateLicenseHandler(licenseSvc))
	api.Delete("/licenses/:id", license.DeleteLicenseHandler(licenseSvc))

	logger.Info("server listening", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
