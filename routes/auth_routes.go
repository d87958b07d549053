package routes

import (
	"inventario-app/config"
	"inventario-app/controllers"
	"inventario-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES)
	api.Post("/login", authController.Login)
	api.Get("/logout", middleware.AuthMiddleware(db), authController.Logout)
	api.Get("/isLoggedIn", middleware.AuthMiddleware(db), authController.IsLoggedIn)
}
