package routes

import (
	"inventario-app/config"
	"inventario-app/controllers"
	"inventario-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupImagenRoutes(app *fiber.App, db *gorm.DB) {
	imagenController := controllers.NewImagenController(db)

	api := app.Group(config.MAIN_ROUTES + "/imagenes")

	api.Get("/producto/:producto_id", imagenController.GetByProducto)

	auth := api.Group("", middleware.AuthMiddleware(db))
	auth.Post("/producto/:producto_id", imagenController.Upload)
	auth.Put("/:imagen_id", imagenController.Update)
	auth.Delete("/:imagen_id", imagenController.Delete)
}
