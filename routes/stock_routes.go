package routes

import (
	"inventario-app/config"
	"inventario-app/controllers"
	"inventario-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStockRoutes(app *fiber.App, db *gorm.DB) {
	stockController := controllers.NewStockController(db)

	api := app.Group(config.MAIN_ROUTES + "/stock")

	// Lecturas publicas
	api.Get("/producto/:producto_id", stockController.GetByProducto)
	api.Get("/detalle/:detalle_id", stockController.GetDetalle)

	// Mutaciones requieren sesion
	auth := api.Group("", middleware.AuthMiddleware(db))
	auth.Post("/add", stockController.Add)
	auth.Post("/remove", stockController.Remove)
	auth.Post("/move", stockController.Move)
	auth.Post("/set_by_detalle", stockController.SetByDetalle)
	auth.Get("/excel", stockController.ExportExcel)
}
