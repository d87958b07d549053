package routes

import (
	"inventario-app/config"
	"inventario-app/controllers"
	"inventario-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCatalogoRoutes(app *fiber.App, db *gorm.DB) {
	catalogoController := controllers.NewCatalogoController(db)

	api := app.Group(config.MAIN_ROUTES)

	api.Get("/brands", catalogoController.GetAllBrands)
	api.Get("/units", catalogoController.GetAllUnits)
	api.Get("/sizes", catalogoController.GetAllSizes)

	auth := api.Group("", middleware.AuthMiddleware(db))
	auth.Post("/brands", catalogoController.CreateBrand)
	auth.Put("/brands/:id", catalogoController.UpdateBrand)
	auth.Delete("/brands/:id", catalogoController.DeleteBrand)
	auth.Post("/units", catalogoController.CreateUnit)
	auth.Put("/units/:id", catalogoController.UpdateUnit)
	auth.Delete("/units/:id", catalogoController.DeleteUnit)
	auth.Post("/sizes", catalogoController.CreateSize)
	auth.Put("/sizes/:id", catalogoController.UpdateSize)
	auth.Delete("/sizes/:id", catalogoController.DeleteSize)
}
