package routes

import (
	"inventario-app/config"
	"inventario-app/controllers"
	"inventario-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCajaRoutes(app *fiber.App, db *gorm.DB) {
	cajaController := controllers.NewCajaController(db)

	api := app.Group(config.MAIN_ROUTES + "/cajas")

	api.Get("/por_componentes", cajaController.GetByComponents)
	api.Get("/", cajaController.GetAllCajas)
	api.Get("/:id", cajaController.GetCajaByID)

	auth := api.Group("", middleware.AuthMiddleware(db))
	auth.Post("/", cajaController.CreateCaja)
	auth.Put("/:id", cajaController.UpdateCaja)
	auth.Delete("/:id", cajaController.DeleteCaja)
}
