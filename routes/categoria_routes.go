package routes

import (
	"inventario-app/config"
	"inventario-app/controllers"
	"inventario-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCategoriaRoutes(app *fiber.App, db *gorm.DB) {
	categoriaController := controllers.NewCategoriaController(db)

	api := app.Group(config.MAIN_ROUTES)

	api.Get("/categorias", categoriaController.GetAllCategorias)
	api.Get("/categorias/:id", categoriaController.GetCategoriaByID)
	api.Get("/categorias_secundarias", categoriaController.GetSecundarias)
	api.Get("/subcategorias", categoriaController.GetSubcategorias)

	auth := api.Group("", middleware.AuthMiddleware(db))
	auth.Post("/categorias", categoriaController.CreateCategoria)
	auth.Put("/categorias/:id", categoriaController.UpdateCategoria)
	auth.Delete("/categorias/:id", categoriaController.DeleteCategoria)
	auth.Post("/categorias_secundarias", categoriaController.CreateSecundaria)
	auth.Delete("/categorias_secundarias/:id", categoriaController.DeleteSecundaria)
	auth.Post("/subcategorias", categoriaController.CreateSubcategoria)
	auth.Delete("/subcategorias/:id", categoriaController.DeleteSubcategoria)
}
