package routes

import (
	"inventario-app/config"
	"inventario-app/controllers"
	"inventario-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProductoRoutes(app *fiber.App, db *gorm.DB) {
	productoController := controllers.NewProductoController(db)

	api := app.Group(config.MAIN_ROUTES + "/productos")

	api.Get("/buscar", productoController.SearchByNombre)
	api.Get("/precio", productoController.SearchByPrecio)
	api.Get("/por_categoria/:id", productoController.SearchByCategoria)
	api.Get("/por_marca/:id", productoController.SearchByMarca)
	api.Get("/por_unidad/:id", productoController.SearchByUnidad)
	api.Get("/por_talla/:id", productoController.SearchByTalla)
	api.Get("/", productoController.GetAllProductos)
	api.Get("/:id", productoController.GetProductoByID)

	auth := api.Group("", middleware.AuthMiddleware(db))
	auth.Post("/", productoController.CreateProducto)
	auth.Post("/insert_with_stock", productoController.CreateWithStock)
	auth.Put("/:id", productoController.UpdateProducto)
	auth.Delete("/:id", productoController.DeleteProducto)
}
