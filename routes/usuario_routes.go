package routes

import (
	"inventario-app/config"
	"inventario-app/controllers"
	"inventario-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUsuarioRoutes(app *fiber.App, db *gorm.DB) {
	usuarioController := controllers.NewUsuarioController(db)

	api := app.Group(config.MAIN_ROUTES+"/usuarios", middleware.AuthMiddleware(db), middleware.RequireAdmin())

	api.Post("/", usuarioController.CreateUsuario)
	api.Get("/:id", usuarioController.GetUsuarioByID)
	api.Get("/", usuarioController.GetAllUsuarios)
	api.Put("/:id", usuarioController.UpdateUsuario)
	api.Delete("/:id", usuarioController.DeleteUsuario)

	profile := app.Group(config.MAIN_ROUTES+"/usuario", middleware.AuthMiddleware(db))
	profile.Get("/profile", usuarioController.GetProfile)
}
