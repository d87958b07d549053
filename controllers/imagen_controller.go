package controllers

import (
	"errors"

	"inventario-app/config"
	"inventario-app/repositories"
	"inventario-app/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ImagenController responde { error } en fallos, sin el envelope
// estandar, igual que el resto de rutas de imagenes historicas.
type ImagenController struct {
	DB *gorm.DB
}

func NewImagenController(DB *gorm.DB) *ImagenController {
	return &ImagenController{DB: DB}
}

func (c *ImagenController) service() *services.ImagenService {
	return services.NewImagenService(c.DB, config.ImageRoot)
}

func (c *ImagenController) Upload(ctx *fiber.Ctx) error {
	productoID, err := ctx.ParamsInt("producto_id")
	if err != nil || productoID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid producto_id"})
	}

	file, err := ctx.FormFile("imagen")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "imagen file is required"})
	}

	imagen, err := c.service().Guardar(uint(productoID), file)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProductoNoEncontrado):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Producto no encontrado"})
		case errors.Is(err, services.ErrFormatoInvalido):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de imagen invalido"})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save image"})
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(imagen)
}

func (c *ImagenController) Update(ctx *fiber.Ctx) error {
	imagenID, err := ctx.ParamsInt("imagen_id")
	if err != nil || imagenID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid imagen_id"})
	}

	file, err := ctx.FormFile("imagen")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "imagen file is required"})
	}

	imagen, err := c.service().Actualizar(uint(imagenID), file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrImagenNoEncontrada):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Imagen no encontrada"})
		case errors.Is(err, services.ErrFormatoInvalido):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de imagen invalido"})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update image"})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(imagen)
}

func (c *ImagenController) Delete(ctx *fiber.Ctx) error {
	imagenID, err := ctx.ParamsInt("imagen_id")
	if err != nil || imagenID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid imagen_id"})
	}

	if err := c.service().Eliminar(uint(imagenID)); err != nil {
		if errors.Is(err, services.ErrImagenNoEncontrada) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Imagen no encontrada"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete image"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"deleted": true})
}

func (c *ImagenController) GetByProducto(ctx *fiber.Ctx) error {
	productoID, err := ctx.ParamsInt("producto_id")
	if err != nil || productoID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid producto_id"})
	}

	imagenes, err := c.service().PorProducto(uint(productoID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to list images"})
	}

	return ctx.Status(fiber.StatusOK).JSON(imagenes)
}
