package controllers

import (
	"errors"

	"inventario-app/models"
	"inventario-app/repositories"
	"inventario-app/services"
	"inventario-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type UsuarioController struct {
	DB *gorm.DB
}

func NewUsuarioController(DB *gorm.DB) *UsuarioController {
	return &UsuarioController{DB: DB}
}

func (c *UsuarioController) service() *services.UsuarioService {
	return services.NewUsuarioService(repositories.NewUsuarioRepository(c.DB))
}

func (c *UsuarioController) CreateUsuario(ctx *fiber.Ctx) error {

	var input struct {
		Nombre   string `json:"nombre" validate:"required,min=2"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Tipo     string `json:"tipo" validate:"required,oneof=admin usuario"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	usuario := models.Usuario{
		Nombre:     input.Nombre,
		Email:      input.Email,
		Contrasena: string(hash),
		Tipo:       input.Tipo,
		Estado:     true,
	}

	if err := c.service().CreateUsuario(&usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Error(ctx, fiber.StatusConflict, "Email ya registrado")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	// Best-effort: un fallo de SMTP no deshace el alta.
	services.EnviarBienvenida(usuario.Email, usuario.Nombre)

	return utils.Success(ctx, fiber.StatusCreated, "Usuario creado", usuario)
}

func (c *UsuarioController) GetUsuarioByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	usuario, err := c.service().GetUsuarioByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrUsuarioNoEncontrado) {
			return utils.Error(ctx, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Usuario encontrado", usuario)
}

func (c *UsuarioController) GetAllUsuarios(ctx *fiber.Ctx) error {
	usuarios, err := c.service().GetAllUsuarios()
	if err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Usuarios", usuarios)
}

func (c *UsuarioController) UpdateUsuario(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	usuario, err := c.service().GetUsuarioByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrUsuarioNoEncontrado) {
			return utils.Error(ctx, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	var input struct {
		Nombre   string `json:"nombre" validate:"required,min=2"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"omitempty,min=8"`
		Tipo     string `json:"tipo" validate:"required,oneof=admin usuario"`
		Estado   *bool  `json:"estado" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	usuario.Nombre = input.Nombre
	usuario.Email = input.Email
	usuario.Tipo = input.Tipo
	usuario.Estado = *input.Estado

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
		}
		usuario.Contrasena = string(hash)
	}

	if err := c.service().UpdateUsuario(usuario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Error(ctx, fiber.StatusConflict, "Email ya registrado")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Usuario actualizado", usuario)
}

func (c *UsuarioController) DeleteUsuario(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	if err := c.service().DeleteUsuario(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrUsuarioNoEncontrado) {
			return utils.Error(ctx, fiber.StatusNotFound, "Usuario no encontrado")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Usuario eliminado", nil)
}

func (c *UsuarioController) GetProfile(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(float64)
	if !ok {
		return utils.Error(ctx, fiber.StatusUnauthorized, "Unauthorized")
	}

	usuario, err := c.service().GetUsuarioByID(uint(userID))
	if err != nil {
		return utils.Error(ctx, fiber.StatusNotFound, "Usuario no encontrado")
	}

	return utils.Success(ctx, fiber.StatusOK, "Perfil", usuario)
}
