package controllers

import (
	"errors"
	"regexp"
	"strings"

	"inventario-app/models"
	"inventario-app/repositories"
	"inventario-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CajaController struct {
	DB *gorm.DB
}

func NewCajaController(DB *gorm.DB) *CajaController {
	return &CajaController{DB: DB}
}

var letraRegexp = regexp.MustCompile(`^[A-Za-z]{1,2}$`)

type cajaInput struct {
	Letra string `json:"letra" validate:"required"`
	Cara  int    `json:"cara" validate:"required,oneof=1 2"`
	Nivel int    `json:"nivel" validate:"required,oneof=1 2"`
}

func (c *CajaController) CreateCaja(ctx *fiber.Ctx) error {

	var input cajaInput
	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	if !letraRegexp.MatchString(input.Letra) {
		return utils.Error(ctx, fiber.StatusBadRequest, "Letra debe ser 1 o 2 letras")
	}

	caja := models.Caja{
		Letra:     strings.ToUpper(input.Letra),
		Cara:      input.Cara,
		Nivel:     input.Nivel,
		CreatedBy: userIDFromCtx(ctx),
	}

	repo := repositories.NewCajaRepository(c.DB)
	if err := repo.Create(&caja); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Error(ctx, fiber.StatusConflict, "Caja duplicada")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusCreated, "Caja creada", fiber.Map{
		"caja_id":  caja.ID,
		"letra":    caja.Letra,
		"cara":     caja.Cara,
		"nivel":    caja.Nivel,
		"etiqueta": caja.Etiqueta(),
	})
}

func (c *CajaController) GetCajaByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	repo := repositories.NewCajaRepository(c.DB)
	caja, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrCajaNoEncontrada) {
			return utils.Error(ctx, fiber.StatusNotFound, "Caja no encontrada")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Caja encontrada", fiber.Map{
		"caja_id":  caja.ID,
		"letra":    caja.Letra,
		"cara":     caja.Cara,
		"nivel":    caja.Nivel,
		"etiqueta": caja.Etiqueta(),
	})
}

func (c *CajaController) GetAllCajas(ctx *fiber.Ctx) error {
	repo := repositories.NewCajaRepository(c.DB)
	cajas, err := repo.GetAll()
	if err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	data := make([]fiber.Map, 0, len(cajas))
	for i := range cajas {
		data = append(data, fiber.Map{
			"caja_id":  cajas[i].ID,
			"letra":    cajas[i].Letra,
			"cara":     cajas[i].Cara,
			"nivel":    cajas[i].Nivel,
			"etiqueta": cajas[i].Etiqueta(),
		})
	}

	return utils.Success(ctx, fiber.StatusOK, "Cajas", data)
}

// GetByComponents resuelve ?letra=&cara=&nivel= a una caja concreta.
// Una caja inexistente es 404, nunca un success vacio.
func (c *CajaController) GetByComponents(ctx *fiber.Ctx) error {
	letra := ctx.Query("letra")
	cara := ctx.QueryInt("cara")
	nivel := ctx.QueryInt("nivel")

	if !letraRegexp.MatchString(letra) {
		return utils.Error(ctx, fiber.StatusBadRequest, "Letra debe ser 1 o 2 letras")
	}
	if (cara != 1 && cara != 2) || (nivel != 1 && nivel != 2) {
		return utils.Error(ctx, fiber.StatusBadRequest, "Cara y nivel deben ser 1 o 2")
	}

	repo := repositories.NewCajaRepository(c.DB)
	caja, err := repo.GetByComponents(strings.ToUpper(letra), cara, nivel)
	if err != nil {
		if errors.Is(err, repositories.ErrCajaNoEncontrada) {
			return utils.Error(ctx, fiber.StatusNotFound, "Caja no encontrada")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Caja encontrada", fiber.Map{
		"caja_id":  caja.ID,
		"letra":    caja.Letra,
		"cara":     caja.Cara,
		"nivel":    caja.Nivel,
		"etiqueta": caja.Etiqueta(),
	})
}

func (c *CajaController) UpdateCaja(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	repo := repositories.NewCajaRepository(c.DB)
	caja, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrCajaNoEncontrada) {
			return utils.Error(ctx, fiber.StatusNotFound, "Caja no encontrada")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	var input cajaInput
	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	if !letraRegexp.MatchString(input.Letra) {
		return utils.Error(ctx, fiber.StatusBadRequest, "Letra debe ser 1 o 2 letras")
	}

	caja.Letra = strings.ToUpper(input.Letra)
	caja.Cara = input.Cara
	caja.Nivel = input.Nivel
	caja.UpdatedBy = userIDFromCtx(ctx)

	if err := repo.Update(caja); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Error(ctx, fiber.StatusConflict, "Caja duplicada")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Caja actualizada", fiber.Map{
		"caja_id":  caja.ID,
		"letra":    caja.Letra,
		"cara":     caja.Cara,
		"nivel":    caja.Nivel,
		"etiqueta": caja.Etiqueta(),
	})
}

func (c *CajaController) DeleteCaja(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	repo := repositories.NewCajaRepository(c.DB)
	if err := repo.Delete(uint(id)); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCajaNoEncontrada):
			return utils.Error(ctx, fiber.StatusNotFound, "Caja no encontrada")
		case errors.Is(err, repositories.ErrCajaReferenciada):
			return utils.Error(ctx, fiber.StatusConflict, "Caja con stock asociado")
		default:
			return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
		}
	}

	return utils.Success(ctx, fiber.StatusOK, "Caja eliminada", nil)
}
