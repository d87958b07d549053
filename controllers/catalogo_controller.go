package controllers

import (
	"errors"

	"inventario-app/models"
	"inventario-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CatalogoController maneja los lookups simples: brands, units y sizes.
type CatalogoController struct {
	DB *gorm.DB
}

func NewCatalogoController(DB *gorm.DB) *CatalogoController {
	return &CatalogoController{DB: DB}
}

type nombreInput struct {
	Nombre string `json:"nombre" validate:"required,min=1"`
}

func parseNombre(ctx *fiber.Ctx) (*nombreInput, error) {
	var input nombreInput
	if err := ctx.BodyParser(&input); err != nil {
		return nil, utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, utils.ValidationError(ctx, err)
	}
	return &input, nil
}

// --- Brands ---

func (c *CatalogoController) CreateBrand(ctx *fiber.Ctx) error {
	input, err := parseNombre(ctx)
	if input == nil {
		return err
	}

	brand := models.Brand{Nombre: input.Nombre}
	if err := c.DB.Create(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Error(ctx, fiber.StatusConflict, "Brand duplicado")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusCreated, "Brand creado", brand)
}

func (c *CatalogoController) GetAllBrands(ctx *fiber.Ctx) error {
	var brands []models.Brand
	if err := c.DB.Order("nombre").Find(&brands).Error; err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}
	return utils.Success(ctx, fiber.StatusOK, "Brands", brands)
}

func (c *CatalogoController) UpdateBrand(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	var brand models.Brand
	if err := c.DB.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Error(ctx, fiber.StatusNotFound, "Brand no encontrado")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	input, perr := parseNombre(ctx)
	if input == nil {
		return perr
	}

	brand.Nombre = input.Nombre
	if err := c.DB.Save(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Error(ctx, fiber.StatusConflict, "Brand duplicado")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Brand actualizado", brand)
}

func (c *CatalogoController) DeleteBrand(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	var productos int64
	c.DB.Model(&models.Producto{}).Where("brand_id = ?", id).Count(&productos)
	if productos > 0 {
		return utils.Error(ctx, fiber.StatusConflict, "Brand referenciado")
	}

	result := c.DB.Delete(&models.Brand{}, id)
	if result.Error != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}
	if result.RowsAffected == 0 {
		return utils.Error(ctx, fiber.StatusNotFound, "Brand no encontrado")
	}

	return utils.Success(ctx, fiber.StatusOK, "Brand eliminado", nil)
}

// --- Units ---

func (c *CatalogoController) CreateUnit(ctx *fiber.Ctx) error {
	input, err := parseNombre(ctx)
	if input == nil {
		return err
	}

	unit := models.Unit{Nombre: input.Nombre}
	if err := c.DB.Create(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Error(ctx, fiber.StatusConflict, "Unit duplicada")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusCreated, "Unit creada", unit)
}

func (c *CatalogoController) GetAllUnits(ctx *fiber.Ctx) error {
	var units []models.Unit
	if err := c.DB.Order("nombre").Find(&units).Error; err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}
	return utils.Success(ctx, fiber.StatusOK, "Units", units)
}

func (c *CatalogoController) UpdateUnit(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	var unit models.Unit
	if err := c.DB.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Error(ctx, fiber.StatusNotFound, "Unit no encontrada")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	input, perr := parseNombre(ctx)
	if input == nil {
		return perr
	}

	unit.Nombre = input.Nombre
	if err := c.DB.Save(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Error(ctx, fiber.StatusConflict, "Unit duplicada")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Unit actualizada", unit)
}

func (c *CatalogoController) DeleteUnit(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	var productos int64
	c.DB.Model(&models.Producto{}).Where("unit_id = ?", id).Count(&productos)
	if productos > 0 {
		return utils.Error(ctx, fiber.StatusConflict, "Unit referenciada")
	}

	result := c.DB.Delete(&models.Unit{}, id)
	if result.Error != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}
	if result.RowsAffected == 0 {
		return utils.Error(ctx, fiber.StatusNotFound, "Unit no encontrada")
	}

	return utils.Success(ctx, fiber.StatusOK, "Unit eliminada", nil)
}

// --- Sizes ---

func (c *CatalogoController) CreateSize(ctx *fiber.Ctx) error {
	input, err := parseNombre(ctx)
	if input == nil {
		return err
	}

	size := models.Size{Nombre: input.Nombre}
	if err := c.DB.Create(&size).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Error(ctx, fiber.StatusConflict, "Size duplicado")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusCreated, "Size creado", size)
}

func (c *CatalogoController) GetAllSizes(ctx *fiber.Ctx) error {
	var sizes []models.Size
	if err := c.DB.Order("nombre").Find(&sizes).Error; err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}
	return utils.Success(ctx, fiber.StatusOK, "Sizes", sizes)
}

func (c *CatalogoController) UpdateSize(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	var size models.Size
	if err := c.DB.First(&size, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Error(ctx, fiber.StatusNotFound, "Size no encontrado")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	input, perr := parseNombre(ctx)
	if input == nil {
		return perr
	}

	size.Nombre = input.Nombre
	if err := c.DB.Save(&size).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Error(ctx, fiber.StatusConflict, "Size duplicado")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Size actualizado", size)
}

func (c *CatalogoController) DeleteSize(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	var productos int64
	c.DB.Model(&models.Producto{}).Where("size_id = ?", id).Count(&productos)
	if productos > 0 {
		return utils.Error(ctx, fiber.StatusConflict, "Size referenciado")
	}

	result := c.DB.Delete(&models.Size{}, id)
	if result.Error != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}
	if result.RowsAffected == 0 {
		return utils.Error(ctx, fiber.StatusNotFound, "Size no encontrado")
	}

	return utils.Success(ctx, fiber.StatusOK, "Size eliminado", nil)
}
