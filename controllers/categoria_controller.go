package controllers

import (
	"errors"

	"inventario-app/models"
	"inventario-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CategoriaController maneja los tres niveles de categoria.
type CategoriaController struct {
	DB *gorm.DB
}

func NewCategoriaController(DB *gorm.DB) *CategoriaController {
	return &CategoriaController{DB: DB}
}

// --- Nivel 1 ---

func (c *CategoriaController) CreateCategoria(ctx *fiber.Ctx) error {

	var input struct {
		Nombre      string `json:"nombre" validate:"required,min=2"`
		Descripcion string `json:"descripcion"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	categoria := models.Categoria{Nombre: input.Nombre, Descripcion: input.Descripcion}
	if err := c.DB.Create(&categoria).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Error(ctx, fiber.StatusConflict, "Categoria duplicada")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusCreated, "Categoria creada", categoria)
}

func (c *CategoriaController) GetAllCategorias(ctx *fiber.Ctx) error {
	var categorias []models.Categoria
	if err := c.DB.Order("nombre").Find(&categorias).Error; err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}
	return utils.Success(ctx, fiber.StatusOK, "Categorias", categorias)
}

func (c *CategoriaController) GetCategoriaByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	var categoria models.Categoria
	if err := c.DB.First(&categoria, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Error(ctx, fiber.StatusNotFound, "Categoria no encontrada")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Categoria encontrada", categoria)
}

func (c *CategoriaController) UpdateCategoria(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	var categoria models.Categoria
	if err := c.DB.First(&categoria, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Error(ctx, fiber.StatusNotFound, "Categoria no encontrada")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	var input struct {
		Nombre      string `json:"nombre" validate:"required,min=2"`
		Descripcion string `json:"descripcion"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	categoria.Nombre = input.Nombre
	categoria.Descripcion = input.Descripcion
	if err := c.DB.Save(&categoria).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Error(ctx, fiber.StatusConflict, "Categoria duplicada")
		}
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Categoria actualizada", categoria)
}

func (c *CategoriaController) DeleteCategoria(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	var productos, hijas int64
	c.DB.Model(&models.Producto{}).Where("categoria_principal_id = ?", id).Count(&productos)
	c.DB.Model(&models.CategoriaSecundaria{}).Where("categoria_id = ?", id).Count(&hijas)
	if productos > 0 || hijas > 0 {
		return utils.Error(ctx, fiber.StatusConflict, "Categoria referenciada")
	}

	result := c.DB.Delete(&models.Categoria{}, id)
	if result.Error != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}
	if result.RowsAffected == 0 {
		return utils.Error(ctx, fiber.StatusNotFound, "Categoria no encontrada")
	}

	return utils.Success(ctx, fiber.StatusOK, "Categoria eliminada", nil)
}

// --- Nivel 2 ---

func (c *CategoriaController) CreateSecundaria(ctx *fiber.Ctx) error {

	var input struct {
		CategoriaID uint   `json:"categoria_id" validate:"required,gt=0"`
		Nombre      string `json:"nombre" validate:"required,min=2"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	var padre models.Categoria
	if err := c.DB.First(&padre, input.CategoriaID).Error; err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Categoria padre no existe")
	}

	secundaria := models.CategoriaSecundaria{CategoriaID: input.CategoriaID, Nombre: input.Nombre}
	if err := c.DB.Create(&secundaria).Error; err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusCreated, "Categoria secundaria creada", secundaria)
}

func (c *CategoriaController) GetSecundarias(ctx *fiber.Ctx) error {
	query := c.DB.Order("nombre")
	if categoriaID := ctx.QueryInt("categoria_id"); categoriaID > 0 {
		query = query.Where("categoria_id = ?", categoriaID)
	}

	var secundarias []models.CategoriaSecundaria
	if err := query.Find(&secundarias).Error; err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Categorias secundarias", secundarias)
}

func (c *CategoriaController) DeleteSecundaria(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	var productos, hijas int64
	c.DB.Model(&models.Producto{}).Where("categoria_secundaria_id = ?", id).Count(&productos)
	c.DB.Model(&models.Subcategoria{}).Where("categoria_secundaria_id = ?", id).Count(&hijas)
	if productos > 0 || hijas > 0 {
		return utils.Error(ctx, fiber.StatusConflict, "Categoria secundaria referenciada")
	}

	result := c.DB.Delete(&models.CategoriaSecundaria{}, id)
	if result.Error != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}
	if result.RowsAffected == 0 {
		return utils.Error(ctx, fiber.StatusNotFound, "Categoria secundaria no encontrada")
	}

	return utils.Success(ctx, fiber.StatusOK, "Categoria secundaria eliminada", nil)
}

// --- Nivel 3 ---

func (c *CategoriaController) CreateSubcategoria(ctx *fiber.Ctx) error {

	var input struct {
		CategoriaSecundariaID uint   `json:"categoria_secundaria_id" validate:"required,gt=0"`
		Nombre                string `json:"nombre" validate:"required,min=2"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	var padre models.CategoriaSecundaria
	if err := c.DB.First(&padre, input.CategoriaSecundariaID).Error; err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Categoria secundaria padre no existe")
	}

	subcategoria := models.Subcategoria{CategoriaSecundariaID: input.CategoriaSecundariaID, Nombre: input.Nombre}
	if err := c.DB.Create(&subcategoria).Error; err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusCreated, "Subcategoria creada", subcategoria)
}

func (c *CategoriaController) GetSubcategorias(ctx *fiber.Ctx) error {
	query := c.DB.Order("nombre")
	if secundariaID := ctx.QueryInt("categoria_secundaria_id"); secundariaID > 0 {
		query = query.Where("categoria_secundaria_id = ?", secundariaID)
	}

	var subcategorias []models.Subcategoria
	if err := query.Find(&subcategorias).Error; err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Subcategorias", subcategorias)
}

func (c *CategoriaController) DeleteSubcategoria(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	var productos int64
	c.DB.Model(&models.Producto{}).Where("subcategoria_id = ?", id).Count(&productos)
	if productos > 0 {
		return utils.Error(ctx, fiber.StatusConflict, "Subcategoria referenciada")
	}

	result := c.DB.Delete(&models.Subcategoria{}, id)
	if result.Error != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}
	if result.RowsAffected == 0 {
		return utils.Error(ctx, fiber.StatusNotFound, "Subcategoria no encontrada")
	}

	return utils.Success(ctx, fiber.StatusOK, "Subcategoria eliminada", nil)
}
