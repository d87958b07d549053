package controllers

import (
	"errors"

	"inventario-app/config"
	"inventario-app/models"
	"inventario-app/repositories"
	"inventario-app/services"
	"inventario-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductoController struct {
	DB *gorm.DB
}

func NewProductoController(DB *gorm.DB) *ProductoController {
	return &ProductoController{DB: DB}
}

func (c *ProductoController) imagenes() *services.ImagenService {
	return services.NewImagenService(c.DB, config.ImageRoot)
}

type productoInput struct {
	Nombre                string  `json:"nombre" validate:"required,min=3"`
	Descripcion           string  `json:"descripcion"`
	Precio                float64 `json:"precio" validate:"gte=0"`
	CategoriaPrincipalID  uint    `json:"categoria_principal_id" validate:"required,gt=0"`
	CategoriaSecundariaID *uint   `json:"categoria_secundaria_id"`
	SubcategoriaID        *uint   `json:"subcategoria_id"`
	UnitID                uint    `json:"unit_id" validate:"required,gt=0"`
	UnitValue             float64 `json:"unit_value" validate:"gte=0"`
	SizeID                uint    `json:"size_id" validate:"required,gt=0"`
	SizeValue             string  `json:"size_value"`
	BrandID               uint    `json:"brand_id" validate:"required,gt=0"`
}

func (i *productoInput) toModel(userID int) models.Producto {
	return models.Producto{
		Nombre:                i.Nombre,
		Descripcion:           i.Descripcion,
		Precio:                i.Precio,
		CategoriaPrincipalID:  i.CategoriaPrincipalID,
		CategoriaSecundariaID: i.CategoriaSecundariaID,
		SubcategoriaID:        i.SubcategoriaID,
		UnitID:                i.UnitID,
		UnitValue:             i.UnitValue,
		SizeID:                i.SizeID,
		SizeValue:             i.SizeValue,
		BrandID:               i.BrandID,
		Estado:                true,
		CreatedBy:             userID,
	}
}

func mapProductoError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrProductoNoEncontrado):
		return utils.Error(ctx, fiber.StatusNotFound, "Producto no encontrado")
	case errors.Is(err, repositories.ErrCajaNoEncontrada):
		return utils.Error(ctx, fiber.StatusNotFound, "Caja no encontrada")
	case errors.Is(err, repositories.ErrReferenciaInvalida):
		return utils.Error(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrProductoReferenciado):
		return utils.Error(ctx, fiber.StatusConflict, "Producto con stock o imagenes asociadas")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return utils.Error(ctx, fiber.StatusConflict, "Producto duplicado")
	default:
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}
}

func (c *ProductoController) CreateProducto(ctx *fiber.Ctx) error {

	var input productoInput
	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	producto := input.toModel(userIDFromCtx(ctx))

	repo := repositories.NewProductoRepository(c.DB)
	if err := repo.Create(&producto); err != nil {
		return mapProductoError(ctx, err)
	}

	return utils.Success(ctx, fiber.StatusCreated, "Producto creado", producto)
}

// CreateWithStock crea el producto junto a su primer detalle de stock.
func (c *ProductoController) CreateWithStock(ctx *fiber.Ctx) error {

	var input struct {
		productoInput
		CajaID       uint `json:"caja_id" validate:"required,gt=0"`
		StockInicial *int `json:"stock_inicial" validate:"required,gte=0"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	producto := input.toModel(userIDFromCtx(ctx))

	repo := repositories.NewProductoRepository(c.DB)
	detalle, err := repo.CreateWithStock(&producto, input.CajaID, *input.StockInicial, userIDFromCtx(ctx))
	if err != nil {
		return mapProductoError(ctx, err)
	}

	return utils.Success(ctx, fiber.StatusCreated, "Producto creado con stock inicial", fiber.Map{
		"producto": producto,
		"detalle":  detalle,
	})
}

func (c *ProductoController) GetProductoByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	repo := repositories.NewProductoRepository(c.DB)
	producto, err := repo.GetByID(uint(id))
	if err != nil {
		return mapProductoError(ctx, err)
	}

	return utils.Success(ctx, fiber.StatusOK, "Producto encontrado", producto)
}

func (c *ProductoController) GetAllProductos(ctx *fiber.Ctx) error {
	repo := repositories.NewProductoRepository(c.DB)
	productos, err := repo.GetAll()
	if err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Productos", productos)
}

func (c *ProductoController) UpdateProducto(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	repo := repositories.NewProductoRepository(c.DB)
	producto, err := repo.GetByID(uint(id))
	if err != nil {
		return mapProductoError(ctx, err)
	}

	var input productoInput
	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	producto.Nombre = input.Nombre
	producto.Descripcion = input.Descripcion
	producto.Precio = input.Precio
	producto.CategoriaPrincipalID = input.CategoriaPrincipalID
	producto.CategoriaSecundariaID = input.CategoriaSecundariaID
	producto.SubcategoriaID = input.SubcategoriaID
	producto.UnitID = input.UnitID
	producto.UnitValue = input.UnitValue
	producto.SizeID = input.SizeID
	producto.SizeValue = input.SizeValue
	producto.BrandID = input.BrandID
	producto.UpdatedBy = userIDFromCtx(ctx)

	if err := repo.Update(producto); err != nil {
		return mapProductoError(ctx, err)
	}

	return utils.Success(ctx, fiber.StatusOK, "Producto actualizado", producto)
}

// DeleteProducto: por defecto borrado suave (estado = 0). Con ?hard=true
// (solo admin) borra la fila; ?force=true ademas elimina detalles e
// imagenes asociadas.
func (c *ProductoController) DeleteProducto(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	hard := ctx.QueryBool("hard", false)
	force := ctx.QueryBool("force", false)

	repo := repositories.NewProductoRepository(c.DB)

	if !hard {
		if err := repo.SoftDelete(uint(id), userIDFromCtx(ctx)); err != nil {
			return mapProductoError(ctx, err)
		}
		return utils.Success(ctx, fiber.StatusOK, "Producto desactivado", nil)
	}

	tipo, _ := ctx.Locals("tipo").(string)
	if tipo != models.TipoAdmin {
		return utils.Error(ctx, fiber.StatusForbidden, "Forbidden: admin role required")
	}

	rutas, err := repo.HardDelete(uint(id), force)
	if err != nil {
		return mapProductoError(ctx, err)
	}

	if len(rutas) > 0 {
		c.imagenes().EliminarArchivos(rutas)
	}

	return utils.Success(ctx, fiber.StatusOK, "Producto eliminado", nil)
}

func (c *ProductoController) SearchByNombre(ctx *fiber.Ctx) error {
	nombre := ctx.Query("nombre")
	if nombre == "" {
		return utils.Error(ctx, fiber.StatusBadRequest, "Nombre requerido")
	}

	repo := repositories.NewProductoRepository(c.DB)
	productos, err := repo.SearchByNombre(nombre)
	if err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Productos", productos)
}

func (c *ProductoController) SearchByPrecio(ctx *fiber.Ctx) error {
	min := ctx.QueryFloat("min", 0)
	max := ctx.QueryFloat("max", 0)

	if min < 0 || max <= 0 || min > max {
		return utils.Error(ctx, fiber.StatusBadRequest, "Rango de precio invalido")
	}

	repo := repositories.NewProductoRepository(c.DB)
	productos, err := repo.SearchByPrecio(min, max)
	if err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Productos", productos)
}

// searchByFK comparte la proyeccion por clave foranea entre las rutas
// por_categoria, por_marca, por_unidad y por_talla.
func (c *ProductoController) searchByFK(ctx *fiber.Ctx, columna string) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid ID")
	}

	repo := repositories.NewProductoRepository(c.DB)
	productos, err := repo.SearchByReferencia(columna, uint(id))
	if err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Productos", productos)
}

func (c *ProductoController) SearchByCategoria(ctx *fiber.Ctx) error {
	return c.searchByFK(ctx, "categoria_principal_id")
}

func (c *ProductoController) SearchByMarca(ctx *fiber.Ctx) error {
	return c.searchByFK(ctx, "brand_id")
}

func (c *ProductoController) SearchByUnidad(ctx *fiber.Ctx) error {
	return c.searchByFK(ctx, "unit_id")
}

func (c *ProductoController) SearchByTalla(ctx *fiber.Ctx) error {
	return c.searchByFK(ctx, "size_id")
}
