package controllers

import (
	"errors"
	"fmt"

	"inventario-app/repositories"
	"inventario-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type StockController struct {
	DB *gorm.DB
}

func NewStockController(DB *gorm.DB) *StockController {
	return &StockController{DB: DB}
}

func userIDFromCtx(ctx *fiber.Ctx) int {
	if v, ok := ctx.Locals("userID").(float64); ok {
		return int(v)
	}
	return 0
}

// mapStockError traduce los errores de dominio del ledger a status HTTP.
func mapStockError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrStockInsuficiente):
		return utils.Error(ctx, fiber.StatusConflict, "Stock insuficiente")
	case errors.Is(err, repositories.ErrCajaNoEncontrada):
		return utils.Error(ctx, fiber.StatusNotFound, "Caja no encontrada")
	case errors.Is(err, repositories.ErrProductoNoEncontrado):
		return utils.Error(ctx, fiber.StatusNotFound, "Producto no encontrado")
	case errors.Is(err, repositories.ErrDetalleNoEncontrado):
		return utils.Error(ctx, fiber.StatusNotFound, "Detalle no encontrado")
	default:
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}
}

func (c *StockController) Add(ctx *fiber.Ctx) error {

	var input struct {
		CajaID     uint `json:"caja_id" validate:"required,gt=0"`
		ProductoID uint `json:"producto_id" validate:"required,gt=0"`
		Delta      int  `json:"delta" validate:"required,gt=0"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	repo := repositories.NewStockRepository(c.DB)
	detalle, err := repo.Add(input.CajaID, input.ProductoID, input.Delta, userIDFromCtx(ctx))
	if err != nil {
		return mapStockError(ctx, err)
	}

	return utils.Success(ctx, fiber.StatusOK, "Stock agregado", detalle)
}

func (c *StockController) Remove(ctx *fiber.Ctx) error {

	var input struct {
		CajaID     uint `json:"caja_id" validate:"required,gt=0"`
		ProductoID uint `json:"producto_id" validate:"required,gt=0"`
		Delta      int  `json:"delta" validate:"required,gt=0"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	repo := repositories.NewStockRepository(c.DB)
	detalle, err := repo.Remove(input.CajaID, input.ProductoID, input.Delta, userIDFromCtx(ctx))
	if err != nil {
		return mapStockError(ctx, err)
	}

	return utils.Success(ctx, fiber.StatusOK, "Stock retirado", detalle)
}

func (c *StockController) Move(ctx *fiber.Ctx) error {

	var input struct {
		ProductoID  uint `json:"producto_id" validate:"required,gt=0"`
		CajaOrigen  uint `json:"caja_origen" validate:"required,gt=0"`
		CajaDestino uint `json:"caja_destino" validate:"required,gt=0"`
		Cantidad    int  `json:"cantidad" validate:"required,gt=0"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	if input.CajaOrigen == input.CajaDestino {
		return utils.Error(ctx, fiber.StatusBadRequest, "Caja origen y destino no pueden ser iguales")
	}

	repo := repositories.NewStockRepository(c.DB)
	resultado, err := repo.Move(input.ProductoID, input.CajaOrigen, input.CajaDestino, input.Cantidad, userIDFromCtx(ctx))
	if err != nil {
		return mapStockError(ctx, err)
	}

	return utils.Success(ctx, fiber.StatusOK, "Stock movido", resultado)
}

func (c *StockController) SetByDetalle(ctx *fiber.Ctx) error {

	var input struct {
		DetalleID  uint `json:"detalle_id" validate:"required,gt=0"`
		ProductoID uint `json:"producto_id" validate:"required,gt=0"`
		Stock      *int `json:"stock" validate:"required,gte=0"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(ctx, err)
	}

	repo := repositories.NewStockRepository(c.DB)
	detalle, err := repo.SetByDetalle(input.DetalleID, input.ProductoID, *input.Stock, userIDFromCtx(ctx))
	if err != nil {
		return mapStockError(ctx, err)
	}

	return utils.Success(ctx, fiber.StatusOK, "Stock actualizado", detalle)
}

func (c *StockController) GetByProducto(ctx *fiber.Ctx) error {
	productoID, err := ctx.ParamsInt("producto_id")
	if err != nil || productoID <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid producto_id")
	}

	repo := repositories.NewStockRepository(c.DB)
	detalles, err := repo.ByProducto(uint(productoID))
	if err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	return utils.Success(ctx, fiber.StatusOK, "Stock por producto", detalles)
}

func (c *StockController) GetDetalle(ctx *fiber.Ctx) error {
	detalleID, err := ctx.ParamsInt("detalle_id")
	if err != nil || detalleID <= 0 {
		return utils.Error(ctx, fiber.StatusBadRequest, "Invalid detalle_id")
	}

	repo := repositories.NewStockRepository(c.DB)
	detalle, err := repo.DetallePorID(uint(detalleID))
	if err != nil {
		return mapStockError(ctx, err)
	}

	return utils.Success(ctx, fiber.StatusOK, "Detalle encontrado", detalle)
}

// ExportExcel genera el reporte de inventario completo.
func (c *StockController) ExportExcel(ctx *fiber.Ctx) error {

	repo := repositories.NewStockRepository(c.DB)
	filas, err := repo.ReporteGeneral()
	if err != nil {
		return utils.Error(ctx, fiber.StatusInternalServerError, "Unexpected error")
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Letra")
	f.SetCellValue(sheet, "B1", "Cara")
	f.SetCellValue(sheet, "C1", "Nivel")
	f.SetCellValue(sheet, "D1", "Producto")
	f.SetCellValue(sheet, "E1", "Stock")

	for i, fila := range filas {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), fila.Letra)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), fila.Cara)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), fila.Nivel)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), fila.Producto)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), fila.Stock)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="inventario.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
