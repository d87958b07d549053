package models

import (
	"time"

	"inventario-app/types"
)

const (
	MovimientoEntrada  = "entrada"
	MovimientoSalida   = "salida"
	MovimientoAjuste   = "ajuste"
	MovimientoTraslado = "movimiento"
)

// MovimientoStock registra cada cambio de stock sobre un detalle.
type MovimientoStock struct {
	ID            types.SnowflakeID `json:"id" gorm:"primaryKey"`
	DetalleID     uint              `json:"detalle_id" gorm:"not null;index"`
	CajaID        uint              `json:"caja_id" gorm:"not null"`
	ProductoID    uint              `json:"producto_id" gorm:"not null;index"`
	Tipo          string            `json:"tipo" gorm:"size:20;not null"`
	Cantidad      int               `json:"cantidad" gorm:"not null"`
	StockAnterior int               `json:"stock_anterior" gorm:"not null"`
	StockNuevo    int               `json:"stock_nuevo" gorm:"not null"`
	CreatedAt     time.Time         `json:"created_at"`
	CreatedBy     int               `json:"-"`
}

func (MovimientoStock) TableName() string { return "movimientos_stock" }
