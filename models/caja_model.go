package models

import (
	"fmt"
	"time"
)

// Caja es una caja fisica: letra + cara (1|2) + nivel (1|2), combinacion unica.
type Caja struct {
	ID        uint      `json:"caja_id" gorm:"primaryKey"`
	Letra     string    `json:"letra" gorm:"size:2;not null;uniqueIndex:idx_caja_componentes"`
	Cara      int       `json:"cara" gorm:"not null;uniqueIndex:idx_caja_componentes"`
	Nivel     int       `json:"nivel" gorm:"not null;uniqueIndex:idx_caja_componentes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy int       `json:"-"`
	UpdatedBy int       `json:"-"`
}

func (c *Caja) Etiqueta() string {
	return fmt.Sprintf("%s-C%d-N%d", c.Letra, c.Cara, c.Nivel)
}

type CajaDetalle struct {
	ID         uint      `json:"detalle_id" gorm:"primaryKey"`
	CajaID     uint      `json:"caja_id" gorm:"not null;uniqueIndex:idx_detalle_caja_producto"`
	ProductoID uint      `json:"producto_id" gorm:"not null;uniqueIndex:idx_detalle_caja_producto"`
	Stock      int       `json:"stock" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Caja     *Caja     `json:"-" gorm:"foreignKey:CajaID"`
	Producto *Producto `json:"-" gorm:"foreignKey:ProductoID"`
}
