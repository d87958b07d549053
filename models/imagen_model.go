package models

import "time"

// Imagen guarda solo la ruta de la variante md (canonica); las demas
// variantes (orig, lg, sm) viven en disco junto a ella.
type Imagen struct {
	ID         uint      `json:"imagen_id" gorm:"primaryKey"`
	ProductoID uint      `json:"producto_id" gorm:"not null;index"`
	ImagePath  string    `json:"image_path" gorm:"size:255;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Producto *Producto `json:"-" gorm:"foreignKey:ProductoID"`
}
