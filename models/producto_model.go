package models

import "time"

type Producto struct {
	ID                    uint      `json:"producto_id" gorm:"primaryKey"`
	Nombre                string    `json:"nombre" gorm:"size:150;not null"`
	Descripcion           string    `json:"descripcion"`
	Precio                float64   `json:"precio" gorm:"not null;default:0"`
	CategoriaPrincipalID  uint      `json:"categoria_principal_id" gorm:"not null"`
	CategoriaSecundariaID *uint     `json:"categoria_secundaria_id"`
	SubcategoriaID        *uint     `json:"subcategoria_id"`
	UnitID                uint      `json:"unit_id" gorm:"not null"`
	UnitValue             float64   `json:"unit_value" gorm:"default:0"`
	SizeID                uint      `json:"size_id" gorm:"not null"`
	SizeValue             string    `json:"size_value"`
	BrandID               uint      `json:"brand_id" gorm:"not null"`
	Estado                bool      `json:"estado" gorm:"default:true"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
	CreatedBy             int       `json:"-"`
	UpdatedBy             int       `json:"-"`

	CategoriaPrincipal  *Categoria           `json:"-" gorm:"foreignKey:CategoriaPrincipalID"`
	CategoriaSecundaria *CategoriaSecundaria `json:"-" gorm:"foreignKey:CategoriaSecundariaID"`
	Subcategoria        *Subcategoria        `json:"-" gorm:"foreignKey:SubcategoriaID"`
	Unit                *Unit                `json:"-" gorm:"foreignKey:UnitID"`
	Size                *Size                `json:"-" gorm:"foreignKey:SizeID"`
	Brand               *Brand               `json:"-" gorm:"foreignKey:BrandID"`
}
