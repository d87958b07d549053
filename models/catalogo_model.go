package models

// Entidades de catalogo: lookups referenciados por Producto.

type Categoria struct {
	ID          uint   `json:"categoria_id" gorm:"primaryKey"`
	Nombre      string `json:"nombre" gorm:"size:100;not null;unique"`
	Descripcion string `json:"descripcion"`
}

type CategoriaSecundaria struct {
	ID          uint   `json:"categoria_secundaria_id" gorm:"primaryKey"`
	CategoriaID uint   `json:"categoria_id" gorm:"not null"`
	Nombre      string `json:"nombre" gorm:"size:100;not null"`

	Categoria *Categoria `json:"-" gorm:"foreignKey:CategoriaID"`
}

type Subcategoria struct {
	ID                    uint   `json:"subcategoria_id" gorm:"primaryKey"`
	CategoriaSecundariaID uint   `json:"categoria_secundaria_id" gorm:"not null"`
	Nombre                string `json:"nombre" gorm:"size:100;not null"`

	CategoriaSecundaria *CategoriaSecundaria `json:"-" gorm:"foreignKey:CategoriaSecundariaID"`
}

type Brand struct {
	ID     uint   `json:"brand_id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"size:100;not null;unique"`
}

type Unit struct {
	ID     uint   `json:"unit_id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"size:50;not null;unique"`
}

type Size struct {
	ID     uint   `json:"size_id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"size:50;not null;unique"`
}
