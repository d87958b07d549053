package migration

import (
	"inventario-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Usuario{},
		&models.UserSession{},
		&models.LoginLog{},
		&models.Categoria{},
		&models.CategoriaSecundaria{},
		&models.Subcategoria{},
		&models.Brand{},
		&models.Unit{},
		&models.Size{},
		&models.Producto{},
		&models.Caja{},
		&models.CajaDetalle{},
		&models.MovimientoStock{},
		&models.Imagen{},
	)
}
