// database/seeder.go
package database

import (
	"errors"

	"inventario-app/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedAdmin(db)
	SeedCategorias(db)
	SeedBrands(db)
	SeedUnits(db)
	SeedSizes(db)
}

func SeedAdmin(db *gorm.DB) {
	var existing models.Usuario
	err := db.Where("email = ?", "admin@inventario.local").First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("unexpected DB error seeding admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123!"), 12)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin password")
	}

	admin := models.Usuario{
		Nombre:     "Administrador",
		Email:      "admin@inventario.local",
		Contrasena: string(hash),
		Tipo:       models.TipoAdmin,
		Estado:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}
	log.Info().Str("email", admin.Email).Msg("admin user seeded")
}

func SeedCategorias(db *gorm.DB) {
	categorias := []models.Categoria{
		{Nombre: "GENERAL", Descripcion: "Categoria por defecto"},
	}

	for _, c := range categorias {
		var existing models.Categoria
		if err := db.Where("nombre = ?", c.Nombre).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&c)
			}
		}
	}
}

func SeedBrands(db *gorm.DB) {
	brands := []models.Brand{
		{Nombre: "GENERICA"},
	}

	for _, b := range brands {
		var existing models.Brand
		if err := db.Where("nombre = ?", b.Nombre).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&b)
			}
		}
	}
}

func SeedUnits(db *gorm.DB) {
	units := []models.Unit{
		{Nombre: "PCS"},
		{Nombre: "KG"},
		{Nombre: "LT"},
	}

	for _, u := range units {
		var existing models.Unit
		if err := db.Where("nombre = ?", u.Nombre).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&u)
			}
		}
	}
}

func SeedSizes(db *gorm.DB) {
	sizes := []models.Size{
		{Nombre: "UNICA"},
	}

	for _, s := range sizes {
		var existing models.Size
		if err := db.Where("nombre = ?", s.Nombre).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				db.Create(&s)
			}
		}
	}
}
