package repositories

import (
	"errors"

	"inventario-app/models"

	"gorm.io/gorm"
)

var ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")

type UsuarioRepository struct {
	DB *gorm.DB
}

func NewUsuarioRepository(DB *gorm.DB) *UsuarioRepository {
	return &UsuarioRepository{DB: DB}
}

func (r *UsuarioRepository) Create(usuario *models.Usuario) error {
	return r.DB.Create(usuario).Error
}

func (r *UsuarioRepository) GetByID(id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.DB.First(&usuario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		return nil, err
	}
	return &usuario, nil
}

func (r *UsuarioRepository) GetAll() ([]models.Usuario, error) {
	var usuarios []models.Usuario
	err := r.DB.Order("nombre").Find(&usuarios).Error
	return usuarios, err
}

func (r *UsuarioRepository) GetByEmail(email string) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.DB.Where("email = ?", email).First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		return nil, err
	}
	return &usuario, nil
}

func (r *UsuarioRepository) Update(usuario *models.Usuario) error {
	return r.DB.Save(usuario).Error
}

func (r *UsuarioRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Usuario{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUsuarioNoEncontrado
	}
	return nil
}
