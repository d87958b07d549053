package repositories

import (
	"errors"

	"inventario-app/models"

	"gorm.io/gorm"
)

var ErrCajaReferenciada = errors.New("caja con stock asociado")

type CajaRepository struct {
	db *gorm.DB
}

func NewCajaRepository(db *gorm.DB) *CajaRepository {
	return &CajaRepository{db}
}

func (r *CajaRepository) Create(caja *models.Caja) error {
	return r.db.Create(caja).Error
}

func (r *CajaRepository) GetByID(id uint) (*models.Caja, error) {
	var caja models.Caja
	if err := r.db.First(&caja, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCajaNoEncontrada
		}
		return nil, err
	}
	return &caja, nil
}

func (r *CajaRepository) GetAll() ([]models.Caja, error) {
	var cajas []models.Caja
	err := r.db.Order("letra, cara, nivel").Find(&cajas).Error
	return cajas, err
}

// GetByComponents resuelve la clave fisica (letra, cara, nivel) a una caja.
func (r *CajaRepository) GetByComponents(letra string, cara, nivel int) (*models.Caja, error) {
	var caja models.Caja
	if err := r.db.Where("letra = ? AND cara = ? AND nivel = ?", letra, cara, nivel).First(&caja).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCajaNoEncontrada
		}
		return nil, err
	}
	return &caja, nil
}

func (r *CajaRepository) Update(caja *models.Caja) error {
	return r.db.Save(caja).Error
}

// Delete borra la caja solo cuando ningun detalle la referencia.
func (r *CajaRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var caja models.Caja
		if err := tx.First(&caja, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCajaNoEncontrada
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.CajaDetalle{}).Where("caja_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrCajaReferenciada
		}

		return tx.Delete(&caja).Error
	})
}
