package repositories

import (
	"errors"
	"fmt"
	"strings"

	"inventario-app/models"

	"gorm.io/gorm"
)

var (
	ErrReferenciaInvalida   = errors.New("referencia invalida")
	ErrProductoReferenciado = errors.New("producto con stock o imagenes asociadas")
)

type ProductoRepository struct {
	db *gorm.DB
}

func NewProductoRepository(db *gorm.DB) *ProductoRepository {
	return &ProductoRepository{db}
}

func (r *ProductoRepository) Create(producto *models.Producto) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := validarReferencias(tx, producto); err != nil {
			return err
		}
		return tx.Create(producto).Error
	})
}

// CreateWithStock crea el producto y su primer detalle en una transaccion,
// para que nunca exista un producto sin stock rastreado.
func (r *ProductoRepository) CreateWithStock(producto *models.Producto, cajaID uint, stockInicial int, userID int) (*models.CajaDetalle, error) {
	var detalle models.CajaDetalle
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := validarReferencias(tx, producto); err != nil {
			return err
		}

		var caja models.Caja
		if err := tx.First(&caja, cajaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCajaNoEncontrada
			}
			return err
		}

		if err := tx.Create(producto).Error; err != nil {
			return err
		}

		detalle = models.CajaDetalle{CajaID: cajaID, ProductoID: producto.ID, Stock: stockInicial}
		if err := tx.Create(&detalle).Error; err != nil {
			return err
		}

		if stockInicial > 0 {
			return registrarMovimiento(tx, &detalle, models.MovimientoEntrada, stockInicial, 0, userID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detalle, nil
}

func (r *ProductoRepository) GetByID(id uint) (*models.Producto, error) {
	var producto models.Producto
	if err := r.db.First(&producto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNoEncontrado
		}
		return nil, err
	}
	return &producto, nil
}

func (r *ProductoRepository) GetAll() ([]models.Producto, error) {
	var productos []models.Producto
	err := r.db.Order("nombre").Find(&productos).Error
	return productos, err
}

func (r *ProductoRepository) Update(producto *models.Producto) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := validarReferencias(tx, producto); err != nil {
			return err
		}
		return tx.Save(producto).Error
	})
}

// SearchByNombre busca por subcadena sin distinguir mayusculas.
func (r *ProductoRepository) SearchByNombre(nombre string) ([]models.Producto, error) {
	var productos []models.Producto
	patron := "%" + strings.ToLower(nombre) + "%"
	err := r.db.Where("LOWER(nombre) LIKE ?", patron).Order("nombre").Find(&productos).Error
	return productos, err
}

func (r *ProductoRepository) SearchByPrecio(min, max float64) ([]models.Producto, error) {
	var productos []models.Producto
	err := r.db.Where("precio >= ? AND precio <= ?", min, max).Order("precio").Find(&productos).Error
	return productos, err
}

// SearchByReferencia filtra por una fk del producto (categoria, marca, etc).
func (r *ProductoRepository) SearchByReferencia(columna string, id uint) ([]models.Producto, error) {
	switch columna {
	case "categoria_principal_id", "categoria_secundaria_id", "subcategoria_id",
		"brand_id", "unit_id", "size_id":
	default:
		return nil, fmt.Errorf("columna de busqueda desconocida: %s", columna)
	}

	var productos []models.Producto
	err := r.db.Where(columna+" = ?", id).Order("nombre").Find(&productos).Error
	return productos, err
}

// SoftDelete marca estado = 0 sin tocar la fila.
func (r *ProductoRepository) SoftDelete(id uint, userID int) error {
	result := r.db.Model(&models.Producto{}).Where("id = ?", id).
		Updates(map[string]interface{}{"estado": false, "updated_by": userID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductoNoEncontrado
	}
	return nil
}

// HardDelete elimina la fila. Sin force, cualquier detalle o imagen asociada
// bloquea el borrado; con force se eliminan tambien esas filas y se
// devuelven las rutas de imagen para limpiar el disco.
func (r *ProductoRepository) HardDelete(id uint, force bool) ([]string, error) {
	var rutas []string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var producto models.Producto
		if err := tx.First(&producto, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductoNoEncontrado
			}
			return err
		}

		var detalles, imagenes int64
		if err := tx.Model(&models.CajaDetalle{}).Where("producto_id = ?", id).Count(&detalles).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Imagen{}).Where("producto_id = ?", id).Count(&imagenes).Error; err != nil {
			return err
		}

		if (detalles > 0 || imagenes > 0) && !force {
			return ErrProductoReferenciado
		}

		if force {
			var filas []models.Imagen
			if err := tx.Where("producto_id = ?", id).Find(&filas).Error; err != nil {
				return err
			}
			for _, img := range filas {
				rutas = append(rutas, img.ImagePath)
			}

			if err := tx.Where("producto_id = ?", id).Delete(&models.Imagen{}).Error; err != nil {
				return err
			}
			if err := tx.Where("producto_id = ?", id).Delete(&models.CajaDetalle{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&producto).Error
	})
	if err != nil {
		return nil, err
	}
	return rutas, nil
}

func validarReferencias(tx *gorm.DB, p *models.Producto) error {
	if err := existeFila(tx, &models.Categoria{}, p.CategoriaPrincipalID, "categoria_principal_id"); err != nil {
		return err
	}
	if p.CategoriaSecundariaID != nil {
		if err := existeFila(tx, &models.CategoriaSecundaria{}, *p.CategoriaSecundariaID, "categoria_secundaria_id"); err != nil {
			return err
		}
	}
	if p.SubcategoriaID != nil {
		if err := existeFila(tx, &models.Subcategoria{}, *p.SubcategoriaID, "subcategoria_id"); err != nil {
			return err
		}
	}
	if err := existeFila(tx, &models.Brand{}, p.BrandID, "brand_id"); err != nil {
		return err
	}
	if err := existeFila(tx, &models.Unit{}, p.UnitID, "unit_id"); err != nil {
		return err
	}
	return existeFila(tx, &models.Size{}, p.SizeID, "size_id")
}

func existeFila(tx *gorm.DB, modelo interface{}, id uint, campo string) error {
	var count int64
	if err := tx.Model(modelo).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s=%d", ErrReferenciaInvalida, campo, id)
	}
	return nil
}
