package repositories

import (
	"errors"

	"inventario-app/controllers/idgen"
	"inventario-app/models"
	"inventario-app/types"

	"gorm.io/gorm"
)

var (
	ErrStockInsuficiente    = errors.New("stock insuficiente")
	ErrCajaNoEncontrada     = errors.New("caja no encontrada")
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrDetalleNoEncontrado  = errors.New("detalle no encontrado")
)

type StockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) *StockRepository {
	return &StockRepository{db}
}

// DetalleStock es la fila proyectada que consumen los listados de stock.
type DetalleStock struct {
	DetalleID  uint   `json:"detalle_id"`
	CajaID     uint   `json:"caja_id"`
	ProductoID uint   `json:"producto_id"`
	Stock      int    `json:"stock"`
	Letra      string `json:"letra"`
	Cara       int    `json:"cara"`
	Nivel      int    `json:"nivel"`
	Etiqueta   string `json:"etiqueta" gorm:"-"`
}

// MovimientoResultado etiqueta cada detalle tocado por un traslado.
type MovimientoResultado struct {
	Tipo string `json:"tipo"` // origen | destino
	models.CajaDetalle
}

// Add suma delta al detalle (caja, producto), creandolo si no existe.
func (r *StockRepository) Add(cajaID, productoID uint, delta int, userID int) (*models.CajaDetalle, error) {
	var detalle models.CajaDetalle
	err := r.db.Transaction(func(tx *gorm.DB) error {
		d, err := addTx(tx, cajaID, productoID, delta, models.MovimientoEntrada, userID)
		if err != nil {
			return err
		}
		detalle = *d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detalle, nil
}

// Remove resta delta del detalle. Falla sin mutar la fila cuando el
// resultado seria negativo.
func (r *StockRepository) Remove(cajaID, productoID uint, delta int, userID int) (*models.CajaDetalle, error) {
	var detalle models.CajaDetalle
	err := r.db.Transaction(func(tx *gorm.DB) error {
		d, err := removeTx(tx, cajaID, productoID, delta, models.MovimientoSalida, userID)
		if err != nil {
			return err
		}
		detalle = *d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detalle, nil
}

// SetByDetalle sobreescribe el stock de un detalle (correccion manual).
func (r *StockRepository) SetByDetalle(detalleID, productoID uint, stock int, userID int) (*models.CajaDetalle, error) {
	var detalle models.CajaDetalle
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND producto_id = ?", detalleID, productoID).First(&detalle).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDetalleNoEncontrado
			}
			return err
		}

		anterior := detalle.Stock
		detalle.Stock = stock
		if err := tx.Save(&detalle).Error; err != nil {
			return err
		}

		return registrarMovimiento(tx, &detalle, models.MovimientoAjuste, stock-anterior, anterior, userID)
	})
	if err != nil {
		return nil, err
	}
	return &detalle, nil
}

// Move traslada cantidad entre dos cajas dentro de una sola transaccion:
// si cualquiera de los dos pasos falla no queda efecto parcial.
func (r *StockRepository) Move(productoID, cajaOrigen, cajaDestino uint, cantidad int, userID int) ([]MovimientoResultado, error) {
	var resultado []MovimientoResultado
	err := r.db.Transaction(func(tx *gorm.DB) error {
		origen, err := removeTx(tx, cajaOrigen, productoID, cantidad, models.MovimientoTraslado, userID)
		if err != nil {
			return err
		}

		destino, err := addTx(tx, cajaDestino, productoID, cantidad, models.MovimientoTraslado, userID)
		if err != nil {
			return err
		}

		resultado = []MovimientoResultado{
			{Tipo: "origen", CajaDetalle: *origen},
			{Tipo: "destino", CajaDetalle: *destino},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}

// ByProducto lista el stock de un producto por caja, con su etiqueta.
func (r *StockRepository) ByProducto(productoID uint) ([]DetalleStock, error) {
	sqlStock := `select a.id as detalle_id, a.caja_id, a.producto_id, a.stock,
	b.letra, b.cara, b.nivel
	from caja_detalles a
	inner join cajas b on a.caja_id = b.id
	where a.producto_id = ?
	order by b.letra, b.cara, b.nivel`

	var detalles []DetalleStock
	if err := r.db.Raw(sqlStock, productoID).Scan(&detalles).Error; err != nil {
		return nil, err
	}

	for i := range detalles {
		caja := models.Caja{Letra: detalles[i].Letra, Cara: detalles[i].Cara, Nivel: detalles[i].Nivel}
		detalles[i].Etiqueta = caja.Etiqueta()
	}

	return detalles, nil
}

func (r *StockRepository) DetallesPorProducto(productoID uint) ([]models.CajaDetalle, error) {
	var detalles []models.CajaDetalle
	err := r.db.Where("producto_id = ?", productoID).Find(&detalles).Error
	return detalles, err
}

func (r *StockRepository) DetallePorID(detalleID uint) (*models.CajaDetalle, error) {
	var detalle models.CajaDetalle
	if err := r.db.First(&detalle, detalleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetalleNoEncontrado
		}
		return nil, err
	}
	return &detalle, nil
}

// FilaReporte alimenta el export a Excel del inventario completo.
type FilaReporte struct {
	Letra    string `json:"letra"`
	Cara     int    `json:"cara"`
	Nivel    int    `json:"nivel"`
	Producto string `json:"producto"`
	Stock    int    `json:"stock"`
}

func (r *StockRepository) ReporteGeneral() ([]FilaReporte, error) {
	sqlReporte := `select b.letra, b.cara, b.nivel, c.nombre as producto, a.stock
	from caja_detalles a
	inner join cajas b on a.caja_id = b.id
	inner join productos c on a.producto_id = c.id
	order by b.letra, b.cara, b.nivel, c.nombre`

	var filas []FilaReporte
	if err := r.db.Raw(sqlReporte).Scan(&filas).Error; err != nil {
		return nil, err
	}
	return filas, nil
}

func addTx(tx *gorm.DB, cajaID, productoID uint, delta int, tipo string, userID int) (*models.CajaDetalle, error) {
	if err := existeProducto(tx, productoID); err != nil {
		return nil, err
	}

	var detalle models.CajaDetalle
	err := tx.Where("caja_id = ? AND producto_id = ?", cajaID, productoID).First(&detalle).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		var caja models.Caja
		if err := tx.First(&caja, cajaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCajaNoEncontrada
			}
			return nil, err
		}

		detalle = models.CajaDetalle{CajaID: cajaID, ProductoID: productoID, Stock: 0}
		if err := tx.Create(&detalle).Error; err != nil {
			return nil, err
		}
	}

	anterior := detalle.Stock
	detalle.Stock = anterior + delta
	if err := tx.Save(&detalle).Error; err != nil {
		return nil, err
	}

	if err := registrarMovimiento(tx, &detalle, tipo, delta, anterior, userID); err != nil {
		return nil, err
	}

	return &detalle, nil
}

func removeTx(tx *gorm.DB, cajaID, productoID uint, delta int, tipo string, userID int) (*models.CajaDetalle, error) {
	var detalle models.CajaDetalle
	if err := tx.Where("caja_id = ? AND producto_id = ?", cajaID, productoID).First(&detalle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDetalleNoEncontrado
		}
		return nil, err
	}

	if detalle.Stock-delta < 0 {
		return nil, ErrStockInsuficiente
	}

	anterior := detalle.Stock
	detalle.Stock = anterior - delta
	if err := tx.Save(&detalle).Error; err != nil {
		return nil, err
	}

	if err := registrarMovimiento(tx, &detalle, tipo, -delta, anterior, userID); err != nil {
		return nil, err
	}

	return &detalle, nil
}

func existeProducto(tx *gorm.DB, productoID uint) error {
	var producto models.Producto
	if err := tx.First(&producto, productoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductoNoEncontrado
		}
		return err
	}
	return nil
}

func registrarMovimiento(tx *gorm.DB, detalle *models.CajaDetalle, tipo string, cantidad, anterior int, userID int) error {
	mov := models.MovimientoStock{
		ID:            types.SnowflakeID(idgen.GenerateID()),
		DetalleID:     detalle.ID,
		CajaID:        detalle.CajaID,
		ProductoID:    detalle.ProductoID,
		Tipo:          tipo,
		Cantidad:      cantidad,
		StockAnterior: anterior,
		StockNuevo:    detalle.Stock,
		CreatedBy:     userID,
	}
	return tx.Create(&mov).Error
}
