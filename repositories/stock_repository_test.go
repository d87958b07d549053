package repositories

import (
	"os"
	"testing"

	"inventario-app/controllers/idgen"
	"inventario-app/migration"
	"inventario-app/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	idgen.Init()
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))
	return db
}

// seedBase crea las referencias minimas: un producto y dos cajas.
func seedBase(t *testing.T, db *gorm.DB) (productoID, cajaA, cajaB uint) {
	t.Helper()

	categoria := models.Categoria{Nombre: "GENERAL"}
	brand := models.Brand{Nombre: "GENERICA"}
	unit := models.Unit{Nombre: "PCS"}
	size := models.Size{Nombre: "UNICA"}
	require.NoError(t, db.Create(&categoria).Error)
	require.NoError(t, db.Create(&brand).Error)
	require.NoError(t, db.Create(&unit).Error)
	require.NoError(t, db.Create(&size).Error)

	producto := models.Producto{
		Nombre:               "Camiseta basica",
		Precio:               19.90,
		CategoriaPrincipalID: categoria.ID,
		UnitID:               unit.ID,
		SizeID:               size.ID,
		BrandID:              brand.ID,
		Estado:               true,
	}
	require.NoError(t, db.Create(&producto).Error)

	a := models.Caja{Letra: "A", Cara: 1, Nivel: 1}
	b := models.Caja{Letra: "B", Cara: 1, Nivel: 1}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)

	return producto.ID, a.ID, b.ID
}

func TestAddCreatesDetalle(t *testing.T) {
	db := setupTestDB(t)
	productoID, cajaA, _ := seedBase(t, db)
	repo := NewStockRepository(db)

	detalle, err := repo.Add(cajaA, productoID, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, detalle.Stock)
	assert.Equal(t, cajaA, detalle.CajaID)
	assert.Equal(t, productoID, detalle.ProductoID)

	var count int64
	db.Model(&models.CajaDetalle{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddAccumulates(t *testing.T) {
	db := setupTestDB(t)
	productoID, cajaA, _ := seedBase(t, db)
	repo := NewStockRepository(db)

	_, err := repo.Add(cajaA, productoID, 10, 1)
	require.NoError(t, err)
	detalle, err := repo.Add(cajaA, productoID, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 15, detalle.Stock)

	// sigue siendo una sola fila por (caja, producto)
	var count int64
	db.Model(&models.CajaDetalle{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddUnknownCaja(t *testing.T) {
	db := setupTestDB(t)
	productoID, _, _ := seedBase(t, db)
	repo := NewStockRepository(db)

	_, err := repo.Add(999, productoID, 10, 1)
	assert.ErrorIs(t, err, ErrCajaNoEncontrada)
}

func TestAddUnknownProducto(t *testing.T) {
	db := setupTestDB(t)
	_, cajaA, _ := seedBase(t, db)
	repo := NewStockRepository(db)

	_, err := repo.Add(cajaA, 999, 10, 1)
	assert.ErrorIs(t, err, ErrProductoNoEncontrado)
}

func TestRemove(t *testing.T) {
	db := setupTestDB(t)
	productoID, cajaA, _ := seedBase(t, db)
	repo := NewStockRepository(db)

	_, err := repo.Add(cajaA, productoID, 10, 1)
	require.NoError(t, err)

	detalle, err := repo.Remove(cajaA, productoID, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, detalle.Stock)
}

func TestRemoveInsufficientLeavesStockUntouched(t *testing.T) {
	db := setupTestDB(t)
	productoID, cajaA, _ := seedBase(t, db)
	repo := NewStockRepository(db)

	_, err := repo.Add(cajaA, productoID, 10, 1)
	require.NoError(t, err)

	_, err = repo.Remove(cajaA, productoID, 15, 1)
	assert.ErrorIs(t, err, ErrStockInsuficiente)

	var detalle models.CajaDetalle
	require.NoError(t, db.Where("caja_id = ? AND producto_id = ?", cajaA, productoID).First(&detalle).Error)
	assert.Equal(t, 10, detalle.Stock)
}

func TestRemoveUnknownDetalle(t *testing.T) {
	db := setupTestDB(t)
	productoID, _, cajaB := seedBase(t, db)
	repo := NewStockRepository(db)

	_, err := repo.Remove(cajaB, productoID, 1, 1)
	assert.ErrorIs(t, err, ErrDetalleNoEncontrado)
}

func TestMove(t *testing.T) {
	db := setupTestDB(t)
	productoID, cajaA, cajaB := seedBase(t, db)
	repo := NewStockRepository(db)

	_, err := repo.Add(cajaA, productoID, 10, 1)
	require.NoError(t, err)

	resultado, err := repo.Move(productoID, cajaA, cajaB, 4, 1)
	require.NoError(t, err)
	require.Len(t, resultado, 2)

	assert.Equal(t, "origen", resultado[0].Tipo)
	assert.Equal(t, 6, resultado[0].Stock)
	assert.Equal(t, "destino", resultado[1].Tipo)
	assert.Equal(t, 4, resultado[1].Stock)
}

func TestMoveInsufficientRollsBackEverything(t *testing.T) {
	db := setupTestDB(t)
	productoID, cajaA, cajaB := seedBase(t, db)
	repo := NewStockRepository(db)

	_, err := repo.Add(cajaA, productoID, 2, 1)
	require.NoError(t, err)

	_, err = repo.Move(productoID, cajaA, cajaB, 5, 1)
	assert.ErrorIs(t, err, ErrStockInsuficiente)

	var origen models.CajaDetalle
	require.NoError(t, db.Where("caja_id = ? AND producto_id = ?", cajaA, productoID).First(&origen).Error)
	assert.Equal(t, 2, origen.Stock)

	var count int64
	db.Model(&models.CajaDetalle{}).Where("caja_id = ?", cajaB).Count(&count)
	assert.Equal(t, int64(0), count, "el detalle destino no debe crearse")
}

func TestMoveToUnknownCajaRollsBackOrigin(t *testing.T) {
	db := setupTestDB(t)
	productoID, cajaA, _ := seedBase(t, db)
	repo := NewStockRepository(db)

	_, err := repo.Add(cajaA, productoID, 10, 1)
	require.NoError(t, err)

	_, err = repo.Move(productoID, cajaA, 999, 4, 1)
	assert.ErrorIs(t, err, ErrCajaNoEncontrada)

	var origen models.CajaDetalle
	require.NoError(t, db.Where("caja_id = ? AND producto_id = ?", cajaA, productoID).First(&origen).Error)
	assert.Equal(t, 10, origen.Stock, "el retiro del origen debe revertirse")
}

func TestMoveConservation(t *testing.T) {
	db := setupTestDB(t)
	productoID, cajaA, cajaB := seedBase(t, db)
	repo := NewStockRepository(db)

	_, err := repo.Add(cajaA, productoID, 10, 1)
	require.NoError(t, err)

	_, err = repo.Move(productoID, cajaA, cajaB, 4, 1)
	require.NoError(t, err)
	_, err = repo.Move(productoID, cajaB, cajaA, 4, 1)
	require.NoError(t, err)

	var origen, destino models.CajaDetalle
	require.NoError(t, db.Where("caja_id = ?", cajaA).First(&origen).Error)
	require.NoError(t, db.Where("caja_id = ?", cajaB).First(&destino).Error)
	assert.Equal(t, 10, origen.Stock)
	assert.Equal(t, 0, destino.Stock)
}

func TestSetByDetalleIdempotent(t *testing.T) {
	db := setupTestDB(t)
	productoID, cajaA, _ := seedBase(t, db)
	repo := NewStockRepository(db)

	creado, err := repo.Add(cajaA, productoID, 10, 1)
	require.NoError(t, err)

	primero, err := repo.SetByDetalle(creado.ID, productoID, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, primero.Stock)

	segundo, err := repo.SetByDetalle(creado.ID, productoID, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, segundo.Stock)

	var detalle models.CajaDetalle
	require.NoError(t, db.First(&detalle, creado.ID).Error)
	assert.Equal(t, 7, detalle.Stock)
}

func TestSetByDetalleWrongProducto(t *testing.T) {
	db := setupTestDB(t)
	productoID, cajaA, _ := seedBase(t, db)
	repo := NewStockRepository(db)

	creado, err := repo.Add(cajaA, productoID, 10, 1)
	require.NoError(t, err)

	_, err = repo.SetByDetalle(creado.ID, productoID+1, 7, 1)
	assert.ErrorIs(t, err, ErrDetalleNoEncontrado)
}

func TestByProductoIncludesEtiqueta(t *testing.T) {
	db := setupTestDB(t)
	productoID, cajaA, cajaB := seedBase(t, db)
	repo := NewStockRepository(db)

	_, err := repo.Add(cajaA, productoID, 3, 1)
	require.NoError(t, err)
	_, err = repo.Add(cajaB, productoID, 5, 1)
	require.NoError(t, err)

	detalles, err := repo.ByProducto(productoID)
	require.NoError(t, err)
	require.Len(t, detalles, 2)
	assert.Equal(t, "A-C1-N1", detalles[0].Etiqueta)
	assert.Equal(t, 3, detalles[0].Stock)
	assert.Equal(t, "B-C1-N1", detalles[1].Etiqueta)
}

func TestDetallePorIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	seedBase(t, db)
	repo := NewStockRepository(db)

	_, err := repo.DetallePorID(42)
	assert.ErrorIs(t, err, ErrDetalleNoEncontrado)
}

func TestMutationsWriteMovimientos(t *testing.T) {
	db := setupTestDB(t)
	productoID, cajaA, cajaB := seedBase(t, db)
	repo := NewStockRepository(db)

	_, err := repo.Add(cajaA, productoID, 10, 1)
	require.NoError(t, err)
	_, err = repo.Remove(cajaA, productoID, 2, 1)
	require.NoError(t, err)
	_, err = repo.Move(productoID, cajaA, cajaB, 3, 1)
	require.NoError(t, err)

	var movimientos []models.MovimientoStock
	require.NoError(t, db.Order("id").Find(&movimientos).Error)
	require.Len(t, movimientos, 4) // entrada, salida, traslado x2

	entrada := movimientos[0]
	assert.Equal(t, models.MovimientoEntrada, entrada.Tipo)
	assert.Equal(t, 0, entrada.StockAnterior)
	assert.Equal(t, 10, entrada.StockNuevo)

	salida := movimientos[1]
	assert.Equal(t, models.MovimientoSalida, salida.Tipo)
	assert.Equal(t, -2, salida.Cantidad)
}
