package repositories

import (
	"testing"

	"inventario-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// productoValido clona las referencias del producto sembrado para
// construir uno nuevo que pase la validacion de fks.
func productoValido(t *testing.T, db *gorm.DB, nombre string, precio float64) models.Producto {
	t.Helper()
	var base models.Producto
	require.NoError(t, db.First(&base).Error)
	return models.Producto{
		Nombre:               nombre,
		Precio:               precio,
		CategoriaPrincipalID: base.CategoriaPrincipalID,
		UnitID:               base.UnitID,
		SizeID:               base.SizeID,
		BrandID:              base.BrandID,
		Estado:               true,
	}
}

func TestProductoCreate(t *testing.T) {
	db := setupTestDB(t)
	seedBase(t, db)
	repo := NewProductoRepository(db)

	producto := productoValido(t, db, "Pantalon cargo", 45.50)
	require.NoError(t, repo.Create(&producto))
	assert.NotZero(t, producto.ID)
}

func TestProductoCreateInvalidCategoria(t *testing.T) {
	db := setupTestDB(t)
	seedBase(t, db)
	repo := NewProductoRepository(db)

	producto := productoValido(t, db, "Pantalon cargo", 45.50)
	producto.CategoriaPrincipalID = 999
	err := repo.Create(&producto)
	assert.ErrorIs(t, err, ErrReferenciaInvalida)

	var count int64
	db.Model(&models.Producto{}).Where("nombre = ?", "Pantalon cargo").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestProductoCreateInvalidSubcategoria(t *testing.T) {
	db := setupTestDB(t)
	seedBase(t, db)
	repo := NewProductoRepository(db)

	sub := uint(999)
	producto := productoValido(t, db, "Pantalon cargo", 45.50)
	producto.SubcategoriaID = &sub
	assert.ErrorIs(t, repo.Create(&producto), ErrReferenciaInvalida)
}

func TestProductoCreateWithStock(t *testing.T) {
	db := setupTestDB(t)
	_, cajaA, _ := seedBase(t, db)
	repo := NewProductoRepository(db)

	producto := productoValido(t, db, "Gorra trucker", 12.00)
	detalle, err := repo.CreateWithStock(&producto, cajaA, 8, 1)
	require.NoError(t, err)
	assert.NotZero(t, producto.ID)
	assert.Equal(t, 8, detalle.Stock)
	assert.Equal(t, cajaA, detalle.CajaID)

	var movimientos int64
	db.Model(&models.MovimientoStock{}).Where("producto_id = ?", producto.ID).Count(&movimientos)
	assert.Equal(t, int64(1), movimientos)
}

func TestProductoCreateWithStockZeroSkipsMovimiento(t *testing.T) {
	db := setupTestDB(t)
	_, cajaA, _ := seedBase(t, db)
	repo := NewProductoRepository(db)

	producto := productoValido(t, db, "Gorra trucker", 12.00)
	detalle, err := repo.CreateWithStock(&producto, cajaA, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, detalle.Stock)

	var movimientos int64
	db.Model(&models.MovimientoStock{}).Where("producto_id = ?", producto.ID).Count(&movimientos)
	assert.Equal(t, int64(0), movimientos)
}

func TestProductoCreateWithStockUnknownCajaRollsBack(t *testing.T) {
	db := setupTestDB(t)
	seedBase(t, db)
	repo := NewProductoRepository(db)

	producto := productoValido(t, db, "Gorra trucker", 12.00)
	_, err := repo.CreateWithStock(&producto, 999, 8, 1)
	assert.ErrorIs(t, err, ErrCajaNoEncontrada)

	var count int64
	db.Model(&models.Producto{}).Where("nombre = ?", "Gorra trucker").Count(&count)
	assert.Equal(t, int64(0), count, "el producto no debe quedar creado")
}

func TestProductoSearchByNombre(t *testing.T) {
	db := setupTestDB(t)
	seedBase(t, db)
	repo := NewProductoRepository(db)

	productos, err := repo.SearchByNombre("CAMISETA")
	require.NoError(t, err)
	require.Len(t, productos, 1)
	assert.Equal(t, "Camiseta basica", productos[0].Nombre)

	productos, err = repo.SearchByNombre("inexistente")
	require.NoError(t, err)
	assert.Empty(t, productos)
}

func TestProductoSearchByPrecio(t *testing.T) {
	db := setupTestDB(t)
	seedBase(t, db)
	repo := NewProductoRepository(db)

	caro := productoValido(t, db, "Chaqueta", 120.00)
	require.NoError(t, repo.Create(&caro))

	productos, err := repo.SearchByPrecio(10, 50)
	require.NoError(t, err)
	require.Len(t, productos, 1)
	assert.Equal(t, "Camiseta basica", productos[0].Nombre)
}

func TestProductoSearchByReferenciaUnknownColumn(t *testing.T) {
	db := setupTestDB(t)
	seedBase(t, db)
	repo := NewProductoRepository(db)

	_, err := repo.SearchByReferencia("nombre; drop table productos", 1)
	assert.Error(t, err)
}

func TestProductoSoftDelete(t *testing.T) {
	db := setupTestDB(t)
	productoID, _, _ := seedBase(t, db)
	repo := NewProductoRepository(db)

	require.NoError(t, repo.SoftDelete(productoID, 1))

	producto, err := repo.GetByID(productoID)
	require.NoError(t, err)
	assert.False(t, producto.Estado)

	assert.ErrorIs(t, repo.SoftDelete(999, 1), ErrProductoNoEncontrado)
}

func TestProductoHardDeleteBlockedByStock(t *testing.T) {
	db := setupTestDB(t)
	productoID, cajaA, _ := seedBase(t, db)

	stock := NewStockRepository(db)
	_, err := stock.Add(cajaA, productoID, 5, 1)
	require.NoError(t, err)

	repo := NewProductoRepository(db)
	_, err = repo.HardDelete(productoID, false)
	assert.ErrorIs(t, err, ErrProductoReferenciado)

	_, err = repo.GetByID(productoID)
	assert.NoError(t, err)
}

func TestProductoHardDeleteForce(t *testing.T) {
	db := setupTestDB(t)
	productoID, cajaA, _ := seedBase(t, db)

	stock := NewStockRepository(db)
	_, err := stock.Add(cajaA, productoID, 5, 1)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Imagen{ProductoID: productoID, ImagePath: "Protected/Images/Productos/1/md/x.jpg"}).Error)

	repo := NewProductoRepository(db)
	rutas, err := repo.HardDelete(productoID, true)
	require.NoError(t, err)
	require.Len(t, rutas, 1)
	assert.Equal(t, "Protected/Images/Productos/1/md/x.jpg", rutas[0])

	_, err = repo.GetByID(productoID)
	assert.ErrorIs(t, err, ErrProductoNoEncontrado)

	var detalles, imagenes int64
	db.Model(&models.CajaDetalle{}).Where("producto_id = ?", productoID).Count(&detalles)
	db.Model(&models.Imagen{}).Where("producto_id = ?", productoID).Count(&imagenes)
	assert.Equal(t, int64(0), detalles)
	assert.Equal(t, int64(0), imagenes)
}

func TestProductoHardDeleteClean(t *testing.T) {
	db := setupTestDB(t)
	productoID, _, _ := seedBase(t, db)
	repo := NewProductoRepository(db)

	rutas, err := repo.HardDelete(productoID, false)
	require.NoError(t, err)
	assert.Empty(t, rutas)
}
