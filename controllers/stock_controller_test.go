package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"inventario-app/controllers/idgen"
	"inventario-app/migration"
	"inventario-app/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	idgen.Init()
	os.Exit(m.Run())
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func setupStockApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))

	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", float64(1))
		return ctx.Next()
	})

	sc := NewStockController(db)
	app.Post("/stock/add", sc.Add)
	app.Post("/stock/remove", sc.Remove)
	app.Post("/stock/move", sc.Move)
	app.Post("/stock/set_by_detalle", sc.SetByDetalle)
	app.Get("/stock/producto/:producto_id", sc.GetByProducto)
	app.Get("/stock/detalle/:detalle_id", sc.GetDetalle)

	return app, db
}

func seedStock(t *testing.T, db *gorm.DB) (productoID, cajaA, cajaB uint) {
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

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestStockAddEndpoint(t *testing.T) {
	app, db := setupStockApp(t)
	productoID, cajaA, _ := seedStock(t, db)

	resp := postJSON(t, app, "/stock/add", fiber.Map{
		"caja_id": cajaA, "producto_id": productoID, "delta": 10,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)

	var detalle models.CajaDetalle
	require.NoError(t, json.Unmarshal(env.Data, &detalle))
	assert.Equal(t, 10, detalle.Stock)
}

func TestStockAddValidation(t *testing.T) {
	app, db := setupStockApp(t)
	productoID, cajaA, _ := seedStock(t, db)

	for _, delta := range []int{0, -3} {
		resp := postJSON(t, app, "/stock/add", fiber.Map{
			"caja_id": cajaA, "producto_id": productoID, "delta": delta,
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.False(t, env.Success)
		assert.NotEmpty(t, env.Errors)
	}

	// delta invalido no debe dejar rastro en la base
	var count int64
	db.Model(&models.CajaDetalle{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestStockRemoveInsufficientEndpoint(t *testing.T) {
	app, db := setupStockApp(t)
	productoID, cajaA, _ := seedStock(t, db)

	resp := postJSON(t, app, "/stock/add", fiber.Map{
		"caja_id": cajaA, "producto_id": productoID, "delta": 10,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/stock/remove", fiber.Map{
		"caja_id": cajaA, "producto_id": productoID, "delta": 15,
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestStockMoveEndpoint(t *testing.T) {
	app, db := setupStockApp(t)
	productoID, cajaA, cajaB := seedStock(t, db)

	resp := postJSON(t, app, "/stock/add", fiber.Map{
		"caja_id": cajaA, "producto_id": productoID, "delta": 10,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/stock/move", fiber.Map{
		"producto_id": productoID, "caja_origen": cajaA, "caja_destino": cajaB, "cantidad": 4,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var resultado []struct {
		Tipo  string `json:"tipo"`
		Stock int    `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resultado))
	require.Len(t, resultado, 2)
	assert.Equal(t, "origen", resultado[0].Tipo)
	assert.Equal(t, 6, resultado[0].Stock)
	assert.Equal(t, "destino", resultado[1].Tipo)
	assert.Equal(t, 4, resultado[1].Stock)
}

func TestStockMoveSameCaja(t *testing.T) {
	app, db := setupStockApp(t)
	productoID, cajaA, _ := seedStock(t, db)

	resp := postJSON(t, app, "/stock/move", fiber.Map{
		"producto_id": productoID, "caja_origen": cajaA, "caja_destino": cajaA, "cantidad": 4,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStockSetByDetalleEndpoint(t *testing.T) {
	app, db := setupStockApp(t)
	productoID, cajaA, _ := seedStock(t, db)

	resp := postJSON(t, app, "/stock/add", fiber.Map{
		"caja_id": cajaA, "producto_id": productoID, "delta": 10,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	var detalle models.CajaDetalle
	require.NoError(t, json.Unmarshal(env.Data, &detalle))

	// stock cero es un valor valido para la correccion manual
	resp = postJSON(t, app, "/stock/set_by_detalle", fiber.Map{
		"detalle_id": detalle.ID, "producto_id": productoID, "stock": 0,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var actual models.CajaDetalle
	require.NoError(t, db.First(&actual, detalle.ID).Error)
	assert.Equal(t, 0, actual.Stock)
}

func TestStockSetByDetalleNotFound(t *testing.T) {
	app, db := setupStockApp(t)
	productoID, _, _ := seedStock(t, db)

	resp := postJSON(t, app, "/stock/set_by_detalle", fiber.Map{
		"detalle_id": 42, "producto_id": productoID, "stock": 5,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestStockGetByProductoEndpoint(t *testing.T) {
	app, db := setupStockApp(t)
	productoID, cajaA, _ := seedStock(t, db)

	resp := postJSON(t, app, "/stock/add", fiber.Map{
		"caja_id": cajaA, "producto_id": productoID, "delta": 3,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/stock/producto/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var detalles []struct {
		Etiqueta string `json:"etiqueta"`
		Stock    int    `json:"stock"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detalles))
	require.Len(t, detalles, 1)
	assert.Equal(t, "A-C1-N1", detalles[0].Etiqueta)
	assert.Equal(t, 3, detalles[0].Stock)
}
