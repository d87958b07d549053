package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventario-app/migration"
	"inventario-app/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCategoriaApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))

	app := fiber.New()
	cc := NewCategoriaController(db)
	app.Post("/categorias", cc.CreateCategoria)
	app.Delete("/categorias/:id", cc.DeleteCategoria)
	app.Post("/categorias_secundarias", cc.CreateSecundaria)
	app.Get("/categorias_secundarias", cc.GetSecundarias)
	app.Delete("/categorias_secundarias/:id", cc.DeleteSecundaria)
	app.Post("/subcategorias", cc.CreateSubcategoria)
	app.Delete("/subcategorias/:id", cc.DeleteSubcategoria)

	return app, db
}

func TestCategoriaJerarquia(t *testing.T) {
	app, _ := setupCategoriaApp(t)

	resp := postJSON(t, app, "/categorias", fiber.Map{"nombre": "Ropa"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	var categoria models.Categoria
	require.NoError(t, json.Unmarshal(env.Data, &categoria))

	resp = postJSON(t, app, "/categorias_secundarias", fiber.Map{
		"categoria_id": categoria.ID, "nombre": "Camisetas",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	env = decodeEnvelope(t, resp)
	var secundaria models.CategoriaSecundaria
	require.NoError(t, json.Unmarshal(env.Data, &secundaria))
	assert.Equal(t, categoria.ID, secundaria.CategoriaID)

	resp = postJSON(t, app, "/subcategorias", fiber.Map{
		"categoria_secundaria_id": secundaria.ID, "nombre": "Manga corta",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCrearSecundariaConPadreInexistente(t *testing.T) {
	app, _ := setupCategoriaApp(t)

	resp := postJSON(t, app, "/categorias_secundarias", fiber.Map{
		"categoria_id": 999, "nombre": "Camisetas",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteCategoriaConHijasBloqueado(t *testing.T) {
	app, db := setupCategoriaApp(t)

	resp := postJSON(t, app, "/categorias", fiber.Map{"nombre": "Ropa"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	var categoria models.Categoria
	require.NoError(t, json.Unmarshal(env.Data, &categoria))

	resp = postJSON(t, app, "/categorias_secundarias", fiber.Map{
		"categoria_id": categoria.ID, "nombre": "Camisetas",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodDelete, "/categorias/1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	db.Model(&models.Categoria{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetSecundariasFiltraPorPadre(t *testing.T) {
	app, db := setupCategoriaApp(t)

	require.NoError(t, db.Create(&models.Categoria{Nombre: "Ropa"}).Error)
	require.NoError(t, db.Create(&models.Categoria{Nombre: "Calzado"}).Error)
	require.NoError(t, db.Create(&models.CategoriaSecundaria{CategoriaID: 1, Nombre: "Camisetas"}).Error)
	require.NoError(t, db.Create(&models.CategoriaSecundaria{CategoriaID: 2, Nombre: "Botas"}).Error)

	req := httptest.NewRequest(http.MethodGet, "/categorias_secundarias?categoria_id=2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var secundarias []models.CategoriaSecundaria
	require.NoError(t, json.Unmarshal(env.Data, &secundarias))
	require.Len(t, secundarias, 1)
	assert.Equal(t, "Botas", secundarias[0].Nombre)
}

func TestDeleteSubcategoriaNoExiste(t *testing.T) {
	app, _ := setupCategoriaApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/subcategorias/7", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
