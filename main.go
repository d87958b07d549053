package main

import (
	"os"

	"inventario-app/config"
	"inventario-app/controllers/idgen"
	"inventario-app/database"
	"inventario-app/migration"
	"inventario-app/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadConfig()

	app := fiber.New()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to auto migrate")
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupUsuarioRoutes(app, db)
	routes.SetupCajaRoutes(app, db)
	routes.SetupStockRoutes(app, db)
	routes.SetupProductoRoutes(app, db)
	routes.SetupCategoriaRoutes(app, db)
	routes.SetupCatalogoRoutes(app, db)
	routes.SetupImagenRoutes(app, db)

	port := config.APP_PORT
	log.Info().Str("port", port).Msg("server listening")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
