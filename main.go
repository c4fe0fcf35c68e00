package main

import (
	"os"

	"recipai-backend/cmd/config"
	migration "recipai-backend/cmd/database/migrate"
	"recipai-backend/internal/utils"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"})

	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	log.Info().Msg("database migration complete")

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up application")
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "3000"
	}

	log.Info().Str("port", port).Msg("server starting")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
