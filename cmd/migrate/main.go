package main

import (
	"log"

	"notepad-be/internal/config"
	"notepad-be/internal/model"
	"notepad-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		log.Fatal("aborting migration")
	}

	db, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		log.Fatal("aborting migration")
	}

	color.Cyan("Running AutoMigrate (%s)...", cfg.Database.Driver)

	models := model.AllModels()
	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Migration failed: %v", err)
		log.Fatal("aborting migration")
	}

	color.Green("Migrated %d table(s)", len(models))
}
