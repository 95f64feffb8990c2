package main

import (
	"log"

	"github.com/joho/godotenv"

	"groupstat/app"
	"groupstat/internal"
	"groupstat/internal/config"
	"groupstat/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.DefaultLogger
	calculator := app.NewCalculatorService(cfg.Calculator, logger)
	a := ui.NewApp(ui.Config{Port: cfg.Server.Port}, calculator, logger)

	log.Fatal(a.Start())
}
