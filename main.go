package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/joho/godotenv"

	"groupstat/app"
	"groupstat/internal"
	"groupstat/internal/config"
	"groupstat/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.DefaultLogger
	calculator := app.NewCalculatorService(appConfig.Calculator, logger)
	server := ui.NewServer(calculator, appConfig.Server.GinMode, logger)

	// Start pprof server for performance profiling
	if appConfig.Profiling.Enabled {
		go func() {
			log.Printf("Performance profiling server starting on :%s", appConfig.Profiling.Port)
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
				log.Printf("pprof server failed: %v", err)
			}
		}()
	}

	log.Printf("Starting groupstat server on port %s (default mode %s)", appConfig.Server.Port, appConfig.Calculator.DefaultMode)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
