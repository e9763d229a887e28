package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/bloomlms/bloom-backend/internal/app"
)

func main() {
	// Local development convenience; production supplies real env.
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment")
	}

	a, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	a.Log.Info("Server listening", "port", a.Cfg.Port)
	if err := a.Run(":" + a.Cfg.Port); err != nil {
		a.Log.Error("Server failed", "error", err)
		a.Close()
		os.Exit(1)
	}
}
