package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rizzwaaaan/restaurant-software/config"
	"github.com/rizzwaaaan/restaurant-software/database"
	"github.com/rizzwaaaan/restaurant-software/router"
	"github.com/rizzwaaaan/restaurant-software/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}
	utils.InfoLogger.Println("Migration completed.")

	// Menu catalog has no write endpoint; fill it from a seed file when
	// one is configured.
	if seedFile := os.Getenv("MENU_SEED_FILE"); seedFile != "" {
		if err := database.SeedMenu(db, seedFile); err != nil {
			utils.ErrorLogger.Printf("Error seeding menu from %s: %v", seedFile, err)
		}
	}

	r := router.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
