package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"dentalpro-backend/config"
	"dentalpro-backend/controllers"
	"dentalpro-backend/repository"
	"dentalpro-backend/routes"
	"dentalpro-backend/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()
}

func main() {
	repos := repository.NewBundle(repository.Options{})
	core := services.NewCore(repos, nil)
	controllers.Init(core)

	// The in-memory working set is the source of truth at runtime; the
	// SQLite snapshot carries it across restarts.
	if err := core.Backup.RestoreSQLite(config.DB); err != nil {
		log.Fatalf("Failed to restore from snapshot: %v", err)
	}

	reminders := services.NewReminderService(repos, core.Inventory, core.Backup, config.DB)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
