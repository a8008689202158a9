package commands

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/eqb/projects-api/internal/config"
	"github.com/eqb/projects-api/internal/database"
	"github.com/eqb/projects-api/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		gin.SetMode(cfg.GinMode)

		if err := database.Connect(cfg); err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := database.Migrate(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		r := server.NewRouter(database.GetDB())

		log.Printf("Server starting on %s", cfg.ListenAddr)
		if err := r.Run(cfg.ListenAddr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
