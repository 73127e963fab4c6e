/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"meetsum/config"
	"meetsum/handler"
	"meetsum/service"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the summary server",
	Long:  `Starts the HTTP server that serves the front-end and the summary/email API.`,
	Run: func(cmd *cobra.Command, args []string) {

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		// Initialize services
		extractService := service.NewExtractService()
		aiService, err := newAIService(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize AI service: %v", err)
		}
		mailService := service.NewMailService(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailSender, cfg.EmailPassword)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		summaryHandler := handler.NewSummaryHandler(extractService, aiService)
		mailHandler := handler.NewMailHandler(mailService)
		staticHandler := handler.NewStaticHandler(cfg.StaticDir)

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		router.POST("/generate_summary", summaryHandler.HandleGenerateSummary)
		router.POST("/send_email", mailHandler.HandleSendEmail)

		// Everything else is the front-end, with a JSON 404 for API-shaped paths.
		router.NoRoute(staticHandler.HandleFallback)

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

// newAIService picks the completion provider configured in ai_provider.
func newAIService(cfg *config.Config) (service.AIService, error) {
	switch cfg.AIProvider {
	case "openai":
		return service.NewOpenAIService(cfg.AIEndpoint, cfg.GroqAPIKey, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil
	case "gemini":
		return service.NewGeminiService([]string{cfg.GeminiAPIKey}, cfg.Model, cfg.Temperature, cfg.MaxTokens)
	default:
		return nil, fmt.Errorf("unknown ai_provider: %s", cfg.AIProvider)
	}
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
