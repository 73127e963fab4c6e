/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"meetsum/config"
	"meetsum/service"
)

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a local transcript file",
	Long: `Extracts text from a local .txt, .pdf or .docx file, requests a summary
from the configured completion provider and prints it to stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		filePath, _ := cmd.Flags().GetString("file")
		prompt, _ := cmd.Flags().GetString("prompt")

		if filePath == "" {
			log.Fatal("--file is required")
		}

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		data, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}

		extractService := service.NewExtractService()
		transcript, err := extractService.Extract(data, filepath.Base(filePath))
		if err != nil {
			log.Fatalf("Failed to extract transcript: %v", err)
		}

		aiService, err := newAIService(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize AI service: %v", err)
		}

		summary, err := aiService.Summarize(context.Background(), transcript, prompt)
		if err != nil {
			log.Fatalf("Failed to generate summary: %v", err)
		}

		fmt.Println(summary)
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)

	summarizeCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	summarizeCmd.Flags().StringP("file", "f", "", "Path to the transcript file")
	summarizeCmd.Flags().StringP("prompt", "p", "Summarize the key points and action items", "Instruction for the summary")
}
