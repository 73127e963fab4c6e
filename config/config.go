package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the process-wide settings. It is loaded once at startup and
// handed to the services that need it; nothing reads the environment after
// that point.
type Config struct {
	Port      string `mapstructure:"port"`
	StaticDir string `mapstructure:"static_dir"`

	AIProvider  string  `mapstructure:"ai_provider"`
	AIEndpoint  string  `mapstructure:"ai_endpoint"`
	Model       string  `mapstructure:"model"`
	Temperature float32 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`

	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`

	GroqAPIKey    string `mapstructure:"GROQ_API_KEY"`
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY"`
	EmailSender   string `mapstructure:"EMAIL_SENDER"`
	EmailPassword string `mapstructure:"EMAIL_PASSWORD"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("port", "5000")
	v.SetDefault("static_dir", "static")
	v.SetDefault("ai_provider", "openai")
	v.SetDefault("ai_endpoint", "https://api.groq.com/openai/v1")
	v.SetDefault("model", "llama3-8b-8192")
	v.SetDefault("temperature", 0.7)
	v.SetDefault("max_tokens", 1024)
	v.SetDefault("smtp_host", "smtp.gmail.com")
	v.SetDefault("smtp_port", 465)

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Credentials come from the environment (or .env), never the yaml file.
	// Missing values are not an error here; endpoints that need them fail at
	// call time.
	v.BindEnv("GROQ_API_KEY")
	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("EMAIL_SENDER")
	v.BindEnv("EMAIL_PASSWORD")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
