package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port string
	Env  string
	// SMTP Configuration (Gmail by default)
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string
	SupportEmailTo string
	// Mail lifecycle
	MailVerifyOnStart bool
	MailSendTimeout   time.Duration // zero means no deadline
	// CORS Configuration
	CORSAllowedOrigins []string
	CORSAllowAll       bool
	// API docs
	SwaggerEnabled bool
	// Client configuration
	APIBaseURL string
	AssetsDir  string
}

var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
	"https://destinyglobalimportexport.com",
	"https://www.destinyglobalimportexport.com",
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	username := getEnv("EMAIL_USER", "")

	cfg := &Config{
		Port: getEnv("PORT", "5000"),
		Env:  strings.ToLower(getEnv("APP_ENV", getEnv("NODE_ENV", EnvProduction))),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   username,
		SMTPPassword:   getEnv("EMAIL_PASS", ""),
		SMTPFromEmail:  getEnv("EMAIL_FROM", username), // Gmail rewrites any other sender anyway
		SupportEmailTo: getEnv("SUPPORT_EMAIL_TO", "support@destinyglobalimportexport.com"),
		// Mail lifecycle
		MailVerifyOnStart: getEnvBool("MAIL_VERIFY_ON_START", true),
		MailSendTimeout:   time.Duration(getEnvInt("MAIL_SEND_TIMEOUT_SECONDS", 0)) * time.Second,
		// CORS Configuration
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
		CORSAllowAll:       getEnvBool("CORS_ALLOW_ALL", false),
		SwaggerEnabled:     getEnvBool("SWAGGER_ENABLED", false),
		// Client configuration
		APIBaseURL: strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:5000"), "/"),
		AssetsDir:  getEnv("ASSETS_DIR", "public"),
	}

	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: EMAIL_USER or EMAIL_PASS is missing. Enquiries cannot be delivered.")
	}

	if cfg.CORSAllowAll {
		log.Println("WARNING: CORS_ALLOW_ALL is set. Every origin will be accepted.")
	}

	return cfg, nil
}

// IsDevelopment reports whether internal error detail may be echoed to clients
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks and trailing slashes
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return append([]string(nil), fallback...)
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimRight(strings.TrimSpace(item), "/")
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
