package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv  string
	AppPort string

	// Remote order API (storefront backend).
	OrderAPIURL string

	// Hosted payment page provider.
	PaymentBaseURL  string
	PaymentAPIKey   string
	PaymentWalletID string
	PaymentTheme    string
	PaymentBypass   bool
	SuccessURL      string
	FailURL         string

	// Local snapshot persistence for cart/wishlist state.
	DataDir string

	// Admin access to the order archive.
	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	// Optional Postgres order archive. Disabled when DBHost is empty.
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:  os.Getenv("APP_ENV"),
		AppPort: getEnv("APP_PORT", "8080"),

		OrderAPIURL: os.Getenv("ORDER_API_URL"),

		PaymentBaseURL:  getEnv("PAYMENT_BASE_URL", "https://api.konnect.network"),
		PaymentAPIKey:   os.Getenv("PAYMENT_API_KEY"),
		PaymentWalletID: os.Getenv("PAYMENT_WALLET_ID"),
		PaymentTheme:    getEnv("PAYMENT_THEME", "light"),
		PaymentBypass:   os.Getenv("PAYMENT_BYPASS") == "true",
		SuccessURL:      os.Getenv("PAYMENT_SUCCESS_URL"),
		FailURL:         os.Getenv("PAYMENT_FAIL_URL"),

		DataDir: getEnv("DATA_DIR", "./data"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
	}

	if cfg.OrderAPIURL == "" {
		log.Fatal("ORDER_API_URL is required")
	}
	if !cfg.PaymentBypass && cfg.PaymentAPIKey == "" {
		log.Fatal("PAYMENT_API_KEY is required unless PAYMENT_BYPASS=true")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
