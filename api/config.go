package api

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort          string
	DatabaseType      string
	DatabaseHost      string
	DatabaseUser      string
	DatabasePassword  string
	DatabaseName      string
	SSLMode           string
	JwtSecret         string
	JwtAccessDuration int // seconds
	JwtDomain         string
	AllowedOrigins    []string
	DevMode           bool
	VendorCodesFile   string
	GeocoderURL       string
	GeocoderUserAgent string
	GeocoderTimeout   time.Duration
}

// ConfigFromEnv loads .env if present and reads the configuration from the environment
func ConfigFromEnv() Config {
	_ = godotenv.Load()

	return Config{
		HTTPPort:          getEnv("HTTP_PORT", ":8080"),
		DatabaseType:      getEnv("DB_TYPE", "postgres"),
		DatabaseHost:      getEnv("DB_HOST", "localhost"),
		DatabaseUser:      getEnv("DB_USER", "postgres"),
		DatabasePassword:  getEnv("DB_PASSWORD", ""),
		DatabaseName:      getEnv("DB_NAME", "colorcollection"),
		SSLMode:           getEnv("SSL_MODE", "disable"),
		JwtSecret:         getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JwtAccessDuration: getEnvInt("JWT_ACCESS_DURATION", 86400), // 1 day
		JwtDomain:         getEnv("JWT_DOMAIN", ""),
		AllowedOrigins:    getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:           getEnvBool("DEV_MODE", true),
		VendorCodesFile:   getEnv("VENDOR_CODES_FILE", ""),
		GeocoderURL:       getEnv("GEOCODER_URL", ""),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", "colorcollect/1.0"),
		GeocoderTimeout:   time.Duration(getEnvInt("GEOCODER_TIMEOUT", 5)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
