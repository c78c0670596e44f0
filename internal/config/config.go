package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	OutputDir string

	HeaderScanLimit int

	OCRBinary        string
	OCRLang          string
	OCRTimeoutMs     int
	OCRStrictCharset bool

	DefaultCustomer string
	DefaultPOA      string
	DefaultBrand    string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		HeaderScanLimit: getEnvInt("HEADER_SCAN_LIMIT", 50),

		OCRBinary:        getEnv("OCR_BINARY", "tesseract"),
		OCRLang:          getEnv("OCR_LANG", "eng"),
		OCRTimeoutMs:     getEnvInt("OCR_TIMEOUT_MS", 60000),
		OCRStrictCharset: getEnvBool("OCR_STRICT_CHARSET", false),

		DefaultCustomer: getEnv("DEFAULT_CUSTOMER", ""),
		DefaultPOA:      getEnv("DEFAULT_POA", ""),
		DefaultBrand:    getEnv("DEFAULT_BRAND", "OPEL"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
