package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AssetDir  string
	DBPath    string
	OutputDir string

	ListenAddr         string
	ShutdownTimeoutSec int

	// BrandPatterns are sniffed against serialized records when no explicit
	// brand field matches. Order matters: first hit wins.
	BrandPatterns []string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	cfg := Config{
		AssetDir:  getEnv("ASSET_DIR", filepath.Join(cwd, "data", "suppliers")),
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "labkart.db")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),

		ListenAddr:         getEnv("LISTEN_ADDR", ":8080"),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),

		BrandPatterns: getEnvList("BRAND_PATTERNS", []string{"Borosil", "Whatman", "Rankem", "Tarsons", "Riviera"}),
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

func getEnvList(key string, fallback []string) []string {
	value := getEnv(key, "")
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
