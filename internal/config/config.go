package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string

	// BaseOrigin is the public root URL of this service, used to qualify
	// site-relative image paths into absolute URLs. Fixed for the lifetime
	// of the process.
	BaseOrigin string

	UploadDir      string
	MaxUploadBytes int64

	// Cascade policy. Deleting a project removes its image rows when
	// CascadeDeleteImages is set; deleting a user removes their projects
	// (and transitively their images) when CascadeDeleteProjects is set.
	CascadeDeleteImages   bool
	CascadeDeleteProjects bool

	SwaggerHost string
}

// Load builds Config from the environment with sensible defaults. A .env
// file is honored when present; its absence is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:            getEnv("SERVER_PORT", "3001"),
		MySQLDSN:              getEnv("MYSQL_DSN", "root:@tcp(localhost:3306)/assomap?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:               getEnvInt("REDIS_DB", 0),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		JWTSecret:             getEnv("JWT_SECRET", "change-me"),
		BaseOrigin:            getEnv("BASE_ORIGIN", "http://localhost:3001"),
		UploadDir:             getEnv("UPLOAD_DIR", "public/images/projets"),
		MaxUploadBytes:        getEnvInt64("MAX_UPLOAD_BYTES", 5*1024*1024),
		CascadeDeleteImages:   getEnvBool("CASCADE_DELETE_IMAGES", true),
		CascadeDeleteProjects: getEnvBool("CASCADE_DELETE_PROJECTS", false),
		SwaggerHost:           os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
