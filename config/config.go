package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port string

	// Board API
	APIURL     string
	APITimeout time.Duration
	Location   *time.Location

	// Edit form
	FormSecret   string
	FormTokenTTL time.Duration

	// Draft storage
	DraftStore    string
	DraftTTL      time.Duration
	MongoURI      string
	MongoDB       string
	RedisAddr     string
	RedisPassword string
	MemURL        string

	CategoryFile     string
	ZipkinURL        string
	LogLevel         string
	PaginationWindow int
	CORSOrigins      string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid duration, using default")
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warn().Str("key", key).Str("value", v).Msg("invalid integer, using default")
		return fallback
	}
	return n
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Err(err).Str("timezone", name).Msg("unknown timezone, using UTC")
		return time.UTC
	}
	return loc
}

func LoadConfig() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env file not found, using system environment variables")
	}

	return Config{
		Port:             getEnv("PORT", "3000"),
		APIURL:           strings.TrimRight(getEnv("API_URL", "http://localhost:8080"), "/"),
		APITimeout:       getDuration("API_TIMEOUT", 5*time.Second),
		Location:         loadLocation(getEnv("TIMEZONE", "Asia/Seoul")),
		FormSecret:       getEnv("FORM_SECRET", ""),
		FormTokenTTL:     getDuration("FORM_TOKEN_TTL", time.Hour),
		DraftStore:       strings.ToLower(getEnv("DRAFT_STORE", "memory")),
		DraftTTL:         getDuration("DRAFT_TTL", 30*time.Minute),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:          getEnv("MONGO_DB", "board_web"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		MemURL:           getEnv("MEM_URL", "localhost:11211"),
		CategoryFile:     getEnv("CATEGORY_FILE", "categories.toml"),
		ZipkinURL:        getEnv("ZIPKIN_URL", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		PaginationWindow: getInt("PAGINATION_WINDOW", 5),
		CORSOrigins:      getEnv("CORS_ORIGINS", "*"),
	}
}
