package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ServerPort string

	RedisURL string

	JWTSecret         string
	AccessTokenMaxAge int

	// PageSize is the fixed number of posts per feed page, shared by every
	// selection mode.
	PageSize int

	// PageCacheTTL bounds how stale the cached home feed may be.
	PageCacheTTL time.Duration

	MinioEndpoint   string
	MinioAccessKey  string
	MinioSecretKey  string
	MinioBucket     string
	MinioUseSSL     bool
	MinioPublicURL  string
	MaxImageSizeMB  int
	MaxImageDimenPx int
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	accessTokenMaxAge, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_MAX_AGE"))
	if err != nil || accessTokenMaxAge <= 0 {
		accessTokenMaxAge = 900
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	pageSize, err := strconv.Atoi(os.Getenv("PAGE_SIZE"))
	if err != nil || pageSize <= 0 {
		pageSize = 6
	}

	cacheTTLSec, err := strconv.Atoi(os.Getenv("PAGE_CACHE_TTL_SECONDS"))
	if err != nil || cacheTTLSec <= 0 {
		cacheTTLSec = 5
	}

	maxImageSizeMB, err := strconv.Atoi(os.Getenv("MAX_IMAGE_SIZE_MB"))
	if err != nil || maxImageSizeMB <= 0 {
		maxImageSizeMB = 10
	}

	maxImageDimen, err := strconv.Atoi(os.Getenv("MAX_IMAGE_DIMENSION_PX"))
	if err != nil || maxImageDimen <= 0 {
		maxImageDimen = 1080
	}

	minioUseSSL, err := strconv.ParseBool(os.Getenv("MINIO_USE_SSL"))
	if err != nil {
		minioUseSSL = false
	}

	dbSSLMode := os.Getenv("DB_SSLMODE")
	if dbSSLMode == "" {
		dbSSLMode = "disable"
	}

	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSSLMode:  dbSSLMode,

		ServerPort: serverPort,

		RedisURL: redisURL,

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AccessTokenMaxAge: accessTokenMaxAge,

		PageSize:     pageSize,
		PageCacheTTL: time.Duration(cacheTTLSec) * time.Second,

		MinioEndpoint:   os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:  os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:  os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:     os.Getenv("MINIO_BUCKET"),
		MinioUseSSL:     minioUseSSL,
		MinioPublicURL:  os.Getenv("MINIO_PUBLIC_URL"),
		MaxImageSizeMB:  maxImageSizeMB,
		MaxImageDimenPx: maxImageDimen,
	}, nil
}
