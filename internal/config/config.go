package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret    string
	Issuer       string
	TokenTTL     time.Duration
	IsProduction bool
	ServerPort   string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbSSLMode  string

	CORSAllowedOrigins []string

	// StorageDriver selects the object store backend: "minio" or "s3".
	StorageDriver  string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	S3Endpoint     string
	S3Region       string
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3UsePathStyle bool

	SignedURLTTL  time.Duration
	MaxUploadSize int64 = 10 << 20

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPUseTLS   bool
	AppBaseURL   string

	NotifyTimeout     time.Duration
	ReconcileInterval time.Duration
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("JWT_ISSUER", "logistics")
	TokenTTL = getDuration("TOKEN_TTL", 24*time.Hour)
	IsProduction = getBool("PRODUCTION", false)
	ServerPort = getEnv("SERVER_PORT", "8080")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "logistics")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")

	CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"))

	StorageDriver = strings.ToLower(getEnv("STORAGE_DRIVER", "minio"))
	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "task-submissions")
	MinioUseSSL = getBool("MINIO_USE_SSL", false)

	S3Endpoint = getEnv("S3_ENDPOINT", "")
	S3Region = getEnv("S3_REGION", "auto")
	S3AccessKey = getEnv("S3_ACCESS_KEY", "")
	S3SecretKey = getEnv("S3_SECRET_KEY", "")
	S3Bucket = getEnv("S3_BUCKET", "task-submissions")
	S3UsePathStyle = getBool("S3_USE_PATH_STYLE", true)

	SignedURLTTL = getDuration("SIGNED_URL_TTL", time.Hour)
	if v, err := strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", ""), 10, 64); err == nil && v > 0 {
		MaxUploadSize = v
	}

	SMTPHost = getEnv("SMTP_HOST", "")
	SMTPPort, _ = strconv.Atoi(getEnv("SMTP_PORT", "587"))
	SMTPUsername = getEnv("SMTP_USERNAME", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")
	SMTPFrom = getEnv("SMTP_FROM", "noreply@bmtlogistics.local")
	SMTPFromName = getEnv("SMTP_FROM_NAME", "BMT Logistics")
	SMTPUseTLS = getBool("SMTP_USE_TLS", false)
	AppBaseURL = getEnv("APP_BASE_URL", "http://localhost:5173")

	NotifyTimeout = getDuration("NOTIFY_TIMEOUT", 30*time.Second)
	ReconcileInterval = getDuration("RECONCILE_INTERVAL", 15*time.Minute)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid duration for %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
