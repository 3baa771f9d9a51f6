package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissing is wrapped by Load for every required key that is unset.
var ErrMissing = errors.New("missing required configuration")

type Config struct {
	Env        string
	ServerAddr string
	LogLevel   string
	LogFile    string

	MongoURI string
	MongoDB  string

	StorageBucket   string
	S3Region        string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string
	S3PathStyle     bool
	MaxUploadMB     int

	MetadataEndpoint        string
	MetadataCacheTTLSeconds int
	RedisURL                string
	RedisAddr               string
	RedisPassword           string
	RedisDB                 int

	AdminPasscode      string
	SessionIdleMinutes int
	CookieSecure       bool
	FrontendOrigins    []string

	RateLimitLogin     int
	RateLimitUploads   int
	RateLimitInquiries int
	RateLimitWindowSec int

	BrevoAPIKey      string
	BrevoSenderEmail string
	BrevoSenderName  string
	BrevoSandbox     bool
	OwnerEmail       string

	Timezone *time.Location
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}

// Load reads the environment, after merging a local .env file when present.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	loc, err := time.LoadLocation(getEnv("TZ", "Asia/Jakarta"))
	if err != nil {
		return nil, fmt.Errorf("config: TZ: %w", err)
	}

	var missing []string
	mongoURI := getEnv("MONGO_URI", "")
	if mongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	bucket := getEnv("STORAGE_BUCKET", "")
	if bucket == "" {
		missing = append(missing, "STORAGE_BUCKET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("config: %w: %s", ErrMissing, strings.Join(missing, ", "))
	}

	mongoDB := getEnv("MONGO_DB", "")
	if mongoDB == "" {
		mongoDB = mongoDBFromURI(mongoURI)
	}
	if mongoDB == "" {
		mongoDB = "catalog"
	}

	cfg := &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFile:    getEnv("LOG_FILE", ""),

		MongoURI: mongoURI,
		MongoDB:  mongoDB,

		StorageBucket:   bucket,
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:      getEnv("S3_ENDPOINT", ""),
		S3AccessKey:     getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:     getEnv("S3_SECRET_KEY", ""),
		S3PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
		S3PathStyle:     getEnvBool("S3_PATH_STYLE", false),
		MaxUploadMB:     getEnvInt("MAX_UPLOAD_MB", 25),

		MetadataEndpoint:        getEnv("METADATA_ENDPOINT", ""),
		MetadataCacheTTLSeconds: getEnvInt("METADATA_CACHE_TTL_SECONDS", 3600),
		RedisURL:                getEnv("REDIS_URL", ""),
		RedisAddr:               getEnv("REDIS_ADDR", ""),
		RedisPassword:           getEnv("REDIS_PASSWORD", ""),
		RedisDB:                 getEnvInt("REDIS_DB", 0),

		AdminPasscode:      getEnv("ADMIN_PASSCODE", ""),
		SessionIdleMinutes: getEnvInt("SESSION_IDLE_MINUTES", 30),
		CookieSecure:       getEnvBool("COOKIE_SECURE", false),
		FrontendOrigins:    splitList(getEnv("FRONTEND_ORIGIN", "http://localhost:5173")),

		RateLimitLogin:     getEnvInt("RATE_LIMIT_LOGIN", 5),
		RateLimitUploads:   getEnvInt("RATE_LIMIT_UPLOADS", 20),
		RateLimitInquiries: getEnvInt("RATE_LIMIT_INQUIRIES", 5),
		RateLimitWindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),

		BrevoAPIKey:      getEnv("BREVO_API_KEY", ""),
		BrevoSenderEmail: getEnv("BREVO_SENDER_EMAIL", ""),
		BrevoSenderName:  getEnv("BREVO_SENDER_NAME", ""),
		BrevoSandbox:     getEnvBool("BREVO_SANDBOX", false),
		OwnerEmail:       getEnv("OWNER_EMAIL", ""),

		Timezone: loc,
	}

	return cfg, nil
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSec) * time.Second
}

func (c *Config) SessionIdle() time.Duration {
	return time.Duration(c.SessionIdleMinutes) * time.Minute
}

func (c *Config) MetadataCacheTTL() time.Duration {
	return time.Duration(c.MetadataCacheTTLSeconds) * time.Second
}

func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	// only the first path segment names the database
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}
