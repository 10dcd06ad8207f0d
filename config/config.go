package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	App       AppConfig
	Firebase  FirebaseConfig
	Calendar  CalendarConfig
	SMTP      SMTPConfig
	Redis     RedisConfig
	Reminder  ReminderConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string
}

type AppConfig struct {
	Environment string
	Version     string
	FrontendURL string
}

type FirebaseConfig struct {
	CredentialsPath string
	ProjectID       string
}

type CalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	TimeZone        string
}

type SMTPConfig struct {
	Host        string
	Port        string
	Username    string
	Password    string
	FromAddress string
	FromName    string
	UseTLS      bool
	AdminEmails []string
}

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
}

// Enabled reports whether the booked-slots cache should be wired in.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type ReminderConfig struct {
	Enabled bool
	// Spec is a cron expression with a seconds field.
	Spec string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3001"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			FrontendURL: getEnv("FRONTEND_URL", ""),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "serviceAccountKey.json"),
			ProjectID:       getEnv("FIREBASE_PROJECT_ID", "booking-app-1af02"),
		},
		Calendar: CalendarConfig{
			CredentialsPath: getEnv("CALENDAR_CREDENTIALS_PATH", getEnv("FIREBASE_CREDENTIALS_PATH", "serviceAccountKey.json")),
			CalendarID:      getEnv("CALENDAR_ID", ""),
			TimeZone:        getEnv("CALENDAR_TIME_ZONE", "Asia/Makassar"),
		},
		SMTP: SMTPConfig{
			Host:        getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:        getEnv("SMTP_PORT", "587"),
			Username:    getEnv("SMTP_USER", ""),
			Password:    getEnv("SMTP_PASS", ""),
			FromAddress: getEnv("SMTP_FROM", getEnv("SMTP_USER", "")),
			FromName:    getEnv("SMTP_FROM_NAME", "Showroom Booking"),
			UseTLS:      getEnvAsBool("SMTP_USE_TLS", true),
			AdminEmails: getEnvAsList("ADMIN_EMAILS"),
		},
		Redis: RedisConfig{
			Addr:       getEnv("REDIS_ADDR", ""),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvAsInt("REDIS_DB", 0),
			TTLSeconds: getEnvAsInt("REDIS_SLOTS_TTL_SECONDS", 30),
		},
		Reminder: ReminderConfig{
			Enabled: getEnvAsBool("REMINDER_ENABLED", true),
			Spec:    getEnv("REMINDER_CRON", "0 0 7 * * *"),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvAsFloat("RATE_LIMIT_RPS", 25),
			Burst: getEnvAsInt("RATE_LIMIT_BURST", 50),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Firebase.CredentialsPath == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	if c.Firebase.ProjectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}

	if c.Calendar.CalendarID == "" {
		return fmt.Errorf("CALENDAR_ID is required")
	}

	if c.SMTP.Username == "" || c.SMTP.Password == "" {
		return fmt.Errorf("SMTP_USER and SMTP_PASS are required for mail delivery")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
