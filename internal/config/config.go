package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort      = "8080"
	defaultNominatimURL = "https://nominatim.openstreetmap.org"
	defaultBucket       = "food-images"
	defaultTimeZone     = "Asia/Kolkata"

	// Kanpur city centre, used when a user has no stored location.
	defaultFallbackLat     = 26.4677536423731
	defaultFallbackLng     = 80.346298037978
	defaultFallbackAddress = "Kanpur, Uttar Pradesh"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	AppPort    string
	AppEnv     string
	CORSOrigin string

	JWTSecret         string
	TokenTTL          time.Duration
	InternalSecretKey string

	ImageBucket string

	NominatimURL       string
	NominatimUserAgent string

	FallbackLat       float64
	FallbackLng       float64
	FallbackAddress   string
	DefaultDistanceKM float64
	TimeZone          string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		AppPort:    getEnv("APP_PORT", defaultAppPort),
		AppEnv:     os.Getenv("APP_ENV"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          getDuration("TOKEN_TTL", 24*time.Hour),
		InternalSecretKey: os.Getenv("INTERNAL_SECRET_KEY"),

		ImageBucket: getEnv("IMAGE_BUCKET", defaultBucket),

		NominatimURL:       getEnv("NOMINATIM_URL", defaultNominatimURL),
		NominatimUserAgent: getEnv("NOMINATIM_USER_AGENT", "foodpool-be/1.0"),

		FallbackLat:       getFloat("FALLBACK_LAT", defaultFallbackLat),
		FallbackLng:       getFloat("FALLBACK_LNG", defaultFallbackLng),
		FallbackAddress:   getEnv("FALLBACK_ADDRESS", defaultFallbackAddress),
		DefaultDistanceKM: getFloat("DEFAULT_DISTANCE_KM", 5),
		TimeZone:          getEnv("APP_TIMEZONE", defaultTimeZone),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

// Location resolves TimeZone, falling back to UTC when the zone is unknown.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v", key, v, def)
		return def
	}
	return f
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v", key, v, def)
		return def
	}
	return d
}
