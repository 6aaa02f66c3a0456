package config

import (
	"os"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret      string
	JWTExpireHours string

	Port       string
	GinMode    string
	CORSOrigin string

	SeedAdminPassword string
	SeedHRPassword    string
}

func Load() *Config {
	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "cronberry"),
		DBPassword: getEnv("DB_PASSWORD", "cronberry"),
		DBName:     getEnv("DB_NAME", "asset_management"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTExpireHours: getEnv("JWT_EXPIRE_HOURS", "24"),

		Port:       getEnv("PORT", "8001"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),

		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		SeedHRPassword:    getEnv("SEED_HR_PASSWORD", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
