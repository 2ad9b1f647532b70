package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	TokenSecret string
	StripeKey   string
}

// Load reads the environment (optionally from a .env file) into a Config.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "5000"),
		MongoURI:    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "bistroDb"),
		TokenSecret: getEnv("ACCESS_TOKEN_SECRET", ""),
		StripeKey:   getEnv("STRIPE_SECRET_KEY", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
