package environment

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

// Production defines the prod environment
const Production = "prod"

// Staging defines the staging environment
const Staging = "staging"

// Dev defines the dev environment
const Dev = "dev"

// Environment holds all configuration the service reads at startup
type Environment struct {
	Environment   string `mapstructure:"APP_ENV"`
	Cors          string `mapstructure:"CORS"`
	Port          string `mapstructure:"PORT"`
	Database      string `mapstructure:"DATABASE"`
	DatabaseUrl   string `mapstructure:"DATABASE_URL"`
	Redis         string `mapstructure:"REDIS"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
}

// Global is the process wide environment
var Global Environment

// Initialize reads the .env file and the process environment into Global
func Initialize() {
	data, err := godotenv.Read(".env")
	if err != nil {
		// No .env file in prod deployments, fall back to the process environment
		data = map[string]string{}
	}

	for _, key := range []string{"APP_ENV", "CORS", "PORT", "DATABASE", "DATABASE_URL", "REDIS", "REDIS_PASSWORD"} {
		if value, ok := os.LookupEnv(key); ok {
			data[key] = value
		}
	}

	err = mapstructure.Decode(data, &Global)
	if err != nil {
		panic(err)
	}

	if Global.Environment == "" {
		Global.Environment = Dev
	}

	if Global.Port == "" {
		Global.Port = "80"
	}

	if Global.Database == "" {
		Global.Database = "allocator"
	}
}
