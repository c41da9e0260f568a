package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Govind-619/BookNook/utils"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port string
	Env  string

	CatalogDBPath string

	MongoURI               string
	MongoDB                string
	MongoReviewsCollection string

	LogDBDriver   string
	MySQLHost     string
	MySQLPort     string
	MySQLUser     string
	MySQLPassword string
	MySQLDB       string

	StaticDir string
	LogDir    string
}

// LoadConfig loads configuration from .env and the environment. A missing
// .env file is not an error; the process environment and defaults apply.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %v", err)
	}

	config := &Config{
		Port:                   getEnv("PORT", utils.DefaultPort),
		Env:                    getEnv("ENV", "development"),
		CatalogDBPath:          getEnv("CATALOG_DB_PATH", utils.DefaultCatalogDBPath),
		MongoURI:               getEnv("MONGO_URI", utils.DefaultMongoURI),
		MongoDB:                getEnv("MONGO_DB", utils.DefaultMongoDB),
		MongoReviewsCollection: getEnv("MONGO_REVIEWS_COLLECTION", utils.DefaultMongoCollection),
		LogDBDriver:            strings.ToLower(getEnv("LOG_DB_DRIVER", utils.DefaultLogDBDriver)),
		MySQLHost:              getEnv("MYSQL_HOST", utils.DefaultMySQLHost),
		MySQLPort:              getEnv("MYSQL_PORT", utils.DefaultMySQLPort),
		MySQLUser:              getEnv("MYSQL_USER", utils.DefaultMySQLUser),
		MySQLPassword:          os.Getenv("MYSQL_PASSWORD"),
		MySQLDB:                getEnv("MYSQL_DB", utils.DefaultMySQLDB),
		StaticDir:              getEnv("STATIC_DIR", utils.DefaultStaticDir),
		LogDir:                 getEnv("LOG_DIR", utils.DefaultLogDir),
	}

	if config.LogDBDriver != "mysql" && config.LogDBDriver != "postgres" {
		return nil, fmt.Errorf("unsupported LOG_DB_DRIVER %q", config.LogDBDriver)
	}

	return config, nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
