package config

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/Govind-619/BookNook/models"
	"github.com/Govind-619/BookNook/utils"

	mysqldriver "github.com/go-sql-driver/mysql"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MongoServerSelectionTimeout bounds the startup connectivity check
const MongoServerSelectionTimeout = 8 * time.Second

// CatalogOpener returns a function opening a fresh connection to the
// SQLite catalog file at path
func CatalogOpener(path string) func() (*gorm.DB, error) {
	return func() (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Warn),
		})
	}
}

// InitCatalog makes sure the catalog file and its Books table exist
func InitCatalog(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create catalog directory: %v", err)
		}
	}

	db, err := CatalogOpener(path)()
	if err != nil {
		return fmt.Errorf("failed to open catalog: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access catalog handle: %v", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&models.Book{}); err != nil {
		return fmt.Errorf("failed to migrate catalog: %v", err)
	}
	return nil
}

// MySQLDSN builds the logging store DSN for MySQL
func MySQLDSN(config *Config) string {
	dsn := mysqldriver.NewConfig()
	dsn.User = config.MySQLUser
	dsn.Passwd = config.MySQLPassword
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(config.MySQLHost, config.MySQLPort)
	dsn.DBName = config.MySQLDB
	dsn.ParseTime = true
	dsn.Timeout = 5 * time.Second
	return dsn.FormatDSN()
}

// PostgresDSN builds the logging store DSN for PostgreSQL, reusing the
// MYSQL_* connection settings
func PostgresDSN(config *Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable connect_timeout=5",
		config.MySQLHost, config.MySQLPort, config.MySQLUser, config.MySQLPassword, config.MySQLDB)
}

// LogDBOpener returns a function opening a short-lived connection to the
// logging store
func LogDBOpener(config *Config) func() (*gorm.DB, error) {
	driver := config.LogDBDriver
	mysqlDSN := MySQLDSN(config)
	postgresDSN := PostgresDSN(config)
	return func() (*gorm.DB, error) {
		var dialector gorm.Dialector
		switch driver {
		case "postgres":
			dialector = postgres.Open(postgresDSN)
		default:
			dialector = mysql.Open(mysqlDSN)
		}
		return gorm.Open(dialector, &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	}
}

// ConnectMongo connects to the review store and verifies it answers. The
// caller owns the returned client and must Disconnect it.
func ConnectMongo(ctx context.Context, config *Config) (*mongo.Client, error) {
	utils.LogInfo("Connecting to MongoDB at: %s", config.MongoURI)

	opts := options.Client().
		ApplyURI(config.MongoURI).
		SetServerSelectionTimeout(MongoServerSelectionTimeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, MongoServerSelectionTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	utils.LogInfo("Connected to MongoDB successfully")
	return client, nil
}
