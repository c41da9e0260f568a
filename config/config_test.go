package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CATALOG_DB_PATH", "MONGO_URI", "MONGO_DB", "MONGO_REVIEWS_COLLECTION",
		"LOG_DB_DRIVER", "ENV", "MYSQL_HOST", "MYSQL_PORT", "MYSQL_USER", "MYSQL_PASSWORD", "MYSQL_DB"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "5001", cfg.Port)
	assert.Equal(t, "db/books_writable.db", cfg.CatalogDBPath)
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.MongoURI)
	assert.Equal(t, "book_reviews_db", cfg.MongoDB)
	assert.Equal(t, "reviews", cfg.MongoReviewsCollection)
	assert.Equal(t, "mysql", cfg.LogDBDriver)
	assert.Equal(t, "127.0.0.1", cfg.MySQLHost)
	assert.Equal(t, "3306", cfg.MySQLPort)
	assert.Equal(t, "root", cfg.MySQLUser)
	assert.Equal(t, "books", cfg.MySQLDB)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigRejectsUnknownLogDriver(t *testing.T) {
	t.Setenv("LOG_DB_DRIVER", "oracle")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestMySQLDSN(t *testing.T) {
	dsn := MySQLDSN(&Config{
		MySQLHost:     "db.internal",
		MySQLPort:     "3307",
		MySQLUser:     "audit",
		MySQLPassword: "s3cret",
		MySQLDB:       "books",
	})
	assert.True(t, strings.HasPrefix(dsn, "audit:s3cret@tcp(db.internal:3307)/books?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
}

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(&Config{MySQLHost: "pg", MySQLPort: "5432", MySQLUser: "u", MySQLPassword: "p", MySQLDB: "logs"})
	assert.Equal(t, "host=pg port=5432 user=u password=p dbname=logs sslmode=disable connect_timeout=5", dsn)
}

func TestInitCatalogIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "books.db")
	require.NoError(t, InitCatalog(path))
	require.NoError(t, InitCatalog(path))

	db, err := CatalogOpener(path)()
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	assert.True(t, db.Migrator().HasTable("Books"))
}
