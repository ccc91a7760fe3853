package gorm

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB struct
type DB struct {
	SQLite *gorm.DB
}

// ConnectToSQLite func - opens (and creates if needed) the local cache file
func ConnectToSQLite(path string) (*DB, error) {
	if path == "" {
		return nil, errors.New("cannot estabished the connection")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		logrus.Error(err)
		return nil, err
	}

	dial := sqlite.Open(path)
	db, err := gorm.Open(dial, &gorm.Config{
		DryRun: false,
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	logrus.Info("Local cache database: ", path)
	return &DB{SQLite: db}, nil
}

// DisconnectSQLite func
func DisconnectSQLite(db *gorm.DB) {
	sqlDb, err := db.DB()
	if err != nil {
		panic("close db")
	}
	err = sqlDb.Close()
	if err != nil {
		logrus.Error(err)
	}
	logrus.Println("Connection with local cache has closed")
}
