package config

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN is the postgres connection string for the dispatch ledger.
func (db DB) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		db.HOST, db.USER, db.PASSWORD, db.NAME, db.PORT, db.SSLMODE,
	)
}

// GormLogLevel maps DB_LOG_LEVEL onto gorm's logger levels. Unknown values mean warn.
func (db DB) GormLogLevel() logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(db.LogLevel)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// GormConnect opens the ledger database and applies the pool limits.
func (db *DB) GormConnect() (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(db.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(db.GormLogLevel()),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("ledger connection pool: %w", err)
	}
	if db.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(db.MaxOpenConns)
	}
	if db.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(db.MaxIdleConns)
	}
	if db.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(db.ConnMaxLifetime)
	}
	return conn, nil
}
