// Package database opens the gorm connection shared by the repositories.
package database

import (
	"context"
	"fmt"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	defaultMaxRetry      = 10
	defaultRetryInterval = 2 * time.Second
)

// Config describes how to reach the database
type Config struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Pass     string
	Name     string
	TimeZone string

	MaxRetry      int
	RetryInterval time.Duration
}

// DSN builds the data source name understood by the configured driver
func (c Config) DSN() (string, error) {
	tz := c.TimeZone
	if tz == "" {
		tz = "UTC"
	}

	switch c.Driver {
	case DriverMySQL, "":
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return "", fmt.Errorf("invalid time zone %q: %w", tz, err)
		}
		cfg := mysqldriver.NewConfig()
		cfg.User = c.User
		cfg.Passwd = c.Pass
		cfg.Net = "tcp"
		cfg.Addr = c.Host + ":" + c.Port
		cfg.DBName = c.Name
		cfg.ParseTime = true
		cfg.Loc = loc
		return cfg.FormatDSN(), nil
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
			c.Host, c.User, c.Pass, c.Name, c.Port, tz), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

func (c Config) dialector(dsn string) gorm.Dialector {
	if c.Driver == DriverPostgres {
		return postgres.Open(dsn)
	}
	return mysql.Open(dsn)
}

// Open connects to the database and pings it, retrying while the server comes up
func Open(ctx context.Context, c Config) (*gorm.DB, error) {
	dsn, err := c.DSN()
	if err != nil {
		return nil, err
	}

	maxRetry := c.MaxRetry
	if maxRetry <= 0 {
		maxRetry = defaultMaxRetry
	}
	interval := c.RetryInterval
	if interval <= 0 {
		interval = defaultRetryInterval
	}

	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var db *gorm.DB
	for i := range maxRetry {
		db, err = gorm.Open(c.dialector(dsn), cfg)
		if err == nil {
			err = ping(ctx, db)
			if err == nil {
				return db, nil
			}
			Close(db)
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, maxRetry, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}

	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", maxRetry, err)
}

func ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Errorf("got error when getting sql.DB from gorm.DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Errorf("got error when closing the DB connection: %v", err)
	}
}
