package db

import (
	"fmt"
	"log/slog"

	"github.com/linskybing/adoption-tracker/internal/config"
	"github.com/linskybing/adoption-tracker/internal/domain/animal"
	"github.com/linskybing/adoption-tracker/internal/domain/audit"
	"github.com/linskybing/adoption-tracker/internal/domain/form"
	"github.com/linskybing/adoption-tracker/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open connects using the configured driver without touching the package handle.
func Open() (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	switch config.DbDriver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			config.DbHost,
			config.DbPort,
			config.DbUser,
			config.DbPassword,
			config.DbName,
		)
		return gorm.Open(postgres.Open(dsn), cfg)
	case "sqlite", "":
		return gorm.Open(sqlite.Open(SqliteDSN(config.DbSqlitePath)), cfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", config.DbDriver)
	}
}

// SqliteDSN enables foreign keys so animal deletion cascades to its forms.
func SqliteDSN(path string) string {
	return path + "?_foreign_keys=on&_busy_timeout=5000"
}

func Init() error {
	conn, err := Open()
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := Migrate(conn); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	DB = conn
	slog.Info("database connected and migrated", "driver", config.DbDriver)
	return nil
}

func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&user.User{},
		&animal.Animal{},
		&form.Form{},
		&audit.AuditLog{},
	)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
