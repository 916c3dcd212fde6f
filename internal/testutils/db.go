package testutils

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/linskybing/adoption-tracker/internal/config/db"
	"github.com/linskybing/adoption-tracker/internal/domain/animal"
	"github.com/linskybing/adoption-tracker/internal/domain/user"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSqliteDB opens a migrated database file private to the test.
func NewSqliteDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := gorm.Open(sqlite.Open(db.SqliteDSN(path)), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return conn
}

func SeedUser(t *testing.T, conn *gorm.DB, name string, role user.Role) user.User {
	t.Helper()
	u := user.User{Name: name, Password: "x", Role: role}
	require.NoError(t, conn.Create(&u).Error)
	return u
}

// SeedAnimal stores an animal owned by ownerID with the given generation period.
func SeedAnimal(t *testing.T, conn *gorm.DB, ownerID uint, period int) animal.Animal {
	t.Helper()
	var count int64
	conn.Model(&animal.Animal{}).Count(&count)
	a := animal.Animal{
		Name:                 fmt.Sprintf("animal-%d", count+1),
		ResponsibleUserID:    ownerID,
		OwnerName:            "Jane Doe",
		OwnerContactNumber:   "555-0100",
		OwnerContactEmail:    "jane@example.com",
		FormGenerationPeriod: period,
		FormStatus:           "created",
	}
	require.NoError(t, conn.Omit("Forms", "ResponsibleUser").Create(&a).Error)
	return a
}
