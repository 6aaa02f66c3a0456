package database

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rakshita16-hub/Cronberry-Asset-management/internal/models"
)

func newSequenceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.IDSequence{}))
	return db
}

func TestNextIDFormatsAndIncrements(t *testing.T) {
	db := newSequenceTestDB(t)

	id, err := NextID(db, "assets", "AST")
	require.NoError(t, err)
	require.Equal(t, "AST0001", id)

	id, err = NextID(db, "assets", "AST")
	require.NoError(t, err)
	require.Equal(t, "AST0002", id)
}

func TestNextIDSequencesAreIndependent(t *testing.T) {
	db := newSequenceTestDB(t)

	for i := 1; i <= 3; i++ {
		_, err := NextID(db, "employees", "EMP")
		require.NoError(t, err)
	}

	id, err := NextID(db, "assignments", "ASG")
	require.NoError(t, err)
	require.Equal(t, "ASG0001", id)
}

func TestNextIDNeverReusesAfterDelete(t *testing.T) {
	db := newSequenceTestDB(t)

	first, err := NextID(db, "assets", "AST")
	require.NoError(t, err)
	require.Equal(t, "AST0001", first)

	// Consuming rows elsewhere must not rewind the sequence; the counter
	// only moves forward.
	second, err := NextID(db, "assets", "AST")
	require.NoError(t, err)
	third, err := NextID(db, "assets", "AST")
	require.NoError(t, err)
	require.Equal(t, "AST0002", second)
	require.Equal(t, "AST0003", third)
}

func TestNextIDGrowsPastFourDigits(t *testing.T) {
	db := newSequenceTestDB(t)

	require.NoError(t, db.Create(&models.IDSequence{Name: "assets", Value: 9999}).Error)

	id, err := NextID(db, "assets", "AST")
	require.NoError(t, err)
	require.Equal(t, "AST10000", id)
}
