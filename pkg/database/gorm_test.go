package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGormDBSQLiteMemory(t *testing.T) {
	db, err := NewGormDBSilent(DriverSQLite, ":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.NoError(t, sqlDB.Ping())
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := NewGormDB("oracle", "whatever")
	assert.EqualError(t, err, "unsupported database driver: oracle")
}
