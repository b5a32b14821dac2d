// database_test.go - Tests for database setup and menu seeding

package database

import (
	"errors"
	"testing"

	"go-storefront-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestConnectSeedsMenu(t *testing.T) {
	require.NoError(t, Connect(":memory:"))

	var items []models.MenuItem
	require.NoError(t, DB.Order("id").Find(&items).Error)
	require.Len(t, items, 9)

	assert.Equal(t, "Burger", items[0].Name)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("99.00")))
	assert.Equal(t, "burger.jpg", items[0].Image)

	assert.Equal(t, "Ice Cream", items[8].Name)
	assert.True(t, items[8].Price.Equal(decimal.RequireFromString("59.00")))
	assert.Equal(t, "icecream.jpg", items[8].Image)
}

func TestSeedMenuIsIdempotent(t *testing.T) {
	require.NoError(t, Connect(":memory:"))
	require.NoError(t, seedMenu())

	var count int64
	require.NoError(t, DB.Model(&models.MenuItem{}).Count(&count).Error)
	assert.Equal(t, int64(9), count)
}

func TestUniqueUsernameConstraint(t *testing.T) {
	require.NoError(t, Connect(":memory:"))

	first := models.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, DB.Create(&first).Error)

	second := models.User{Username: "alice", PasswordHash: "other"}
	err := DB.Create(&second).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}
