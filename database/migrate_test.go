package database_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rizzwaaaan/restaurant-software/database"
	"github.com/rizzwaaaan/restaurant-software/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMigrateForeignKeyDirection(t *testing.T) {
	db := openTestDB(t)

	// Orders and payments carry the foreign keys, each pointing at
	// reservations(phone) — never the other way around.
	type fkRow struct {
		Table string
		From  string
		To    string
	}

	for _, table := range []string{"orders", "payments"} {
		var fks []fkRow
		require.NoError(t, db.Raw("PRAGMA foreign_key_list("+table+")").Scan(&fks).Error)
		require.Len(t, fks, 1, "expected exactly one foreign key on %s", table)
		assert.Equal(t, "reservations", fks[0].Table)
		assert.Equal(t, "phone", fks[0].From)
		assert.Equal(t, "phone", fks[0].To)
	}

	var reservationFks []fkRow
	require.NoError(t, db.Raw("PRAGMA foreign_key_list(reservations)").Scan(&reservationFks).Error)
	assert.Empty(t, reservationFks)

	// A reservation insert must not depend on any other table.
	err := db.Create(&models.Reservation{
		Name: "Alice", People: 4, Phone: "555-0100", Status: "pending", Present: "no",
	}).Error
	assert.NoError(t, err)
}

func TestSeedMenu(t *testing.T) {
	db := openTestDB(t)

	seed := `[
		{"name": "Tomato Soup", "category": "italian", "course": "starter", "price": 7.5, "image_url": "/img/soup.jpg"},
		{"name": "Margherita", "category": "italian", "course": "main", "price": 12}
	]`
	path := writeSeedFile(t, seed)

	require.NoError(t, database.SeedMenu(db, path))

	var items []models.MenuItem
	db.Order("id asc").Find(&items)
	require.Len(t, items, 2)
	assert.Equal(t, "Tomato Soup", items[0].Name)
	assert.Equal(t, 7.5, items[0].Price)

	// Re-running against a filled catalog is a no-op.
	require.NoError(t, database.SeedMenu(db, path))
	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestSeedMenuMissingFile(t *testing.T) {
	db := openTestDB(t)

	err := database.SeedMenu(db, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSeedMenuEmptyList(t *testing.T) {
	db := openTestDB(t)

	path := writeSeedFile(t, `[]`)
	require.NoError(t, database.SeedMenu(db, path))

	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
