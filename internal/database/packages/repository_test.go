package packages

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/guyitswalid/corefit/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_packages_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.GymPackage{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_CreateAndFindByName(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	pkg := &entities.GymPackage{
		TenantID: "gym-1", Name: "Gold", Price: 49.99, DurationDays: 30, Status: "active",
	}
	require.NoError(t, repo.Create(pkg))

	found, err := repo.FindByName("gym-1", "Gold")

	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 49.99, found.Price)
	assert.Equal(t, 30, found.DurationDays)
}

func TestRepository_FindByName_NotFoundReturnsNil(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	found, err := repo.FindByName("gym-1", "Platinum")

	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_Update(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	pkg := &entities.GymPackage{TenantID: "gym-1", Name: "Gold", Price: 49.99, DurationDays: 30}
	require.NoError(t, repo.Create(pkg))

	err := repo.Update(pkg.ID, map[string]any{"price": 59.99, "duration_days": 45})
	require.NoError(t, err)

	found, err := repo.FindByName("gym-1", "Gold")
	require.NoError(t, err)
	assert.Equal(t, 59.99, found.Price)
	assert.Equal(t, 45, found.DurationDays)
}

func TestRepository_List_SortedByName(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(&entities.GymPackage{TenantID: "gym-1", Name: "Silver"}))
	require.NoError(t, repo.Create(&entities.GymPackage{TenantID: "gym-1", Name: "Bronze"}))

	listed, err := repo.List("gym-1")

	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Bronze", listed[0].Name)
	assert.Equal(t, "Silver", listed[1].Name)
}
