package memberships

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/guyitswalid/corefit/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_memberships_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Membership{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_CreateAndList(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(&entities.Membership{
		TenantID: "gym-1", MemberID: 1, PackageID: 2, Status: "active",
	}))

	listed, err := repo.List("gym-1")

	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, uint(2), listed[0].PackageID)
}

func TestRepository_ListExpiringBefore(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	soon := time.Now().Add(24 * time.Hour)
	later := time.Now().Add(30 * 24 * time.Hour)

	require.NoError(t, repo.Create(&entities.Membership{
		TenantID: "gym-1", MemberID: 1, Status: "active", ExpiryDate: soon,
	}))
	require.NoError(t, repo.Create(&entities.Membership{
		TenantID: "gym-1", MemberID: 2, Status: "active", ExpiryDate: later,
	}))
	require.NoError(t, repo.Create(&entities.Membership{
		TenantID: "gym-1", MemberID: 3, Status: "cancelled", ExpiryDate: soon,
	}))

	expiring, err := repo.ListExpiringBefore("gym-1", time.Now().Add(7*24*time.Hour))

	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, uint(1), expiring[0].MemberID)
}
