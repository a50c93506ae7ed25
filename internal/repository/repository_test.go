package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"travel-vote-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "repo.db")), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err, "failed to open database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Accommodation{},
		&domain.AccommodationImage{},
		&domain.Vote{},
		&domain.Comment{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string, admin bool) *domain.User {
	t.Helper()
	u := &domain.User{Name: name, IsAdmin: admin}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createAccommodation(t *testing.T, db *gorm.DB, name string, price int64) *domain.Accommodation {
	t.Helper()
	a := &domain.Accommodation{Name: name, Location: "서울", Price: price, CheckIn: "15:00", CheckOut: "11:00"}
	require.NoError(t, a.SetAmenities([]string{"wifi"}))
	require.NoError(t, db.Omit("Images").Create(a).Error)
	return a
}

func createVote(t *testing.T, db *gorm.DB, u *domain.User, a *domain.Accommodation, rating int) *domain.Vote {
	t.Helper()
	v := &domain.Vote{UserID: u.ID, AccommodationID: a.ID, Rating: rating}
	require.NoError(t, db.Omit("User", "Accommodation").Create(v).Error)
	return v
}

func createComment(t *testing.T, db *gorm.DB, u *domain.User, a *domain.Accommodation, text string) *domain.Comment {
	t.Helper()
	c := &domain.Comment{UserID: u.ID, AccommodationID: a.ID, Text: text}
	require.NoError(t, db.Omit("User", "Accommodation").Create(c).Error)
	return c
}
