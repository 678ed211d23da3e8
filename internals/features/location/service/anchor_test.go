package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campusdesk_backend/internals/constants"
	"campusdesk_backend/internals/features/location/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AnchorModel{}))
	return db
}

func TestHaversineMeters(t *testing.T) {
	assert.Equal(t, 0.0, HaversineMeters(17.385044, 78.486671, 17.385044, 78.486671))

	// one degree of latitude is roughly 111.2 km
	d := HaversineMeters(17.0, 78.486671, 18.0, 78.486671)
	assert.InDelta(t, 111195, d, 100)
}

func TestVerifyLocation_FirstReadingAnchors(t *testing.T) {
	db := openTestDB(t)
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	res, err := VerifyLocation(context.Background(), db, "emp-7",
		constants.CampusLat, constants.CampusLng, now)
	require.NoError(t, err)
	assert.True(t, res.Anchored)
	assert.Equal(t, 0.0, res.DistanceMeters)

	var count int64
	require.NoError(t, db.Model(&model.AnchorModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVerifyLocation_LaterReadingsReuseAnchor(t *testing.T) {
	db := openTestDB(t)
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	first, err := VerifyLocation(context.Background(), db, "emp-7",
		constants.CampusLat, constants.CampusLng, now)
	require.NoError(t, err)
	require.True(t, first.Anchored)

	// a reading from far away later that day must not move the anchor
	later, err := VerifyLocation(context.Background(), db, "emp-7",
		12.9716, 77.5946, now.Add(4*time.Hour))
	require.NoError(t, err)
	assert.False(t, later.Anchored)
	assert.Equal(t, first.DistanceMeters, later.DistanceMeters)

	var count int64
	require.NoError(t, db.Model(&model.AnchorModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "one anchor per user per day")
}

func TestVerifyLocation_ExistingRowWinsOverIncomingInsert(t *testing.T) {
	db := openTestDB(t)
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	// the row another request committed first
	require.NoError(t, db.Create(&model.AnchorModel{
		AnchorUserID: "emp-7",
		AnchorDate:   now.Format(time.DateOnly),
		AnchorLat:    constants.CampusLat,
		AnchorLng:    constants.CampusLng,
	}).Error)

	// an insert against the occupied (user, day) slot must not surface a
	// duplicate-key failure; it reads back the committed anchor instead
	res, err := VerifyLocation(context.Background(), db, "emp-7", 12.9716, 77.5946, now)
	require.NoError(t, err)
	assert.False(t, res.Anchored)
	assert.Equal(t, 0.0, res.DistanceMeters)
}

func TestVerifyLocation_NewDayNewAnchor(t *testing.T) {
	db := openTestDB(t)
	day1 := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	res, err := VerifyLocation(context.Background(), db, "emp-7",
		constants.CampusLat, constants.CampusLng, day1)
	require.NoError(t, err)
	require.True(t, res.Anchored)

	res, err = VerifyLocation(context.Background(), db, "emp-7", 12.9716, 77.5946, day2)
	require.NoError(t, err)
	assert.True(t, res.Anchored)
	assert.Greater(t, res.DistanceMeters, 100_000.0)

	var count int64
	require.NoError(t, db.Model(&model.AnchorModel{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestVerifyLocation_UsersAnchorIndependently(t *testing.T) {
	db := openTestDB(t)
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

	a, err := VerifyLocation(context.Background(), db, "emp-1",
		constants.CampusLat, constants.CampusLng, now)
	require.NoError(t, err)
	b, err := VerifyLocation(context.Background(), db, "emp-2", 12.9716, 77.5946, now)
	require.NoError(t, err)

	assert.True(t, a.Anchored)
	assert.True(t, b.Anchored)
	assert.NotEqual(t, a.DistanceMeters, b.DistanceMeters)
}
