package service

import (
	"context"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusdesk_backend/internals/constants"
	"campusdesk_backend/internals/features/location/model"
	helper "campusdesk_backend/internals/helpers"
)

type VerifyResult struct {
	Anchored       bool    `json:"anchored"` // true when this call set today's anchor
	DistanceMeters float64 `json:"distanceMeters"`
}

// VerifyLocation pins the user's first reading of the day as the anchor
// and reports the distance from that anchor to the campus reference
// point. Later readings the same day reuse the stored anchor, so the
// answer is stable across the day.
func VerifyLocation(ctx context.Context, db *gorm.DB, userID string, lat, lng float64, now time.Time) (*VerifyResult, error) {
	userID = strings.TrimSpace(userID)
	day := now.Format(time.DateOnly)

	var anchor model.AnchorModel
	anchored := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Insert-or-skip so two concurrent first readings cannot fail on
		// the unique (user, day) index; the re-select below always reads
		// the winner's row.
		candidate := model.AnchorModel{
			AnchorUserID: userID,
			AnchorDate:   day,
			AnchorLat:    lat,
			AnchorLng:    lng,
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "anchor_user_id"}, {Name: "anchor_date"}},
			DoNothing: true,
		}).Create(&candidate)
		if res.Error != nil {
			return helper.DBError("anchor write", res.Error)
		}
		anchored = res.RowsAffected > 0

		if err := tx.Where("anchor_user_id = ? AND anchor_date = ?", userID, day).
			First(&anchor).Error; err != nil {
			return helper.DBError("anchor select", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dist := HaversineMeters(anchor.AnchorLat, anchor.AnchorLng,
		constants.CampusLat, constants.CampusLng)
	return &VerifyResult{
		Anchored:       anchored,
		DistanceMeters: math.Round(dist*10) / 10,
	}, nil
}
