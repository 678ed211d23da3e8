package model

import (
	"time"
)

// AnchorModel pins a user's first GPS reading of the day. Later
// verify-location calls for the same (user, day) reuse it.
type AnchorModel struct {
	AnchorID     int64     `gorm:"primaryKey;autoIncrement;column:anchor_id" json:"anchor_id"`
	AnchorUserID string    `gorm:"type:varchar(80);not null;uniqueIndex:uq_anchor_day;column:anchor_user_id" json:"anchor_user_id"`
	AnchorDate   string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_anchor_day;column:anchor_date" json:"anchor_date"`
	AnchorLat    float64   `gorm:"not null;column:anchor_lat" json:"anchor_lat"`
	AnchorLng    float64   `gorm:"not null;column:anchor_lng" json:"anchor_lng"`
	AnchorSetAt  time.Time `gorm:"autoCreateTime;column:anchor_set_at" json:"anchor_set_at"`
}

func (AnchorModel) TableName() string { return "user_gps_anchors" }
