package model

import (
	"time"

	"gorm.io/datatypes"

	"campusdesk_backend/internals/constants"
)

// DeletedLogModel captures a verbatim snapshot of every row set removed
// by an audited delete. The snapshot is the raw JSON array of the rows
// exactly as selected; restore replays it back into the origin table.
// An entry exists iff the rows it describes were removed in the same
// transaction.
type DeletedLogModel struct {
	LogID          int64                `gorm:"primaryKey;autoIncrement;column:log_id" json:"log_id"`
	LogAdmissionNo string               `gorm:"type:varchar(20);not null;index;column:log_admission_no" json:"log_admission_no"`
	LogDataType    constants.RecordType `gorm:"type:varchar(20);not null;column:log_data_type" json:"log_data_type"`
	LogScope       string               `gorm:"type:varchar(40);not null;column:log_scope" json:"log_scope"`
	LogDeletedBy   string               `gorm:"type:varchar(80);not null;column:log_deleted_by" json:"log_deleted_by"`
	LogReason      string               `gorm:"type:text;column:log_reason" json:"log_reason"`
	LogDeletedAt   time.Time            `gorm:"autoCreateTime;column:log_deleted_at" json:"log_deleted_at"`
	LogSnapshot    datatypes.JSON       `gorm:"column:log_snapshot" json:"log_snapshot"`
}

func (DeletedLogModel) TableName() string { return "deleted_data_log" }
