package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campusdesk_backend/internals/features/academics/placements/model"
	studentModel "campusdesk_backend/internals/features/academics/students/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&studentModel.StudentModel{},
		&model.PlacementModel{},
	))
	return db
}

func TestUpsertPlacement_ReplacesAndFlagsStudent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&studentModel.StudentModel{
		StudentAdmissionNo: "21AB001", StudentCollegeCode: "KMC",
		StudentProgramCode: "BCA", StudentName: "A", StudentRollNo: "01",
	}).Error)

	first := model.PlacementModel{
		PlacementAdmissionNo: "21AB001",
		PlacementCompany:     "Initech",
		PlacementRole:        "Developer",
		PlacementPackage:     "4.5 LPA",
		PlacementContactNo:   "9000000001",
	}
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return UpsertPlacement(tx, first)
	}))

	second := first
	second.PlacementCompany = "Globex"
	second.PlacementRole = "Senior Developer"
	second.PlacementContactNo = ""
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return UpsertPlacement(tx, second)
	}))

	var rows []model.PlacementModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1, "a student has at most one placement row")
	assert.Equal(t, "Globex", rows[0].PlacementCompany)
	assert.Equal(t, "Senior Developer", rows[0].PlacementRole)

	var s studentModel.StudentModel
	require.NoError(t, db.First(&s, "student_admission_no = ?", "21AB001").Error)
	assert.True(t, s.StudentIsPlaced)
	assert.Equal(t, "9000000001", s.StudentContactNo,
		"an empty contact on re-upload keeps the earlier value")
}
