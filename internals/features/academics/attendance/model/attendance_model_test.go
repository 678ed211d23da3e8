package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"campusdesk_backend/internals/constants"
)

func TestMergeSlot(t *testing.T) {
	assert.Equal(t, constants.SlotPresent, MergeSlot(constants.SlotPresent, constants.SlotAbsent))
	assert.Equal(t, constants.SlotPresent, MergeSlot(constants.SlotAbsent, constants.SlotPresent))
	assert.Equal(t, constants.SlotPresent, MergeSlot(constants.SlotPresent, constants.SlotPresent))
	assert.Equal(t, constants.SlotAbsent, MergeSlot(constants.SlotAbsent, constants.SlotAbsent))
}

func TestMerge_PresentNeverDowngrades(t *testing.T) {
	m := AttendanceModel{
		AttendanceAdmissionNo: "21AB001",
		AttendanceDate:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		AttendanceMorning:     constants.SlotPresent,
		AttendanceAfternoon:   constants.SlotAbsent,
	}

	m.Merge(constants.SlotAbsent, constants.SlotPresent)

	assert.Equal(t, constants.SlotPresent, m.AttendanceMorning)
	assert.Equal(t, constants.SlotPresent, m.AttendanceAfternoon)
}
