package constants

// RecordType tags every bulk-ingestable row set. Keeping this a closed
// enum lets the restore path switch on known variants instead of free
// strings.
type RecordType string

const (
	RecordTypeMarks      RecordType = "marks"
	RecordTypeFee        RecordType = "fee"
	RecordTypeAttendance RecordType = "studentAttendance"
)

func (t RecordType) Valid() bool {
	switch t {
	case RecordTypeMarks, RecordTypeFee, RecordTypeAttendance:
		return true
	default:
		return false
	}
}

// ScopeAll bypasses the per-college restriction on bulk uploads.
const ScopeAll = "all"

// Defaults applied by the row normalizer when a batch omits them.
const (
	DefaultProgramCode = "GEN"
)

// Pass thresholds per subject. A student fails the cohort academics
// check if any subject breaks one of these.
const (
	MinInternalMark = 14
	MinExternalMark = 21
	MinTotalMark    = 40
)

// Attendance slot values. Two half-day slots per day.
const (
	SlotPresent = "Present"
	SlotAbsent  = "Absent"
)

// Campus reference point for location verification.
const (
	CampusLat = 17.385044
	CampusLng = 78.486671
)
