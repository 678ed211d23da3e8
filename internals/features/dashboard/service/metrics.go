package service

import (
	"context"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"campusdesk_backend/internals/constants"
	attendanceModel "campusdesk_backend/internals/features/academics/attendance/model"
	markModel "campusdesk_backend/internals/features/academics/marks/model"
	studentModel "campusdesk_backend/internals/features/academics/students/model"
	"campusdesk_backend/internals/features/dashboard/dto"
	feeModel "campusdesk_backend/internals/features/finance/fees/model"
	helper "campusdesk_backend/internals/helpers"
)

// CohortFilter narrows the dashboard to a student subset. Empty and
// "all" values are sentinels that skip the filter.
type CohortFilter struct {
	College       string
	Program       string
	RollNo        string
	AdmissionYear string
}

func filterSet(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, constants.ScopeAll) {
		return "", false
	}
	return v, true
}

// Aggregator is the read-only metrics side: it never writes, and an
// empty cohort yields zeros, never an error.
type Aggregator struct {
	DB *gorm.DB
}

func NewAggregator(db *gorm.DB) *Aggregator {
	return &Aggregator{DB: db}
}

func (a *Aggregator) Overview(ctx context.Context, f CohortFilter) (*dto.DashboardResponse, error) {
	students, err := a.resolveCohort(ctx, f)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Cohort: dto.CohortStats{Students: len(students)},
		Fees:   dto.FeeStats{TotalCollected: decimal.Zero},
	}
	if len(students) == 0 {
		return resp, nil
	}

	admissionNos := make([]string, 0, len(students))
	placed := 0
	for _, s := range students {
		admissionNos = append(admissionNos, s.StudentAdmissionNo)
		if s.StudentIsPlaced {
			placed++
		}
	}

	if err := a.attendanceStats(ctx, admissionNos, resp); err != nil {
		return nil, err
	}
	if err := a.academicsStats(ctx, admissionNos, resp); err != nil {
		return nil, err
	}
	if err := a.feeStats(ctx, admissionNos, resp); err != nil {
		return nil, err
	}

	resp.Placement = dto.PlacementStats{
		Placed:     placed,
		Percentage: Percent(float64(placed), float64(len(students))),
	}
	return resp, nil
}

func (a *Aggregator) resolveCohort(ctx context.Context, f CohortFilter) ([]studentModel.StudentModel, error) {
	q := a.DB.WithContext(ctx).Model(&studentModel.StudentModel{})
	if v, ok := filterSet(f.College); ok {
		q = q.Where("student_college_code = ?", strings.ToUpper(v))
	}
	if v, ok := filterSet(f.Program); ok {
		q = q.Where("student_program_code = ?", strings.ToUpper(v))
	}
	if v, ok := filterSet(f.RollNo); ok {
		q = q.Where("student_roll_no = ?", v)
	}
	if v, ok := filterSet(f.AdmissionYear); ok {
		q = q.Where("student_admission_no LIKE ?", "%"+strings.ToUpper(v)+"%")
	}

	var students []studentModel.StudentModel
	if err := q.Find(&students).Error; err != nil {
		return nil, helper.DBError("cohort select", err)
	}
	return students, nil
}

func (a *Aggregator) attendanceStats(ctx context.Context, admissionNos []string, resp *dto.DashboardResponse) error {
	var days []attendanceModel.AttendanceModel
	if err := a.DB.WithContext(ctx).
		Select("attendance_morning", "attendance_afternoon").
		Where("attendance_admission_no IN ?", admissionNos).
		Find(&days).Error; err != nil {
		return helper.DBError("attendance select", err)
	}

	full, half := 0, 0
	for _, d := range days {
		am := d.AttendanceMorning == constants.SlotPresent
		pm := d.AttendanceAfternoon == constants.SlotPresent
		switch {
		case am && pm:
			full++
		case am || pm:
			half++
		}
	}

	resp.Attendance = dto.AttendanceStats{
		TotalDays:  len(days),
		FullDays:   full,
		HalfDays:   half,
		Percentage: Percent(float64(full)+0.5*float64(half), float64(len(days))),
	}
	return nil
}

func (a *Aggregator) academicsStats(ctx context.Context, admissionNos []string, resp *dto.DashboardResponse) error {
	var marks []markModel.MarkModel
	if err := a.DB.WithContext(ctx).
		Select("mark_admission_no", "mark_internal", "mark_external", "mark_obtained", "mark_max").
		Where("mark_admission_no IN ?", admissionNos).
		Find(&marks).Error; err != nil {
		return helper.DBError("marks select", err)
	}

	// Pass/fail only over assessed students (at least one mark row); a
	// single subject below any threshold fails the student.
	failed := map[string]bool{}
	sumObtained, sumMax := 0, 0
	for _, m := range marks {
		if _, ok := failed[m.MarkAdmissionNo]; !ok {
			failed[m.MarkAdmissionNo] = false
		}
		if m.MarkInternal < constants.MinInternalMark ||
			m.MarkExternal < constants.MinExternalMark ||
			m.MarkObtained < constants.MinTotalMark {
			failed[m.MarkAdmissionNo] = true
		}
		sumObtained += m.MarkObtained
		sumMax += m.MarkMax
	}

	assessed := len(failed)
	failCount := 0
	for _, f := range failed {
		if f {
			failCount++
		}
	}
	passCount := assessed - failCount

	resp.Academics = dto.AcademicsStats{
		Assessed:            assessed,
		Passed:              passCount,
		Failed:              failCount,
		PassPercentage:      Percent(float64(passCount), float64(assessed)),
		AggregatePercentage: Percent(float64(sumObtained), float64(sumMax)),
	}
	return nil
}

func (a *Aggregator) feeStats(ctx context.Context, admissionNos []string, resp *dto.DashboardResponse) error {
	var amounts []decimal.Decimal
	if err := a.DB.WithContext(ctx).
		Model(&feeModel.FeeModel{}).
		Where("fee_admission_no IN ?", admissionNos).
		Pluck("fee_amount", &amounts).Error; err != nil {
		return helper.DBError("fees select", err)
	}

	total := decimal.Zero
	for _, amt := range amounts {
		total = total.Add(amt)
	}
	resp.Fees = dto.FeeStats{TotalCollected: total}
	return nil
}

// Percent is num/den*100 rounded to one decimal; a zero denominator
// yields 0, never NaN.
func Percent(num, den float64) float64 {
	return Round1(safeDiv(num, den) * 100)
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
