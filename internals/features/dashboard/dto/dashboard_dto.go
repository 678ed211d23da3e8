package dto

import (
	"github.com/shopspring/decimal"
)

type DashboardResponse struct {
	Cohort     CohortStats     `json:"cohort"`
	Attendance AttendanceStats `json:"attendance"`
	Academics  AcademicsStats  `json:"academics"`
	Placement  PlacementStats  `json:"placement"`
	Fees       FeeStats        `json:"fees"`
}

type CohortStats struct {
	Students int `json:"students"`
}

type AttendanceStats struct {
	TotalDays  int     `json:"totalDays"`
	FullDays   int     `json:"fullDays"`
	HalfDays   int     `json:"halfDays"`
	Percentage float64 `json:"percentage"`
}

type AcademicsStats struct {
	Assessed            int     `json:"assessed"`
	Passed              int     `json:"passed"`
	Failed              int     `json:"failed"`
	PassPercentage      float64 `json:"passPercentage"`
	AggregatePercentage float64 `json:"aggregatePercentage"`
}

type PlacementStats struct {
	Placed     int     `json:"placed"`
	Percentage float64 `json:"percentage"`
}

type FeeStats struct {
	TotalCollected decimal.Decimal `json:"totalCollected"`
}
