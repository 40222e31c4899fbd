package domain

import "time"

// Forecast basis labels, reported to the caller so the dashboard can say
// which subset of history the numbers came from.
const (
	BasisNoData          = "no data"
	BasisHoliday         = "holiday historical average"
	BasisHolidaySaturday = "holiday (substituted with Saturday data)"
	BasisOverallAverage  = "overall average (no weekday data)"
)

// BasisWeekday renders e.g. "Monday weekday historical average".
func BasisWeekday(wd time.Weekday) string {
	return wd.String() + " weekday historical average"
}

// Forecast is the predicted same-day demand for a target date.
// When HasData is false every numeric field is zero.
type Forecast struct {
	Count    int64  `json:"count"`
	Revenue  int64  `json:"revenue"`
	AvgPrice int64  `json:"avg_price"`
	HasData  bool   `json:"has_data"`
	Basis    string `json:"basis"`
}

// WeekdayStat is the per-weekday historical average, for reporting.
type WeekdayStat struct {
	Weekday    time.Weekday `json:"weekday"`
	AvgCount   int64        `json:"avg_count"`
	AvgRevenue int64        `json:"avg_revenue"`
	AvgPrice   int64        `json:"avg_price"`
	HasData    bool         `json:"has_data"`
}
