package domain

import "time"

// DateKey is a calendar day rendered as YYYY-MM-DD in the local timezone.
// Built from calendar components, not UTC, so records never shift across a
// day boundary.
type DateKey = string

const dateKeyLayout = "2006-01-02"

func DayKey(t time.Time) DateKey {
	return t.Format(dateKeyLayout)
}

func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// HistoricalRecord is one past day-use transaction. Duration and check-in/out
// travel with the record but the forecast only reads Date and Price.
type HistoricalRecord struct {
	ID       string    `db:"id" json:"id"`
	Date     time.Time `db:"stay_date" json:"date"`
	Price    int64     `db:"price" json:"price"`
	CheckIn  string    `db:"check_in" json:"check_in,omitempty"`
	CheckOut string    `db:"check_out" json:"check_out,omitempty"`
}

func (r *HistoricalRecord) DayKey() DateKey {
	return DayKey(r.Date)
}

// DailyAggregate sums the records sharing one calendar day.
type DailyAggregate struct {
	Date    time.Time
	Count   int64
	Revenue int64
}

type Property struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	TotalRooms int64     `db:"total_rooms" json:"total_rooms"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// DayActuals is what the front desk has keyed in for one day so far.
// A zero value means nothing was entered yet.
type DayActuals struct {
	BookedStayRooms int64 `db:"booked_stay_rooms" json:"booked_stay_rooms"`
	DayuseCount     int64 `db:"dayuse_count" json:"dayuse_count"`
	DayuseAvgPrice  int64 `db:"dayuse_avg_price" json:"dayuse_avg_price"`
}
