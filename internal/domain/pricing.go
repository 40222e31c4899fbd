package domain

// Quote is the derived pricing context for one day. Everything here is
// recomputed per request; only the monthly target behind it is persisted.
//
// MinimumPrice of 0 covers both "target already met" and "no target set";
// check DailyTarget > 0 to tell them apart.
type Quote struct {
	MonthlyTarget   int64 `json:"monthly_target"`
	DailyTarget     int64 `json:"daily_target"`
	TotalRooms      int64 `json:"total_rooms"`
	BookedStayRooms int64 `json:"booked_stay_rooms"`
	DayuseRevenue   int64 `json:"dayuse_revenue"`
	RemainingRooms  int64 `json:"remaining_rooms"`
	MinimumPrice    int64 `json:"minimum_price"`
}
