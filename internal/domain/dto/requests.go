package dto

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type MonthlyTargetRequest struct {
	Amount int64 `json:"amount" validate:"gte=0"`
}

type DayActualsRequest struct {
	BookedStayRooms int64 `json:"booked_stay_rooms" validate:"gte=0"`
	DayuseCount     int64 `json:"dayuse_count" validate:"gte=0"`
	DayuseAvgPrice  int64 `json:"dayuse_avg_price" validate:"gte=0"`
}
