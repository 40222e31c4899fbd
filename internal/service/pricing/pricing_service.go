package pricing

import (
	"github.com/ougirez/dayrate/internal/domain"
	"github.com/shopspring/decimal"
)

// Input carries everything MinimumPrice derives from. Manual day-use
// figures override the forecast only when both count and average price are
// positive; a monthly target of 0 means "not set".
type Input struct {
	MonthlyTarget        int64
	DaysInMonth          int
	TotalRooms           int64
	BookedStayRooms      int64
	ManualDayuseCount    int64
	ManualDayuseAvgPrice int64
	Forecast             *domain.Forecast
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// MinimumPrice derives the lowest acceptable per-room rate for the day.
//
// Remaining rooms are floored at 1 even when stay bookings meet or exceed
// the inventory; the desk can always sell one more day-use slot, and the
// floor keeps the division defined. MinimumPrice 0 means the day-use revenue
// already covers the daily target — or that no target is set; callers
// separate the two via Quote.DailyTarget.
func (s *Service) MinimumPrice(in Input) *domain.Quote {
	quote := &domain.Quote{
		MonthlyTarget:   in.MonthlyTarget,
		TotalRooms:      in.TotalRooms,
		BookedStayRooms: in.BookedStayRooms,
	}

	if in.MonthlyTarget > 0 && in.DaysInMonth > 0 {
		quote.DailyTarget = decimal.NewFromInt(in.MonthlyTarget).
			Div(decimal.NewFromInt(int64(in.DaysInMonth))).
			Round(0).IntPart()
	}

	if in.ManualDayuseCount > 0 && in.ManualDayuseAvgPrice > 0 {
		quote.DayuseRevenue = in.ManualDayuseCount * in.ManualDayuseAvgPrice
	} else if in.Forecast != nil {
		quote.DayuseRevenue = in.Forecast.Revenue
	}

	quote.RemainingRooms = in.TotalRooms - in.BookedStayRooms
	if quote.RemainingRooms < 1 {
		quote.RemainingRooms = 1
	}

	required := quote.DailyTarget - quote.DayuseRevenue
	if required > 0 {
		quote.MinimumPrice = decimal.NewFromInt(required).
			Div(decimal.NewFromInt(quote.RemainingRooms)).
			Ceil().IntPart()
	}

	return quote
}
