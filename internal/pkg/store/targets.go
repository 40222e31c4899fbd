package store

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/dayrate/internal/domain"
	"github.com/ougirez/dayrate/internal/pkg/constants"
)

// GetMonthlyTarget returns 0 when no target was set for the month;
// an unset target is a normal state, not an error.
func (s *pgStore) GetMonthlyTarget(ctx context.Context, propertyID, month string) (int64, error) {
	query := builder().Select("amount").
		From(tableMonthlyTargets).
		Where(sq.And{
			sq.Eq{"property_id": propertyID},
			sq.Eq{"month": month},
		})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var amount int64
	if err = s.pool.QueryRow(ctx, sql, args...).Scan(&amount); err != nil {
		if errors.Is(wrapErr(err), constants.ErrDBNotFound) {
			return 0, nil
		}
		return 0, wrapErr(err)
	}

	return amount, nil
}

func (s *pgStore) SetMonthlyTarget(ctx context.Context, propertyID, month string, amount int64) error {
	query := builder().Insert(tableMonthlyTargets).
		Columns("property_id", "month", "amount").
		Values(propertyID, month, amount).
		Suffix(`on conflict (property_id, month) do update set amount=excluded.amount, updated_at=now()`)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = s.pool.Exec(ctx, sql, args...); err != nil {
		return wrapErr(err)
	}

	return nil
}

// GetDayActuals returns the zero value when nothing was entered for the day.
func (s *pgStore) GetDayActuals(ctx context.Context, propertyID string, day domain.DateKey) (*domain.DayActuals, error) {
	query := builder().Select("booked_stay_rooms", "dayuse_count", "dayuse_avg_price").
		From(tableDayActuals).
		Where(sq.And{
			sq.Eq{"property_id": propertyID},
			sq.Eq{"day": day},
		})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	actuals := &domain.DayActuals{}
	err = s.pool.QueryRow(ctx, sql, args...).
		Scan(&actuals.BookedStayRooms, &actuals.DayuseCount, &actuals.DayuseAvgPrice)
	if err != nil {
		if errors.Is(wrapErr(err), constants.ErrDBNotFound) {
			return &domain.DayActuals{}, nil
		}
		return nil, wrapErr(err)
	}

	return actuals, nil
}

func (s *pgStore) SetDayActuals(ctx context.Context, propertyID string, day domain.DateKey, actuals *domain.DayActuals) error {
	query := builder().Insert(tableDayActuals).
		Columns("property_id", "day", "booked_stay_rooms", "dayuse_count", "dayuse_avg_price").
		Values(propertyID, day, actuals.BookedStayRooms, actuals.DayuseCount, actuals.DayuseAvgPrice).
		Suffix(`
on conflict (property_id, day)
do update
set
	booked_stay_rooms = excluded.booked_stay_rooms,
	dayuse_count = excluded.dayuse_count,
	dayuse_avg_price = excluded.dayuse_avg_price,
	updated_at = now()`)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = s.pool.Exec(ctx, sql, args...); err != nil {
		return wrapErr(err)
	}

	return nil
}
