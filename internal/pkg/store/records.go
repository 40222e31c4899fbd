package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/dayrate/internal/domain"
	"github.com/ougirez/dayrate/internal/pkg/logger"
)

var recordColumns = []string{"property_id", "id", "stay_date", "price", "check_in", "check_out"}

// UpsertRecords replaces records wholesale by (property_id, id) —
// last write wins on every field, no field-level merging.
func (s *pgStore) UpsertRecords(
	ctx context.Context,
	propertyID string,
	records []*domain.HistoricalRecord,
) (UpsertStats, error) {
	var stats UpsertStats
	if len(records) == 0 {
		return stats, nil
	}

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}

	existsQuery := builder().Select("id").
		From(tableRecords).
		Where(sq.And{
			sq.Eq{"property_id": propertyID},
			sq.Eq{"id": ids},
		})

	sql, args, err := existsQuery.ToSql()
	if err != nil {
		return stats, err
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return stats, wrapErr(err)
	}

	existing := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			rows.Close()
			return stats, err
		}
		existing[id] = struct{}{}
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return stats, err
	}

	query := builder().Insert(tableRecords).Columns(recordColumns...)
	for _, rec := range records {
		query = query.Values(propertyID, rec.ID, rec.Date, rec.Price, rec.CheckIn, rec.CheckOut)
	}
	query = query.Suffix(`
on conflict (property_id, id)
do update
set
	stay_date = excluded.stay_date,
	price = excluded.price,
	check_in = excluded.check_in,
	check_out = excluded.check_out,
	updated_at = now()`)

	sql, args, err = query.ToSql()
	if err != nil {
		return stats, err
	}

	if _, err = s.pool.Exec(ctx, sql, args...); err != nil {
		logger.Errorf(ctx, "upsert records, property_id-%s: %s", propertyID, err.Error())
		return stats, fmt.Errorf("upsert records: %w", wrapErr(err))
	}

	for _, rec := range records {
		if _, ok := existing[rec.ID]; ok {
			stats.Updated++
		} else {
			stats.Inserted++
		}
	}

	return stats, nil
}

func (s *pgStore) ListRecords(ctx context.Context, propertyID string) ([]*domain.HistoricalRecord, error) {
	query := builder().Select("id", "stay_date", "price", "check_in", "check_out").
		From(tableRecords).
		Where(sq.Eq{"property_id": propertyID}).
		OrderBy("stay_date, id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var selected []*domain.HistoricalRecord
	for rows.Next() {
		rec := &domain.HistoricalRecord{}
		if err = rows.Scan(&rec.ID, &rec.Date, &rec.Price, &rec.CheckIn, &rec.CheckOut); err != nil {
			return nil, err
		}
		selected = append(selected, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return selected, nil
}

func (s *pgStore) DeleteRecords(ctx context.Context, propertyID string) error {
	query := builder().Delete(tableRecords).
		Where(sq.Eq{"property_id": propertyID})

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = s.pool.Exec(ctx, sql, args...); err != nil {
		return wrapErr(err)
	}

	return nil
}
