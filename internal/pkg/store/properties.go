package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/dayrate/internal/domain"
)

var propertyColumns = []string{"id", "name", "total_rooms", "created_at", "updated_at"}

func (s *pgStore) ListProperties(ctx context.Context) ([]*domain.Property, error) {
	query := builder().Select(propertyColumns...).
		From(tableProperties).
		OrderBy("name")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var selected []*domain.Property
	for rows.Next() {
		p := &domain.Property{}
		if err = rows.Scan(&p.ID, &p.Name, &p.TotalRooms, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		selected = append(selected, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return selected, nil
}

func (s *pgStore) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	query := builder().Select(propertyColumns...).
		From(tableProperties).
		Where(sq.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	p := &domain.Property{}
	err = s.pool.QueryRow(ctx, sql, args...).
		Scan(&p.ID, &p.Name, &p.TotalRooms, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, wrapErr(err)
	}

	return p, nil
}

func (s *pgStore) UpsertProperty(ctx context.Context, property *domain.Property) error {
	query := builder().Insert(tableProperties).
		Columns("id", "name", "total_rooms").
		Values(property.ID, property.Name, property.TotalRooms).
		Suffix(`on conflict (id) do update set name=excluded.name, total_rooms=excluded.total_rooms, updated_at=now()`)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = s.pool.Exec(ctx, sql, args...); err != nil {
		return wrapErr(err)
	}

	return nil
}
