package store

import (
	"context"

	"github.com/ougirez/dayrate/internal/domain"
)

// UpsertStats splits an import into fresh inserts and replaced records.
type UpsertStats struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// Store is the persistence surface the services depend on. Records,
// monthly targets and day actuals are each keyed per property, mirroring
// how the data is entered at the desk.
type Store interface {
	UpsertRecords(ctx context.Context, propertyID string, records []*domain.HistoricalRecord) (UpsertStats, error)
	ListRecords(ctx context.Context, propertyID string) ([]*domain.HistoricalRecord, error)
	DeleteRecords(ctx context.Context, propertyID string) error

	GetMonthlyTarget(ctx context.Context, propertyID, month string) (int64, error)
	SetMonthlyTarget(ctx context.Context, propertyID, month string, amount int64) error

	GetDayActuals(ctx context.Context, propertyID string, day domain.DateKey) (*domain.DayActuals, error)
	SetDayActuals(ctx context.Context, propertyID string, day domain.DateKey, actuals *domain.DayActuals) error

	ListProperties(ctx context.Context) ([]*domain.Property, error)
	GetProperty(ctx context.Context, id string) (*domain.Property, error)
	UpsertProperty(ctx context.Context, property *domain.Property) error
}
