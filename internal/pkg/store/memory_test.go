package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ougirez/dayrate/internal/domain"
	"github.com/ougirez/dayrate/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMem(t *testing.T) Store {
	t.Helper()
	s, err := NewMemoryStore("")
	require.NoError(t, err)
	return s
}

func rec(id string, date time.Time, price int64) *domain.HistoricalRecord {
	return &domain.HistoricalRecord{ID: id, Date: date, Price: price}
}

func TestMemoryStore_UpsertRecords(t *testing.T) {
	ctx := context.Background()
	s := newMem(t)
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local)

	stats, err := s.UpsertRecords(ctx, "main", []*domain.HistoricalRecord{
		rec("r1", monday, 5000),
		rec("r2", monday.AddDate(0, 0, 7), 7000),
	})
	require.NoError(t, err)
	assert.Equal(t, UpsertStats{Inserted: 2}, stats)

	// same id replaces wholesale, total count unchanged
	stats, err = s.UpsertRecords(ctx, "main", []*domain.HistoricalRecord{
		rec("r1", monday, 9999),
	})
	require.NoError(t, err)
	assert.Equal(t, UpsertStats{Updated: 1}, stats)

	records, err := s.ListRecords(ctx, "main")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(9999), records[0].Price)

	// new id grows the set by exactly one
	stats, err = s.UpsertRecords(ctx, "main", []*domain.HistoricalRecord{
		rec("r3", monday.AddDate(0, 0, 14), 4000),
	})
	require.NoError(t, err)
	assert.Equal(t, UpsertStats{Inserted: 1}, stats)

	records, err = s.ListRecords(ctx, "main")
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestMemoryStore_RecordsArePerProperty(t *testing.T) {
	ctx := context.Background()
	s := newMem(t)
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local)

	_, err := s.UpsertRecords(ctx, "annex", []*domain.HistoricalRecord{rec("r1", monday, 5000)})
	require.NoError(t, err)

	records, err := s.ListRecords(ctx, "main")
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, s.DeleteRecords(ctx, "annex"))
	records, err = s.ListRecords(ctx, "annex")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMemoryStore_MonthlyTargets(t *testing.T) {
	ctx := context.Background()
	s := newMem(t)

	amount, err := s.GetMonthlyTarget(ctx, "main", "2024-01")
	require.NoError(t, err)
	assert.Zero(t, amount, "unset target reads as 0")

	require.NoError(t, s.SetMonthlyTarget(ctx, "main", "2024-01", 300000))
	require.NoError(t, s.SetMonthlyTarget(ctx, "main", "2024-01", 350000))

	amount, err = s.GetMonthlyTarget(ctx, "main", "2024-01")
	require.NoError(t, err)
	assert.Equal(t, int64(350000), amount)

	amount, err = s.GetMonthlyTarget(ctx, "annex", "2024-01")
	require.NoError(t, err)
	assert.Zero(t, amount)
}

func TestMemoryStore_DayActuals(t *testing.T) {
	ctx := context.Background()
	s := newMem(t)

	actuals, err := s.GetDayActuals(ctx, "main", "2024-01-22")
	require.NoError(t, err)
	assert.Equal(t, &domain.DayActuals{}, actuals)

	want := &domain.DayActuals{BookedStayRooms: 48, DayuseCount: 2, DayuseAvgPrice: 3000}
	require.NoError(t, s.SetDayActuals(ctx, "main", "2024-01-22", want))

	actuals, err = s.GetDayActuals(ctx, "main", "2024-01-22")
	require.NoError(t, err)
	assert.Equal(t, want, actuals)
}

func TestMemoryStore_Properties(t *testing.T) {
	ctx := context.Background()
	s := newMem(t)

	_, err := s.GetProperty(ctx, "main")
	assert.True(t, errors.Is(err, constants.ErrDBNotFound))

	require.NoError(t, s.UpsertProperty(ctx, &domain.Property{ID: "main", Name: "Main", TotalRooms: 50}))

	p, err := s.GetProperty(ctx, "main")
	require.NoError(t, err)
	assert.Equal(t, int64(50), p.TotalRooms)

	properties, err := s.ListProperties(ctx)
	require.NoError(t, err)
	assert.Len(t, properties, 1)
}

func TestMemoryStore_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "dayrate.json")

	s, err := NewMemoryStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SetMonthlyTarget(ctx, "main", "2024-01", 300000))
	monday := time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local)
	_, err = s.UpsertRecords(ctx, "main", []*domain.HistoricalRecord{rec("r1", monday, 5000)})
	require.NoError(t, err)

	reopened, err := NewMemoryStore(path)
	require.NoError(t, err)

	amount, err := reopened.GetMonthlyTarget(ctx, "main", "2024-01")
	require.NoError(t, err)
	assert.Equal(t, int64(300000), amount)

	records, err := reopened.ListRecords(ctx, "main")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "r1", records[0].ID)
}
