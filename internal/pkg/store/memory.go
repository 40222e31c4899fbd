package store

import (
	"context"
	"os"
	"sort"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/ougirez/dayrate/internal/domain"
	"github.com/ougirez/dayrate/internal/pkg/constants"
	"github.com/ougirez/dayrate/internal/pkg/logger"
)

// memStore keeps everything in process memory, keyed the way the desk enters
// it: records per property, targets per property+month, actuals per
// property+day. With a snapshot path set it persists the whole state to a
// single JSON file after every write, so a DSN-less install survives
// restarts. Also the Store used by tests.
type memStore struct {
	mu   sync.Mutex
	path string
	data *snapshot
}

type snapshot struct {
	Properties map[string]*domain.Property                    `json:"properties"`
	Records    map[string]map[string]*domain.HistoricalRecord `json:"records"`
	Targets    map[string]map[string]int64                    `json:"targets"`
	Actuals    map[string]map[string]*domain.DayActuals       `json:"actuals"`
}

func newSnapshot() *snapshot {
	return &snapshot{
		Properties: make(map[string]*domain.Property),
		Records:    make(map[string]map[string]*domain.HistoricalRecord),
		Targets:    make(map[string]map[string]int64),
		Actuals:    make(map[string]map[string]*domain.DayActuals),
	}
}

// NewMemoryStore returns the in-memory Store. With a non-empty path the
// state is loaded from and flushed to that JSON file.
func NewMemoryStore(path string) (Store, error) {
	s := &memStore{path: path, data: newSnapshot()}

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fresh install
		case err != nil:
			return nil, err
		default:
			if err = sonic.Unmarshal(raw, s.data); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

// flush is best effort: a failed snapshot write must not fail the request
// that caused it.
func (s *memStore) flush(ctx context.Context) {
	if s.path == "" {
		return
	}

	raw, err := sonic.Marshal(s.data)
	if err != nil {
		logger.Errorf(ctx, "marshal snapshot: %s", err.Error())
		return
	}
	if err = os.WriteFile(s.path, raw, 0o644); err != nil {
		logger.Errorf(ctx, "write snapshot %s: %s", s.path, err.Error())
	}
}

func (s *memStore) UpsertRecords(
	ctx context.Context,
	propertyID string,
	records []*domain.HistoricalRecord,
) (UpsertStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID, ok := s.data.Records[propertyID]
	if !ok {
		byID = make(map[string]*domain.HistoricalRecord)
		s.data.Records[propertyID] = byID
	}

	var stats UpsertStats
	for _, rec := range records {
		if _, ok = byID[rec.ID]; ok {
			stats.Updated++
		} else {
			stats.Inserted++
		}
		clone := *rec
		byID[rec.ID] = &clone
	}

	s.flush(ctx)
	return stats, nil
}

func (s *memStore) ListRecords(_ context.Context, propertyID string) ([]*domain.HistoricalRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := s.data.Records[propertyID]
	selected := make([]*domain.HistoricalRecord, 0, len(byID))
	for _, rec := range byID {
		clone := *rec
		selected = append(selected, &clone)
	}

	sort.Slice(selected, func(i, j int) bool {
		if !selected[i].Date.Equal(selected[j].Date) {
			return selected[i].Date.Before(selected[j].Date)
		}
		return selected[i].ID < selected[j].ID
	})

	return selected, nil
}

func (s *memStore) DeleteRecords(ctx context.Context, propertyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data.Records, propertyID)
	s.flush(ctx)
	return nil
}

func (s *memStore) GetMonthlyTarget(_ context.Context, propertyID, month string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.Targets[propertyID][month], nil
}

func (s *memStore) SetMonthlyTarget(ctx context.Context, propertyID, month string, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byMonth, ok := s.data.Targets[propertyID]
	if !ok {
		byMonth = make(map[string]int64)
		s.data.Targets[propertyID] = byMonth
	}
	byMonth[month] = amount

	s.flush(ctx)
	return nil
}

func (s *memStore) GetDayActuals(_ context.Context, propertyID string, day domain.DateKey) (*domain.DayActuals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if actuals, ok := s.data.Actuals[propertyID][day]; ok {
		clone := *actuals
		return &clone, nil
	}
	return &domain.DayActuals{}, nil
}

func (s *memStore) SetDayActuals(ctx context.Context, propertyID string, day domain.DateKey, actuals *domain.DayActuals) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byDay, ok := s.data.Actuals[propertyID]
	if !ok {
		byDay = make(map[string]*domain.DayActuals)
		s.data.Actuals[propertyID] = byDay
	}
	clone := *actuals
	byDay[day] = &clone

	s.flush(ctx)
	return nil
}

func (s *memStore) ListProperties(_ context.Context) ([]*domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	selected := make([]*domain.Property, 0, len(s.data.Properties))
	for _, p := range s.data.Properties {
		clone := *p
		selected = append(selected, &clone)
	}

	sort.Slice(selected, func(i, j int) bool { return selected[i].Name < selected[j].Name })
	return selected, nil
}

func (s *memStore) GetProperty(_ context.Context, id string) (*domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.data.Properties[id]
	if !ok {
		return nil, constants.ErrDBNotFound
	}

	clone := *p
	return &clone, nil
}

func (s *memStore) UpsertProperty(ctx context.Context, property *domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *property
	s.data.Properties[property.ID] = &clone

	s.flush(ctx)
	return nil
}
