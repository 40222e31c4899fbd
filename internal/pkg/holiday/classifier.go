package holiday

import (
	"context"
	"sync"
	"time"

	"github.com/ougirez/dayrate/internal/domain"
	"github.com/ougirez/dayrate/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Classifier answers "is this date a public holiday" against a per-year
// cache it owns. Years are loaded once per process and never evicted or
// re-fetched; a failed load is cached as an empty table so lookups for that
// year settle on "not a holiday" instead of retrying forever.
type Classifier struct {
	source Source

	mu    sync.Mutex
	years map[int]Table
}

func NewClassifier(source Source) *Classifier {
	return &Classifier{
		source: source,
		years:  make(map[int]Table),
	}
}

// EnsureYear loads and caches the table for year unless it is already
// cached. Fetch and decode failures are logged and cached as an empty
// table; they are never surfaced to the caller.
func (c *Classifier) EnsureYear(ctx context.Context, year int) {
	c.mu.Lock()
	_, ok := c.years[year]
	c.mu.Unlock()
	if ok {
		return
	}

	table, err := c.source.FetchYear(ctx, year)
	if err != nil {
		logger.Warnf(ctx, "holiday table for %d unavailable, assuming none: %s", year, err.Error())
		table = make(Table)
	}

	c.mu.Lock()
	// first load wins when two requests race on the same year
	if _, ok = c.years[year]; !ok {
		c.years[year] = table
	}
	c.mu.Unlock()
}

// Prefetch loads several years concurrently. Like EnsureYear it cannot
// fail; it returns once every year has settled.
func (c *Classifier) Prefetch(ctx context.Context, years ...int) {
	seen := make(map[int]struct{}, len(years))
	eg, egCtx := errgroup.WithContext(ctx)
	for _, year := range years {
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}

		year := year
		eg.Go(func() error {
			c.EnsureYear(egCtx, year)
			return nil
		})
	}
	_ = eg.Wait()
}

// IsHoliday is the synchronous, cache-only lookup the forecast engine uses:
// it never touches the network. A year that was never loaded reads as "not
// a holiday" — callers that need certainty must EnsureYear first.
func (c *Classifier) IsHoliday(t time.Time) bool {
	_, ok := c.lookup(t)
	return ok
}

// HolidayName returns the cached holiday name for the date, if any.
func (c *Classifier) HolidayName(t time.Time) (string, bool) {
	return c.lookup(t)
}

// HolidayOn is the awaitable variant: it guarantees the year is loaded
// before answering.
func (c *Classifier) HolidayOn(ctx context.Context, t time.Time) bool {
	c.EnsureYear(ctx, t.Year())
	return c.IsHoliday(t)
}

// Loaded reports whether a table (possibly empty) is cached for year.
func (c *Classifier) Loaded(year int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.years[year]
	return ok
}

func (c *Classifier) lookup(t time.Time) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, ok := c.years[t.Year()]
	if !ok {
		return "", false
	}

	name, ok := table[domain.DayKey(t)]
	return name, ok
}
