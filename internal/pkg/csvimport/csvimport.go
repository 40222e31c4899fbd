package csvimport

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/ougirez/dayrate/internal/domain"
)

// Accepted stay-date layouts, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"02.01.2006",
}

type row struct {
	ID       string `csv:"id"`
	Date     string `csv:"date"`
	Price    string `csv:"price"`
	CheckIn  string `csv:"check_in"`
	CheckOut string `csv:"check_out"`
}

// Report tells the caller what happened to each row of the upload.
// Rejected rows never reach the forecast engine.
type Report struct {
	Parsed  int      `json:"parsed"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

type Options struct {
	// AssignIDs fills a missing id with a generated one instead of
	// rejecting the row. Off for uploads: the id is the upsert key and
	// a generated one would break re-import semantics.
	AssignIDs bool
}

// Parse reads a day-use history CSV. Malformed rows are skipped and
// reported, valid ones are returned in file order. A duplicate id within
// one file keeps the later row (same last-write-wins rule as the store).
func Parse(r io.Reader, opts Options) ([]*domain.HistoricalRecord, *Report, error) {
	var rows []*row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}

	report := &Report{}
	records := make([]*domain.HistoricalRecord, 0, len(rows))
	index := make(map[string]int, len(rows))

	for i, rw := range rows {
		rec, err := rw.toRecord(opts)
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %s", i+2, err.Error()))
			continue
		}

		if at, ok := index[rec.ID]; ok {
			records[at] = rec
			continue
		}

		index[rec.ID] = len(records)
		records = append(records, rec)
	}

	report.Parsed = len(records)
	return records, report, nil
}

func (rw *row) toRecord(opts Options) (*domain.HistoricalRecord, error) {
	id := strings.TrimSpace(rw.ID)
	if id == "" {
		if !opts.AssignIDs {
			return nil, fmt.Errorf("missing id")
		}
		id = uuid.NewString()
	}

	date, err := parseDate(strings.TrimSpace(rw.Date))
	if err != nil {
		return nil, err
	}

	priceStr := strings.TrimSpace(rw.Price)
	if priceStr == "" {
		return nil, fmt.Errorf("missing price")
	}
	price, err := strconv.ParseInt(priceStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", rw.Price)
	}
	if price < 0 {
		return nil, fmt.Errorf("negative price %d", price)
	}

	return &domain.HistoricalRecord{
		ID:       id,
		Date:     date,
		Price:    price,
		CheckIn:  strings.TrimSpace(rw.CheckIn),
		CheckOut: strings.TrimSpace(rw.CheckOut),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
