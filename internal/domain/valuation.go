package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ValuationRecord is a single per-unit price observation for a fund.
type ValuationRecord struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// ValuationSeries is an immutable, chronologically ordered view over
// valuation records. Sorting happens once at construction; the sort is
// stable, so records sharing a date keep their input order and lookups
// stay deterministic.
type ValuationSeries struct {
	records []ValuationRecord
}

// NewValuationSeries builds a series from records in any order. The input
// slice is copied; mutating it afterwards does not affect the series.
func NewValuationSeries(records []ValuationRecord) *ValuationSeries {
	sorted := make([]ValuationRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return &ValuationSeries{records: sorted}
}

// Len returns the number of records in the series.
func (s *ValuationSeries) Len() int {
	return len(s.records)
}

// IsEmpty reports whether the series holds no records.
func (s *ValuationSeries) IsEmpty() bool {
	return len(s.records) == 0
}

// Records returns the ordered records. Callers must not modify the
// returned slice.
func (s *ValuationSeries) Records() []ValuationRecord {
	return s.records
}

// Earliest returns the chronologically first record.
func (s *ValuationSeries) Earliest() (ValuationRecord, bool) {
	if len(s.records) == 0 {
		return ValuationRecord{}, false
	}
	return s.records[0], true
}

// Latest returns the chronologically last record, used as the current
// valuation.
func (s *ValuationSeries) Latest() (ValuationRecord, bool) {
	if len(s.records) == 0 {
		return ValuationRecord{}, false
	}
	return s.records[len(s.records)-1], true
}

// Nearest returns the record whose date is closest to target. Ties resolve
// to the earlier date, and among records sharing a date to the first in
// sorted order. Targets outside the series range return the closest
// endpoint. Only an empty series yields ok=false.
func (s *ValuationSeries) Nearest(target time.Time) (ValuationRecord, bool) {
	if len(s.records) == 0 {
		return ValuationRecord{}, false
	}

	// First index whose date is on or after the target.
	idx := sort.Search(len(s.records), func(i int) bool {
		return !s.records[i].Date.Before(target)
	})

	if idx == 0 {
		return s.records[0], true
	}
	if idx == len(s.records) {
		return s.records[len(s.records)-1], true
	}

	before := s.records[idx-1]
	after := s.records[idx]
	distBefore := target.Sub(before.Date)
	distAfter := after.Date.Sub(target)
	if distAfter < distBefore {
		return after, true
	}
	// Equal distance prefers the earlier record.
	return before, true
}
