package navfeed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfsim/fund-calculator/internal/domain"
)

// The feed encodes dates as day-month-year. Parsing is fixed to this single
// interpretation with no locale dependence.
const navDateLayout = "02-01-2006"

// ParseRecords converts raw feed records into typed valuation records. A
// record with an unparsable date or a non-numeric NAV is skipped; one bad
// row never aborts the rest of the series. The number of skipped records is
// returned so callers can log it.
func ParseRecords(raw []RawRecord) (records []domain.ValuationRecord, skipped int) {
	records = make([]domain.ValuationRecord, 0, len(raw))
	for _, r := range raw {
		date, err := time.Parse(navDateLayout, r.Date)
		if err != nil {
			skipped++
			continue
		}
		value, err := decimal.NewFromString(r.NAV)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, domain.ValuationRecord{Date: date, Value: value})
	}
	return records, skipped
}

// BuildSeries parses the raw feed and assembles the immutable series in one
// step.
func BuildSeries(raw []RawRecord) (*domain.ValuationSeries, int) {
	records, skipped := ParseRecords(raw)
	return domain.NewValuationSeries(records), skipped
}
