package domain

// Fund identifies a mutual fund scheme and its metadata as delivered by the
// fund data feed.
type Fund struct {
	SchemeCode     int    `json:"scheme_code"`
	SchemeName     string `json:"scheme_name"`
	FundHouse      string `json:"fund_house,omitempty"`
	SchemeType     string `json:"scheme_type,omitempty"`
	SchemeCategory string `json:"scheme_category,omitempty"`
	ISINGrowth     string `json:"isin_growth,omitempty"`
}
