// Package navfeed fetches fund metadata and raw NAV histories from an
// mfapi-style REST endpoint and parses the feed into typed valuation
// records.
package navfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mfsim/fund-calculator/internal/domain"
)

// DefaultBaseURL is the public mutual fund NAV API.
const DefaultBaseURL = "https://api.mfapi.in"

// RawRecord is one NAV observation exactly as the feed delivers it: a
// DD-MM-YYYY date string and a string-encoded decimal NAV.
type RawRecord struct {
	Date string `json:"date"`
	NAV  string `json:"nav"`
}

// FundDetails is the feed's fund-detail payload.
type FundDetails struct {
	Meta   fundMeta    `json:"meta"`
	Data   []RawRecord `json:"data"`
	Status string      `json:"status"`
}

type fundMeta struct {
	FundHouse      string `json:"fund_house"`
	SchemeType     string `json:"scheme_type"`
	SchemeCategory string `json:"scheme_category"`
	SchemeCode     int    `json:"scheme_code"`
	SchemeName     string `json:"scheme_name"`
	ISINGrowth     string `json:"isin_growth"`
}

type fundListEntry struct {
	SchemeCode int    `json:"schemeCode"`
	SchemeName string `json:"schemeName"`
}

// Client talks to the fund data feed.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a feed client against the default endpoint.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FundList fetches the complete scheme list.
func (c *Client) FundList(ctx context.Context) ([]domain.Fund, error) {
	var entries []fundListEntry
	if err := c.getJSON(ctx, "/mf", &entries); err != nil {
		return nil, fmt.Errorf("fetching fund list: %w", err)
	}
	funds := make([]domain.Fund, 0, len(entries))
	for _, e := range entries {
		funds = append(funds, domain.Fund{SchemeCode: e.SchemeCode, SchemeName: e.SchemeName})
	}
	return funds, nil
}

// SearchFunds fetches the scheme list and filters it case-insensitively by
// the query string.
func (c *Client) SearchFunds(ctx context.Context, query string) ([]domain.Fund, error) {
	funds, err := c.FundList(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var matches []domain.Fund
	for _, f := range funds {
		if strings.Contains(strings.ToLower(f.SchemeName), q) {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

// FundDetails fetches metadata and full NAV history for one scheme.
func (c *Client) FundDetails(ctx context.Context, schemeCode int) (*FundDetails, error) {
	var details FundDetails
	if err := c.getJSON(ctx, fmt.Sprintf("/mf/%d", schemeCode), &details); err != nil {
		return nil, fmt.Errorf("fetching scheme %d: %w", schemeCode, err)
	}
	return &details, nil
}

// Fund returns the detail payload's metadata as a domain fund.
func (d *FundDetails) Fund() *domain.Fund {
	return &domain.Fund{
		SchemeCode:     d.Meta.SchemeCode,
		SchemeName:     d.Meta.SchemeName,
		FundHouse:      d.Meta.FundHouse,
		SchemeType:     d.Meta.SchemeType,
		SchemeCategory: d.Meta.SchemeCategory,
		ISINGrowth:     d.Meta.ISINGrowth,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
