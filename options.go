package tradestation

import (
	"context"
	"net/url"
	"strconv"
)

// GetOptionExpirations fetches the contract expiration dates of an
// underlying. A non-empty strikePrice limits the dates to those with a
// contract at that strike.
func (c *Client) GetOptionExpirations(ctx context.Context, underlying, strikePrice string) (*Expirations, error) {
	var query url.Values
	if strikePrice != "" {
		query = url.Values{"strikePrice": {strikePrice}}
	}
	out := &Expirations{}
	if err := c.get(ctx, "/v3/marketdata/options/expirations/"+url.PathEscape(underlying), query, out); err != nil {
		return nil, err
	}
	return out, nil
}

// AnalyzeOptionRiskReward computes the maximum gain, maximum loss, and
// breakeven points of a potential spread trade. All legs must share the
// same underlying and expiration.
func (c *Client) AnalyzeOptionRiskReward(ctx context.Context, input *RiskRewardAnalysisInput) (*RiskRewardAnalysisResult, error) {
	out := &RiskRewardAnalysisResult{}
	if err := c.post(ctx, "/v3/marketdata/options/riskreward", input, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOptionSpreadTypes lists the known option spread types and whether
// each varies by strike or expiration.
func (c *Client) GetOptionSpreadTypes(ctx context.Context) (*SpreadTypes, error) {
	out := &SpreadTypes{}
	if err := c.get(ctx, "/v3/marketdata/options/spreadtypes", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// StrikesQuery narrows the strikes listing of an underlying.
type StrikesQuery struct {
	SpreadType     string
	StrikeInterval int
	Expiration     string
	Expiration2    string // for spread types with two expirations, e.g. Calendar
}

func (q StrikesQuery) values() url.Values {
	v := url.Values{}
	if q.SpreadType != "" {
		v.Set("spreadType", q.SpreadType)
	}
	if q.StrikeInterval > 0 {
		v.Set("strikeInterval", strconv.Itoa(q.StrikeInterval))
	}
	if q.Expiration != "" {
		v.Set("expiration", q.Expiration)
	}
	if q.Expiration2 != "" {
		v.Set("expiration2", q.Expiration2)
	}
	return v
}

// GetOptionStrikes fetches the strike prices available for an underlying,
// optionally narrowed to a spread type and expiration.
func (c *Client) GetOptionStrikes(ctx context.Context, underlying string, query StrikesQuery) (*Strikes, error) {
	out := &Strikes{}
	if err := c.get(ctx, "/v3/marketdata/options/strikes/"+url.PathEscape(underlying), query.values(), out); err != nil {
		return nil, err
	}
	return out, nil
}
