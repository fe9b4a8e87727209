package tradestation

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// BarsQuery are the optional parameters of the barcharts endpoint. Either
// BarsBack or FirstDate selects the start of the range, not both.
type BarsQuery struct {
	Interval        int
	Unit            string // Minute, Daily, Weekly, Monthly
	BarsBack        int
	FirstDate       string // RFC3339 or 2006-01-02
	LastDate        string
	SessionTemplate string // USEQPre, USEQPost, USEQPreAndPost, USEQ24Hour, Default
}

func (q BarsQuery) values() url.Values {
	v := url.Values{}
	if q.Interval > 0 {
		v.Set("interval", strconv.Itoa(q.Interval))
	}
	if q.Unit != "" {
		v.Set("unit", q.Unit)
	}
	if q.BarsBack > 0 {
		v.Set("barsback", strconv.Itoa(q.BarsBack))
	}
	if q.FirstDate != "" {
		v.Set("firstdate", q.FirstDate)
	}
	if q.LastDate != "" {
		v.Set("lastdate", q.LastDate)
	}
	if q.SessionTemplate != "" {
		v.Set("sessiontemplate", q.SessionTemplate)
	}
	return v
}

// GetBars fetches price history for a symbol. Intraday requests reach
// back at most 57,600 bars.
func (c *Client) GetBars(ctx context.Context, symbol string, query BarsQuery) (*Bars, error) {
	out := &Bars{}
	if err := c.get(ctx, "/v3/marketdata/barcharts/"+url.PathEscape(symbol), query.values(), out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetQuoteSnapshots fetches current quotes for up to 100 symbols.
// Per-symbol failures come back in Errors alongside the successes.
func (c *Client) GetQuoteSnapshots(ctx context.Context, symbols []string) (*QuoteSnapshot, error) {
	out := &QuoteSnapshot{}
	path := "/v3/marketdata/quotes/" + url.PathEscape(strings.Join(symbols, ","))
	if err := c.get(ctx, path, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSymbolDetails fetches the full definitions of up to 50 symbols,
// including price and quantity formatting.
func (c *Client) GetSymbolDetails(ctx context.Context, symbols []string) (*SymbolDetailsResponse, error) {
	out := &SymbolDetailsResponse{}
	path := "/v3/marketdata/symbols/" + url.PathEscape(strings.Join(symbols, ","))
	if err := c.get(ctx, path, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCryptoSymbolNames lists the crypto pairs the API quotes. Crypto
// symbols can be quoted but not traded through the API.
func (c *Client) GetCryptoSymbolNames(ctx context.Context) (*SymbolNames, error) {
	out := &SymbolNames{}
	if err := c.get(ctx, "/v3/marketdata/symbollists/cryptopairs/symbolnames", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SuggestSymbols fetches symbol matches for partial text input. top
// bounds the match count; filter is an OData expression over the symbol
// attributes, e.g. `Category eq 'Stock'`. This is a v2 endpoint and
// returns a bare array.
func (c *Client) SuggestSymbols(ctx context.Context, text string, top int, filter string) ([]SymbolSuggestDefinition, error) {
	v := url.Values{}
	if top > 0 {
		v.Set("$top", strconv.Itoa(top))
	}
	if filter != "" {
		v.Set("$filter", filter)
	}
	var out []SymbolSuggestDefinition
	if err := c.get(ctx, "/v2/data/symbols/suggest/"+url.PathEscape(text), v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchSymbols fetches symbols matching search criteria of the form
// `N=eq&C=StockOption&Stk=100`. This is a v2 endpoint and returns a bare
// array.
func (c *Client) SearchSymbols(ctx context.Context, criteria string) ([]SymbolSearchDefinition, error) {
	var out []SymbolSearchDefinition
	if err := c.get(ctx, "/v2/data/symbols/search/"+url.PathEscape(criteria), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
