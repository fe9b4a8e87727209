package tradestation

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Stream is one open streaming connection. Decoded messages arrive on
// Events as pointers to the endpoint's payload type, *Heartbeat,
// *StreamStatus, or the endpoint's error type; callers type-switch on
// them. The channel closes when the server ends the stream, the context
// is cancelled, or Close is called. Streams do not reconnect; when
// Events closes, check Err and open a new stream if needed.
type Stream struct {
	events chan any
	body   io.ReadCloser
	cancel context.CancelFunc

	closeOnce sync.Once

	mu  sync.Mutex
	err error
}

// Events returns the channel decoded messages arrive on.
func (s *Stream) Events() <-chan any {
	return s.events
}

// Close tears the stream down. Safe to call more than once and
// concurrently with reads.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		_ = s.body.Close()
	})
	return nil
}

// Err reports why the stream ended, once Events has closed. A clean
// server-side end and a local Close both leave it nil.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Stream) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// maxStreamLineSize bounds a single streamed JSON line.
const maxStreamLineSize = 1024 * 1024

// openStream issues the streaming GET and hands the response body to a
// reader goroutine that resolves each line against the candidate table.
func (c *Client) openStream(ctx context.Context, path string, query url.Values, candidates []streamCandidate) (*Stream, error) {
	ctx, cancel := context.WithCancel(ctx)

	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.tradestation.streams.v2+json")

	resp, err := c.streamClient.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("open stream %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		defer cancel()
		defer resp.Body.Close()
		return nil, decodeResponse(resp, nil)
	}

	s := &Stream{
		events: make(chan any, 16),
		body:   resp.Body,
		cancel: cancel,
	}
	go s.read(ctx, candidates, path)
	return s, nil
}

func (s *Stream) read(ctx context.Context, candidates []streamCandidate, path string) {
	defer close(s.events)
	defer s.Close()

	scanner := bufio.NewScanner(s.body)
	scanner.Buffer(make([]byte, 64*1024), maxStreamLineSize)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		msg, err := resolveLine(line, candidates)
		if err != nil {
			// Tolerate unresolvable lines on a live stream; the next
			// line is usually fine.
			log.WithField("stream", path).Warnf("skipping line: %v", err)
			continue
		}

		select {
		case s.events <- msg:
		case <-ctx.Done():
			return
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		s.setErr(fmt.Errorf("stream %s: %w", path, err))
	}
}

// StreamBarsQuery are the optional parameters of the bar stream.
type StreamBarsQuery struct {
	Interval        int
	Unit            string // Minute, Daily, Weekly, Monthly
	BarsBack        int
	SessionTemplate string
}

func (q StreamBarsQuery) values() url.Values {
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
	if q.SessionTemplate != "" {
		v.Set("sessiontemplate", q.SessionTemplate)
	}
	return v
}

// StreamBars streams bars for a symbol: a back-history of closed bars,
// then live updates of the forming bar.
func (c *Client) StreamBars(ctx context.Context, symbol string, query StreamBarsQuery) (*Stream, error) {
	path := "/v3/marketdata/stream/barcharts/" + url.PathEscape(symbol)
	return c.openStream(ctx, path, query.values(), barStreamCandidates)
}

// StreamTickBars streams bars built from a fixed tick count per bar.
// barsBack closed bars are replayed before live data begins.
func (c *Client) StreamTickBars(ctx context.Context, symbol string, interval, barsBack int) (*Stream, error) {
	path := fmt.Sprintf("/v2/stream/tickbars/%s/%d/%d", url.PathEscape(symbol), interval, barsBack)
	return c.openStream(ctx, path, nil, tickBarStreamCandidates)
}

// StreamQuotes streams quote changes for up to 100 symbols. The first
// message per symbol is a full quote; later messages carry only changed
// fields.
func (c *Client) StreamQuotes(ctx context.Context, symbols []string) (*Stream, error) {
	path := "/v3/marketdata/stream/quotes/" + url.PathEscape(strings.Join(symbols, ","))
	return c.openStream(ctx, path, nil, quoteStreamCandidates)
}

// OptionChainQuery are the optional parameters of the option chain
// stream.
type OptionChainQuery struct {
	Expiration      string
	Expiration2     string
	StrikeProximity int
	SpreadType      string
	RiskFreeRate    float64
	PriceCenter     float64
	StrikeInterval  int
	EnableGreeks    *bool
	StrikeRange     string // All, ITM, OTM
	OptionType      string // All, Call, Put
}

func (q OptionChainQuery) values() url.Values {
	v := url.Values{}
	if q.Expiration != "" {
		v.Set("expiration", q.Expiration)
	}
	if q.Expiration2 != "" {
		v.Set("expiration2", q.Expiration2)
	}
	if q.StrikeProximity > 0 {
		v.Set("strikeProximity", strconv.Itoa(q.StrikeProximity))
	}
	if q.SpreadType != "" {
		v.Set("spreadType", q.SpreadType)
	}
	if q.RiskFreeRate > 0 {
		v.Set("riskFreeRate", strconv.FormatFloat(q.RiskFreeRate, 'f', -1, 64))
	}
	if q.PriceCenter > 0 {
		v.Set("priceCenter", strconv.FormatFloat(q.PriceCenter, 'f', -1, 64))
	}
	if q.StrikeInterval > 0 {
		v.Set("strikeInterval", strconv.Itoa(q.StrikeInterval))
	}
	if q.EnableGreeks != nil {
		v.Set("enableGreeks", strconv.FormatBool(*q.EnableGreeks))
	}
	if q.StrikeRange != "" {
		v.Set("strikeRange", q.StrikeRange)
	}
	if q.OptionType != "" {
		v.Set("optionType", q.OptionType)
	}
	return v
}

// StreamOptionChain streams the option chain of an underlying as Spread
// records with greeks.
func (c *Client) StreamOptionChain(ctx context.Context, underlying string, query OptionChainQuery) (*Stream, error) {
	path := "/v3/marketdata/stream/options/chains/" + url.PathEscape(underlying)
	return c.openStream(ctx, path, query.values(), optionQuoteStreamCandidates)
}

// OptionQuoteLeg names one leg of a spread quote subscription.
type OptionQuoteLeg struct {
	Symbol string
	Ratio  int
}

// StreamOptionQuotes streams greeks and quotes for a specific spread,
// defined by its legs.
func (c *Client) StreamOptionQuotes(ctx context.Context, legs []OptionQuoteLeg, riskFreeRate float64, enableGreeks *bool) (*Stream, error) {
	v := url.Values{}
	for i, leg := range legs {
		v.Set(fmt.Sprintf("legs[%d].Symbol", i), leg.Symbol)
		if leg.Ratio != 0 {
			v.Set(fmt.Sprintf("legs[%d].Ratio", i), strconv.Itoa(leg.Ratio))
		}
	}
	if riskFreeRate > 0 {
		v.Set("riskFreeRate", strconv.FormatFloat(riskFreeRate, 'f', -1, 64))
	}
	if enableGreeks != nil {
		v.Set("enableGreeks", strconv.FormatBool(*enableGreeks))
	}
	return c.openStream(ctx, "/v3/marketdata/stream/options/quotes", v, optionQuoteStreamCandidates)
}

func maxLevelsValues(maxLevels int) url.Values {
	v := url.Values{}
	if maxLevels > 0 {
		v.Set("maxlevels", strconv.Itoa(maxLevels))
	}
	return v
}

// StreamMarketDepthQuotes streams participant-level market depth for a
// symbol. maxLevels <= 0 selects the server default of 20.
func (c *Client) StreamMarketDepthQuotes(ctx context.Context, symbol string, maxLevels int) (*Stream, error) {
	path := "/v3/marketdata/stream/marketdepth/quotes/" + url.PathEscape(symbol)
	return c.openStream(ctx, path, maxLevelsValues(maxLevels), marketDepthQuoteStreamCandidates)
}

// StreamMarketDepthAggregates streams market depth aggregated by price
// level.
func (c *Client) StreamMarketDepthAggregates(ctx context.Context, symbol string, maxLevels int) (*Stream, error) {
	path := "/v3/marketdata/stream/marketdepth/aggregates/" + url.PathEscape(symbol)
	return c.openStream(ctx, path, maxLevelsValues(maxLevels), marketDepthAggregateStreamCandidates)
}

// StreamOrders streams order updates for the given accounts: a snapshot
// of today's orders, then changes as they happen.
func (c *Client) StreamOrders(ctx context.Context, accountIDs []string) (*Stream, error) {
	path := fmt.Sprintf("/v3/brokerage/stream/accounts/%s/orders", url.PathEscape(strings.Join(accountIDs, ",")))
	return c.openStream(ctx, path, nil, orderStreamCandidates)
}

// StreamOrdersByID streams updates for specific orders only.
func (c *Client) StreamOrdersByID(ctx context.Context, accountIDs, orderIDs []string) (*Stream, error) {
	path := fmt.Sprintf("/v3/brokerage/stream/accounts/%s/orders/%s",
		url.PathEscape(strings.Join(accountIDs, ",")),
		url.PathEscape(strings.Join(orderIDs, ",")))
	return c.openStream(ctx, path, nil, orderByIDStreamCandidates)
}

// StreamPositions streams position updates for the given accounts. With
// changes true, updates after the snapshot carry only the fields that
// moved, and closed positions arrive with Deleted set.
func (c *Client) StreamPositions(ctx context.Context, accountIDs []string, changes bool) (*Stream, error) {
	v := url.Values{}
	if changes {
		v.Set("changes", "true")
	}
	path := fmt.Sprintf("/v3/brokerage/stream/accounts/%s/positions", url.PathEscape(strings.Join(accountIDs, ",")))
	return c.openStream(ctx, path, v, positionStreamCandidates)
}
