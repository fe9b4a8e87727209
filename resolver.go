package tradestation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Streamed lines arrive as untagged JSON objects: a heartbeat, a payload
// record, an in-band error, or a stream status marker, with nothing but
// their structure to tell them apart. Each stream endpoint therefore owns
// an ordered candidate table; the first candidate whose structural probe
// matches decodes the line. Probes run on a gjson parse of the raw line so
// no decode work happens for the types that do not match.
type streamCandidate struct {
	match  func(gjson.Result) bool
	decode func([]byte) (any, error)
}

// errNoCandidate reports a syntactically valid JSON line that matched no
// candidate. Stream readers log and skip these; a single-response decode
// treats the equivalent condition as a hard error.
var errNoCandidate = errors.New("no matching message type")

func decodeAs[T any](data []byte) (any, error) {
	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

func resolveLine(line []byte, candidates []streamCandidate) (any, error) {
	if !gjson.ValidBytes(line) {
		return nil, fmt.Errorf("invalid JSON line: %q", truncateForLog(line))
	}
	probe := gjson.ParseBytes(line)
	if !probe.IsObject() {
		return nil, fmt.Errorf("non-object JSON line: %q", truncateForLog(line))
	}
	for _, c := range candidates {
		if c.match(probe) {
			return c.decode(line)
		}
	}
	return nil, errNoCandidate
}

func truncateForLog(line []byte) string {
	const max = 256
	if len(line) > max {
		return string(line[:max]) + "..."
	}
	return string(line)
}

func hasKey(key string) func(gjson.Result) bool {
	return func(r gjson.Result) bool { return r.Get(key).Exists() }
}

func hasKeys(keys ...string) func(gjson.Result) bool {
	return func(r gjson.Result) bool {
		for _, k := range keys {
			if !r.Get(k).Exists() {
				return false
			}
		}
		return true
	}
}

// matchHeartbeat and matchStreamStatus are shared by every table; the
// heartbeat always probes first so a quiet stream stays cheap.
var (
	matchHeartbeat    = hasKey("Heartbeat")
	matchStreamStatus = hasKey("StreamStatus")
)

// Quote updates always carry Symbol, including per-symbol error records,
// which decode into the same shape via the embedded Error field.
var quoteStreamCandidates = []streamCandidate{
	{matchHeartbeat, decodeAs[Heartbeat]},
	{hasKey("Symbol"), decodeAs[QuoteStream]},
	{hasKey("Error"), decodeAs[StreamErrorResponse]},
	{matchStreamStatus, decodeAs[StreamStatus]},
}

var barStreamCandidates = []streamCandidate{
	{matchHeartbeat, decodeAs[Heartbeat]},
	{hasKeys("Close", "High"), decodeAs[Bar]},
	{hasKey("Error"), decodeAs[StreamErrorResponse]},
	{matchStreamStatus, decodeAs[StreamStatus]},
}

// Tick bars carry only Close, TimeStamp, and TotalVolume.
var tickBarStreamCandidates = []streamCandidate{
	{matchHeartbeat, decodeAs[Heartbeat]},
	{hasKeys("Close", "TimeStamp"), decodeAs[TickBar]},
	{hasKey("Error"), decodeAs[StreamErrorResponse]},
	{matchStreamStatus, decodeAs[StreamStatus]},
}

// Order records carry OrderID; so does the order-stream error object, so
// the error probe additionally requires Error.
var orderStreamCandidates = []streamCandidate{
	{matchHeartbeat, decodeAs[Heartbeat]},
	{hasKey("Error"), decodeAs[StreamOrderErrorResponse]},
	{hasKey("OrderID"), decodeAs[Order]},
	{matchStreamStatus, decodeAs[StreamStatus]},
}

var orderByIDStreamCandidates = []streamCandidate{
	{matchHeartbeat, decodeAs[Heartbeat]},
	{hasKey("Error"), decodeAs[StreamOrderByOrderIDErrorResponse]},
	{hasKey("OrderID"), decodeAs[Order]},
	{matchStreamStatus, decodeAs[StreamStatus]},
}

var positionStreamCandidates = []streamCandidate{
	{matchHeartbeat, decodeAs[Heartbeat]},
	{hasKey("Error"), decodeAs[StreamPositionsErrorResponse]},
	{hasKey("PositionID"), decodeAs[Position]},
	{matchStreamStatus, decodeAs[StreamStatus]},
}

var optionQuoteStreamCandidates = []streamCandidate{
	{matchHeartbeat, decodeAs[Heartbeat]},
	{hasKey("Legs"), decodeAs[Spread]},
	{hasKey("Error"), decodeAs[StreamErrorResponse]},
	{matchStreamStatus, decodeAs[StreamStatus]},
}

var marketDepthQuoteStreamCandidates = []streamCandidate{
	{matchHeartbeat, decodeAs[Heartbeat]},
	{hasKeys("Bids", "Asks"), decodeAs[MarketDepthQuote]},
	{hasKey("Error"), decodeAs[StreamErrorResponse]},
	{matchStreamStatus, decodeAs[StreamStatus]},
}

var marketDepthAggregateStreamCandidates = []streamCandidate{
	{matchHeartbeat, decodeAs[Heartbeat]},
	{hasKeys("Bids", "Asks"), decodeAs[MarketDepthAggregate]},
	{hasKey("Error"), decodeAs[StreamErrorResponse]},
	{matchStreamStatus, decodeAs[StreamStatus]},
}
