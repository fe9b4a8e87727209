package tradestation

import (
	"errors"
	"testing"
)

func TestResolveLineQuoteStream(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want any
	}{
		{"heartbeat", `{"Heartbeat":1,"Timestamp":"2024-01-02T03:04:05Z"}`, &Heartbeat{}},
		{"full quote", `{"Symbol":"MSFT","Last":"330.10","Ask":"330.12","Bid":"330.09"}`, &QuoteStream{}},
		{"partial update", `{"Symbol":"MSFT","Last":"330.11"}`, &QuoteStream{}},
		{"per-symbol error", `{"Symbol":"BOGUS","Error":"InvalidSymbol"}`, &QuoteStream{}},
		{"stream error", `{"Error":"TooManyStreams","Message":"limit reached"}`, &StreamErrorResponse{}},
		{"status", `{"StreamStatus":"GoAway"}`, &StreamStatus{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := resolveLine([]byte(tt.line), quoteStreamCandidates)
			if err != nil {
				t.Fatalf("resolveLine: %v", err)
			}
			if wantType, gotType := typeName(tt.want), typeName(got); wantType != gotType {
				t.Errorf("resolved %s, want %s", gotType, wantType)
			}
		})
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *Heartbeat:
		return "Heartbeat"
	case *QuoteStream:
		return "QuoteStream"
	case *StreamErrorResponse:
		return "StreamErrorResponse"
	case *StreamStatus:
		return "StreamStatus"
	case *Bar:
		return "Bar"
	case *Order:
		return "Order"
	case *Position:
		return "Position"
	case *StreamOrderErrorResponse:
		return "StreamOrderErrorResponse"
	case *StreamPositionsErrorResponse:
		return "StreamPositionsErrorResponse"
	default:
		return "unknown"
	}
}

func TestResolveLineCandidateOrder(t *testing.T) {
	t.Parallel()

	// A line matching several probes must resolve to the first candidate
	// in table order, every time.
	line := []byte(`{"Heartbeat":1,"Timestamp":"2024-01-02T03:04:05Z","Symbol":"MSFT","StreamStatus":"EndSnapshot"}`)
	for i := 0; i < 50; i++ {
		got, err := resolveLine(line, quoteStreamCandidates)
		if err != nil {
			t.Fatalf("resolveLine: %v", err)
		}
		if _, ok := got.(*Heartbeat); !ok {
			t.Fatalf("iteration %d resolved %T, want *Heartbeat", i, got)
		}
	}
}

func TestResolveLineOrderStreamErrorBeforePayload(t *testing.T) {
	t.Parallel()

	// Order-stream errors also carry identifying fields; the error probe
	// must win over the payload probe.
	line := []byte(`{"Error":"Forbidden","Message":"no access","AccountID":"123","OrderID":"456"}`)
	got, err := resolveLine(line, orderStreamCandidates)
	if err != nil {
		t.Fatalf("resolveLine: %v", err)
	}
	if _, ok := got.(*StreamOrderErrorResponse); !ok {
		t.Errorf("resolved %T, want *StreamOrderErrorResponse", got)
	}

	order, err := resolveLine([]byte(`{"OrderID":"456","Status":"FLL"}`), orderStreamCandidates)
	if err != nil {
		t.Fatalf("resolveLine: %v", err)
	}
	if o, ok := order.(*Order); !ok || o.Status != OrderStatusFilled {
		t.Errorf("resolved %T (%+v), want *Order with status FLL", order, order)
	}
}

func TestResolveLineBarStream(t *testing.T) {
	t.Parallel()

	line := []byte(`{"Close":187.5,"High":188.1,"Low":187.2,"Open":187.9,"TimeStamp":"2024-01-02T15:30:00Z","TotalVolume":120000,"BarStatus":"Closed"}`)
	got, err := resolveLine(line, barStreamCandidates)
	if err != nil {
		t.Fatalf("resolveLine: %v", err)
	}
	bar, ok := got.(*Bar)
	if !ok {
		t.Fatalf("resolved %T, want *Bar", got)
	}
	if bar.Close != 187.5 || bar.BarStatus != "Closed" {
		t.Errorf("bar = %+v", bar)
	}
}

func TestResolveLinePositionStream(t *testing.T) {
	t.Parallel()

	deleted, err := resolveLine([]byte(`{"PositionID":"P1","Deleted":true}`), positionStreamCandidates)
	if err != nil {
		t.Fatalf("resolveLine: %v", err)
	}
	pos, ok := deleted.(*Position)
	if !ok || !pos.Deleted {
		t.Errorf("resolved %T (%+v), want deleted *Position", deleted, deleted)
	}
}

func TestResolveLineNoCandidate(t *testing.T) {
	t.Parallel()

	if _, err := resolveLine([]byte(`{"Mystery":1}`), quoteStreamCandidates); !errors.Is(err, errNoCandidate) {
		t.Errorf("error = %v, want errNoCandidate", err)
	}
}

func TestResolveLineRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, line := range []string{`{"Symbol":`, `[1,2,3]`, `"just a string"`} {
		if _, err := resolveLine([]byte(line), quoteStreamCandidates); err == nil {
			t.Errorf("resolveLine(%q) succeeded, want error", line)
		}
	}
}
