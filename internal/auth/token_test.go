package auth

import (
	"testing"
	"time"
)

func TestStoreFreshness(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresIn int
		margin    time.Duration
		at        time.Duration
		want      bool
	}{
		{"well before margin", 1200, 60 * time.Second, 0, true},
		{"just inside margin", 1200, 60 * time.Second, 1139 * time.Second, true},
		{"exactly at margin boundary", 1200, 60 * time.Second, 1140 * time.Second, false},
		{"past margin", 1200, 60 * time.Second, 1141 * time.Second, false},
		{"past expiry", 1200, 60 * time.Second, 1300 * time.Second, false},
		{"short-lived token already stale", 30, 60 * time.Second, 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewStore(tt.margin)
			s.Record("T1", "R1", tt.expiresIn, base)
			if got := s.IsFresh(base.Add(tt.at)); got != tt.want {
				t.Errorf("IsFresh(+%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestStoreEmptyNeverFresh(t *testing.T) {
	t.Parallel()

	s := NewStore(DefaultRefreshMargin)
	if s.IsFresh(time.Now()) {
		t.Error("empty store reported a fresh token")
	}
}

func TestStoreRecordRetainsRefreshToken(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewStore(DefaultRefreshMargin)

	s.Record("T1", "R1", 1200, base)
	s.Record("T2", "", 1200, base.Add(time.Minute))

	tok := s.Current()
	if tok.AccessToken != "T2" {
		t.Errorf("AccessToken = %q, want %q", tok.AccessToken, "T2")
	}
	if tok.RefreshToken != "R1" {
		t.Errorf("RefreshToken = %q, want retained %q", tok.RefreshToken, "R1")
	}

	s.Record("T3", "R2", 1200, base.Add(2*time.Minute))
	if got := s.Current().RefreshToken; got != "R2" {
		t.Errorf("RefreshToken = %q, want replaced %q", got, "R2")
	}
}

func TestStoreDefaultExpiresIn(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewStore(60 * time.Second)
	s.Record("T1", "R1", 0, base)

	want := base.Add(DefaultExpiresIn * time.Second)
	if got := s.Current().Expiry; !got.Equal(want) {
		t.Errorf("Expiry = %v, want %v", got, want)
	}
	if !s.IsFresh(base.Add(1139 * time.Second)) {
		t.Error("token with defaulted expiry should be fresh inside the margin")
	}
}
