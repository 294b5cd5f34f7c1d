package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttempts(t *testing.T) {
	r := NewRecorder()

	r.RecordProviderAttempt("espn", 120*time.Millisecond, nil)
	r.RecordProviderAttempt("espn", 80*time.Millisecond, errors.New("boom"))

	if got := r.ProviderCalls("espn"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := r.ProviderErrors("espn"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := r.Snapshot("espn").LastCallLatency; got != 80*time.Millisecond {
		t.Fatalf("expected last latency recorded, got %v", got)
	}
}

func TestRecorderTracksRefreshCycles(t *testing.T) {
	r := NewRecorder()

	r.RecordRefreshCycle("ncaab", time.Second, nil)
	r.RecordRefreshCycle("ncaab", time.Second, errors.New("upstream down"))

	if got := r.RefreshCycles("ncaab"); got != 2 {
		t.Fatalf("expected 2 cycles, got %d", got)
	}
	if got := r.RefreshFailures("ncaab"); got != 1 {
		t.Fatalf("expected 1 failure, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordProviderAttempt("espn", time.Second, nil)
	r.RecordRefreshCycle("ncaaf", time.Second, nil)
	r.RecordHTTPRequest("GET", "/api/games", 200, time.Second)
	if r.ProviderCalls("espn") != 0 || r.RefreshCycles("ncaaf") != 0 {
		t.Fatal("expected zero stats from nil recorder")
	}
}
