package metrics

import (
	"context"
	"testing"
)

func TestSetupDisabledReturnsNoopRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if handler != nil {
		t.Fatal("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected noop shutdown, got %v", err)
	}
}

func TestSetupEnabledBuildsPrometheusHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() {
		_ = shutdown(context.Background())
	}()
	if rec == nil || handler == nil {
		t.Fatal("expected recorder and handler")
	}

	// Instruments should record without panicking.
	rec.RecordProviderAttempt("espn", 0, nil)
	rec.RecordRefreshCycle("ncaab", 0, nil)
	rec.RecordHTTPRequest("GET", "/api/games", 200, 0)
}
