package helpers

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID("BUS")
	if !strings.HasPrefix(id, "BUS-") {
		t.Errorf("id = %q, want BUS- prefix", id)
	}
	if len(id) <= len("BUS-") {
		t.Errorf("id = %q, missing timestamp part", id)
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("2h", time.Hour); got != 2*time.Hour {
		t.Errorf("ParseDuration(2h) = %v, want 2h", got)
	}
	if got := ParseDuration("not-a-duration", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration fallback = %v, want 1h", got)
	}
	if got := ParseDuration("", 30*time.Minute); got != 30*time.Minute {
		t.Errorf("ParseDuration empty = %v, want 30m", got)
	}
}

func TestDateString(t *testing.T) {
	ts := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	if got := DateString(ts); got != "2024-03-01" {
		t.Errorf("DateString = %q, want 2024-03-01", got)
	}
}
