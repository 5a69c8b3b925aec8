package services

import (
	"testing"
	"time"
)

func TestDigestDue(t *testing.T) {
	now := time.Date(2026, 8, 17, 10, 0, 0, 0, time.UTC)

	if !digestDue(nil, digestInterval, now) {
		t.Fatalf("expected never-sent recipient to be due")
	}

	var zero time.Time
	if !digestDue(&zero, digestInterval, now) {
		t.Fatalf("expected zero timestamp to be due")
	}

	recent := now.Add(-48 * time.Hour)
	if digestDue(&recent, digestInterval, now) {
		t.Fatalf("expected recent send to block the digest")
	}

	old := now.Add(-8 * 24 * time.Hour)
	if !digestDue(&old, digestInterval, now) {
		t.Fatalf("expected week-old send to be due again")
	}
}
