package rules

import (
	"testing"
	"time"

	"gatherly/invitehub/internal/model"
)

func intPtr(n int) *int { return &n }

func TestResolveStatus_NoDeadline(t *testing.T) {
	got := ResolveStatus(nil, nil, 0, time.Now())
	if !got.Open() || got.Cause != model.CauseNone {
		t.Fatalf("expected OPEN with no cause, got %+v", got)
	}
}

func TestResolveStatus_DeadlineBoundary(t *testing.T) {
	deadline := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		now       time.Time
		wantPhase model.Phase
		wantCause model.ClosureCause
	}{
		{"one ms before", deadline.Add(-time.Millisecond), model.PhaseOpen, model.CauseNone},
		{"exact instant", deadline, model.PhaseClosed, model.CauseExpired},
		{"after", deadline.Add(time.Minute), model.PhaseClosed, model.CauseExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveStatus(&deadline, nil, 0, tt.now)
			if got.Phase != tt.wantPhase || got.Cause != tt.wantCause {
				t.Fatalf("got %+v, want {%s %s}", got, tt.wantPhase, tt.wantCause)
			}
		})
	}
}

func TestResolveStatus_CapacityFull(t *testing.T) {
	deadline := time.Now().Add(time.Hour)

	got := ResolveStatus(&deadline, intPtr(2), 2, time.Now())
	if got.Phase != model.PhaseClosed || got.Cause != model.CauseFull {
		t.Fatalf("expected CLOSED/FULL, got %+v", got)
	}

	got = ResolveStatus(&deadline, intPtr(2), 1, time.Now())
	if !got.Open() {
		t.Fatalf("expected OPEN below capacity, got %+v", got)
	}

	// Unbounded capacity never closes by count.
	got = ResolveStatus(&deadline, nil, 100, time.Now())
	if !got.Open() {
		t.Fatalf("expected OPEN with nil capacity, got %+v", got)
	}
}

func TestResolveStatus_ExpiryWinsOverCapacity(t *testing.T) {
	deadline := time.Now().Add(-time.Minute)
	got := ResolveStatus(&deadline, intPtr(2), 5, time.Now())
	if got.Cause != model.CauseExpired {
		t.Fatalf("expected EXPIRED to take precedence, got %+v", got)
	}
}

func TestDecayMaybe(t *testing.T) {
	deadline := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	c := Counts{Yes: 3, No: 1, Maybe: 2}

	before := DecayMaybe(&deadline, deadline.Add(-time.Second), c)
	if before != c {
		t.Fatalf("counts changed before deadline: %+v", before)
	}

	at := DecayMaybe(&deadline, deadline, c)
	if at.Yes != 3 || at.No != 3 || at.Maybe != 0 {
		t.Fatalf("expected maybe folded into no at deadline, got %+v", at)
	}

	none := DecayMaybe(nil, deadline.Add(time.Hour), c)
	if none != c {
		t.Fatalf("counts changed with nil deadline: %+v", none)
	}
}

func TestComputeVerdict(t *testing.T) {
	tests := []struct {
		name        string
		capacityMin int
		yes         int
		want        model.Verdict
	}{
		{"quorum met", 2, 2, model.VerdictSuccess},
		{"quorum exceeded", 2, 5, model.VerdictSuccess},
		{"below quorum", 3, 2, model.VerdictFailure},
		{"invalid quorum clamps to 2", 0, 2, model.VerdictSuccess},
		{"invalid quorum clamps, one yes fails", -1, 1, model.VerdictFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeVerdict(tt.capacityMin, tt.yes); got != tt.want {
				t.Fatalf("ComputeVerdict(%d, %d) = %s, want %s", tt.capacityMin, tt.yes, got, tt.want)
			}
		})
	}
}

func TestComputeVerdict_Deterministic(t *testing.T) {
	first := ComputeVerdict(3, 2)
	for i := 0; i < 10; i++ {
		if got := ComputeVerdict(3, 2); got != first {
			t.Fatalf("verdict not deterministic: %s vs %s", got, first)
		}
	}
}
