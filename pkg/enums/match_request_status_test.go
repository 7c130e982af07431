package enums

import "testing"

func TestMatchRequestStatusTransitions(t *testing.T) {
	tests := []struct {
		from MatchRequestStatus
		to   MatchRequestStatus
		ok   bool
	}{
		{MatchRequestStatusPending, MatchRequestStatusAccepted, true},
		{MatchRequestStatusPending, MatchRequestStatusRejected, true},
		{MatchRequestStatusPending, MatchRequestStatusCancelled, true},
		{MatchRequestStatusPending, MatchRequestStatusPending, false},
		{MatchRequestStatusAccepted, MatchRequestStatusRejected, false},
		{MatchRequestStatusAccepted, MatchRequestStatusCancelled, false},
		{MatchRequestStatusRejected, MatchRequestStatusAccepted, false},
		{MatchRequestStatusCancelled, MatchRequestStatusPending, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.ok {
			t.Fatalf("%s -> %s: expected %v got %v", tt.from, tt.to, tt.ok, got)
		}
	}
}

func TestMatchRequestStatusClassification(t *testing.T) {
	if MatchRequestStatusPending.IsTerminal() {
		t.Fatal("pending must not be terminal")
	}
	for _, status := range []MatchRequestStatus{MatchRequestStatusAccepted, MatchRequestStatusRejected, MatchRequestStatusCancelled} {
		if !status.IsTerminal() {
			t.Fatalf("%s should be terminal", status)
		}
	}
	if !MatchRequestStatusAccepted.IsActive() || !MatchRequestStatusPending.IsActive() {
		t.Fatal("pending and accepted count as active")
	}
	if MatchRequestStatusRejected.IsActive() || MatchRequestStatusCancelled.IsActive() {
		t.Fatal("rejected and cancelled are inactive")
	}
}

func TestParseUserRole(t *testing.T) {
	role, err := ParseUserRole("mentor")
	if err != nil || role != UserRoleMentor {
		t.Fatalf("expected mentor, got %q err=%v", role, err)
	}
	if _, err := ParseUserRole("admin"); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if UserRole("Mentee").IsValid() {
		t.Fatal("roles are case-sensitive")
	}
}
