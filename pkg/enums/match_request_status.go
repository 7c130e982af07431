package enums

import "fmt"

// MatchRequestStatus tracks the lifecycle of a mentee's request to a mentor.
type MatchRequestStatus string

const (
	MatchRequestStatusPending   MatchRequestStatus = "pending"
	MatchRequestStatusAccepted  MatchRequestStatus = "accepted"
	MatchRequestStatusRejected  MatchRequestStatus = "rejected"
	MatchRequestStatusCancelled MatchRequestStatus = "cancelled"
)

var validMatchRequestStatuses = []MatchRequestStatus{
	MatchRequestStatusPending,
	MatchRequestStatusAccepted,
	MatchRequestStatusRejected,
	MatchRequestStatusCancelled,
}

// String implements fmt.Stringer.
func (s MatchRequestStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known MatchRequestStatus.
func (s MatchRequestStatus) IsValid() bool {
	for _, candidate := range validMatchRequestStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition may leave the status.
func (s MatchRequestStatus) IsTerminal() bool {
	return s == MatchRequestStatusAccepted ||
		s == MatchRequestStatusRejected ||
		s == MatchRequestStatusCancelled
}

// IsActive reports whether the status counts toward the one-active-request-per-pair rule.
func (s MatchRequestStatus) IsActive() bool {
	return s == MatchRequestStatusPending || s == MatchRequestStatusAccepted
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s MatchRequestStatus) CanTransitionTo(next MatchRequestStatus) bool {
	if s != MatchRequestStatusPending {
		return false
	}
	return next == MatchRequestStatusAccepted ||
		next == MatchRequestStatusRejected ||
		next == MatchRequestStatusCancelled
}

// ParseMatchRequestStatus converts raw input into a MatchRequestStatus.
func ParseMatchRequestStatus(value string) (MatchRequestStatus, error) {
	for _, candidate := range validMatchRequestStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid match request status %q", value)
}
