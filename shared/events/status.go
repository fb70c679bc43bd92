package events

import (
	"github.com/pkg/errors"
)

// ErrIllegalTransition is returned when a saga status change is not allowed
var ErrIllegalTransition = errors.New("illegal saga status transition")

// Status is the saga-wide outcome carried by every event
type Status string

const (
	// StatusSuccess means every step up to now completed normally
	StatusSuccess Status = "SUCCESS"
	// StatusRollbackPending means a step failed and compensation must run
	StatusRollbackPending Status = "ROLLBACK_PENDING"
	// StatusFail means a compensating step finished; the saga is terminated
	StatusFail Status = "FAIL"
)

// transitions lists, for each status, the statuses a participant may move it to.
// FAIL -> FAIL covers upstream compensations and the ending notifier.
var transitions = map[Status][]Status{
	StatusSuccess:         {StatusSuccess, StatusRollbackPending},
	StatusRollbackPending: {StatusFail},
	StatusFail:            {StatusFail},
}

// ParseStatus parses a status name
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", errors.Errorf("unknown saga status %q", s)
	}
	return status, nil
}

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether no participant may leave this status
func (s Status) IsTerminal() bool {
	return s == StatusFail
}

// String returns string representation
func (s Status) String() string {
	return string(s)
}

// CanTransition reports whether a participant may move the saga from one status to another
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// MarshalText implements encoding.TextMarshaler
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and rejects unknown statuses
func (s *Status) UnmarshalText(text []byte) error {
	status, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}
