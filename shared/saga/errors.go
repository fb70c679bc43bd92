package saga

import (
	"github.com/pkg/errors"
)

// ErrorKind classifies why a saga step did not complete
type ErrorKind string

const (
	// KindDuplicateTransaction means the participant already processed this (orderId, transactionId)
	KindDuplicateTransaction ErrorKind = "DuplicateTransaction"
	// KindMalformedPayload means required event fields are missing
	KindMalformedPayload ErrorKind = "MalformedPayload"
	// KindDomainRuleViolation means a business rule rejected the step
	KindDomainRuleViolation ErrorKind = "DomainRuleViolation"
	// KindCompensationFailure means a restore step could not complete
	KindCompensationFailure ErrorKind = "CompensationFailure"
)

var (
	ErrUnknownSource = errors.New("unknown saga source")
	ErrMisrouted     = errors.New("event status not accepted by this step")
)

// Error is a classified step failure. Its message is written verbatim into the saga history.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func DuplicateTransaction(message string) error {
	return &Error{Kind: KindDuplicateTransaction, Message: message}
}

func MalformedPayload(message string) error {
	return &Error{Kind: KindMalformedPayload, Message: message}
}

func DomainRuleViolation(message string) error {
	return &Error{Kind: KindDomainRuleViolation, Message: message}
}

func CompensationFailure(message string) error {
	return &Error{Kind: KindCompensationFailure, Message: message}
}

// KindOf returns the kind of the first classified error in err's chain, or "" when unclassified
func KindOf(err error) ErrorKind {
	var sagaErr *Error
	if errors.As(err, &sagaErr) {
		return sagaErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
