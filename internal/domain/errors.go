package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a mutation or lookup references an id that is
// not in the store. Callers recover by re-querying and dropping the stale
// reference.
var ErrNotFound = errors.New("event not found")

// ErrInvalidCandidate is the sentinel matched by errors.Is for candidate
// rejections. The concrete error is an *InvalidCandidateError carrying the
// field-level reasons.
var ErrInvalidCandidate = errors.New("invalid event candidate")

// ErrInvalidTransition is returned by the dialog session when an action is
// not legal in the current state.
var ErrInvalidTransition = errors.New("invalid dialog transition")

// InvalidCandidateError reports why a candidate or patched event was
// rejected.
type InvalidCandidateError struct {
	Reasons []string
}

func (e *InvalidCandidateError) Error() string {
	return "invalid event candidate: " + strings.Join(e.Reasons, "; ")
}

// Is makes errors.Is(err, ErrInvalidCandidate) succeed.
func (e *InvalidCandidateError) Is(target error) bool {
	return target == ErrInvalidCandidate
}
