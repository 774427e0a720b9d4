package api

import "fmt"

// Kind classifies an API failure.
type Kind int

const (
	// KindNetwork means no response was received.
	KindNetwork Kind = iota
	// KindResponse means the server answered with a non-2xx status or an
	// unreadable body.
	KindResponse
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "NETWORK"
	case KindResponse:
		return "RESPONSE"
	default:
		return "UNKNOWN"
	}
}

// Error is the uniform failure returned by Client.
type Error struct {
	Kind   Kind
	Status int
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Kind == KindResponse && e.Status != 0 {
		return fmt.Sprintf("api %s error: status %d: %s", e.Kind, e.Status, e.Detail)
	}
	return fmt.Sprintf("api %s error: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }
