package client

import "time"

// RequestProvider exposes the request an outcome belongs to.
type RequestProvider interface {
	// Request returns the request as it was passed to the chain
	Request() string
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithMessage is implemented by outcomes that may carry a handler message
type WithMessage interface {
	RequestProvider
	// Message returns the handler message, empty when unhandled
	Message() string
	// IsHandled returns true if some handler took the request
	IsHandled() bool
}

// WithFault extends WithMessage with fault and cancellation details
type WithFault interface {
	WithMessage
	// Err returns the fault or cancellation cause
	Err() error
	// IsFault returns true if handling panicked
	IsFault() bool
	// IsCancel returns true if the request was never run
	IsCancel() bool
}

var _ WithFault = Outcome{}
