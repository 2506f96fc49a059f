package client

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Outcome struct {
	id        uuid.UUID
	createdAt time.Time
	request   string
	message   string
	err       error
	isHandled bool
	isCancel  bool
}

func Handled(request, message string) Outcome {
	return Outcome{
		request:   request,
		message:   message,
		isHandled: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Untouched(request string) Outcome {
	return Outcome{
		request:   request,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fault records a request whose handling panicked. A nil err becomes ErrFault.
func Fault(request string, err error) Outcome {
	if err == nil {
		err = ErrFault
	}
	return Outcome{
		request:   request,
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Cancel records a request that was never run. A nil err becomes
// context.Canceled.
func Cancel(request string, err error) Outcome {
	if err == nil {
		err = context.Canceled
	}
	return Outcome{
		request:   request,
		err:       err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (o Outcome) Request() string {
	return o.request
}

// Message is the handler's message, empty unless IsHandled.
func (o Outcome) Message() string {
	return o.message
}

func (o Outcome) Err() error {
	return o.err
}

func (o Outcome) IsHandled() bool {
	return o.isHandled
}

// IsUntouched reports a normal run where no handler took the request.
func (o Outcome) IsUntouched() bool {
	return !o.isHandled && !o.isCancel && o.err == nil
}

func (o Outcome) IsFault() bool {
	return o.err != nil && !o.isCancel
}

func (o Outcome) IsCancel() bool {
	return o.isCancel
}

func (o Outcome) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome) Id() uuid.UUID {
	return o.id
}
