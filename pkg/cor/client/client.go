package client

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ib-77/cor3/pkg/cor"
)

// DefaultFoods is the request sequence of the demo.
var DefaultFoods = []string{"Nut", "Banana", "Cup of coffee"}

var (
	// ErrFault wraps any panic raised while a chain handled a request.
	ErrFault = errors.New("request processing failed")
	// ErrNoHandler is returned by Serve when there is no node to start from.
	ErrNoHandler = errors.New("no handler to serve requests")
)

type Option func(*Client)

// WithLogger sets the logger used for run and fault diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client runs request sequences through a chain.
type Client struct {
	logger *zap.Logger
}

func New(opts ...Option) *Client {
	c := &Client{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Serve hands every request to head in order and returns one Outcome per
// request. head may be any node of a chain; only it and its successors are
// consulted. A panic inside the chain is recovered into a fault outcome and
// the run goes on with the next request. Once ctx is done the remaining
// requests are returned as cancelled without being run.
func (c *Client) Serve(ctx context.Context, head cor.Handler, requests []string) ([]Outcome, error) {
	if cor.IsNil(head) {
		return nil, ErrNoHandler
	}

	chain := cor.Describe(head, " > ")
	c.logger.Debug("serving requests",
		zap.String("chain", chain),
		zap.Int("requests", len(requests)),
	)

	outcomes := make([]Outcome, 0, len(requests))
	handled, faults := 0, 0
	for i, request := range requests {
		if err := ctx.Err(); err != nil {
			c.logger.Warn("run cancelled",
				zap.String("chain", chain),
				zap.Int("remaining", len(requests)-i),
				zap.Error(err),
			)
			for _, rest := range requests[i:] {
				outcomes = append(outcomes, Cancel(rest, err))
			}
			return outcomes, nil
		}

		out := c.handle(head, request)
		switch {
		case out.IsHandled():
			handled++
		case out.IsFault():
			faults++
		}
		outcomes = append(outcomes, out)
	}

	c.logger.Debug("requests served",
		zap.String("chain", chain),
		zap.Int("handled", handled),
		zap.Int("untouched", len(requests)-handled-faults),
		zap.Int("faults", faults),
	)
	return outcomes, nil
}

func (c *Client) handle(head cor.Handler, request string) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err := panicError(r)
			c.logger.Error("request processing failed",
				zap.String("request", request),
				zap.Error(err),
			)
			out = Fault(request, err)
		}
	}()

	message := head.Handle(request)
	if message == cor.Unhandled {
		c.logger.Debug("request untouched", zap.String("request", request))
		return Untouched(request)
	}
	c.logger.Debug("request handled",
		zap.String("request", request),
		zap.String("message", message),
	)
	return Handled(request, message)
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrFault, err)
	}
	return fmt.Errorf("%w: %v", ErrFault, r)
}
