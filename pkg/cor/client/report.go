package client

import (
	"fmt"
	"io"
)

// Report prints each outcome as a question followed by an indented answer:
// the handler message, "<request> was left untouched." or the fault.
func Report(w io.Writer, outcomes []Outcome) error {
	for _, o := range outcomes {
		if _, err := fmt.Fprintf(w, "Client: Who wants a %s?\n", o.Request()); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if _, err := fmt.Fprintf(w, "  %s\n", answer(o)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

func answer(o Outcome) string {
	switch {
	case o.IsHandled():
		return o.Message()
	case o.IsCancel():
		return fmt.Sprintf("%s was never offered: %v", o.Request(), o.Err())
	case o.IsFault():
		return o.Err().Error()
	default:
		return fmt.Sprintf("%s was left untouched.", o.Request())
	}
}
