package util

import (
	"context"

	"github.com/looplab/fsm"
)

// WrapEvent adapts an error-returning state machine callback to the
// signature looplab/fsm expects, surfacing the error on the event.
func WrapEvent(fn func(ctx context.Context, event *fsm.Event) error) fsm.Callback {
	return func(ctx context.Context, event *fsm.Event) {
		if err := fn(ctx, event); err != nil {
			event.Err = err
		}
	}
}
