package orders

import (
	"context"
	"strings"
)

// Statuses carried on order events. "deleted" is an older producer's
// spelling of canceled and maps to the same action.
const (
	statusCreated   = "created"
	statusCanceled  = "canceled"
	statusDeleted   = "deleted"
	statusCompleted = "completed"
)

type actionFunc func(context.Context, Event) error

// actionFactory resolves an order event status to the action handling it.
type actionFactory map[string]actionFunc

func newActionFactory(onCreated, onCanceled, onCompleted actionFunc) actionFactory {
	return actionFactory{
		statusCreated:   onCreated,
		statusCanceled:  onCanceled,
		statusDeleted:   onCanceled,
		statusCompleted: onCompleted,
	}
}

func (f actionFactory) get(status string) (actionFunc, bool) {
	fn, ok := f[strings.ToLower(strings.TrimSpace(status))]
	return fn, ok
}
