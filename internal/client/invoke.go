package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lsportsltd/trade360-go-sdk/internal/dispatcher"
)

// invoke is the single path every facade method takes: send the wire
// request through the dispatcher, then map the wire body to the public
// response. action names the operation in wrapped errors.
func invoke[Wire, Out any](
	ctx context.Context,
	d *dispatcher.Dispatcher,
	method, endpoint string,
	request any,
	mapOut func(Wire) *Out,
	action string,
) (*Out, error) {
	var (
		body Wire
		err  error
	)

	switch method {
	case http.MethodGet:
		body, err = dispatcher.Get[Wire](ctx, d, endpoint, request)
	default:
		body, err = dispatcher.Post[Wire](ctx, d, endpoint, request)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return mapOut(body), nil
}

// valueOrZero lets optional filter requests be passed as nil.
func valueOrZero[T any](p *T) T {
	if p == nil {
		var zero T

		return zero
	}

	return *p
}
