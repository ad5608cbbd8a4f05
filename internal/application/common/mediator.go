package common

import (
	"context"
	"fmt"
	"reflect"
)

// Request is an intent: a named user action with arguments. Intents are
// the only way to mutate order or navigation state.
type Request interface{}

// Response is the result of handling an intent.
type Response interface{}

// RequestHandler handles one intent type.
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// Mediator dispatches intents to their registered handlers. Dispatch is
// synchronous: an intent is handled to completion before Send returns,
// so no overlapping mutation is ever observable.
type Mediator interface {
	Send(ctx context.Context, request Request) (Response, error)
	Register(requestType reflect.Type, handler RequestHandler) error
}

type mediator struct {
	handlers map[reflect.Type]RequestHandler
}

// NewMediator creates an empty mediator.
func NewMediator() Mediator {
	return &mediator{
		handlers: make(map[reflect.Type]RequestHandler),
	}
}

func (m *mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	if requestType == nil {
		return fmt.Errorf("request type cannot be nil")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}
	if _, exists := m.handlers[requestType]; exists {
		return fmt.Errorf("handler already registered for type %s", requestType)
	}
	m.handlers[requestType] = handler
	return nil
}

func (m *mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	requestType := reflect.TypeOf(request)
	handler, ok := m.handlers[requestType]
	if !ok {
		return nil, fmt.Errorf("no handler registered for type %s", requestType)
	}

	return handler.Handle(ctx, request)
}

// RegisterHandler registers a handler with the request type inferred from T.
func RegisterHandler[T Request](m Mediator, handler RequestHandler) error {
	var zero T
	return m.Register(reflect.TypeOf(zero), handler)
}
