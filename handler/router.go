package handler

import (
	"context"

	"go-padplay/midi"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// Router binds exactly one handler to one output
type Router struct {
	handler Handler
	out     midi.Output
	seen    func(gomidi.Message)
}

// NewRouter creates a router. A nil out discards lighting frames.
func NewRouter(h Handler, out midi.Output) *Router {
	if out == nil {
		out = midi.Discard
	}
	return &Router{handler: h, out: out}
}

// OnMessage registers a callback run after each message has been handled
func (r *Router) OnMessage(fn func(gomidi.Message)) {
	r.seen = fn
}

// Handler returns the bound handler
func (r *Router) Handler() Handler {
	return r.handler
}

// Start runs the handler's start-up lighting
func (r *Router) Start() {
	r.handler.Start(r.out)
}

// Dispatch handles one message synchronously
func (r *Router) Dispatch(msg gomidi.Message) {
	r.handler.Handle(r.out, msg)
	if r.seen != nil {
		r.seen(msg)
	}
}

// Run delivers messages one at a time, in arrival order, until ctx is done
// or msgs is closed. Blocking - run in goroutine.
func (r *Router) Run(ctx context.Context, msgs <-chan gomidi.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			r.Dispatch(msg)
		}
	}
}
