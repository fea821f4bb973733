// Package middleware provides cross-cutting decorators around a command
// handler's invocation: logging, rate limiting, busy-retry backoff. It
// mirrors the teacher's HandlerFunc/Middleware/Chain shape, generalized
// from wrapping message.RPCMessage handling to wrapping the sidecar's
// CmdResponse-returning command handlers.
package middleware

import "adapter-sidecar/domain"

// HandlerFunc executes a single command, identified by its IPC method name
// and command id, and returns the outcome. The actual request fields never
// pass through here — middlewares only need method/cmdID for logging and
// throttling decisions — so callers close over the real request in the
// base HandlerFunc they hand to a Middleware chain.
type HandlerFunc func(method string, cmdID domain.CmdId) domain.CmdResponse

// Middleware decorates a HandlerFunc with cross-cutting behavior.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain composes middlewares into one, applied in registration order: the
// first middleware given is the outermost wrapper, matching the teacher's
// Chain semantics.
func Chain(middlewares ...Middleware) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}

// WrapCmd runs handler through chain, threading method and cmdID for the
// middlewares to observe. It is the adapter between a dispatcher-level
// request (which carries its own typed fields) and the method/cmdID-only
// HandlerFunc shape above.
func WrapCmd(chain Middleware, method string, cmdID domain.CmdId, handler func() domain.CmdResponse) domain.CmdResponse {
	base := func(string, domain.CmdId) domain.CmdResponse { return handler() }
	if chain == nil {
		return base(method, cmdID)
	}
	return chain(base)(method, cmdID)
}
