// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package chainx

import (
	"net/http"
	"sync/atomic"
)

// A Middleware observes, transforms, short-circuits, or replays an
// outbound HTTP request on its way to the transport.
//
// Implementations of Middleware must be safe for concurrent use by
// multiple goroutines: one Middleware instance is shared by every
// logical request executed through the chain it is registered in.
// Per-request state belongs in the Extensions bag, never in the
// Middleware itself.
//
// Handle is given exclusive use of req for the duration of the
// invocation. It must either call next.Run exactly once, returning
// what Run returns (possibly after inspecting or replacing the
// response), or short-circuit by returning a response or error without
// calling Run. Running the same Next twice is a contract violation and
// yields a *ContractViolationError.
type Middleware interface {
	Handle(req *http.Request, ext *Extensions, next *Next) (*http.Response, error)
}

// The MiddlewareFunc type is an adapter to allow the use of ordinary
// functions as middleware. If f is a function with the appropriate
// signature, MiddlewareFunc(f) is a Middleware that calls f.
type MiddlewareFunc func(req *http.Request, ext *Extensions, next *Next) (*http.Response, error)

// Handle calls f(req, ext, next).
func (f MiddlewareFunc) Handle(req *http.Request, ext *Extensions, next *Next) (*http.Response, error) {
	return f(req, ext, next)
}

// A Next is a single-use continuation referencing the remaining
// middleware in the chain plus the terminal Transport.
//
// Run consumes the continuation. A middleware that needs to invoke the
// tail of the chain more than once, such as a retry middleware
// re-attempting a failed request, must take a fresh continuation from
// Clone before each invocation.
type Next struct {
	chain *Chain
	index int
	used  atomic.Bool
}

// Run invokes the remaining middleware and, ultimately, the chain's
// Transport, returning the response or error produced by the tail of
// the chain.
//
// Run may be called at most once per Next. A second call does not
// re-invoke the tail; it returns a *ContractViolationError, which the
// built-in retry middleware refuses to retry.
//
// Errors returned by the Transport itself are wrapped in
// *TransportError before they are handed back up the chain, so that
// middleware can tell transport failures from errors raised by other
// middleware.
func (n *Next) Run(req *http.Request, ext *Extensions) (*http.Response, error) {
	if n.used.Swap(true) {
		return nil, &ContractViolationError{
			Reason: "Next.Run called more than once for the same continuation",
		}
	}
	if n.index < len(n.chain.middleware) {
		m := n.chain.middleware[n.index]
		return m.Handle(req, ext, &Next{chain: n.chain, index: n.index + 1})
	}
	resp, err := n.chain.transport.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return resp, nil
}

// Clone returns a fresh, unused continuation over the same remaining
// middleware and Transport as n. Cloning does not consume n.
func (n *Next) Clone() *Next {
	return &Next{chain: n.chain, index: n.index}
}
