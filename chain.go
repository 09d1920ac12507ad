// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package chainx

import (
	"net/http"
)

// A Transport performs a single HTTP request/response exchange. It is
// the terminal capability a middleware chain is built around: the chain
// never opens connections or speaks HTTP itself.
//
// The Do method must follow the contract documented on the standard
// library http.Client, which is the usual Transport implementation.
// Connection pooling, TLS, redirects, and cookies all remain the
// Transport's business.
//
// A *Chain is itself a Transport, so chains compose.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// The TransportFunc type is an adapter to allow the use of ordinary
// functions as transports, chiefly useful in tests.
type TransportFunc func(req *http.Request) (*http.Response, error)

// Do calls f(req).
func (f TransportFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// A Builder assembles an ordered middleware chain around a Transport.
//
// Registration order is significant: the middleware registered first is
// outermost, seeing the request before all others and the response
// after all others. Build produces an immutable Chain; the Builder may
// be discarded afterward.
type Builder struct {
	transport  Transport
	middleware []Middleware
}

// NewBuilder returns a Builder that will close its chains with the
// given Transport. If transport is nil, http.DefaultClient is used.
func NewBuilder(transport Transport) *Builder {
	if transport == nil {
		transport = http.DefaultClient
	}
	return &Builder{transport: transport}
}

// Use appends middleware to the chain under construction, in the order
// given. Use panics if any middleware is nil.
func (b *Builder) Use(m ...Middleware) *Builder {
	for _, mw := range m {
		if mw == nil {
			panic("chainx: nil middleware")
		}
		b.middleware = append(b.middleware, mw)
	}
	return b
}

// UseFunc appends an ordinary function to the chain under construction
// as a MiddlewareFunc.
func (b *Builder) UseFunc(f MiddlewareFunc) *Builder {
	if f == nil {
		panic("chainx: nil middleware")
	}
	return b.Use(f)
}

// Build finalizes the chain. The returned Chain is immutable and safe
// for concurrent use; further Builder mutations do not affect it.
func (b *Builder) Build() *Chain {
	m := make([]Middleware, len(b.middleware))
	copy(m, b.middleware)
	return &Chain{transport: b.transport, middleware: m}
}

// A Chain is a fully composed, ordered set of middleware plus a
// terminal Transport.
//
// A Chain is stateless and reentrant: any number of logical requests
// may execute through the same Chain concurrently, each with its own
// Extensions bag. Construct a Chain with NewBuilder.
//
// Chain implements the Transport interface, so a whole chain can serve
// as the terminal Transport of another chain.
type Chain struct {
	transport  Transport
	middleware []Middleware
}

// Do drives one logical request through the chain and returns the final
// response or error.
//
// A fresh Extensions bag is created before the first middleware runs
// and is shared, mutably, by every middleware invocation and every
// retry attempt belonging to this logical request. The bag is not
// reused across logical requests.
//
// The request's context governs the whole execution: cancelling it
// aborts the in-flight attempt, and the built-in retry middleware
// additionally aborts any pending backoff sleep. Do never swallows an
// outcome; the response or error produced by the outermost middleware
// is returned verbatim.
func (c *Chain) Do(req *http.Request) (*http.Response, error) {
	if req == nil {
		panic("chainx: nil request")
	}
	next := &Next{chain: c, index: 0}
	return next.Run(req, NewExtensions())
}
