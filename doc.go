// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package chainx provides an extensible middleware chain for outbound HTTP
requests: independently authored middleware observe, transform,
short-circuit, or retry requests without touching the underlying
transport.

Build a Chain around a Transport (usually an http.Client) and register
middleware in the order they should wrap the request. The first
middleware registered is outermost: it sees the request before all
others and the response after all others.

	chain := chainx.NewBuilder(http.DefaultClient).
		Use(&logging.Middleware{Logger: logger}).
		Use(&retry.Middleware{Policy: retry.NewPolicy(3, 100*time.Millisecond, 2*time.Second, time.Now())}).
		Build()

	req, _ := http.NewRequest("GET", "https://www.example.com", nil)
	resp, err := chain.Do(req)

For simple requests the chain offers the familiar verb methods:

	resp, err := chain.Get(ctx, "https://www.example.com")
	...
	resp, err := chain.Post(ctx, "https://www.example.com/upload",
		"application/json", &buf)
	...
	resp, err := chain.PostForm(ctx, "http://example.com/form",
		url.Values{"key": {"Value"}, "id": {"123"}})

A middleware implements a single method, Handle, and proceeds down the
chain by running the Next continuation it is given:

	type Stamp struct{}

	func (Stamp) Handle(req *http.Request, ext *chainx.Extensions, next *chainx.Next) (*http.Response, error) {
		req.Header.Set("X-Stamp", "on")
		return next.Run(req, ext)
	}

Each Next is single-use. A middleware that re-invokes the tail of the
chain, like the retry middleware in package retry, takes a fresh
continuation from Next.Clone for every attempt. Running a continuation
twice yields a *ContractViolationError.

The Extensions bag created for each logical request carries values such
as the current attempt index and trace identifiers across middleware
and across retry attempts. Sub-packages supply ready-made middleware:
retry (attempt loop with exponential backoff), timeout (per-attempt
deadlines), tracing (OpenTelemetry spans and request IDs), and logging
(structured request logs). Package transient categorizes low-level
network errors for retry classification.
*/
package chainx
