// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package tracing instruments chainx middleware chains with
// OpenTelemetry client spans and request correlation IDs.
//
// Middleware wraps each logical request in a client span, records the
// HTTP semantic convention attributes, and injects the trace context
// into the outgoing headers so downstream services can join the trace:
//
//	chain := chainx.NewBuilder(nil).
//		Use(&tracing.RequestID{}).
//		Use(&tracing.Middleware{}).
//		Use(&retry.Middleware{}).
//		Build()
//
// Registered before the retry middleware, the span covers the whole
// logical request including backoff sleeps, and the number of resends
// is recorded on the span. RequestID stamps an X-Request-ID header,
// minting a UUID when the caller did not provide one.
package tracing
