// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tracing

import (
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/gogama/chainx"
	"github.com/gogama/chainx/retry"
)

// scopeName identifies this instrumentation library to OpenTelemetry.
const scopeName = "github.com/gogama/chainx/tracing"

// Span attribute keys recorded by Middleware, following the
// OpenTelemetry HTTP semantic conventions.
const (
	HTTPRequestMethod      = attribute.Key("http.request.method")
	HTTPResponseStatusCode = attribute.Key("http.response.status_code")
	HTTPRequestResendCount = attribute.Key("http.request.resend_count")
	URLFull                = attribute.Key("url.full")
	ServerAddress          = attribute.Key("server.address")
	ServerPort             = attribute.Key("server.port")
)

// Middleware opens an OpenTelemetry client span covering one logical
// request and injects the active trace context into the outgoing
// request headers. Its zero value is a valid middleware using the
// globally registered tracer provider and propagator.
//
// Register it before the retry middleware so the span covers every
// attempt of the logical request; the final attempt index is recorded
// as http.request.resend_count when retries happened.
type Middleware struct {
	// Tracer creates the client spans.
	//
	// If Tracer is nil, the global otel.Tracer for this package's
	// instrumentation scope is used.
	Tracer trace.Tracer
	// Propagator injects the span context into the outgoing request
	// headers (W3C traceparent/tracestate under the default setup).
	//
	// If Propagator is nil, the global otel.GetTextMapPropagator is
	// used.
	Propagator propagation.TextMapPropagator
	// SpanName, when non-nil, overrides the default span name of
	// "METHOD host".
	SpanName func(req *http.Request) string
}

// Handle runs the rest of the chain inside a client span.
func (m *Middleware) Handle(req *http.Request, ext *chainx.Extensions, next *chainx.Next) (*http.Response, error) {
	tracer := m.Tracer
	if tracer == nil {
		tracer = otel.Tracer(scopeName)
	}
	propagator := m.Propagator
	if propagator == nil {
		propagator = otel.GetTextMapPropagator()
	}

	name := req.Method + " " + req.URL.Hostname()
	if m.SpanName != nil {
		name = m.SpanName(req)
	}

	attrs := []attribute.KeyValue{
		HTTPRequestMethod.String(req.Method),
		URLFull.String(req.URL.String()),
		ServerAddress.String(req.URL.Hostname()),
	}
	if port := req.URL.Port(); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			attrs = append(attrs, ServerPort.Int(n))
		}
	}

	ctx, span := tracer.Start(req.Context(), name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	req = req.WithContext(ctx)
	propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := next.Run(req, ext)

	if attempt, ok := retry.Attempt(ext); ok && attempt > 0 {
		span.SetAttributes(HTTPRequestResendCount.Int(attempt))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(HTTPResponseStatusCode.Int(resp.StatusCode))
	if resp.StatusCode >= 400 {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}
	return resp, nil
}
