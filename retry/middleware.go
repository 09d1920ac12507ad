// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/gogama/chainx"
)

type attemptKey struct{}

// Attempt returns the zero-based index of the attempt currently being
// executed for this logical request: 0 on the initial attempt, 1 on
// the first retry, and so on. The second return value is false if no
// retry middleware has run for this request.
func Attempt(ext *chainx.Extensions) (int, bool) {
	n, ok := ext.Value(attemptKey{}).(int)
	return n, ok
}

// Middleware retries failed request attempts by re-invoking the
// remainder of the chain it is registered in. Its zero value is a
// valid middleware using DefaultPolicy and DefaultClassifier.
//
// Position in the chain matters: only middleware registered after this
// one (inner middleware) run again on each retry attempt; middleware
// registered before it run once per logical request.
//
// Before every attempt the middleware publishes the current attempt
// index in the Extensions bag, where inner middleware and the timeout
// package can read it back via Attempt.
//
// The request body is captured once on entry and replayed identically
// on every retry. Requests carrying a streaming, non-replayable body
// fail immediately with chainx.ErrReplayUnsupported, before any
// network attempt; see chainx.BufferBody for a workaround when the
// body fits in memory.
//
// The middleware knows nothing about HTTP method semantics. Retrying a
// non-idempotent request yields at-least-once delivery; it is the
// integrator's responsibility to keep this middleware off such flows
// unless that is acceptable.
type Middleware struct {
	// Policy decides whether to retry after a transient outcome and
	// how long to sleep first.
	//
	// If Policy is nil, DefaultPolicy is used.
	Policy *Policy
	// Classifier separates transient outcomes from permanent ones.
	//
	// If Classifier is nil, DefaultClassifier is used.
	Classifier Classifier
	// Logger, when non-nil, receives a warn-level event for every
	// retry, carrying the attempt index, backoff duration, method, and
	// URL.
	//
	// If Logger is nil, the middleware is silent.
	Logger *zerolog.Logger
}

// Handle drives the attempt loop for one logical request.
//
// The final outcome, response or error, is returned to the outer chain
// verbatim: the middleware never fabricates a response. Contract
// violations and replay failures are surfaced immediately and never
// retried. Cancelling the request context aborts a pending backoff
// sleep and returns the context's error without further attempts.
func (m *Middleware) Handle(req *http.Request, ext *chainx.Extensions, next *chainx.Next) (*http.Response, error) {
	policy := m.Policy
	if policy == nil {
		policy = DefaultPolicy
	}
	classifier := m.Classifier
	if classifier == nil {
		classifier = DefaultClassifier
	}

	buf := chainx.CaptureBody(req)
	if !buf.CanReplay() {
		return nil, chainx.ErrReplayUnsupported
	}

	attempt := 0
	for {
		ext.Set(attemptKey{}, attempt)
		resp, err := next.Clone().Run(req, ext)

		if err != nil && chainx.Fatal(err) {
			return nil, err
		}
		if classifier.Classify(resp, err) == Permanent {
			return resp, err
		}
		delay, ok := policy.NextDelay(attempt)
		if !ok {
			return resp, err
		}
		if req.Context().Err() != nil {
			// The logical request ended during the attempt; its
			// outcome stands.
			return resp, err
		}

		if resp != nil {
			drain(resp)
		}
		if m.Logger != nil {
			m.Logger.Warn().
				Int("attempt", attempt).
				Dur("wait", delay).
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Err(err).
				Msg("retrying request")
		}

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-req.Context().Done():
			timer.Stop()
			return nil, req.Context().Err()
		}

		if rerr := buf.Rewind(req); rerr != nil {
			return nil, rerr
		}
		attempt++
	}
}

// drain consumes and closes the body of a response that will never be
// seen by the caller, so the underlying connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
