// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package logging

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/gogama/chainx"
	"github.com/gogama/chainx/retry"
	"github.com/gogama/chainx/tracing"
)

// Middleware emits a structured log event for every request attempt
// that passes through it.
//
// Position in the chain decides what gets logged: registered before
// the retry middleware it logs one event per logical request, showing
// only the final outcome; registered after it, it logs every physical
// attempt. The attempt index and the request ID, when present in the
// Extensions bag, are attached to each event.
type Middleware struct {
	// Logger receives the events. If Logger is nil, the middleware is
	// a pass-through.
	Logger *zerolog.Logger
}

// Handle logs the outcome of running the rest of the chain.
//
// Successful exchanges are logged at debug level with the status code
// and elapsed time; failures are logged at error level with the error.
// The outcome itself is returned unchanged either way.
func (m *Middleware) Handle(req *http.Request, ext *chainx.Extensions, next *chainx.Next) (*http.Response, error) {
	if m.Logger == nil {
		return next.Run(req, ext)
	}

	start := time.Now()
	resp, err := next.Run(req, ext)
	elapsed := time.Since(start)

	var evt *zerolog.Event
	if err != nil {
		evt = m.Logger.Error().Err(err)
	} else {
		evt = m.Logger.Debug().Int("status", resp.StatusCode)
	}
	evt = evt.
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Dur("elapsed", elapsed)
	if attempt, ok := retry.Attempt(ext); ok {
		evt = evt.Int("attempt", attempt)
	}
	if id, ok := tracing.RequestIDFrom(ext); ok {
		evt = evt.Str("request_id", id)
	}
	if err != nil {
		evt.Msg("request failed")
	} else {
		evt.Msg("request completed")
	}
	return resp, err
}
