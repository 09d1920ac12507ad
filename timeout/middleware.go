// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"context"
	"io"
	"net/http"

	"github.com/gogama/chainx"
	"github.com/gogama/chainx/retry"
)

// Middleware applies the configured timeout Policy to every request
// attempt flowing through the chain. Its zero value is a valid
// middleware using DefaultPolicy.
//
// Register it after the retry middleware so that each retry attempt
// gets a fresh deadline; registered before it, the timeout covers the
// whole logical request, backoff sleeps included. The attempt index is
// read from the Extensions bag, so outside a retry loop every request
// is treated as attempt zero.
type Middleware struct {
	// Policy supplies the per-attempt timeout.
	//
	// If Policy is nil, DefaultPolicy is used.
	Policy Policy
}

// Handle derives a deadline-bound context for the current attempt and
// runs the rest of the chain under it.
func (m *Middleware) Handle(req *http.Request, ext *chainx.Extensions, next *chainx.Next) (*http.Response, error) {
	policy := m.Policy
	if policy == nil {
		policy = DefaultPolicy
	}
	attempt, _ := retry.Attempt(ext)
	ctx, cancel := context.WithTimeout(req.Context(), policy.Timeout(attempt))
	resp, err := next.Run(req.WithContext(ctx), ext)
	if err != nil {
		cancel()
		return nil, err
	}
	// The caller still has to read the response body; cancelling now
	// would cut the read short. Tie the cancel to body close instead.
	resp.Body = &cancelBody{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	b.cancel()
	return b.ReadCloser.Close()
}
