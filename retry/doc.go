// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry retries failed HTTP request attempts from inside a
// chainx middleware chain.
//
// Middleware loops over the remainder of the chain until the outcome
// is no longer worth retrying. Two pluggable pieces control the loop:
// a Classifier separates transient outcomes from permanent ones, and a
// Policy caps the attempt count and computes the exponential, optionally
// full-jittered, backoff between attempts:
//
//	policy := retry.NewPolicy(3, 100*time.Millisecond, 2*time.Second, time.Now())
//	chain := chainx.NewBuilder(nil).
//		Use(&retry.Middleware{Policy: policy}).
//		Build()
//
// Pass nil jitter to NewPolicy for deterministic backoff, or a fixed
// seed to make jittered backoff reproducible in tests. The current
// attempt index is published in the request's Extensions bag and can
// be read back with Attempt.
package retry
