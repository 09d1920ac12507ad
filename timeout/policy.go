// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"
)

// A Policy decides the deadline to set on each request attempt within
// a logical request: the initial attempt as well as any retries.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the attempt with the given
	// zero-based index.
	Timeout(attempt int) time.Duration
}

// DefaultPolicy is the default timeout policy. It sets a fixed timeout
// of 5 seconds on each attempt.
var DefaultPolicy Policy = Fixed(5 * time.Second)

// Infinite is a built-in timeout policy which never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a timeout policy that sets the same timeout d on
// every attempt. This is the typical timeout behavior supported by
// most retrying HTTP client software.
func Fixed(d time.Duration) Policy {
	return policy([]time.Duration{d})
}

// Stepped constructs a timeout policy that varies the timeout with the
// attempt index: the initial attempt gets the first value, the first
// retry the second, and so on, with the last value repeating once the
// steps run out.
//
// Use Stepped to time out the initial attempt aggressively, curing
// one-off slow responses with a quick retry, while giving later
// attempts progressively more room so a genuinely slow remote service
// still gets answered:
//
//	p := timeout.Stepped(200*time.Millisecond, time.Second, 10*time.Second)
//
// Stepped panics if no steps are given.
func Stepped(steps ...time.Duration) Policy {
	if len(steps) == 0 {
		panic("chainx/timeout: no steps")
	}
	p := make(policy, len(steps))
	copy(p, steps)
	return p
}

type policy []time.Duration

func (p policy) Timeout(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt > len(p)-1 {
		attempt = len(p) - 1
	}
	return p[attempt]
}
