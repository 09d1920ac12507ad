// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// DefaultRetries is the number of retries DefaultPolicy allows after
// the initial attempt.
const DefaultRetries = 5

// DefaultPolicy is a general-purpose retry policy suitable for common
// use cases: up to DefaultRetries retries with a jittered exponential
// backoff between a 50 millisecond base and a 1 second ceiling.
var DefaultPolicy = NewPolicy(DefaultRetries, 50*time.Millisecond, 1*time.Second, time.Now())

// Never is a policy that never retries. Use it to run the rest of the
// retry middleware's machinery, such as attempt tracking, without ever
// making a second attempt.
var Never = NewPolicy(0, 0, 0, nil)

// A Policy is the pure decision engine behind the retry middleware. It
// performs no I/O and holds no per-request state, so a single Policy
// may serve any number of concurrent logical requests.
//
// The backoff before retry number n (zero-based) is
//
//	ceil := min(max, base * 2**n)
//
// returned as-is when jitter is disabled, or sampled uniformly from
// [0, ceil) when full jitter is enabled (the "Full Jitter" approach
// described in
// https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter).
//
// Construct a Policy with NewPolicy.
type Policy struct {
	maxRetries int
	base       time.Duration
	max        time.Duration
	rand       *rand.Rand
	lock       sync.Mutex
}

// NewPolicy constructs a retry Policy.
//
// Parameter maxRetries is the number of retries allowed after the
// initial attempt; zero means the first outcome is always terminal.
// Parameters base and max bound the exponential backoff computation;
// base may be zero, meaning an immediate retry when jitter is
// disabled, and max must be at least base.
//
// Parameter jitter selects and seeds the full-jitter sampling. Pass
// nil for no jitter, so that NextDelay returns the exponential ceiling
// exactly. Otherwise pass a seed as a time.Time, int, or int64, or
// supply the random source directly as a rand.Source or *rand.Rand.
// The jitter source is the only non-deterministic input to a Policy:
// with a fixed seed, NextDelay is fully reproducible.
//
// NewPolicy panics if maxRetries or base is negative, if max is less
// than base, or if jitter has an unsupported type.
func NewPolicy(maxRetries int, base, max time.Duration, jitter interface{}) *Policy {
	if maxRetries < 0 {
		panic("chainx/retry: maxRetries must not be negative")
	}
	if base < 0 {
		panic("chainx/retry: base must not be negative")
	}
	if max < base {
		panic("chainx/retry: max must be at least base")
	}
	return &Policy{
		maxRetries: maxRetries,
		base:       base,
		max:        max,
		rand:       jitterToRand(jitter),
	}
}

// MaxRetries returns the number of retries the policy allows after the
// initial attempt.
func (p *Policy) MaxRetries() int {
	return p.maxRetries
}

// NextDelay computes the backoff to apply after the attempt with the
// given zero-based index. The second return value is false when the
// policy is exhausted, i.e. when attempt is at least the configured
// number of retries, in which case no further attempt may be made.
//
// NextDelay is safe for concurrent use by multiple goroutines.
func (p *Policy) NextDelay(attempt int) (time.Duration, bool) {
	if attempt >= p.maxRetries {
		return 0, false
	}

	exp := int64(1) << uint(attempt)
	if exp < 1 {
		exp = math.MaxInt64
	}

	ceil := int64(p.base) * exp
	if ceil < int64(p.base) || ceil > int64(p.max) {
		ceil = int64(p.max)
	}

	d := ceil
	if p.rand != nil && ceil > 0 {
		p.lock.Lock()
		d = p.rand.Int63n(ceil)
		p.lock.Unlock()
	}

	return time.Duration(d), true
}

func jitterToRand(jitter interface{}) *rand.Rand {
	var s rand.Source
	switch j := jitter.(type) {
	case nil:
		return nil
	case time.Time:
		s = rand.NewSource(j.UnixNano())
	case int:
		s = rand.NewSource(int64(j))
	case int64:
		s = rand.NewSource(j)
	case *rand.Rand:
		if j == nil {
			panic("chainx/retry: jitter may not be a typed nil")
		}
		return j
	case rand.Source:
		if j == nil {
			return nil
		}
		s = j
	default:
		panic("chainx/retry: invalid jitter type")
	}
	return rand.New(s)
}
