// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"context"
	"errors"
	"net/http"

	"github.com/gogama/chainx"
	"github.com/gogama/chainx/transient"
)

// A Verdict classifies the outcome of one request attempt as worth
// retrying or not.
type Verdict int

const (
	// Permanent indicates an unresolvable outcome: retrying will not
	// change it. The retry middleware returns the outcome to the
	// caller unchanged.
	Permanent Verdict = iota
	// Transient indicates the failure may resolve on its own, so the
	// attempt may be retried.
	Transient
)

// String returns the name of the verdict.
func (v Verdict) String() string {
	switch v {
	case Permanent:
		return "Permanent"
	case Transient:
		return "Transient"
	default:
		return "Verdict(unknown)"
	}
}

// A Classifier maps the outcome of a request attempt, a response or an
// error, exactly one of which is non-nil, to a Verdict.
//
// Implementations of Classifier must be safe for concurrent use by
// multiple goroutines.
type Classifier interface {
	Classify(resp *http.Response, err error) Verdict
}

// The ClassifierFunc type is an adapter to allow the use of ordinary
// functions as classifiers.
type ClassifierFunc func(resp *http.Response, err error) Verdict

// Classify calls f(resp, err).
func (f ClassifierFunc) Classify(resp *http.Response, err error) Verdict {
	return f(resp, err)
}

// DefaultClassifier reproduces the stock classification rules:
//
// • transport-level failures (any *chainx.TransportError, or any error
// the transient package categorizes as transient) are Transient,
// except attempts cut short because the caller cancelled the request;
//
// • HTTP status 429 and statuses 500 through 599 are Transient;
//
// • every other status, and every error raised by middleware business
// logic, is Permanent.
var DefaultClassifier Classifier = ClassifierFunc(defaultClassify)

func defaultClassify(resp *http.Response, err error) Verdict {
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return Permanent
		}
		var te *chainx.TransportError
		if errors.As(err, &te) {
			return Transient
		}
		if transient.Is(err) {
			return Transient
		}
		return Permanent
	}
	if resp == nil {
		return Permanent
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return Transient
	}
	if resp.StatusCode >= 500 && resp.StatusCode <= 599 {
		return Transient
	}
	return Permanent
}
