// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package chainx

import (
	"errors"

	"github.com/gogama/chainx/transient"
)

// ErrReplayUnsupported is returned when a request attempt would need to
// resend a body that cannot be replayed, typically because the caller
// supplied a single-consumption streaming body. It is returned before
// any network attempt is made, never retried, and reported to the
// caller of the chain as-is.
//
// If the body fits in memory, BufferBody makes a streaming request
// replayable.
var ErrReplayUnsupported = errors.New("chainx: request body is not replayable (streaming body?)")

// A TransportError wraps an error returned by the chain's terminal
// Transport. The sentinel Transport invocation at the end of every
// chain performs this wrapping, so middleware can distinguish
// network-level failures from errors raised by other middleware:
// transport failures are candidates for retry under the default
// classification, middleware errors are not.
type TransportError struct {
	// Err is the error returned by the Transport. It is never nil.
	Err error
}

func (e *TransportError) Error() string {
	return "chainx: transport: " + e.Err.Error()
}

// Unwrap returns the underlying Transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the underlying Transport error indicates a
// client-side timeout.
func (e *TransportError) Timeout() bool {
	return transient.Categorize(e.Err) == transient.Timeout
}

// A ContractViolationError reports incorrect use of the chain by a
// middleware, such as running the same Next continuation twice. It is
// a programmer error, not a runtime failure: it is surfaced to the
// caller immediately and is never retried.
type ContractViolationError struct {
	Reason string
}

func (e *ContractViolationError) Error() string {
	return "chainx: middleware contract violation: " + e.Reason
}

// Fatal reports whether err is one of the error kinds the chain
// forbids retrying: a *ContractViolationError or ErrReplayUnsupported.
// Custom retry middleware should consult Fatal before re-attempting a
// failed request.
func Fatal(err error) bool {
	var cv *ContractViolationError
	return errors.Is(err, ErrReplayUnsupported) || errors.As(err, &cv)
}
