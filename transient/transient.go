// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"errors"
	"syscall"
)

// A Category is the transience category of an error, as reported by
// Categorize.
//
// Not means a retry after the error is very unlikely to succeed. Every
// other category means the failure may resolve on its own, so a retry
// has some prospect of success.
type Category int

const (
	// Not indicates any non-transient error.
	Not Category = iota
	// Timeout indicates a client-side timeout: the server may be going
	// through a temporary period of slowness, or a future attempt with
	// a longer deadline may succeed.
	//
	// Categorize returns Timeout if the error, or any error in its
	// wrapped cause chain, has a Timeout() bool method reporting true.
	// Both net.Error values and context.DeadlineExceeded satisfy this.
	Timeout
	// ConnRefused indicates the remote host refused the connection
	// (POSIX ECONNREFUSED). Refusal often means the remote service is
	// mid-restart and not yet listening on its port, which clears up on
	// its own, so it is treated as transient.
	ConnRefused
	// ConnReset indicates the remote host sent an RST on an active TCP
	// connection (POSIX ECONNRESET). Resets are common when a service
	// instance is withdrawn mid-response or when a load balancer churns
	// its backends, and a retry usually lands on a healthy peer.
	ConnReset
)

// Categorize reports the transience category of err. A nil error, and
// any error that is not transient from the perspective of completing
// an HTTP request attempt, produce Not.
//
// Categorize inspects the whole wrapped cause chain of err, not just
// err itself. It deliberately ignores the legacy Temporary() method,
// whose semantics are too loose to base a retry decision on.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var t hasTimeout
	if errors.As(err, &t) && t.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET:
			return ConnReset
		case syscall.ECONNREFUSED:
			return ConnRefused
		}
	}

	return Not
}

// Is reports whether err is transient, i.e. whether Categorize returns
// any category other than Not.
func Is(err error) bool {
	return Categorize(err) != Not
}

type hasTimeout interface {
	Timeout() bool
}
