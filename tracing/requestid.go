// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tracing

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/gogama/chainx"
)

// HeaderXRequestID is the standard header name for request ID
// propagation.
const HeaderXRequestID = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFrom returns the request ID the RequestID middleware
// assigned to this logical request. The second return value is false
// if no RequestID middleware has run.
func RequestIDFrom(ext *chainx.Extensions) (string, bool) {
	id, ok := ext.Value(requestIDKey{}).(string)
	return id, ok
}

// RequestID stamps every outgoing request with a correlation ID
// header, generating a fresh UUID when the caller did not supply one,
// and publishes the ID in the Extensions bag for other middleware to
// pick up (the logging middleware, for example, attaches it to every
// event). Its zero value is a valid middleware using HeaderXRequestID
// and UUID generation.
//
// Because the ID is set on the request itself, it survives retries:
// every attempt of a logical request carries the same ID.
type RequestID struct {
	// Header is the header name to stamp.
	//
	// If Header is empty, HeaderXRequestID is used.
	Header string
	// NewID generates an ID when the request does not already carry
	// one.
	//
	// If NewID is nil, uuid.NewString is used.
	NewID func() string
}

// Handle ensures the request carries a correlation ID, then runs the
// rest of the chain.
func (m *RequestID) Handle(req *http.Request, ext *chainx.Extensions, next *chainx.Next) (*http.Response, error) {
	header := m.Header
	if header == "" {
		header = HeaderXRequestID
	}
	id := req.Header.Get(header)
	if id == "" {
		if m.NewID != nil {
			id = m.NewID()
		} else {
			id = uuid.NewString()
		}
		req.Header.Set(header, id)
	}
	ext.Set(requestIDKey{}, id)
	return next.Run(req, ext)
}
