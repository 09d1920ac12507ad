// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package chainx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
)

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes connections which are sitting idle in a "keep-alive" state
// from previous requests. It does not interrupt connections currently
// in use.
type IdleCloser interface {
	CloseIdleConnections()
}

// Get issues a GET to the specified URL through the chain.
//
// To send a request with custom headers, build an *http.Request and
// use Chain.Do.
func (c *Chain) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// Head issues a HEAD to the specified URL through the chain.
func (c *Chain) Head(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// Post issues a POST to the specified URL through the chain.
//
// The body parameter may be nil for an empty body, or may be any of
// the types supported by BodyBytes, namely string, []byte, io.Reader,
// and io.ReadCloser. The body is fully buffered, so the resulting
// request is replayable by the retry middleware.
func (c *Chain) Post(ctx context.Context, url, contentType string, body interface{}) (*http.Response, error) {
	b, err := BodyBytes(body)
	if err != nil {
		return nil, err
	}
	var r io.Reader
	if b != nil {
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	return c.Do(req)
}

// PostForm issues a POST to the specified URL through the chain, with
// data's keys and values URL-encoded as the request body.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
// To set other headers, build an *http.Request and use Chain.Do.
func (c *Chain) PostForm(ctx context.Context, url string, data url.Values) (*http.Response, error) {
	return c.Post(ctx, url, "application/x-www-form-urlencoded", data.Encode())
}

// CloseIdleConnections invokes the same method on the chain's terminal
// Transport, if the Transport supports it, and otherwise does nothing.
func (c *Chain) CloseIdleConnections() {
	if ic, ok := c.transport.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

// BodyBytes converts a generic body parameter to a byte slice suitable
// for building a replayable request body.
//
// The body parameter may be nil, or it may be a string, []byte,
// io.Reader, or io.ReadCloser. Readers are read to the end and, if
// they implement io.Closer, closed. Any other type produces an error.
func BodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if cerr := x.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, err
		}
		return b, nil
	case io.Reader:
		return io.ReadAll(x)
	default:
		return nil, errors.New("chainx: invalid body type (use nil, string, []byte, io.Reader or io.ReadCloser)")
	}
}
