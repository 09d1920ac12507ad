// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package chainx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var visits []string
	tag := func(name string) MiddlewareFunc {
		return func(req *http.Request, ext *Extensions, next *Next) (*http.Response, error) {
			visits = append(visits, name+"-req")
			resp, err := next.Run(req, ext)
			visits = append(visits, name+"-resp")
			return resp, err
		}
	}
	chain := NewBuilder(TransportFunc(func(req *http.Request) (*http.Response, error) {
		visits = append(visits, "transport")
		return newResponse(http.StatusOK), nil
	})).
		UseFunc(tag("m1")).
		UseFunc(tag("m2")).
		UseFunc(tag("m3")).
		Build()

	resp, err := chain.Do(newRequest(t))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{
		"m1-req", "m2-req", "m3-req",
		"transport",
		"m3-resp", "m2-resp", "m1-resp",
	}, visits)
}

func TestChainShortCircuit(t *testing.T) {
	transportCalls := 0
	teapot := MiddlewareFunc(func(req *http.Request, ext *Extensions, next *Next) (*http.Response, error) {
		return newResponse(http.StatusTeapot), nil
	})
	chain := NewBuilder(TransportFunc(func(req *http.Request) (*http.Response, error) {
		transportCalls++
		return newResponse(http.StatusOK), nil
	})).
		Use(teapot).
		Build()

	resp, err := chain.Do(newRequest(t))

	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, 0, transportCalls, "short-circuit must not reach the transport")
}

func TestNextRunTwice(t *testing.T) {
	transportCalls := 0
	greedy := MiddlewareFunc(func(req *http.Request, ext *Extensions, next *Next) (*http.Response, error) {
		resp, err := next.Run(req, ext)
		require.NoError(t, err)
		drainAndClose(resp)
		return next.Run(req, ext)
	})
	chain := NewBuilder(TransportFunc(func(req *http.Request) (*http.Response, error) {
		transportCalls++
		return newResponse(http.StatusOK), nil
	})).
		Use(greedy).
		Build()

	resp, err := chain.Do(newRequest(t))

	assert.Nil(t, resp)
	var cv *ContractViolationError
	require.ErrorAs(t, err, &cv)
	assert.Contains(t, cv.Error(), "contract violation")
	assert.True(t, Fatal(err))
	assert.Equal(t, 1, transportCalls, "second Run must not re-invoke the tail")
}

func TestNextClone(t *testing.T) {
	transportCalls := 0
	twice := MiddlewareFunc(func(req *http.Request, ext *Extensions, next *Next) (*http.Response, error) {
		resp, err := next.Clone().Run(req, ext)
		require.NoError(t, err)
		drainAndClose(resp)
		return next.Clone().Run(req, ext)
	})
	chain := NewBuilder(TransportFunc(func(req *http.Request) (*http.Response, error) {
		transportCalls++
		return newResponse(http.StatusOK), nil
	})).
		Use(twice).
		Build()

	resp, err := chain.Do(newRequest(t))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, transportCalls)
}

func TestTransportErrorWrap(t *testing.T) {
	inner := errors.New("connection exploded")
	chain := NewBuilder(TransportFunc(func(req *http.Request) (*http.Response, error) {
		return nil, inner
	})).Build()

	resp, err := chain.Do(newRequest(t))

	assert.Nil(t, resp)
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Same(t, inner, te.Unwrap())
	assert.ErrorIs(t, err, inner)
	assert.False(t, te.Timeout())
}

func TestTransportErrorTimeout(t *testing.T) {
	chain := NewBuilder(TransportFunc(func(req *http.Request) (*http.Response, error) {
		return nil, timeoutError{}
	})).Build()

	_, err := chain.Do(newRequest(t))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, te.Timeout())
}

func TestExtensionsPerLogicalRequest(t *testing.T) {
	type countKey struct{}
	var first []any
	counter := MiddlewareFunc(func(req *http.Request, ext *Extensions, next *Next) (*http.Response, error) {
		first = append(first, ext.Value(countKey{}))
		ext.Set(countKey{}, 1)
		return next.Run(req, ext)
	})
	chain := NewBuilder(okTransport()).Use(counter).Build()

	for i := 0; i < 3; i++ {
		resp, err := chain.Do(newRequest(t))
		require.NoError(t, err)
		drainAndClose(resp)
	}

	assert.Equal(t, []any{nil, nil, nil}, first, "each logical request gets a fresh bag")
}

func TestBuilder(t *testing.T) {
	t.Run("nil transport defaults", func(t *testing.T) {
		chain := NewBuilder(nil).Build()
		assert.Equal(t, http.DefaultClient, chain.transport)
	})
	t.Run("nil middleware", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder(okTransport()).Use(nil)
		})
		assert.Panics(t, func() {
			NewBuilder(okTransport()).UseFunc(nil)
		})
	})
	t.Run("immutable after build", func(t *testing.T) {
		b := NewBuilder(okTransport())
		chain := b.Build()
		b.UseFunc(func(req *http.Request, ext *Extensions, next *Next) (*http.Response, error) {
			return next.Run(req, ext)
		})
		assert.Len(t, chain.middleware, 0)
		assert.Len(t, b.Build().middleware, 1)
	})
}

func TestChainComposes(t *testing.T) {
	var visits []string
	tag := func(name string) MiddlewareFunc {
		return func(req *http.Request, ext *Extensions, next *Next) (*http.Response, error) {
			visits = append(visits, name)
			return next.Run(req, ext)
		}
	}
	inner := NewBuilder(okTransport()).UseFunc(tag("inner")).Build()
	outer := NewBuilder(inner).UseFunc(tag("outer")).Build()

	resp, err := outer.Do(newRequest(t))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"outer", "inner"}, visits)
}

func TestChainDoNilRequest(t *testing.T) {
	chain := NewBuilder(okTransport()).Build()
	assert.Panics(t, func() {
		_, _ = chain.Do(nil)
	})
}

func TestChainEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "on", r.Header.Get("X-Stamp"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello"))
	}))
	defer server.Close()

	stamp := MiddlewareFunc(func(req *http.Request, ext *Extensions, next *Next) (*http.Response, error) {
		req.Header.Set("X-Stamp", "on")
		return next.Run(req, ext)
	})
	chain := NewBuilder(server.Client()).Use(stamp).Build()

	resp, err := chain.Get(context.Background(), server.URL)

	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
}

// Test helpers shared by the package tests.

func newRequest(t *testing.T) *http.Request {
	req, err := http.NewRequest(http.MethodGet, "http://test.invalid/", nil)
	require.NoError(t, err)
	return req
}

func newResponse(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader("")),
	}
}

func okTransport() TransportFunc {
	return func(req *http.Request) (*http.Response, error) {
		return newResponse(http.StatusOK), nil
	}
}

func drainAndClose(resp *http.Response) {
	if resp != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
}

type timeoutError struct{}

func (timeoutError) Error() string { return "deadline elapsed" }

func (timeoutError) Timeout() bool { return true }
