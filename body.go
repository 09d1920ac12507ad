// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package chainx

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
)

// A ReplayBuffer captures a request body's replay capability so the
// body can be resent identically on every retry attempt.
//
// Three body shapes exist. An absent body (nil or http.NoBody) replays
// as a no-op. A buffered body, recognized by a non-nil req.GetBody, is
// cheaply re-materialized from its in-memory source; http.NewRequest
// sets GetBody automatically for *bytes.Buffer, *bytes.Reader, and
// *strings.Reader bodies. Everything else is a single-consumption
// stream and cannot be replayed: CanReplay reports false and Rewind
// fails with ErrReplayUnsupported rather than silently resending a
// truncated or empty body.
type ReplayBuffer struct {
	getBody   func() (io.ReadCloser, error)
	streaming bool
}

// CaptureBody snapshots the replay capability of req's body.
//
// The capture happens exactly once: the retry middleware captures at
// first entry, before the initial attempt, and does not re-capture if
// an inner middleware later replaces the body. A replaced body affects
// only the attempt it was installed in; every Rewind restores the body
// captured here.
func CaptureBody(req *http.Request) *ReplayBuffer {
	switch {
	case req.Body == nil || req.Body == http.NoBody:
		return &ReplayBuffer{}
	case req.GetBody != nil:
		return &ReplayBuffer{getBody: req.GetBody}
	default:
		return &ReplayBuffer{streaming: true}
	}
}

// CanReplay reports whether the captured body can be resent. It is
// true for absent and buffered bodies and false for streaming bodies.
func (b *ReplayBuffer) CanReplay() bool {
	return !b.streaming
}

// Rewind installs a fresh copy of the captured body on req, preparing
// it for another attempt. Rewinding an absent body is a no-op.
// Rewinding a streaming body fails with ErrReplayUnsupported.
func (b *ReplayBuffer) Rewind(req *http.Request) error {
	if b.streaming {
		return ErrReplayUnsupported
	}
	if b.getBody == nil {
		return nil
	}
	body, err := b.getBody()
	if err != nil {
		return fmt.Errorf("chainx: rewind request body: %w", err)
	}
	req.Body = body
	return nil
}

// BufferBody reads a streaming request body fully into memory and
// replaces it with a replayable buffered equivalent, setting both Body
// and GetBody on req. Requests with absent or already-buffered bodies
// are left unchanged.
//
// Use BufferBody before handing a streaming request to a chain that
// contains the retry middleware, when the body is known to fit in
// memory.
func BufferBody(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return nil
	}
	buf, err := io.ReadAll(req.Body)
	if cerr := req.Body.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("chainx: buffer request body: %w", err)
	}
	req.Body = io.NopCloser(bytes.NewReader(buf))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(buf)), nil
	}
	req.ContentLength = int64(len(buf))
	return nil
}
