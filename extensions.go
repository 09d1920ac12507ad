// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package chainx

// Extensions is a heterogeneous key/value bag scoped to one logical
// request. The chain creates one bag per call to Chain.Do and threads
// it through every middleware invocation and every retry attempt, so a
// value set by one middleware is visible to all middleware running
// after it, including on later attempts.
//
// Keys must follow the same rules as the key parameter of
// context.WithValue:
//
// • a key may not be nil;
//
// • a key must be comparable;
//
// • a key should not be of type string or any other built-in type, to
// avoid collisions between middleware from different packages storing
// data in the same bag. Define an unexported struct type and use a
// value of that type as the key.
//
// An Extensions bag is owned by a single in-flight logical request and
// attempts within that request are strictly sequential, so the bag
// performs no locking. Do not share one bag across logical requests.
type Extensions struct {
	values map[any]any
}

// NewExtensions returns an empty bag. Chain.Do calls this for every
// logical request; calling it directly is only needed when invoking a
// middleware outside a chain, for example in tests.
func NewExtensions() *Extensions {
	return &Extensions{}
}

// Set associates value with key, replacing any existing association.
func (e *Extensions) Set(key, value any) {
	if key == nil {
		panic("chainx: nil extensions key")
	}
	if e.values == nil {
		e.values = make(map[any]any)
	}
	e.values[key] = value
}

// Value returns the value associated with key, or nil if there is none.
func (e *Extensions) Value(key any) any {
	return e.values[key]
}

// Delete removes the association for key, if any.
func (e *Extensions) Delete(key any) {
	delete(e.values, key)
}
