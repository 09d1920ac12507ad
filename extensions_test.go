// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package chainx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type alphaKey struct{}

type betaKey struct{}

func TestExtensions(t *testing.T) {
	ext := NewExtensions()

	assert.Nil(t, ext.Value(alphaKey{}))

	ext.Set(alphaKey{}, "a")
	ext.Set(betaKey{}, 2)
	assert.Equal(t, "a", ext.Value(alphaKey{}))
	assert.Equal(t, 2, ext.Value(betaKey{}))

	ext.Set(alphaKey{}, "replaced")
	assert.Equal(t, "replaced", ext.Value(alphaKey{}))
	assert.Equal(t, 2, ext.Value(betaKey{}), "distinct key types never collide")

	ext.Delete(alphaKey{})
	assert.Nil(t, ext.Value(alphaKey{}))
	assert.Equal(t, 2, ext.Value(betaKey{}))
}

func TestExtensionsNilKey(t *testing.T) {
	ext := NewExtensions()
	assert.Panics(t, func() {
		ext.Set(nil, "boom")
	})
}

func TestExtensionsDeleteEmpty(t *testing.T) {
	ext := NewExtensions()
	assert.NotPanics(t, func() {
		ext.Delete(alphaKey{})
	})
}
