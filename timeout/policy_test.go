// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	p := Fixed(time.Second)
	for _, attempt := range []int{-1, 0, 1, 5, 1000} {
		assert.Equal(t, time.Second, p.Timeout(attempt), "attempt %d", attempt)
	}
}

func TestStepped(t *testing.T) {
	t.Run("no steps", func(t *testing.T) {
		assert.Panics(t, func() {
			Stepped()
		})
	})
	t.Run("steps", func(t *testing.T) {
		p := Stepped(200*time.Millisecond, time.Second, 10*time.Second)
		assert.Equal(t, 200*time.Millisecond, p.Timeout(-1))
		assert.Equal(t, 200*time.Millisecond, p.Timeout(0))
		assert.Equal(t, time.Second, p.Timeout(1))
		assert.Equal(t, 10*time.Second, p.Timeout(2))
		assert.Equal(t, 10*time.Second, p.Timeout(3), "last step repeats")
		assert.Equal(t, 10*time.Second, p.Timeout(1000))
	})
	t.Run("steps copied", func(t *testing.T) {
		steps := []time.Duration{time.Second}
		p := Stepped(steps...)
		steps[0] = time.Hour
		assert.Equal(t, time.Second, p.Timeout(0))
	})
}

func TestDefaultPolicy(t *testing.T) {
	assert.Equal(t, 5*time.Second, DefaultPolicy.Timeout(0))
	assert.Equal(t, 5*time.Second, DefaultPolicy.Timeout(3))
}

func TestInfinite(t *testing.T) {
	assert.Equal(t, time.Duration(1<<63-1), Infinite.Timeout(0))
}
