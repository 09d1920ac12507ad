// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient classifies errors from HTTP request execution as
// transient or non-transient. The retry package's default classifier
// uses it to decide which transport failures are worth re-attempting,
// and it is equally usable on its own, for example to bucket error
// metrics.
//
// The package depends only on the standard library packages "errors"
// and "syscall", so importing it standalone brings in nothing else.
package transient
