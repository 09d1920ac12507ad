// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout sets per-attempt deadlines on HTTP requests flowing
// through a chainx middleware chain.
//
// A Policy maps the attempt index to a timeout, so retries can get
// different deadlines than the initial attempt:
//
//	chain := chainx.NewBuilder(nil).
//		Use(&retry.Middleware{}).
//		Use(&timeout.Middleware{Policy: timeout.Stepped(200*time.Millisecond, time.Second)}).
//		Build()
//
// Use Fixed for the conventional constant timeout, or Stepped to time
// out early attempts aggressively and give later ones more room.
package timeout
