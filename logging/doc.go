// Copyright 2026 The chainx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package logging provides structured request logging for chainx
// middleware chains, built on zerolog.
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	chain := chainx.NewBuilder(nil).
//		Use(&retry.Middleware{Logger: &logger}).
//		Use(&logging.Middleware{Logger: &logger}).
//		Build()
//
// Placed after the retry middleware, as above, every physical attempt
// is logged with its attempt index; placed before it, only the final
// outcome of each logical request is logged.
package logging
