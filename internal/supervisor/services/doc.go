// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

/*
Package services adapts long-running components to the suture v4 Service
interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTPServerService translates http.Server's blocking ListenAndServe into a
context-aware Serve that drains in-flight requests with Shutdown when the
supervisor stops it.
*/
package services
