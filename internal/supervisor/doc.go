// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package supervisor provides the suture v4 supervision tree for Shelfwise.

The tree has two layers under a root supervisor:

	shelfwise (root)
	├── engine-layer
	│   ├── snapshot-reload   (optional, cron scheduled rebuilds)
	│   └── responses-janitor (expired response cache sweeps)
	└── api-layer
	    └── http-server

A failing reload never restarts the HTTP server, and a crashed HTTP server
is restarted without rebuilding the engine. Supervisor events are logged
through sutureslog on a zerolog-backed slog handler.

Services implement suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer so suture can name them in log events.
*/
package supervisor
