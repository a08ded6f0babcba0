// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package api provides the HTTP surface of the recommendation service.

Routing uses chi with the go-chi/cors and go-chi/httprate middleware. Every
handler reads the serving snapshot once from the recommend.Holder so a
concurrent reload never changes the engine halfway through a request.

Endpoints:

	GET /api/v1/recommend/similar/{itemID}?n=            similar items
	GET /api/v1/recommend/user/{userID}?n=               hybrid recommendations
	GET /api/v1/recommend/user/{userID}/collaborative?n= collaborative only
	GET /api/v1/recommend/popular?n=                     highest rated items
	GET /api/v1/products                                 full catalog
	GET /api/v1/products/{itemID}                        one product
	GET /api/v1/engine/stats                             snapshot build statistics
	GET /health/live, /health/ready                      probes
	GET /metrics                                         Prometheus

All JSON bodies use the models.APIResponse envelope. Recommendation lists
are cached per snapshot version, so installing a new snapshot retires every
cached list without an explicit purge.
*/
package api
