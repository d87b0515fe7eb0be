// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

// Package main provides the Videographus HTTP server
//
// Videographus serves filtered, sorted, paginated queries over large
// pipe-delimited video catalog files without ever loading them into memory.
//
// @title Videographus API
// @version 1.0
// @description Bounded-memory query engine for pipe-delimited video catalog files
// @description
// @description ## Features
// @description
// @description - **Streaming Queries**: Filter, sort, and paginate multi-GB catalogs in constant memory
// @description - **Query Cache**: TTL-bound result cache keyed on the normalized query shape
// @description - **Sampled Statistics**: Byte-stride catalog summaries with exact scans for small files
// @description - **Budgeted Scans**: Scan and match budgets yield approximate results, never errors
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Admin
// @description endpoints are capped at 10 requests per minute; health probes at 1000.
// @description
// @description ## Caching Headers
// @description
// @description Query responses carry `X-Cache` (HIT or MISS), a content-derived `ETag`,
// @description and `Cache-Control: public, max-age=60`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-08-25T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/videographus/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:9002
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health and readiness probes
//
// @tag.name Catalog
// @tag.description Catalog query and statistics endpoints
//
// @tag.name Admin
// @tag.description Administrative operations (cache control, stats refresh, performance)
package main
