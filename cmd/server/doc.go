// Videographus - Streaming CSV Video Catalog Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/videographus

/*
Package main is the entry point for the Videographus server application.

Videographus is a self-hosted query engine for large pipe-delimited video
catalog files. It answers filtered, sorted, paginated queries by streaming
the file in bounded-memory batches, maintains sampled catalog statistics,
and exposes both through a small REST API.

# Application Architecture

The server implements a layered architecture with suture v4 process supervision:

	RootSupervisor ("videographus")
	├── DataSupervisor ("data-layer")
	│   └── Stats Refresher (periodic catalog rescans)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (REST API + Swagger)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Query Cache: TTL cache with capacity-bound eviction
 4. Catalog Engine: streaming scan/filter/sort/paginate
 5. Stats Sampler: byte-stride sampling with circuit breaker
 6. Supervisor Tree: suture v4 process supervision
 7. HTTP Server: Chi router with middleware stack

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Catalog
	CATALOG_PATH=/data/videos.csv   # Pipe-delimited catalog file
	CATALOG_SCAN_BUDGET=500000      # Max lines examined per query
	CATALOG_QUERY_TIMEOUT=5s        # Per-query wall-clock ceiling

	# Server
	HTTP_PORT=9002                  # HTTP server port
	LOG_LEVEL=info                  # trace, debug, info, warn, error
	LOG_FORMAT=json                 # json or console

	# Caching
	CACHE_TTL=5m                    # Query result lifetime
	CACHE_CAPACITY=512              # Max cached queries

	# Statistics
	STATS_SAMPLE_SIZE=2000          # Target sampled records
	STATS_REFRESH_INTERVAL=15m      # Background rescan cadence

See .env.example for the complete configuration reference.

# Degraded Operation

The catalog file is streamed per request and never held open. Consequences:

  - A missing file at startup is a warning, not a fatal error
  - Queries against a missing file return 503 FILE_NOT_FOUND
  - /api/v1/health reports "degraded" while the file is unreadable
  - The file can be replaced atomically (rename) between scans

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (SHUTDOWN_TIMEOUT, default 10s)
 3. Stops the statistics refresher
 4. Stops the cache janitor
 5. Reports any services that failed to stop

# Usage Examples

Development:

	export CATALOG_PATH=./videos.csv
	export LOG_FORMAT=console
	go run ./cmd/server

Production:

	export CATALOG_PATH=/data/videos.csv
	export CACHE_TTL=5m
	export RATE_LIMIT_REQUESTS=100
	./videographus

Docker:

	docker run -d \
	  -e CATALOG_PATH=/data/videos.csv \
	  -v /srv/catalog:/data:ro \
	  -p 9002:9002 \
	  ghcr.io/tomtom215/videographus

# API Documentation

Swagger documentation is available at /swagger/index.html when the server
is running. The API surface:

  - GET  /api/v1/videos               Filtered, sorted, paginated queries
  - GET  /api/v1/stats                Sampled catalog statistics
  - GET  /api/v1/health               Liveness with catalog readability
  - GET  /api/v1/health/ready         Readiness probe
  - POST /api/v1/admin/cache/clear    Drop all cached query results
  - POST /api/v1/admin/stats/refresh  Force a statistics rescan
  - GET  /api/v1/admin/performance    Per-endpoint latency and cache counters
  - GET  /metrics                     Prometheus metrics

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
  - internal/catalog: Streaming engine and sampler
*/
package main
