// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# Identity Resolution

WithIdentity parses the Authorization bearer token and stores the user ID on
the request context:

	mux.HandleFunc("POST /polls", middleware.WithIdentity(secret, handler))

	userID := middleware.UserIDFromContext(r.Context())

A missing or invalid token leaves the request anonymous (empty user ID); it
does not reject the request. Actions decide whether an identity is required.

# Rate Limiting

Per-client-IP token bucket:

	limited := middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: 5,
		Burst:             10,
	})
	mux.HandleFunc("POST /auth/signin", limited(handler))

Over-limit requests receive 429 Too Many Requests.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)

Parse JSON request bodies:

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil { ... }

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
