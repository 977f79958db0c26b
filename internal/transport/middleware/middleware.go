// Package middleware holds the HTTP middleware mounted on the operational
// router.
package middleware

import "net/http"

// Middleware wraps an http.Handler. Values are passed straight to chi's Use.
type Middleware = func(http.Handler) http.Handler
