package server

import (
	"net/http"
	"strconv"
	"strings"
)

// SecurityConfig controls the headers and CORS policy SecurityMiddleware
// applies to every response.
type SecurityConfig struct {
	EnableCORS     bool
	AllowedOrigins []string
	AllowedMethods []string
	// MaxOperandBits is a configured bound on operand bit length. Neither
	// SecurityMiddleware nor Server reads it, so nothing enforces it.
	MaxOperandBits int64
}

// DefaultSecurityConfig permits any origin to read the read-only /metrics
// endpoint, matching a typical Prometheus scrape deployment.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		MaxOperandBits: 1_000_000_000,
	}
}

// SecurityMiddleware sets a fixed set of hardening headers on every
// response, handles CORS preflight requests, and otherwise delegates to
// next.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		origin := r.Header.Get("Origin")
		if config.EnableCORS && allowedOrigin(config.AllowedOrigins, origin) != "" {
			allowed := allowedOrigin(config.AllowedOrigins, origin)
			w.Header().Set("Access-Control-Allow-Origin", allowed)
			w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", strconv.Itoa(86400))
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// allowedOrigin returns the Access-Control-Allow-Origin value to send for
// origin, or "" if origin is not permitted. A wildcard entry matches any
// origin, including an absent Origin header.
func allowedOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if a == origin && origin != "" {
			return origin
		}
	}
	return ""
}
