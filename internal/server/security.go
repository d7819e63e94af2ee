package server

import (
	"net/http"
	"strings"
)

// SecurityConfig holds the security-related settings for the metrics
// endpoint.
type SecurityConfig struct {
	// EnableCORS controls whether CORS headers are emitted.
	EnableCORS bool
	// AllowedOrigins lists the origins permitted to read the endpoint.
	// A single "*" entry allows any origin.
	AllowedOrigins []string
	// AllowedMethods lists the HTTP methods permitted on the endpoint.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the settings used when the metrics listener
// is enabled without further configuration. The endpoint is read-only, so
// only GET and preflight OPTIONS are allowed.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware wraps next with standard security headers and CORS
// handling according to config. OPTIONS preflight requests are answered
// directly with 204 and never reach next.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := matchOrigin(config.AllowedOrigins, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// matchOrigin returns the Access-Control-Allow-Origin value for the request
// origin, or an empty string when the origin is not allowed. A wildcard entry
// matches any request, including those without an Origin header.
func matchOrigin(allowed []string, origin string) string {
	for _, a := range allowed {
		if a == "*" {
			return "*"
		}
		if origin != "" && a == origin {
			return origin
		}
	}
	return ""
}
