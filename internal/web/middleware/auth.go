package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/JonMunkholm/dashboard/internal/config"
	"github.com/JonMunkholm/dashboard/internal/logging"
)

// Auth error codes, in the same scheme as core.MapError.
const (
	CodeMissingKey = "AUTH001"
	CodeInvalidKey = "AUTH002"
)

// APIKeyAuth guards applicant mutations. The key is read from the X-API-Key
// header, or from "Authorization: Bearer <key>".
//
// With RequireAPIKey off every request passes. With it on and no keys
// configured every request is rejected; config validation refuses that
// combination at startup.
func APIKeyAuth(cfg *config.SecurityConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.RequireAPIKey {
				next.ServeHTTP(w, r)
				return
			}

			log := logging.WithFields(r.Context(),
				"path", r.URL.Path,
				"method", r.Method,
				"ip", r.RemoteAddr,
			)

			key := requestKey(r)
			switch {
			case key == "":
				log.Warn("mutation rejected: missing API key")
				writeAuthError(w, http.StatusUnauthorized, "An API key is required for this action.", CodeMissingKey)
			case !isValidAPIKey(key, cfg.APIKeys):
				log.Warn("mutation rejected: invalid API key")
				writeAuthError(w, http.StatusForbidden, "The API key is not valid.", CodeInvalidKey)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func requestKey(r *http.Request) string {
	if key := r.Header.Get("X-API-Key"); key != "" {
		return key
	}
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// isValidAPIKey compares against every configured key in constant time.
func isValidAPIKey(key string, validKeys []string) bool {
	valid := 0
	for _, validKey := range validKeys {
		valid |= subtle.ConstantTimeCompare([]byte(key), []byte(validKey))
	}
	return valid == 1
}

// writeAuthError answers in the web package's ErrorResponse shape.
func writeAuthError(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   message,
		"message": message,
		"action":  "Send a configured key in the X-API-Key header.",
		"code":    code,
	})
}
