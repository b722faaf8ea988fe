package types

import (
	"os"
	"strings"
)

// ContextUserKey is where the auth middleware places the signed-in
// student on the gin context.
const ContextUserKey = "user"

// AllowedOrigins feeds both the CORS config and the websocket origin
// check. The Vite dev and preview servers are allowed out of the box;
// deployed frontends register through CLIENT_URL (a single origin) or
// ALLOWED_ORIGINS (comma-separated).
var AllowedOrigins = buildAllowedOrigins()

func buildAllowedOrigins() []string {
	origins := []string{
		"http://localhost:5173",
		"http://localhost:4173",
	}

	if clientURL := strings.TrimSpace(os.Getenv("CLIENT_URL")); clientURL != "" {
		origins = append(origins, clientURL)
	}

	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}
