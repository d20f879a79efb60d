package middleware

import (
	"net/http"
	"strings"

	"storydeck/internal/platform/logger"
	pnet "storydeck/internal/platform/net"
)

// Viewer headers set by the mobile client for every request
const (
	HeaderViewerID   = "X-Viewer-Id"
	HeaderViewerName = "X-Viewer-Name"
)

// ViewerIdentity reads the viewer headers into context and enriches the logger
// missing headers are tolerated, handlers that require identity enforce it themselves
func ViewerIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewerID := strings.TrimSpace(r.Header.Get(HeaderViewerID))
		viewerName := strings.TrimSpace(r.Header.Get(HeaderViewerName))

		ctx := r.Context()
		if viewerID != "" {
			ctx = pnet.WithViewer(ctx, viewerID, viewerName)
		}
		ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), viewerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
