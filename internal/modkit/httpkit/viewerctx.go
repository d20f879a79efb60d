package httpkit

import (
	"net/http"

	perrs "storydeck/internal/platform/errors"
	pnet "storydeck/internal/platform/net"
)

// Viewer returns the viewer id from the request context
func Viewer(r *http.Request) (string, error) {
	vid := pnet.ViewerID(r.Context())
	if vid == "" {
		return "", perrs.InvalidArgf("missing viewer identity")
	}
	return vid, nil
}

// ViewerName returns the viewer display name from the request context
// empty when the client did not send one
func ViewerName(r *http.Request) string {
	return pnet.ViewerName(r.Context())
}

// MustViewer returns the viewer id or panics
// only use on routes behind the identity middleware
func MustViewer(r *http.Request) string {
	vid, err := Viewer(r)
	if err != nil {
		panic(err)
	}
	return vid
}
