// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyViewerID   ctxKey = "viewer_id"
	keyViewerName ctxKey = "viewer_name"
)

// WithRequestID annotates context with the request id so chimw.GetReqID can retrieve it
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// WithViewer annotates context with the current viewer identity
func WithViewer(ctx context.Context, viewerID, viewerName string) context.Context {
	if viewerID != "" {
		ctx = context.WithValue(ctx, keyViewerID, viewerID)
	}
	if viewerName != "" {
		ctx = context.WithValue(ctx, keyViewerName, viewerName)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// ViewerID returns the current viewer id on the context if present
func ViewerID(ctx context.Context) string {
	if v, ok := ctx.Value(keyViewerID).(string); ok {
		return v
	}
	return ""
}

// ViewerName returns the current viewer display name on the context if present
func ViewerName(ctx context.Context) string {
	if v, ok := ctx.Value(keyViewerName).(string); ok {
		return v
	}
	return ""
}
