package net_test

import (
	"context"
	"testing"

	pnet "storydeck/internal/platform/net"
)

func TestWithViewer_And_Getters(t *testing.T) {
	base := context.Background()

	t.Run("sets id and name", func(t *testing.T) {
		ctx := pnet.WithViewer(base, "viewer-123", "Ana")

		if got := pnet.ViewerID(ctx); got != "viewer-123" {
			t.Fatalf("ViewerID got %q want %q", got, "viewer-123")
		}
		if got := pnet.ViewerName(ctx); got != "Ana" {
			t.Fatalf("ViewerName got %q want %q", got, "Ana")
		}
	})

	t.Run("sets only id", func(t *testing.T) {
		ctx := pnet.WithViewer(base, "v-only", "")

		if got := pnet.ViewerID(ctx); got != "v-only" {
			t.Fatalf("ViewerID got %q want %q", got, "v-only")
		}
		if got := pnet.ViewerName(ctx); got != "" {
			t.Fatalf("ViewerName got %q want empty", got)
		}
	})

	t.Run("no id returns same ctx and empty getters", func(t *testing.T) {
		ctx := pnet.WithViewer(base, "", "")

		// should be the same reference since nothing was set
		if ctx != base {
			t.Fatalf("expected ctx to be unchanged when viewer id empty")
		}
		if got := pnet.ViewerID(ctx); got != "" {
			t.Fatalf("ViewerID got %q want empty", got)
		}
		if got := pnet.ViewerName(ctx); got != "" {
			t.Fatalf("ViewerName got %q want empty", got)
		}
	})
}

func TestWithRequestID_FlowsToGetter(t *testing.T) {
	ctx := pnet.WithRequestID(context.Background(), "req-42")

	if got := pnet.RequestID(ctx); got != "req-42" {
		t.Fatalf("RequestID got %q want %q", got, "req-42")
	}
	if got := pnet.RequestID(context.Background()); got != "" {
		t.Fatalf("RequestID on bare ctx got %q want empty", got)
	}
}
