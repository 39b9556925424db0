// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"testing"
	"time"
)

func newTestPageCache(t *testing.T) *PageCache {
	t.Helper()
	backend := NewMemoryCache(MemoryCacheOptions{DefaultTTL: time.Hour})
	t.Cleanup(func() { _ = backend.Close() })
	return NewPageCache(backend, time.Hour)
}

func TestPageCache_SetGet(t *testing.T) {
	pc := newTestPageCache(t)
	ctx := context.Background()

	if _, ok := pc.Get(ctx, "/about"); ok {
		t.Fatal("expected miss on empty cache")
	}

	if err := pc.Set(ctx, "/about", "<h1>About</h1>"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	html, ok := pc.Get(ctx, "/about")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if html != "<h1>About</h1>" {
		t.Errorf("Get = %q, want stored html", html)
	}
}

func TestPageCache_Invalidate(t *testing.T) {
	pc := newTestPageCache(t)
	ctx := context.Background()

	if err := pc.Set(ctx, "/", "<h1>Home</h1>"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := pc.Invalidate(ctx, "/"); err != nil {
		t.Fatalf("Invalidate failed: %v", err)
	}
	if _, ok := pc.Get(ctx, "/"); ok {
		t.Error("expected miss after invalidation")
	}

	// Invalidating a path that was never cached is not an error.
	if err := pc.Invalidate(ctx, "/never-cached"); err != nil {
		t.Errorf("Invalidate on absent path = %v, want nil", err)
	}
}

func TestPageCache_Clear(t *testing.T) {
	pc := newTestPageCache(t)
	ctx := context.Background()

	for _, p := range []string{"/", "/about", "/pricing"} {
		if err := pc.Set(ctx, p, "<div>"+p+"</div>"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	if err := pc.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	for _, p := range []string{"/", "/about", "/pricing"} {
		if _, ok := pc.Get(ctx, p); ok {
			t.Errorf("expected %s to be cleared", p)
		}
	}
}

func TestPageCache_PathsAreIndependent(t *testing.T) {
	pc := newTestPageCache(t)
	ctx := context.Background()

	_ = pc.Set(ctx, "/a", "A")
	_ = pc.Set(ctx, "/b", "B")
	_ = pc.Invalidate(ctx, "/a")

	if _, ok := pc.Get(ctx, "/a"); ok {
		t.Error("invalidated path should miss")
	}
	if html, ok := pc.Get(ctx, "/b"); !ok || html != "B" {
		t.Errorf("other path should survive, got %q ok=%v", html, ok)
	}
}
