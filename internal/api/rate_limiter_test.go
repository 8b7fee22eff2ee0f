package api

import (
	"testing"
	"time"
)

func TestRequestLimiterWindow(t *testing.T) {
	limiter := newRequestLimiter()
	now := time.Now()

	for i := 0; i < 3; i++ {
		if !limiter.allow("user:1", now, 3, time.Minute) {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if limiter.allow("user:1", now, 3, time.Minute) {
		t.Fatal("fourth request inside the window should be rejected")
	}

	// A different key has its own window.
	if !limiter.allow("user:2", now, 3, time.Minute) {
		t.Fatal("other key should not share the window")
	}

	// Once the window passes, the key is usable again.
	later := now.Add(time.Minute + time.Second)
	if !limiter.allow("user:1", later, 3, time.Minute) {
		t.Fatal("expired entries should be pruned")
	}
}

func TestRequestLimiterSweepExpired(t *testing.T) {
	limiter := newRequestLimiter()
	now := time.Now()

	limiter.allow("stale", now, 10, time.Minute)
	limiter.sweepExpired(now.Add(2 * time.Minute))

	limiter.mu.Lock()
	_, present := limiter.requests["stale"]
	limiter.mu.Unlock()
	if present {
		t.Fatal("sweep should drop fully expired keys")
	}
}

func TestAuthFlowAndLimiterIntegration(t *testing.T) {
	app, handler := newTestApp(t)
	cookie := registerAndLogin(t, app, "limited@example.com")

	// Exhaust the mutation window artificially, then verify 429.
	user, found, err := handler.repositories.Users.FindByEmail("limited@example.com")
	if err != nil || !found {
		t.Fatalf("load user: found=%v err=%v", found, err)
	}
	now := time.Now()
	for i := 0; i < mutationRequestLimit; i++ {
		handler.limiter.allow(mutationLimiterKey(user.ID), now, mutationRequestLimit+1, requestLimitWindow)
	}

	response := postJSON(t, app, cookie, "/api/logs", map[string]any{"success": true})
	defer response.Body.Close()
	if response.StatusCode != 429 {
		t.Fatalf("expected 429 after exhausting mutation window, got %d", response.StatusCode)
	}
}
