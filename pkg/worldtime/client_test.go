package worldtime_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"time-range-parser/pkg/worldtime"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func newServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/timezone/Europe/Amsterdam":
			w.Write([]byte(`{
				"abbreviation": "CET",
				"datetime": "2026-01-26T09:00:00.000000+01:00",
				"day_of_week": 1,
				"day_of_year": 26,
				"dst": false,
				"dst_from": null,
				"dst_offset": 0,
				"dst_until": null,
				"raw_offset": 3600,
				"timezone": "Europe/Amsterdam",
				"utc_offset": "+01:00",
				"week_number": 5
			}`))
		case "/timezone/Mars/Olympus":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"unknown location"}`))
		case "/timezone":
			w.Write([]byte(`["Europe/Amsterdam","UTC"]`))
		case "/ip":
			w.Write([]byte(`{"client_ip":"127.0.0.1","timezone":"Europe/Amsterdam"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
}

func TestClient(t *testing.T) {
	var hits int32
	ts := newServer(t, &hits)
	defer ts.Close()

	clock := &fakeClock{now: time.Date(2026, 1, 26, 8, 0, 0, 0, time.UTC)}
	client := worldtime.New(worldtime.Config{
		BaseURL:  ts.URL,
		CacheTTL: time.Minute,
		Clock:    clock.Now,
	})
	ctx := context.Background()

	t.Run("TimeInfo", func(t *testing.T) {
		info, err := client.TimeInfo(ctx, "Europe/Amsterdam")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.Abbreviation != "CET" || info.WeekNumber != 5 || info.RawOffset != 3600 {
			t.Errorf("unexpected info: %+v", info)
		}
		if info.DSTFrom != nil {
			t.Errorf("expected no dst_from, got %v", *info.DSTFrom)
		}
	})

	t.Run("CurrentTime served from cache advances by age", func(t *testing.T) {
		before := atomic.LoadInt32(&hits)
		clock.now = clock.now.Add(10 * time.Second)

		got, err := client.CurrentTime(ctx, "Europe/Amsterdam")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if atomic.LoadInt32(&hits) != before {
			t.Errorf("expected cached reply, server was called")
		}
		if want := "2026-01-26T09:00:10+01:00"; got.Format(time.RFC3339) != want {
			t.Errorf("expected %s, got %s", want, got.Format(time.RFC3339))
		}
	})

	t.Run("Expired entries are refetched", func(t *testing.T) {
		before := atomic.LoadInt32(&hits)
		clock.now = clock.now.Add(2 * time.Minute)

		if _, err := client.CurrentTime(ctx, "Europe/Amsterdam"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if atomic.LoadInt32(&hits) != before+1 {
			t.Errorf("expected one new request")
		}
	})

	t.Run("Unknown zone", func(t *testing.T) {
		_, err := client.TimeInfo(ctx, "Mars/Olympus")
		if err == nil || !strings.Contains(err.Error(), "unknown location") {
			t.Fatalf("expected api error, got %v", err)
		}
	})

	t.Run("Empty zone", func(t *testing.T) {
		if _, err := client.CurrentTime(ctx, " "); err != worldtime.ErrEmptyTimezone {
			t.Fatalf("expected ErrEmptyTimezone, got %v", err)
		}
	})

	t.Run("LocalTimezone", func(t *testing.T) {
		tz, err := client.LocalTimezone(ctx)
		if err != nil || tz != "Europe/Amsterdam" {
			t.Fatalf("expected Europe/Amsterdam, got %q (%v)", tz, err)
		}
	})

	t.Run("Timezones", func(t *testing.T) {
		zones, err := client.Timezones(ctx)
		if err != nil || len(zones) != 2 {
			t.Fatalf("expected 2 zones, got %v (%v)", zones, err)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		client.Cache().Clear()
		if client.Cache().Len() != 0 {
			t.Errorf("expected empty cache")
		}
	})
}

func TestClient_ServerDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	client := worldtime.New(worldtime.Config{BaseURL: ts.URL, Timeout: time.Second})
	if _, err := client.LocalTimezone(context.Background()); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestCache(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	cache := worldtime.NewCache(1, time.Minute, clock.Now)

	cache.Set("a", []byte("1"))
	clock.now = clock.now.Add(30 * time.Second)

	body, age, ok := cache.Get("a")
	if !ok || string(body) != "1" || age != 30*time.Second {
		t.Fatalf("unexpected get: %q %v %v", body, age, ok)
	}

	cache.Set("b", []byte("2"))
	if _, _, ok := cache.Get("a"); ok {
		t.Errorf("expected a to be evicted by size")
	}

	clock.now = clock.now.Add(time.Minute)
	if _, _, ok := cache.Get("b"); ok {
		t.Errorf("expected b to expire")
	}
}
