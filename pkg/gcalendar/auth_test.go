package gcalendar_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"time-range-parser/pkg/gcalendar"
)

func desktopCreds(tokenURI string) []byte {
	return []byte(fmt.Sprintf(`{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": %q,
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`, tokenURI))
}

func TestOAuthConfig(t *testing.T) {
	cfg, err := gcalendar.OAuthConfig(desktopCreds("https://oauth2.googleapis.com/token"))
	if err != nil {
		t.Fatalf("OAuthConfig: %v", err)
	}
	url := gcalendar.AuthCodeURL(cfg)
	for _, want := range []string{"access_type=offline", "client_id=test-client-id", "calendar.readonly"} {
		if !strings.Contains(url, want) {
			t.Errorf("auth url %q lacks %q", url, want)
		}
	}

	if _, err := gcalendar.OAuthConfig([]byte(`{"broken":true}`)); err == nil {
		t.Error("expected error for unsupported credentials")
	}
}

func TestExchangeAndSave(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != "the-code" {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"error":"invalid_grant"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"at","refresh_token":"rt","token_type":"Bearer","expires_in":3600}`)
	}))
	defer ts.Close()

	cfg, err := gcalendar.OAuthConfig(desktopCreds(ts.URL))
	if err != nil {
		t.Fatal(err)
	}
	tokenPath := filepath.Join(t.TempDir(), "token.json")

	t.Run("saves token", func(t *testing.T) {
		tok, err := gcalendar.ExchangeAndSave(context.Background(), cfg, "the-code", tokenPath)
		if err != nil {
			t.Fatalf("ExchangeAndSave: %v", err)
		}
		if tok.RefreshToken != "rt" {
			t.Errorf("refresh token = %q", tok.RefreshToken)
		}

		data, err := os.ReadFile(tokenPath)
		if err != nil {
			t.Fatal(err)
		}
		var stored map[string]any
		if err := json.Unmarshal(data, &stored); err != nil {
			t.Fatal(err)
		}
		if stored["access_token"] != "at" {
			t.Errorf("stored token = %v", stored)
		}

		info, err := os.Stat(tokenPath)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Errorf("perm = %o, want 600", perm)
		}
	})

	t.Run("rejected code", func(t *testing.T) {
		if _, err := gcalendar.ExchangeAndSave(context.Background(), cfg, "wrong", tokenPath); err == nil {
			t.Error("expected exchange error")
		}
	})

	t.Run("token is usable by the client", func(t *testing.T) {
		creds := desktopCreds(ts.URL)
		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), creds, tokenPath); err != nil {
			t.Errorf("NewClientFromCredentialsJSON: %v", err)
		}
	})
}
