// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// fakeCred hands out token and, after one invalidation, refreshed.
type fakeCred struct {
	mu        sync.Mutex
	token     string
	refreshed string
	used      bool
	err       error
}

func (c *fakeCred) AccessToken(context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return "", c.err
	}
	return c.token, nil
}

func (c *fakeCred) Invalidate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.used || c.refreshed == "" {
		return false
	}
	c.used = true
	c.token = c.refreshed
	return true
}

func newTestMirrorAPI(t *testing.T, serverURL string) MirrorAPI {
	t.Helper()
	api, err := NewHTTPMirrorAPI(
		config.Adapter{BaseURL: serverURL, RequestTimeout: 5 * time.Second},
		config.OAuth{UserInfoURL: serverURL + "/oauth2/v2/userinfo"},
		logger.Nop(),
	)
	require.NoError(t, err)
	return api
}

func decodeBody(t *testing.T, r *http.Request, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r.Body).Decode(v))
}

// ── FetchTimelineItem ─────────────────────────────────────────────────────────

func TestFetchTimelineItem_Success(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/timeline/item-1", r.URL.Path)
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.TimelineItem{
			ID:      "item-1",
			Created: created,
			Attachments: []models.Attachment{
				{ID: "A1", ContentType: "image/jpeg", ContentURL: "https://cdn/a1"},
				{ID: "A2", ContentType: "application/x-unknown", ContentURL: "https://cdn/a2"},
			},
		})
	}))
	defer srv.Close()

	item, err := newTestMirrorAPI(t, srv.URL).FetchTimelineItem(context.Background(), &fakeCred{token: "t1"}, "item-1")

	require.NoError(t, err)
	assert.Equal(t, "item-1", item.ID)
	assert.True(t, created.Equal(item.Created))
	require.Len(t, item.Attachments, 2)
	assert.Equal(t, "https://cdn/a1", item.Attachments[0].ContentURL)
}

// TestFetchTimelineItem_RetriesAfter401 verifies that a rejected token is
// refreshed and the request repeated once.
func TestFetchTimelineItem_RetriesAfter401(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id":"item-1"}`))
	}))
	defer srv.Close()

	cred := &fakeCred{token: "stale", refreshed: "fresh"}
	item, err := newTestMirrorAPI(t, srv.URL).FetchTimelineItem(context.Background(), cred, "item-1")

	require.NoError(t, err)
	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchTimelineItem_SecondUnauthorized(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid credentials"))
	}))
	defer srv.Close()

	cred := &fakeCred{token: "stale", refreshed: "also-bad"}
	_, err := newTestMirrorAPI(t, srv.URL).FetchTimelineItem(context.Background(), cred, "item-1")

	require.ErrorIs(t, err, ErrRemoteAPI)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchTimelineItem_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"gone"}`))
	}))
	defer srv.Close()

	_, err := newTestMirrorAPI(t, srv.URL).FetchTimelineItem(context.Background(), &fakeCred{token: "t"}, "missing")

	var apiErr *RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, `{"error":"gone"}`, apiErr.Body)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchTimelineItem_CredentialError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	errExpired := errors.New("expired")
	_, err := newTestMirrorAPI(t, srv.URL).FetchTimelineItem(context.Background(), &fakeCred{err: errExpired}, "item-1")

	assert.ErrorIs(t, err, errExpired)
	assert.Zero(t, calls.Load())
}

func TestFetchTimelineItem_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	}))
	defer srv.Close()

	_, err := newTestMirrorAPI(t, srv.URL).FetchTimelineItem(context.Background(), &fakeCred{token: "t"}, "item-1")
	assert.ErrorIs(t, err, ErrRemoteAPI)
}

// ── bootstrap calls ───────────────────────────────────────────────────────────

func TestInsertWelcomeItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/timeline", r.URL.Path)

		var body models.TimelineInsert
		decodeBody(t, r, &body)
		assert.Equal(t, "Welcome to Mirror-Board", body.Text)

		_, _ = w.Write([]byte(`{"id":"welcome"}`))
	}))
	defer srv.Close()

	item, err := newTestMirrorAPI(t, srv.URL).InsertWelcomeItem(context.Background(), &fakeCred{token: "t"})

	require.NoError(t, err)
	assert.Equal(t, "welcome", item.ID)
}

func TestInsertContact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contacts", r.URL.Path)

		var body models.Contact
		decodeBody(t, r, &body)
		assert.Equal(t, models.Contact{
			ID:          "mirror-board-contact",
			DisplayName: "MirrorBoard",
			ImageURLs:   []string{"https://gallery.example.com/contact.png"},
		}, body)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := newTestMirrorAPI(t, srv.URL).InsertContact(context.Background(), &fakeCred{token: "t"}, "https://gallery.example.com/contact.png")
	require.NoError(t, err)
}

func TestInsertSubscription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscriptions", r.URL.Path)

		var raw map[string]any
		decodeBody(t, r, &raw)
		assert.Equal(t, "timeline", raw["collection"])
		assert.Equal(t, "uid-1", raw["userToken"])
		assert.Equal(t, "https://gallery.example.com/provider/notify", raw["callbackUrl"])
		assert.NotContains(t, raw, "id")

		_, _ = w.Write([]byte(`{"id":"sub-1","collection":"timeline"}`))
	}))
	defer srv.Close()

	sub, err := newTestMirrorAPI(t, srv.URL).InsertSubscription(context.Background(), &fakeCred{token: "t"}, "uid-1", "https://gallery.example.com/provider/notify")

	require.NoError(t, err)
	assert.Equal(t, "sub-1", sub.ID)
}

func TestGetUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth2/v2/userinfo", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"uid-1","email":"alice@example.com"}`))
	}))
	defer srv.Close()

	info, err := newTestMirrorAPI(t, srv.URL).GetUserInfo(context.Background(), &fakeCred{token: "t"})

	require.NoError(t, err)
	uid, err := info.UID()
	require.NoError(t, err)
	assert.Equal(t, "uid-1", uid)
}

// ── configuration ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "https://www.googleapis.com/mirror/v1/", want: "https://www.googleapis.com/mirror/v1"},
		{raw: "api.example.com/mirror", want: "https://api.example.com/mirror"},
		{raw: "  http://localhost:8081  ", want: "http://localhost:8081"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPMirrorAPI_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPMirrorAPI(config.Adapter{}, config.OAuth{}, logger.Nop())
	assert.Error(t, err)
}

func TestRemoteAPIError_Message(t *testing.T) {
	err := &RemoteAPIError{Status: http.StatusBadGateway}
	assert.Equal(t, "remote api: http 502: Bad Gateway", err.Error())
	assert.ErrorIs(t, err, ErrBadGateway)
	assert.NotErrorIs(t, err, ErrNotFound)
}
