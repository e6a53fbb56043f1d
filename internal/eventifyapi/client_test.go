package eventifyapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eventify/eventify-client/internal/domain"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, apiVersion, token string, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(ClientOptions{
		BaseURL:    srv.URL,
		APIVersion: apiVersion,
		Token:      token,
	})
	require.NoError(t, err)
	return c
}

func TestLoginInstallsToken(t *testing.T) {
	var authHeader string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "a@b.c", req.Email)
		_ = json.NewEncoder(w).Encode(domain.LoginResponse{Token: "tok-1", Role: domain.RoleOrganizer, UserID: "u1"})
	})
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]domain.Event{{ID: "e1"}})
	})
	c := newTestClient(t, "", "", mux)

	out, err := c.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-1", out.Token)
	require.Equal(t, domain.RoleOrganizer, out.Role)

	events, err := c.GetEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "Bearer tok-1", authHeader)
	require.Equal(t, StatusConnected, c.Status())
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	c := newTestClient(t, "", "", http.NewServeMux())
	_, err := c.Login(context.Background(), "", "secret")
	require.Error(t, err)
}

func TestAPIErrorFromBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
	})
	c := newTestClient(t, "", "", mux)

	_, err := c.Login(context.Background(), "a@b.c", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "invalid credentials", apiErr.Message)
	require.Equal(t, StatusDisconnected, c.Status())
}

func TestAPIErrorRawBody(t *testing.T) {
	e := newAPIError(http.StatusBadGateway, []byte("upstream exploded\n"))
	require.Equal(t, "upstream exploded", e.Message)
	require.Contains(t, e.Error(), "status 502")

	empty := newAPIError(http.StatusInternalServerError, nil)
	require.Equal(t, "eventify: request failed with status 500", empty.Error())
}

func TestAuthenticatedCallsRequireToken(t *testing.T) {
	c := newTestClient(t, "", "", http.NewServeMux())
	_, err := c.GetEvents(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestRequestCorrelationHeader(t *testing.T) {
	var requestID string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/events", func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode([]domain.Event{})
	})
	c := newTestClient(t, "", "tok", mux)

	_, err := c.GetEvents(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, requestID)
}

func TestTaskUpdateRoutedByVersion(t *testing.T) {
	cases := []struct {
		version  string
		wantPath string
	}{
		{"v1", "/api/events/e1/tasks/t1"},
		{"v2", "/api/events/tasks/t1"},
	}
	for _, tc := range cases {
		var gotPath string
		mux := http.NewServeMux()
		mux.HandleFunc("PUT /", func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_ = json.NewEncoder(w).Encode(domain.Task{ID: "t1"})
		})
		c := newTestClient(t, tc.version, "tok", mux)

		_, err := c.UpdateTask(context.Background(), "e1", "t1", domain.TaskRequest{Title: "x"})
		require.NoError(t, err, tc.version)
		require.Equal(t, tc.wantPath, gotPath, tc.version)
	}
}

func TestTransportErrorMarksDisconnected(t *testing.T) {
	srv := httptest.NewServer(http.NewServeMux())
	srv.Close()
	c, err := NewClient(ClientOptions{BaseURL: srv.URL, Token: "tok"})
	require.NoError(t, err)

	_, err = c.GetEvents(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr), "transport failure is not an APIError")
	require.Equal(t, StatusDisconnected, c.Status())
}

func TestNewClientUnknownVersion(t *testing.T) {
	_, err := NewClient(ClientOptions{APIVersion: "v9"})
	require.Error(t, err)
}
