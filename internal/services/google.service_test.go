package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"driftline/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleService_GetUserInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(
			`{"id":"108","email":"volunteer@example.com","verified_email":true,"name":"Vol Unteer"}`,
		))
	}))
	defer server.Close()

	service := NewGoogleService(config.Config{})
	service.userInfoURL = server.URL

	info, err := service.GetUserInfo(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "volunteer@example.com", info.Email)
	assert.True(t, info.VerifiedEmail)
	assert.Equal(t, "Vol Unteer", info.Name)
}

func TestGoogleService_GetUserInfo_RejectedToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	service := NewGoogleService(config.Config{})
	service.userInfoURL = server.URL

	_, err := service.GetUserInfo(context.Background(), "bad-token")
	assert.Error(t, err)
}

func TestGoogleService_GetUserInfo_MissingEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"108"}`))
	}))
	defer server.Close()

	service := NewGoogleService(config.Config{})
	service.userInfoURL = server.URL

	_, err := service.GetUserInfo(context.Background(), "token-without-email")
	assert.Error(t, err)
}

func TestGoogleService_AuthCodeURL(t *testing.T) {
	service := NewGoogleService(config.Config{
		GoogleClientID:    "client-id",
		GoogleRedirectURL: "http://localhost:8288/api/oauth-redirect",
	})

	url := service.AuthCodeURL("state-token")
	assert.Contains(t, url, "client_id=client-id")
	assert.Contains(t, url, "state=state-token")
}
