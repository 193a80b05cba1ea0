package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/misc"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// do sends a request the way the web client does: from an allowed origin,
// with the session token when one is given.
func (s *IntegrationTestSuite) do(ctx context.Context, method, path, token string, body any) *http.Response {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Origin", testOrigin)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeResponse[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func responseText(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(bytes.TrimSpace(b))
}

func newCredentials() auth.Credentials {
	return auth.Credentials{
		Username: gofakeit.Username() + gofakeit.DigitN(4),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}
}

// registerAndLogin creates a fresh account and returns its session token and user id.
func (s *IntegrationTestSuite) registerAndLogin(ctx context.Context) (string, string) {
	t := s.T()
	credentials := newCredentials()

	resp := s.do(ctx, http.MethodPost, "/a/register", "", credentials)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	registered := decodeResponse[misc.RegisterResponse](t, resp)

	resp = s.do(ctx, http.MethodPost, "/a/login", "", credentials)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	loggedIn := decodeResponse[misc.LoginResponse](t, resp)
	require.NotEmpty(t, loggedIn.Token)
	require.Equal(t, registered.UserID, loggedIn.UserID)

	return loggedIn.Token, loggedIn.UserID
}
