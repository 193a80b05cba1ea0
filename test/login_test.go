package test

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/fitlog/internal/auth"
	"github.com/2beens/fitlog/internal/misc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestRegisterLoginLogout() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	credentials := newCredentials()

	resp := s.do(ctx, http.MethodPost, "/a/register", "", credentials)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	registered := decodeResponse[misc.RegisterResponse](t, resp)
	assert.NotEmpty(t, registered.UserID)
	assert.Equal(t, credentials.Username, registered.Username)

	resp = s.do(ctx, http.MethodPost, "/a/register", "", credentials)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "error, username taken", responseText(t, resp))

	resp = s.do(ctx, http.MethodPost, "/a/login", "", auth.Credentials{
		Username: credentials.Username,
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error, wrong credentials", responseText(t, resp))

	resp = s.do(ctx, http.MethodPost, "/a/login", "", credentials)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	loggedIn := decodeResponse[misc.LoginResponse](t, resp)
	assert.Equal(t, registered.UserID, loggedIn.UserID)

	// a fresh account reads as an empty history
	resp = s.do(ctx, http.MethodGet, "/history", loggedIn.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"workouts":[],"weightLogs":[]}`, responseText(t, resp))

	resp = s.do(ctx, http.MethodGet, "/a/logout", loggedIn.Token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "logged-out", responseText(t, resp))

	resp = s.do(ctx, http.MethodGet, "/history", loggedIn.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.NoError(t, resp.Body.Close())
}

func (s *IntegrationTestSuite) TestLoginRateLimiting() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// simulate a login brute force attack, the config allows 10 attempts per minute
	credentials := auth.Credentials{
		Username: "test-user",
		Password: "test-pass-123",
	}
	for i := 1; i <= 15; i++ {
		resp := s.do(ctx, http.MethodPost, "/a/login", "", credentials)
		body := responseText(t, resp)
		if i <= 10 {
			require.Equal(t, http.StatusBadRequest, resp.StatusCode, "iteration: %d", i)
		} else {
			require.Equal(t, http.StatusTooManyRequests, resp.StatusCode, "iteration: %d", i)
			assert.True(t, strings.HasPrefix(body, "retry after"), "iteration: %d", i)
		}
	}

	require.NoError(t, s.redisDataCleanup(ctx))
}

func (s *IntegrationTestSuite) TestUnknownOriginRejected() {
	t := s.T()

	req, err := http.NewRequest(http.MethodGet, serverEndpoint+"/version", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://elsewhere.test")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.NoError(t, resp.Body.Close())
}
