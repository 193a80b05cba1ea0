package auth

import "context"

// LoginTestChecker resolves tokens from a fixed map, for handler tests and local runs.
type LoginTestChecker struct {
	// token -> user id
	LoggedSessions map[string]string
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]string{},
	}
}

func (c *LoginTestChecker) LoggedUser(_ context.Context, token string) (string, bool, error) {
	userID, ok := c.LoggedSessions[token]
	if !ok || userID == "" {
		return "", false, nil
	}
	return userID, true, nil
}
