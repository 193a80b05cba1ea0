package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

type Checker interface {
	// LoggedUser resolves a session token to the user id it was issued for.
	LoggedUser(ctx context.Context, token string) (userID string, logged bool, err error)
}
