package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"contentshare/internal/errors"
	"contentshare/internal/model"
)

// contextKey is the echo context key under which the authenticated user is stored.
const contextKey = "authUser"

// Middleware validates the request's bearer token against the session store
// and puts the resolved user into the request context. All rejections are
// 401; the error message distinguishes the reason.
func Middleware(sessions *SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := sessions.Validate(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: err.Error(),
					Code:  "UNAUTHENTICATED",
				})
			}
			c.Set(contextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user placed by Middleware.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(contextKey).(*model.User)
	if !ok || user == nil || user.ID == 0 {
		return nil, false
	}
	return user, true
}

// IsOwner reports whether user owns the resource with the given owner id.
// Every mutating action on owned resources goes through this predicate.
func IsOwner(user *model.User, ownerID uint) bool {
	return user != nil && user.ID == ownerID
}
