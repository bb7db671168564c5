package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/team-alpha/ams-backend-go/internal/domain/auth"
	"github.com/team-alpha/ams-backend-go/internal/domain/user"
)

// identityFromRequest extracts the authenticated caller from the access token
// claims. Services receive the identity explicitly instead of digging into
// the request context themselves.
func identityFromRequest(r *http.Request) (user.Identity, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Identity{}, err
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Identity{}, auth.ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return user.Identity{}, auth.ErrInvalidToken
	}

	return user.Identity{ID: userID, Role: user.Role(roleStr)}, nil
}
