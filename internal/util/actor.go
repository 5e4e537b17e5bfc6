package util

import (
	"lms_backend/internal/policy"

	"github.com/gin-gonic/gin"
)

// ActorFromContext converts the JWT claims set by the auth middleware into
// a policy actor. Returns nil for anonymous requests.
func ActorFromContext(c *gin.Context) *policy.Actor {
	claims := GetUserFromContext(c)
	if claims == nil {
		return nil
	}
	return &policy.Actor{ID: claims.UserID, Role: claims.Role}
}
