package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/logistics-go/internal/domain/user"
)

// IdentityKey is the gin context key under which the loaded user identity is stored.
const IdentityKey = "identity"

// GetIdentity returns the actor set by the identity middleware.
var GetIdentity = func(c *gin.Context) (user.Identity, error) {
	val, exists := c.Get(IdentityKey)
	if !exists {
		return user.Identity{}, errors.New("identity not found in context")
	}

	identity, ok := val.(user.Identity)
	if !ok {
		return user.Identity{}, errors.New("invalid identity type")
	}

	return identity, nil
}
