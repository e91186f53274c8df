package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/linskybing/logistics-go/internal/domain/user"
)

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   user.Role `json:"role"`
	jwt.RegisteredClaims
}
