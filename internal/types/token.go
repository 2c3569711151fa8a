package types

import (
	"github.com/google/uuid"
)

// TokenClaims is the decoded identity carried by a bearer token.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
}
