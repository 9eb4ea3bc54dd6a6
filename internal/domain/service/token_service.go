// Package service declares the domain-facing interfaces of external
// collaborators: the push transport, the OS notification surface, auth
// tokens and the event queue.
package service

import "github.com/golang-jwt/jwt/v5"

// TokenService validates the bearer tokens presented to the operator API.
// Token issuance belongs to the authentication service, which is an external
// collaborator; this subsystem only verifies.
type TokenService interface {
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
