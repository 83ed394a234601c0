// Package auth verifies the HS256 bearer tokens issued by the account service.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	catalog "github.com/murkotick/b2b-catalog-service/internal/app/product/domain"
)

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrForbidden    = errors.New("insufficient role")
)

// Claims is the access token payload. Refresh and one-time tokens carry a
// Type and are not accepted as access tokens.
type Claims struct {
	ClientID string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Type     string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the client identity the token vouches for.
func (c *Claims) Identity() (catalog.ClientIdentity, error) {
	return catalog.NewClientIdentity(c.ClientID, c.Email)
}

func (c *Claims) IsAdmin() bool { return c.Role == RoleAdmin }

type Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret), now: time.Now}
}

// Verify parses an access token and checks its signature and expiry.
func (v *Verifier) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Type != "" {
		return nil, fmt.Errorf("%w: %s token", ErrInvalidToken, claims.Type)
	}
	if claims.Role == "" {
		claims.Role = RoleClient
	}
	return claims, nil
}

// FromHeader extracts the token of an "Authorization: Bearer <token>" header.
func FromHeader(header string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(parts[1]), nil
}

// Issue signs claims with secret. The service only verifies tokens; Issue
// exists for tooling and tests.
func Issue(secret string, claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
