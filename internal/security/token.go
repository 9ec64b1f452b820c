package security

import (
	"errors"
	"strconv"
	"time"

	"firedept-backoffice/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// PrincipalClaims carries the resolved identity for both principal kinds.
// Users authenticate with bearer tokens, suppliers with session cookies, but
// both end up as the same claim shape.
type PrincipalClaims struct {
	PrincipalID   int32                `json:"principal_id"`
	PrincipalKind domain.PrincipalKind `json:"principal_kind"`
	Email         string               `json:"email,omitempty"`
	Roles         []string             `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Principal converts the claims into the domain value handed to the core.
func (c *PrincipalClaims) Principal() domain.Principal {
	return domain.Principal{
		Kind:  c.PrincipalKind,
		ID:    c.PrincipalID,
		Roles: c.Roles,
	}
}

type TokenManager interface {
	GenerateUserToken(userID int32, email string, roles []string) (string, error)
	GenerateSupplierToken(supplierID int32, email string) (string, error)
	ValidateToken(tokenString string) (*PrincipalClaims, error)
}

type tokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expiry time.Duration) TokenManager {
	if expiry == 0 {
		expiry = time.Hour
	}
	return &tokenManager{secret: []byte(secret), expiry: expiry}
}

func (m *tokenManager) GenerateUserToken(userID int32, email string, roles []string) (string, error) {
	return m.sign(PrincipalClaims{
		PrincipalID:   userID,
		PrincipalKind: domain.PrincipalKindUser,
		Email:         email,
		Roles:         roles,
	}, "api-access")
}

func (m *tokenManager) GenerateSupplierToken(supplierID int32, email string) (string, error) {
	return m.sign(PrincipalClaims{
		PrincipalID:   supplierID,
		PrincipalKind: domain.PrincipalKindSupplier,
		Email:         email,
		Roles:         []string{domain.RoleSupplier},
	}, "supplier-session")
}

func (m *tokenManager) sign(claims PrincipalClaims, audience string) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   strconv.Itoa(int(claims.PrincipalID)),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    "firedept-backoffice",
		Audience:  jwt.ClaimStrings{audience},
		ID:        uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*PrincipalClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &PrincipalClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*PrincipalClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
