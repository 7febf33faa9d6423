package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"peerlend-backend/pkg/id"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type UserType string

const (
	UserLender   UserType = "lender"
	UserBusiness UserType = "business"
)

func (t UserType) Valid() bool { return t == UserLender || t == UserBusiness }

// Principal is the authenticated caller attached to the echo context.
type Principal struct {
	UserID string
	Type   UserType
}

const principalKey = "principal"

type Claims struct {
	UserID string   `json:"uid"`
	Type   UserType `json:"typ"`
	jwt.RegisteredClaims
}

var errInvalidToken = errors.New("invalid token")

// TokenManager signs and verifies HS256 bearer tokens for one issuer/audience pair.
type TokenManager struct {
	issuer   string
	audience string
	secret   []byte
}

func NewTokenManager(issuer, audience, secret string) *TokenManager {
	return &TokenManager{issuer: issuer, audience: audience, secret: []byte(secret)}
}

func (m *TokenManager) Mint(p Principal, ttl time.Duration) (string, error) {
	if !id.Valid(p.UserID) || !p.Type.Valid() {
		return "", fmt.Errorf("mint token: %w", errInvalidToken)
	}
	now := time.Now().UTC()
	claims := Claims{
		UserID: p.UserID,
		Type:   p.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   p.UserID,
			Audience:  []string{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *TokenManager) Parse(raw string) (Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if !id.Valid(claims.UserID) || !claims.Type.Valid() {
		return Principal{}, errInvalidToken
	}
	return Principal{UserID: claims.UserID, Type: claims.Type}, nil
}

// Authenticate requires a valid "Authorization: Bearer <jwt>" header.
func Authenticate(m *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(h, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			p, err := m.Parse(strings.TrimSpace(raw))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}
			SetPrincipal(c, p)
			return next(c)
		}
	}
}

// RequireUserType must run after Authenticate.
func RequireUserType(allowed ...UserType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok || !slices.Contains(allowed, p.Type) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireSelf only lets callers read resources under their own user id path param.
func RequireSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok || c.Param(param) != p.UserID {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

func SetPrincipal(c echo.Context, p Principal) { c.Set(principalKey, p) }

func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}
