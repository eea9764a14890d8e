package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cleangod/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingKey   = errors.New("jwt secret not configured")
)

type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (c Claims) User() entities.User {
	return entities.User{ID: c.UserID, Name: c.Name, Email: c.Email, Phone: c.Phone, Role: c.Role}
}

// TokenService signs and validates HS256 bearer tokens issued by the identity
// provider. Issue exists for local tooling and tests.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *TokenService) Issue(u entities.User) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingKey
	}
	now := s.now()
	claims := Claims{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse validates tokenStr and returns the user it carries.
func (s *TokenService) Parse(tokenStr string) (entities.User, error) {
	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return entities.User{}, ErrMissingToken
	}
	if len(s.secret) == 0 {
		return entities.User{}, ErrMissingKey
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return entities.User{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return entities.User{}, ErrInvalidToken
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return entities.User{}, fmt.Errorf("%w: no user id", ErrInvalidToken)
	}
	return claims.User(), nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
