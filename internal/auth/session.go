// Package auth holds the admin session: a single allow-listed account that
// logs in for a bearer token. The active-session predicate is handed to the
// gateway as an explicit capability rather than read from ambient state.
package auth

import (
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrAccessDenied       = errors.New("access denied: only admin accounts are allowed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type Service struct {
	secret        []byte
	adminEmail    string
	adminPassword string
	active        atomic.Bool
}

func New(secret, adminEmail, adminPassword string) *Service {
	return &Service{secret: []byte(secret), adminEmail: adminEmail, adminPassword: adminPassword}
}

// Login validates the credentials against the allow-listed admin account,
// marks the session active and returns a signed token.
func (s *Service) Login(email, password string) (string, error) {
	if email != s.adminEmail {
		return "", ErrAccessDenied
	}
	if password == "" || password != s.adminPassword {
		return "", ErrInvalidCredentials
	}
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	s.active.Store(true)
	return token, nil
}

func (s *Service) Logout() {
	s.active.Store(false)
}

// SessionActive implements gateway.SessionChecker.
func (s *Service) SessionActive() bool {
	return s.active.Load()
}

func (s *Service) validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// Middleware guards protected route groups with a bearer token check.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "MISSING_TOKEN"})
			c.Abort()
			return
		}
		claims, err := s.validate(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "code": "INVALID_TOKEN"})
			c.Abort()
			return
		}
		c.Set("adminEmail", claims.Email)
		c.Next()
	}
}
