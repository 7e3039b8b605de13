package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTService emite y valida tokens JWT de acceso. El subject es el username.
type JWTService struct {
	secret    []byte
	accessTTL time.Duration
	issuer    string
}

type Claims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

var (
	ErrJWTInvalid = errors.New("jwt invalid")
	ErrJWTExpired = errors.New("jwt expired")
)

func NewJWTService(secret string, accessTTL time.Duration) *JWTService {
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	return &JWTService{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		issuer:    "nila-backend",
	}
}

// IssueToken firma un token de acceso para el username dado.
func (s *JWTService) IssueToken(username string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrJWTInvalid
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrJWTInvalid
	}
	now := time.Now().UTC()
	claims := Claims{
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// AccessTTL expone la vigencia configurada del token.
func (s *JWTService) AccessTTL() time.Duration {
	return s.accessTTL
}

// ParseToken valida el token y devuelve el username del subject.
func (s *JWTService) ParseToken(tokenString string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrJWTInvalid
	}
	if strings.TrimSpace(tokenString) == "" {
		return "", ErrJWTInvalid
	}

	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrJWTExpired
		}
		return "", ErrJWTInvalid
	}

	if claims.TokenType != "access" {
		return "", ErrJWTInvalid
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", ErrJWTInvalid
	}
	if strings.TrimSpace(claims.Issuer) != s.issuer {
		return "", ErrJWTInvalid
	}
	return claims.Subject, nil
}
