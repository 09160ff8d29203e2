package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Principal identifies the caller of a protected route.
type Principal struct {
	Subject string
	Role    string
}

// Parser validates HS256 access tokens.
type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

func (p *Parser) Parse(token string) (Principal, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return Principal{}, err
	}
	if !parsed.Valid {
		return Principal{}, fmt.Errorf("invalid token")
	}

	principal := Principal{}
	if sub, ok := claims["sub"].(string); ok {
		principal.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		principal.Role = role
	}
	if principal.Subject == "" {
		return Principal{}, fmt.Errorf("token has no subject")
	}
	return principal, nil
}
