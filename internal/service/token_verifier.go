package service

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"cloudbox/internal/config"
	"cloudbox/internal/domain"
	"cloudbox/internal/port"
)

type tokenVerifier struct {
	cfg config.AuthConfig
}

// NewTokenVerifier creates a TokenVerifier that checks HS256 JWT signatures and
// expiry against the externally supplied secret. Token issuance is not part of
// this service.
func NewTokenVerifier(cfg config.AuthConfig) port.TokenVerifier {
	return &tokenVerifier{cfg: cfg}
}

func (v *tokenVerifier) Verify(tokenString string) error {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if v.cfg.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.cfg.Issuer))
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(v.cfg.Secret), nil
	}, parserOpts...)
	if err != nil || !token.Valid {
		return domain.ErrUnauthorized
	}
	return nil
}
