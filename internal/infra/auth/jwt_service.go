// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"

	"staffportal/config"
	"staffportal/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const accessTokenType = "access"

// jwtService validates HS256 access tokens issued by the identity provider.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken parses the token, verifies signature and expiry and extracts the caller.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	mapClaims := jwt.MapClaims{}

	token, err := s.parser.ParseWithClaims(tokenString, mapClaims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.Wrap(err, "failed to parse token structure")
		}

		return nil, errors.Wrap(err, "failed to validate token")
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}

	if tokenType, ok := mapClaims["type"].(string); ok && tokenType != accessTokenType {
		return nil, errors.Errorf("unexpected token type %q", tokenType)
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read subject claim")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Wrap(err, "subject claim is not a valid user ID")
	}

	claims := &service.Claims{
		UserID: userID,
		Roles:  rolesFromClaim(mapClaims["roles"]),
	}
	claims.Subject = subject
	if exp, err := mapClaims.GetExpirationTime(); err == nil {
		claims.ExpiresAt = exp
	}

	return claims, nil
}

// rolesFromClaim accepts either a JSON array or a single string role claim.
func rolesFromClaim(raw any) []string {
	switch v := raw.(type) {
	case []any:
		roles := make([]string, 0, len(v))
		for _, item := range v {
			roles = append(roles, fmt.Sprint(item))
		}

		return roles
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}

		return []string{v}
	default:
		return nil
	}
}
