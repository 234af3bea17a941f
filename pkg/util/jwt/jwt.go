package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer = "vidcall"

	SubjectAccess  = "access_token"
	SubjectRefresh = "refresh_token"
)

// JWTConfig token settings
type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

// set by Init
var jwtConfig *JWTConfig

// Init installs the signing secret and token lifetimes.
func Init(secret string, accessExpiryMinutes, refreshExpiryHours int) {
	jwtConfig = &JWTConfig{
		Secret:             secret,
		AccessTokenExpiry:  time.Duration(accessExpiryMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshExpiryHours) * time.Hour,
	}
}

// RefreshExpiry returns the configured refresh lifetime.
func RefreshExpiry() time.Duration {
	return jwtConfig.RefreshTokenExpiry
}

// Claims custom claims. TokenID ties both tokens of a pair to the
// session id stored in redis.
type Claims struct {
	UserID  string `json:"user_id"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

// TokenPair is what a successful sign-in hands back.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenID      string
}

// GeneratePair issues an access/refresh pair sharing a fresh token id.
func GeneratePair(userID string) (*TokenPair, error) {
	tokenID := uuid.NewString()
	access, err := GenerateAccessToken(userID, tokenID)
	if err != nil {
		return nil, err
	}
	refresh, err := sign(userID, tokenID, SubjectRefresh, jwtConfig.RefreshTokenExpiry)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, TokenID: tokenID}, nil
}

// GenerateAccessToken issues a short-lived access token bound to tokenID.
func GenerateAccessToken(userID, tokenID string) (string, error) {
	return sign(userID, tokenID, SubjectAccess, jwtConfig.AccessTokenExpiry)
}

func sign(userID, tokenID, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  userID,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   subject,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.Secret))
}

// ParseToken validates signature and expiry.
func ParseToken(tokenString string) (*Claims, error) {
	if jwtConfig == nil {
		return nil, errors.New("jwt not initialised")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtConfig.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
