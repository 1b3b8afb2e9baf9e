package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
)

const issuer = "stockvote"

type JWTServiceInterface interface {
	GenerateJWT(userID int, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

// Claims carries the voter id twice: as user_id for handlers and as the
// standard subject, which must agree.
type Claims struct {
	UserID int `json:"user_id"`
	jwt.StandardClaims
}

type JWTService struct {
	secretKey []byte
	now       func() time.Time
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secretKey: []byte(secret), now: time.Now}
}

func (s *JWTService) GenerateJWT(userID int, expirationTime time.Time) (string, error) {
	if userID <= 0 {
		return "", ErrInvalidClaims
	}
	now := s.now()
	claims := Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.Itoa(userID),
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  now.Unix(),
			NotBefore: now.Unix(),
			Issuer:    issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID <= 0 || claims.Issuer != issuer || claims.Subject != strconv.Itoa(claims.UserID) {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}
