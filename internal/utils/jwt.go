package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret   []byte
	jwtIssuer   = "studytrack"
	jwtAudience = "studytrack-web"
)

// Claims carries the authenticated student's identity inside the token.
type Claims struct {
	StudentID uint   `json:"studentId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// SetJWTSecret sets the signing secret used by GenerateToken and ParseToken.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// SetJWTIssuer sets the issuer and audience claims stamped on new tokens.
func SetJWTIssuer(issuer, audience string) {
	if issuer != "" {
		jwtIssuer = issuer
	}
	if audience != "" {
		jwtAudience = audience
	}
}

// GenerateToken creates a signed JWT for the given student, valid for
// expireHours hours.
func GenerateToken(studentID uint, name, email, role string, expireHours int) (string, error) {
	now := time.Now()
	claims := Claims{
		StudentID: studentID,
		Name:      name,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtIssuer,
			Audience:  jwt.ClaimStrings{jwtAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
