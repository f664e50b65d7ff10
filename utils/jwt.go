package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"time"

	"autocare/config"

	"github.com/golang-jwt/jwt"
)

// secretKey is resolved per call so a secret loaded from the config file is
// picked up; package-level init would run before LoadConfig.
func secretKey() []byte {
	if config.AppConfig.JWTSecret != "" {
		return []byte(config.AppConfig.JWTSecret)
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("autocare-dev-secret")
}

// GenerateToken creates a signed JWT with the given subject (user or admin ID)
// and principal namespace ("user" or "admin"). The token expires after the
// specified duration.
func GenerateToken(subject, namespace string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"ns":  namespace,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string. Only hashes are
// persisted; the raw token never touches the store.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractClaimsFromToken validates a token and returns its subject and
// namespace claims.
func ExtractClaimsFromToken(tokenString string) (subject, namespace string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	ns, _ := claims["ns"].(string)
	return sub, ns, nil
}
