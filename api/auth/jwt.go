package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Audience claim stamped on every issued token.
const Audience = "echo-analytics"

// dateHourLayout renders the UTC hour a token was issued for.
const dateHourLayout = "2006-01-02 15"

// TokenManager issues and validates the HS256 tokens that guard the trigger
// endpoint. A token carries the UTC date-hour it was issued in and is
// accepted for that hour plus or minus one.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManagerFromEnv reads the signing secret from SECRET_KEY.
func NewTokenManagerFromEnv() (*TokenManager, error) {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}
	return &TokenManager{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs a token for the current UTC hour, expiring in one hour.
func (m *TokenManager) Issue() (string, error) {
	now := m.now().UTC()
	claims := jwt.MapClaims{
		"date_hour": now.Format(dateHourLayout),
		"exp":       now.Add(time.Hour).Unix(),
		"aud":       Audience,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate checks signature, audience, expiry and the hour window.
func (m *TokenManager) Validate(tokenString string) error {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithAudience(Audience))
	if err != nil {
		return err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return fmt.Errorf("invalid token claims")
	}

	dateHour, _ := claims["date_hour"].(string)
	if dateHour == "" {
		return fmt.Errorf("token missing date_hour claim")
	}
	issuedHour, err := time.Parse(dateHourLayout, dateHour)
	if err != nil {
		return fmt.Errorf("invalid date_hour claim: %w", err)
	}

	currentHour := m.now().UTC().Truncate(time.Hour)
	diff := currentHour.Sub(issuedHour)
	if diff < 0 {
		diff = -diff
	}
	if diff > time.Hour {
		return fmt.Errorf("token outside the valid hour window")
	}
	return nil
}
