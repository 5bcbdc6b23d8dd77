package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid security credentials")

// OfficerSubject is the subject of every token the officer gate issues
const OfficerSubject = "officer"

// AuthService is the binary officer gate: one shared key, one kind of token
type AuthService struct {
	keyHash []byte
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
}

// NewAuthService accepts either a bcrypt hash or a plain key, which is
// hashed here so it is never compared in the clear.
func NewAuthService(officerKey, officerKeyHash, jwtSecret string, ttl time.Duration) (*AuthService, error) {
	var hash []byte
	switch {
	case officerKeyHash != "":
		if _, err := bcrypt.Cost([]byte(officerKeyHash)); err != nil {
			return nil, fmt.Errorf("invalid officer key hash: %w", err)
		}
		hash = []byte(officerKeyHash)
	case officerKey != "":
		h, err := bcrypt.GenerateFromPassword([]byte(officerKey), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash officer key: %w", err)
		}
		hash = h
	default:
		return nil, errors.New("no officer key configured")
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthService{keyHash: hash, secret: []byte(jwtSecret), ttl: ttl, now: time.Now}, nil
}

// Login checks the key and issues a signed session token
func (a *AuthService) Login(key string) (string, time.Time, error) {
	if bcrypt.CompareHashAndPassword(a.keyHash, []byte(key)) != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := a.now()
	expires := now.Add(a.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   OfficerSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	})
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}
