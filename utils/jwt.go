package utils

import (
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var JWTSecret []byte

// SessionTTL is the lifetime of an issued token. The admin shell reads the
// remaining time from /admin/session and signs the operator out at zero.
const SessionTTL = time.Hour * 24

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("Warning: JWT_SECRET not found in environment, using default secret")
		secret = "CorporateAppDevSecret"
	}
	JWTSecret = []byte(secret)
}

type CustomClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(userID uint, role string) (string, error) {
	claims := &CustomClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "CorporateApp",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

func ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret, nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

var (
	blacklistedTokens = make(map[string]time.Time)
	forcedLogouts     = make(map[uint]time.Time)
	tokenMu           sync.RWMutex
)

// BlacklistToken invalidates a single presented token (logout).
func BlacklistToken(token string) {
	tokenMu.Lock()
	defer tokenMu.Unlock()
	blacklistedTokens[token] = time.Now().Add(SessionTTL)
}

func IsTokenBlacklisted(token string) bool {
	tokenMu.Lock()
	defer tokenMu.Unlock()

	if expiry, exists := blacklistedTokens[token]; exists {
		if time.Now().Before(expiry) {
			return true
		}
		delete(blacklistedTokens, token)
	}
	return false
}

// ForceLogout invalidates every token of the user issued up to now. Used by
// the OTP-gated force_logout action.
func ForceLogout(userID uint) {
	tokenMu.Lock()
	defer tokenMu.Unlock()
	forcedLogouts[userID] = time.Now()
}

// IsForcedOut reports whether a token issued at issuedAt for userID has been
// invalidated by a later ForceLogout.
func IsForcedOut(userID uint, issuedAt time.Time) bool {
	tokenMu.RLock()
	defer tokenMu.RUnlock()

	cutoff, exists := forcedLogouts[userID]
	if !exists {
		return false
	}
	return !issuedAt.After(cutoff)
}

// ResetSessionState clears blacklist and forced-logout state. Test helper.
func ResetSessionState() {
	tokenMu.Lock()
	defer tokenMu.Unlock()
	blacklistedTokens = make(map[string]time.Time)
	forcedLogouts = make(map[uint]time.Time)
}
