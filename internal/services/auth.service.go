package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and validates the JWT tokens that gate index
// administration (reindex, clear, settings).
type AuthService struct {
	secretKey   string
	tokenExpiry time.Duration
}

// AdminClaims is the claims structure carried by admin tokens.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var authService *AuthService

// InitAuthService initializes the admin-token service. When secretKey is
// empty a key is loaded from (or generated and persisted to) a dotfile in
// the user's home directory, so tokens survive restarts.
func InitAuthService(secretKey string, tokenExpiry time.Duration) *AuthService {
	if secretKey == "" {
		homeDir, _ := os.UserHomeDir()
		keyFile := filepath.Join(homeDir, ".pcbuild-secret-key")
		if homeDir == "" {
			keyFile = filepath.Join(os.TempDir(), ".pcbuild-secret-key")
		}

		if data, err := os.ReadFile(keyFile); err == nil && len(data) > 0 {
			secretKey = strings.TrimSpace(string(data))
			log.Printf("[AUTH] Loaded persisted secret key from %s", keyFile)
		} else {
			randomBytes := make([]byte, 32)
			if _, err := rand.Read(randomBytes); err != nil {
				secretKey = fmt.Sprintf("pcbuild-%d-fallback", time.Now().UnixNano())
				log.Printf("[AUTH] Warning: random generation failed, using fallback key")
			} else {
				secretKey = "pcbuild-" + hex.EncodeToString(randomBytes)
			}

			if err := os.WriteFile(keyFile, []byte(secretKey), 0600); err != nil {
				log.Printf("[AUTH] Warning: could not persist secret key to %s: %v", keyFile, err)
			} else {
				log.Printf("[AUTH] Generated and persisted secret key to %s", keyFile)
			}
		}
	}

	if tokenExpiry == 0 {
		tokenExpiry = 24 * time.Hour
	}

	secretKey = strings.TrimSpace(secretKey)

	// HMAC-SHA256 wants at least 32 bytes of key material.
	if len(secretKey) < 32 {
		padding := make([]byte, 32-len(secretKey))
		_, _ = rand.Read(padding)
		secretKey += hex.EncodeToString(padding)
	}

	authService = &AuthService{
		secretKey:   secretKey,
		tokenExpiry: tokenExpiry,
	}
	return authService
}

func generateToken(role string) (string, error) {
	if authService == nil {
		return "", fmt.Errorf("auth service not initialized")
	}

	now := time.Now()
	claims := AdminClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(authService.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "pcbuild-assist",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(authService.secretKey))
}

func parseClaims(tokenString string) (*AdminClaims, error) {
	if authService == nil {
		return nil, fmt.Errorf("auth service not initialized")
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(authService.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// GenerateAdminToken creates a signed token with the admin role.
func GenerateAdminToken() (string, error) {
	return generateToken("admin")
}

// ValidateAdminToken verifies a token and checks it carries the admin role.
func ValidateAdminToken(tokenString string) (*AdminClaims, error) {
	claims, err := parseClaims(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Role != "admin" {
		return nil, fmt.Errorf("token lacks admin role")
	}
	return claims, nil
}

// GenerateSessionToken creates a signed token gating build-session sockets.
func GenerateSessionToken() (string, error) {
	return generateToken("session")
}

// ValidateSessionToken verifies a token for the build-session socket. Admin
// tokens open sessions too.
func ValidateSessionToken(tokenString string) (*AdminClaims, error) {
	claims, err := parseClaims(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Role != "session" && claims.Role != "admin" {
		return nil, fmt.Errorf("token lacks session role")
	}
	return claims, nil
}

// AdminTokenExpiry returns when a token issued now would expire.
func AdminTokenExpiry() time.Time {
	if authService == nil {
		return time.Time{}
	}
	return time.Now().Add(authService.tokenExpiry)
}
