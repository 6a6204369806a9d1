package services

import (
	"testing"
	"time"
)

func TestTokenRoles(t *testing.T) {
	InitAuthService("0123456789abcdef0123456789abcdef-test", time.Hour)

	sessionToken, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	if _, err := ValidateSessionToken(sessionToken); err != nil {
		t.Fatalf("session token rejected by session validation: %v", err)
	}
	if _, err := ValidateAdminToken(sessionToken); err == nil {
		t.Fatalf("session token must not pass admin validation")
	}

	adminToken, err := GenerateAdminToken()
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}
	if _, err := ValidateAdminToken(adminToken); err != nil {
		t.Fatalf("admin token rejected: %v", err)
	}
	if _, err := ValidateSessionToken(adminToken); err != nil {
		t.Fatalf("admin token should open sessions too: %v", err)
	}

	if _, err := ValidateSessionToken("not.a.token"); err == nil {
		t.Fatalf("garbage token accepted")
	}
}
