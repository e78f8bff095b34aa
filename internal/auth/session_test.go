package auth

import (
	"errors"
	"testing"
)

func TestLoginAllowList(t *testing.T) {
	s := New("secret", "admin@example.com", "hunter2")

	testCases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid admin login", "admin@example.com", "hunter2", nil},
		{"non-admin email denied", "someone@example.com", "hunter2", ErrAccessDenied},
		{"wrong password", "admin@example.com", "wrong", ErrInvalidCredentials},
		{"empty password", "admin@example.com", "", ErrInvalidCredentials},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := s.Login(tc.email, tc.password)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Expected error %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr == nil && token == "" {
				t.Error("Expected a signed token on success")
			}
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := New("secret", "admin@example.com", "hunter2")

	if s.SessionActive() {
		t.Error("Expected no active session before login")
	}
	if _, err := s.Login("admin@example.com", "hunter2"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !s.SessionActive() {
		t.Error("Expected active session after login")
	}
	s.Logout()
	if s.SessionActive() {
		t.Error("Expected inactive session after logout")
	}
}

func TestFailedLoginLeavesSessionInactive(t *testing.T) {
	s := New("secret", "admin@example.com", "hunter2")
	if _, err := s.Login("admin@example.com", "wrong"); err == nil {
		t.Fatal("Expected login to fail")
	}
	if s.SessionActive() {
		t.Error("Expected session to stay inactive after failed login")
	}
}

func TestTokenValidation(t *testing.T) {
	s := New("secret", "admin@example.com", "hunter2")
	token, err := s.Login("admin@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	claims, err := s.validate(token)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Expected admin email claim, got %q", claims.Email)
	}

	other := New("different-secret", "admin@example.com", "hunter2")
	if _, err := other.validate(token); err == nil {
		t.Error("Expected validation to fail with a different secret")
	}
}
