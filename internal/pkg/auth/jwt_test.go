package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/rao756/utms-backend/internal/app/models"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "utms.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:             42,
		UserName:       "Ali Raza",
		FatherName:     "Raza Khan",
		RollNo:         "FA21-BCS-012",
		Email:          "student@university.edu",
		Semester:       "5",
		DepartmentName: "CS",
		Image:          "uploads/profiles/abc.jpg",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)

	token, err := svc.GenerateToken(testUser(), RoleUser)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("userId = %d, want 42", claims.UserID)
	}
	if claims.Email != "student@university.edu" {
		t.Errorf("email = %q, want student@university.edu", claims.Email)
	}
	if claims.Role != RoleUser {
		t.Errorf("role = %q, want %q", claims.Role, RoleUser)
	}
	if claims.RollNo != "FA21-BCS-012" {
		t.Errorf("rollNo = %q, want FA21-BCS-012", claims.RollNo)
	}
	if claims.Issuer != "utms.test" {
		t.Errorf("issuer = %q, want utms.test", claims.Issuer)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testJWTService(-time.Minute)

	token, err := svc.GenerateToken(testUser(), RoleUser)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = svc.ValidateAndExtractClaims(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("validate err = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWithWrongSecret(t *testing.T) {
	token, err := testJWTService(time.Hour).GenerateToken(testUser(), RoleAdmin)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", TokenExp: time.Hour})
	if _, err := other.ValidateAndExtractClaims(token); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}

func TestValidateEmptyToken(t *testing.T) {
	svc := testJWTService(time.Hour)
	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("validate err = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"abc.def.ghi", "abc.def.ghi", false},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ExtractBearerToken(tc.header)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ExtractBearerToken(%q) expected error", tc.header)
			}
			continue
		}
		if err != nil {
			t.Errorf("ExtractBearerToken(%q) unexpected error: %v", tc.header, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ExtractBearerToken(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}
