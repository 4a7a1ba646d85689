package jwt

import (
	"errors"
	"testing"
	"time"

	"safeclinic/config"
	"safeclinic/internal/domain/entity"

	"github.com/google/uuid"
)

func testService(accessExpiry, refreshExpiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret-key",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: refreshExpiry,
	})
}

func testUser() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: "maria@example.com",
		Role:  entity.RoleDoctor,
		Name:  "Maria Silva",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService(time.Hour, 24*time.Hour)
	user := testUser()

	token, err := svc.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != user.ID {
		t.Errorf("UserID: esperado %s obteve %s", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("Email: esperado %s obteve %s", user.Email, claims.Email)
	}
	if claims.Role != entity.RoleDoctor {
		t.Errorf("Role: esperado %s obteve %s", entity.RoleDoctor, claims.Role)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType: esperado %s obteve %s", AccessToken, claims.TokenType)
	}
}

func TestRefreshTokenCarriesOnlyIdentity(t *testing.T) {
	svc := testService(time.Hour, 24*time.Hour)
	user := testUser()

	token, err := svc.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.TokenType != RefreshToken {
		t.Errorf("TokenType: esperado %s obteve %s", RefreshToken, claims.TokenType)
	}
	if claims.UserID != user.ID {
		t.Errorf("UserID: esperado %s obteve %s", user.ID, claims.UserID)
	}
	if claims.Email != "" {
		t.Errorf("Email deveria ser vazio em refresh token, obteve %s", claims.Email)
	}
	if claims.Role != "" {
		t.Errorf("Role deveria ser vazio em refresh token, obteve %s", claims.Role)
	}
}

func TestExpiredTokenReturnsDistinctError(t *testing.T) {
	svc := testService(-time.Minute, 24*time.Hour)

	token, err := svc.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("esperado ErrTokenExpired, obteve %v", err)
	}
}

func TestTamperedTokenIsInvalid(t *testing.T) {
	svc := testService(time.Hour, 24*time.Hour)

	token, err := svc.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	_, err = svc.ValidateToken(token + "x")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("esperado ErrTokenInvalid, obteve %v", err)
	}
}

func TestWrongSecretIsInvalid(t *testing.T) {
	svc := testService(time.Hour, 24*time.Hour)
	other := NewJWTService(config.JWTConfig{
		Secret:        "another-secret",
		AccessExpiry:  time.Hour,
		RefreshExpiry: 24 * time.Hour,
	})

	token, err := svc.GenerateAccessToken(testUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	_, err = other.ValidateToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("esperado ErrTokenInvalid, obteve %v", err)
	}
}
