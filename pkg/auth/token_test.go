package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/angelmondragon/mentormatch-backend/pkg/config"
	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "mentormatch",
		ExpirationMinutes: 30,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()

	token, err := MintAccessToken(cfg, now, AccessTokenPayload{
		UserID: 7,
		Role:   enums.UserRoleMentee,
		Name:   "Mina",
		Email:  "mina@example.com",
		JTI:    "session-1",
	})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}

	if claims.UserID != 7 {
		t.Fatalf("expected user_id 7, got %d", claims.UserID)
	}
	if claims.Role != enums.UserRoleMentee {
		t.Fatalf("unexpected role %s", claims.Role)
	}
	if claims.Name != "Mina" || claims.Email != "mina@example.com" {
		t.Fatalf("identity claims not preserved: %+v", claims)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("unexpected issuer %s", claims.Issuer)
	}
	if claims.Subject != "7" {
		t.Fatalf("unexpected subject %s", claims.Subject)
	}
	if claims.ID != "session-1" {
		t.Fatalf("expected jti to be preserved, got %s", claims.ID)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.After(now) {
		t.Fatalf("expected expiry after now")
	}
}

func TestMintAccessTokenGeneratesJTI(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: 1, Role: enums.UserRoleMentor})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}
	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.ID == "" {
		t.Fatal("expected generated jti")
	}
}

func TestMintAccessTokenValidatesPayload(t *testing.T) {
	cfg := testJWTConfig()
	if _, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: 1, Role: "admin"}); err == nil {
		t.Fatal("expected invalid role to fail")
	}
	if _, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{Role: enums.UserRoleMentor}); err == nil {
		t.Fatal("expected missing user id to fail")
	}
	if _, err := MintAccessToken(config.JWTConfig{Issuer: "x", ExpirationMinutes: 1}, time.Now(), AccessTokenPayload{UserID: 1, Role: enums.UserRoleMentor}); err == nil {
		t.Fatal("expected missing secret to fail")
	}
}

func TestParseAccessTokenFailsClosed(t *testing.T) {
	cfg := testJWTConfig()
	payload := AccessTokenPayload{UserID: 3, Role: enums.UserRoleMentor}

	expired, err := MintAccessToken(cfg, time.Now().Add(-2*time.Hour), payload)
	if err != nil {
		t.Fatalf("mint expired token: %v", err)
	}

	valid, err := MintAccessToken(cfg, time.Now(), payload)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	foreignIssuer := cfg
	foreignIssuer.Issuer = "someone-else"
	foreign, err := MintAccessToken(foreignIssuer, time.Now(), payload)
	if err != nil {
		t.Fatalf("mint foreign token: %v", err)
	}

	wrongSecret := cfg
	wrongSecret.Secret = "other-secret"

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, AccessTokenClaims{
		UserID: 3,
		Role:   enums.UserRoleMentor,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			ID:        "jti",
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}

	cases := map[string]struct {
		cfg   config.JWTConfig
		token string
	}{
		"expired":       {cfg, expired},
		"wrong issuer":  {cfg, foreign},
		"wrong secret":  {wrongSecret, valid},
		"alg none":      {cfg, noneToken},
		"malformed":     {cfg, "not.a.jwt"},
		"truncated":     {cfg, valid[:len(valid)-4]},
		"empty":         {cfg, ""},
		"tampered body": {cfg, tamper(valid)},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseAccessToken(tc.cfg, tc.token); err == nil {
				t.Fatalf("expected %s token to be rejected", name)
			}
		})
	}
}

func tamper(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return token
	}
	body := []byte(parts[1])
	if body[0] == 'A' {
		body[0] = 'B'
	} else {
		body[0] = 'A'
	}
	return parts[0] + "." + string(body) + "." + parts[2]
}
