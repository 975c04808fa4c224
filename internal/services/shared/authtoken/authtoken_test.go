package authtoken

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/nvalerio/phrasebook/internal/platform/errors"
)

const (
	testIssuer   = "phrasebook-auth"
	testAudience = "phrasebook-admin"
)

func testKeyPair(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return pub, priv
}

func signToken(t *testing.T, priv ed25519.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(priv)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func validClaims(now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		Subject:   "editor-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
}

func testConfig(pub ed25519.PublicKey, now time.Time) Config {
	return Config{
		Issuer:   testIssuer,
		Audience: testAudience,
		Key:      pub,
		Now:      func() time.Time { return now },
	}
}

func TestVerifyAcceptsValidToken(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	pub, priv := testKeyPair(t)
	token := signToken(t, priv, validClaims(now))

	claims, err := Verify(token, testConfig(pub, now))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "editor-1" {
		t.Fatalf("subject = %q, want %q", claims.Subject, "editor-1")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	pub, priv := testKeyPair(t)
	claims := validClaims(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
	token := signToken(t, priv, claims)

	_, err := Verify(token, testConfig(pub, now))
	if !errors.Is(err, apperrors.New(apperrors.CodeTokenExpired, "")) {
		t.Fatalf("err = %v, want token expired", err)
	}
}

func TestVerifyRejectsWrongAudience(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	pub, priv := testKeyPair(t)
	claims := validClaims(now)
	claims.Audience = jwt.ClaimStrings{"another-service"}
	token := signToken(t, priv, claims)

	_, err := Verify(token, testConfig(pub, now))
	if !errors.Is(err, apperrors.New(apperrors.CodeTokenInvalid, "")) {
		t.Fatalf("err = %v, want token invalid", err)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	pub, _ := testKeyPair(t)
	_, otherPriv := testKeyPair(t)
	token := signToken(t, otherPriv, validClaims(now))

	_, err := Verify(token, testConfig(pub, now))
	if !errors.Is(err, apperrors.New(apperrors.CodeTokenInvalid, "")) {
		t.Fatalf("err = %v, want token invalid", err)
	}
}

func TestVerifyRequiresConfiguration(t *testing.T) {
	t.Parallel()

	if _, err := Verify("some-token", Config{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestFromAuthorizationHeader(t *testing.T) {
	t.Parallel()

	if got := FromAuthorizationHeader("Bearer abc.def.ghi"); got != "abc.def.ghi" {
		t.Fatalf("token = %q", got)
	}
	if got := FromAuthorizationHeader("bearer abc"); got != "abc" {
		t.Fatalf("token = %q, want case-insensitive scheme", got)
	}
	if got := FromAuthorizationHeader("Basic abc"); got != "" {
		t.Fatalf("token = %q, want empty", got)
	}
	if got := FromAuthorizationHeader(""); got != "" {
		t.Fatalf("token = %q, want empty", got)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	t.Setenv("PHRASEBOOK_ADMIN_TOKEN_ISSUER", testIssuer)
	t.Setenv("PHRASEBOOK_ADMIN_TOKEN_AUDIENCE", testAudience)
	t.Setenv("PHRASEBOOK_ADMIN_TOKEN_PUBLIC_KEY", base64.StdEncoding.EncodeToString(pub))

	cfg, err := LoadConfigFromEnv(nil)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Enabled() {
		t.Fatal("cfg.Enabled() = false, want true")
	}
}

func TestLoadConfigFromEnvUnsetDisables(t *testing.T) {
	t.Setenv("PHRASEBOOK_ADMIN_TOKEN_ISSUER", "")
	t.Setenv("PHRASEBOOK_ADMIN_TOKEN_AUDIENCE", "")
	t.Setenv("PHRASEBOOK_ADMIN_TOKEN_PUBLIC_KEY", "")

	cfg, err := LoadConfigFromEnv(nil)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Enabled() {
		t.Fatal("cfg.Enabled() = true, want false")
	}
}

func TestLoadConfigFromEnvPartialIsError(t *testing.T) {
	t.Setenv("PHRASEBOOK_ADMIN_TOKEN_ISSUER", testIssuer)
	t.Setenv("PHRASEBOOK_ADMIN_TOKEN_AUDIENCE", "")
	t.Setenv("PHRASEBOOK_ADMIN_TOKEN_PUBLIC_KEY", "")

	if _, err := LoadConfigFromEnv(nil); err == nil {
		t.Fatal("expected error")
	}
}
