package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgAuth "github.com/angelmondragon/mentormatch-backend/pkg/auth"
	"github.com/angelmondragon/mentormatch-backend/pkg/config"
	"github.com/angelmondragon/mentormatch-backend/pkg/db/models"
	"github.com/angelmondragon/mentormatch-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/mentormatch-backend/pkg/errors"
	"github.com/angelmondragon/mentormatch-backend/pkg/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testPasswordCfg = config.PasswordConfig{
	ArgonMemoryKB:    1024,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     16,
	ArgonKeyLen:      32,
}

var testJWTCfg = config.JWTConfig{
	Secret:            "secret",
	Issuer:            "mentormatch",
	ExpirationMinutes: 30,
}

type stubUserRepo struct {
	user          *models.User
	err           error
	lastLogin     time.Time
	rehashedTo    string
	rehashErr     error
	lastLoginHits int
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.user == nil || s.user.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	s.lastLogin = at
	s.lastLoginHits++
	return nil
}

func (s *stubUserRepo) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	if s.rehashErr != nil {
		return s.rehashErr
	}
	s.rehashedTo = hash
	return nil
}

type stubSessions struct {
	generated map[string]int64
	revoked   []string
	err       error
}

func (s *stubSessions) Generate(ctx context.Context, accessID string, userID int64) error {
	if s.err != nil {
		return s.err
	}
	if s.generated == nil {
		s.generated = map[string]int64{}
	}
	s.generated[accessID] = userID
	return nil
}

func (s *stubSessions) Revoke(ctx context.Context, accessID string) error {
	if s.err != nil {
		return s.err
	}
	s.revoked = append(s.revoked, accessID)
	return nil
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordCfg)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func buildTestService(t *testing.T, repo *stubUserRepo, sessions *stubSessions) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig:      testJWTCfg,
		PasswordConfig: testPasswordCfg,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	if _, err := NewService(ServiceParams{}); err == nil {
		t.Fatalf("expected error without user repository")
	}
	if _, err := NewService(ServiceParams{UserRepo: &stubUserRepo{}}); err == nil {
		t.Fatalf("expected error without session manager")
	}
}

func TestServiceLoginMintsTokenAndSession(t *testing.T) {
	user := &models.User{
		ID:           7,
		Email:        "mentee@example.com",
		PasswordHash: mustHashPassword(t, "pw"),
		Name:         "Mia",
		Role:         enums.UserRoleMentee,
	}
	repo := &stubUserRepo{user: user}
	sessions := &stubSessions{}
	svc := buildTestService(t, repo, sessions)

	resp, err := svc.Login(context.Background(), LoginRequest{Email: " Mentee@Example.com ", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTCfg, resp.Token)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != enums.UserRoleMentee {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.Name != "Mia" || claims.Email != user.Email {
		t.Fatalf("expected name/email claims, got %q %q", claims.Name, claims.Email)
	}
	if owner, ok := sessions.generated[claims.ID]; !ok || owner != user.ID {
		t.Fatalf("expected session for jti %s", claims.ID)
	}
	if repo.lastLoginHits != 1 {
		t.Fatalf("expected last login update")
	}
	if repo.rehashedTo != "" {
		t.Fatalf("current hash should not be rehashed")
	}
}

func TestServiceLoginRejectsBadCredentials(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@example.com", PasswordHash: mustHashPassword(t, "right"), Role: enums.UserRoleMentor}
	svc := buildTestService(t, &stubUserRepo{user: user}, &stubSessions{})

	cases := []LoginRequest{
		{Email: "a@example.com", Password: "wrong"},
		{Email: "missing@example.com", Password: "right"},
		{Email: "", Password: "right"},
		{Email: "a@example.com", Password: ""},
	}
	for _, req := range cases {
		_, err := svc.Login(context.Background(), req)
		if pkgerrors.CodeOf(err) != pkgerrors.CodeInvalidCredential {
			t.Fatalf("expected invalid credential for %+v, got %v", req, err)
		}
	}
}

func TestServiceLoginStoreFailure(t *testing.T) {
	svc := buildTestService(t, &stubUserRepo{err: errors.New("db down")}, &stubSessions{})
	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "pw"})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestServiceLoginRehashesLegacyBcrypt(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &stubUserRepo{user: &models.User{ID: 3, Email: "old@example.com", PasswordHash: string(legacy), Role: enums.UserRoleMentor}}
	svc := buildTestService(t, repo, &stubSessions{})

	if _, err := svc.Login(context.Background(), LoginRequest{Email: "old@example.com", Password: "pw"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if repo.rehashedTo == "" {
		t.Fatalf("expected legacy hash to be upgraded")
	}
	if ok, err := security.VerifyPassword("pw", repo.rehashedTo); err != nil || !ok {
		t.Fatalf("upgraded hash does not verify: %v", err)
	}
}

func TestServiceLoginIgnoresRehashFailure(t *testing.T) {
	legacy, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	repo := &stubUserRepo{
		user:      &models.User{ID: 3, Email: "old@example.com", PasswordHash: string(legacy), Role: enums.UserRoleMentor},
		rehashErr: errors.New("write failed"),
	}
	svc := buildTestService(t, repo, &stubSessions{})
	if _, err := svc.Login(context.Background(), LoginRequest{Email: "old@example.com", Password: "pw"}); err != nil {
		t.Fatalf("login should survive rehash failure: %v", err)
	}
}

func TestServiceLoginSessionFailure(t *testing.T) {
	user := &models.User{ID: 1, Email: "a@example.com", PasswordHash: mustHashPassword(t, "pw"), Role: enums.UserRoleMentor}
	svc := buildTestService(t, &stubUserRepo{user: user}, &stubSessions{err: errors.New("redis down")})
	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@example.com", Password: "pw"})
	if pkgerrors.CodeOf(err) != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestServiceLogout(t *testing.T) {
	sessions := &stubSessions{}
	svc := buildTestService(t, &stubUserRepo{}, sessions)

	if err := svc.Logout(context.Background(), "jti-1"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != "jti-1" {
		t.Fatalf("expected jti-1 revoked, got %v", sessions.revoked)
	}
	if err := svc.Logout(context.Background(), " "); pkgerrors.CodeOf(err) != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for blank session, got %v", err)
	}
}
