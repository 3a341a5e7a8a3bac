package users

import (
	"context"
	"errors"
	"testing"

	"petmate/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	if u.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, errRepoNotFound
	}
	return u, nil
}

func (r *testRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, errRepoNotFound
}

func (r *testRepo) DeleteAll(ctx context.Context) error {
	r.byID = map[string]User{}
	return nil
}

type testIssuer struct {
	issued []auth.Claims
}

func (i *testIssuer) Issue(ctx context.Context, claims auth.Claims) (string, error) {
	i.issued = append(i.issued, claims)
	return "token-" + claims.UserID, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Register_HashesPassword(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testIssuer{})

	u, err := svc.Register(context.Background(), "mina", "secret123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.PasswordHash == "secret123" || u.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestService_Register_RejectsDuplicateUsername(t *testing.T) {
	svc := NewService(newTestRepo(), &testIssuer{})

	if _, err := svc.Register(context.Background(), "mina", "a"); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := svc.Register(context.Background(), "mina", "b"); err != ErrDuplicateUsername {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestService_Register_RejectsBlankCredentials(t *testing.T) {
	svc := NewService(newTestRepo(), &testIssuer{})

	if _, err := svc.Register(context.Background(), "  ", "pw"); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for blank username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "mina", "   "); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for blank password, got %v", err)
	}
}

func TestService_Login_IssuesToken(t *testing.T) {
	issuer := &testIssuer{}
	svc := NewService(newTestRepo(), issuer)

	reg, err := svc.Register(context.Background(), "mina", "secret123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	u, tok, err := svc.Login(context.Background(), "mina", "secret123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if u.ID != reg.ID {
		t.Fatalf("login user = %q, want %q", u.ID, reg.ID)
	}
	if tok != "token-"+reg.ID {
		t.Fatalf("token = %q", tok)
	}
	if len(issuer.issued) != 1 || issuer.issued[0].Username != "mina" {
		t.Fatalf("issuer claims = %+v", issuer.issued)
	}
}

func TestService_Login_WrongPasswordOrUser(t *testing.T) {
	svc := NewService(newTestRepo(), &testIssuer{})

	if _, err := svc.Register(context.Background(), "mina", "secret123"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	// misma respuesta para password malo y usuario inexistente
	if _, _, err := svc.Login(context.Background(), "mina", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost", "secret123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_DeleteAll(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testIssuer{})

	_, _ = svc.Register(context.Background(), "mina", "a")
	_, _ = svc.Register(context.Background(), "juno", "b")

	if err := svc.DeleteAll(context.Background()); err != nil {
		t.Fatalf("DeleteAll error: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected all accounts gone, got %d", len(repo.byID))
	}
}
