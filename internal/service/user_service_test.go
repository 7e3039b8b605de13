package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"nila-backend/internal/domain"
	"nila-backend/internal/repository"
)

type mockUserServiceRepo struct {
	usersByName map[string]domain.User
	createErr   error
}

func newMockUserServiceRepo() *mockUserServiceRepo {
	return &mockUserServiceRepo{usersByName: make(map[string]domain.User)}
}

func (m *mockUserServiceRepo) Create(_ context.Context, user domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.usersByName[user.Username]; ok {
		return repository.ErrUsernameTaken
	}
	m.usersByName[user.Username] = user
	return nil
}

func (m *mockUserServiceRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	user, ok := m.usersByName[username]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func TestUserServiceRegister_HashesPassword(t *testing.T) {
	repo := newMockUserServiceRepo()
	svc := NewUserService(nil, repo)

	user, err := svc.Register(context.Background(), " priya ", "s3creta")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" || user.Username != "priya" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash == "s3creta" || user.PasswordHash == "" {
		t.Fatalf("expected hashed password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3creta")); err != nil {
		t.Fatalf("hash does not verify: %v", err)
	}
}

func TestUserServiceRegister_DuplicateDoesNotAlterExisting(t *testing.T) {
	repo := newMockUserServiceRepo()
	svc := NewUserService(nil, repo)

	first, err := svc.Register(context.Background(), "priya", "uno")
	if err != nil {
		t.Fatalf("first register: %v", err)
	}

	if _, err := svc.Register(context.Background(), "priya", "dos"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	stored := repo.usersByName["priya"]
	if stored.ID != first.ID || stored.PasswordHash != first.PasswordHash {
		t.Fatalf("duplicate register altered stored user")
	}
}

func TestUserServiceRegister_MapsRepoConflict(t *testing.T) {
	// Carrera: el pre-chequeo no ve al usuario pero el INSERT choca con el
	// índice único.
	repo := newMockUserServiceRepo()
	repo.createErr = repository.ErrUsernameTaken
	svc := NewUserService(nil, repo)

	if _, err := svc.Register(context.Background(), "priya", "s3creta"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken from repo conflict, got %v", err)
	}
}

func TestUserServiceRegister_Validation(t *testing.T) {
	svc := NewUserService(nil, newMockUserServiceRepo())

	cases := [][2]string{
		{"", "pass"},
		{"priya", ""},
		{"   ", "   "},
	}
	for i, c := range cases {
		if _, err := svc.Register(context.Background(), c[0], c[1]); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestUserServiceAuthenticate(t *testing.T) {
	repo := newMockUserServiceRepo()
	svc := NewUserService(nil, repo)

	if _, err := svc.Register(context.Background(), "priya", "s3creta"); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "priya", "s3creta")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Username != "priya" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.Authenticate(context.Background(), "priya", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nadie", "s3creta"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
