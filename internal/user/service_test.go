package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomly/booking-backend/internal/auth"
)

type fakeRepository struct {
	byEmail map[string]*User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byEmail: make(map[string]*User)}
}

func (r *fakeRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepository) Create(_ context.Context, u *User) error {
	u.ID = "uid-" + u.Email
	r.byEmail[u.Email] = u
	return nil
}

func newTestService(repo Repository) Service {
	// Minimum bcrypt cost keeps the tests fast.
	return NewService(repo, auth.NewBcryptPasswordHasherWithCost(4))
}

func validRequest() RegisterRequest {
	return RegisterRequest{
		FirstName: "Jan",
		LastName:  "Kowalski",
		Email:     "Jan.Kowalski@Example.com",
		Password:  "secret1",
	}
}

func TestRegister(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	u, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "jan.kowalski@example.com", u.Email)
	assert.Equal(t, RoleUser, u.Role)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "secret1", u.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*RegisterRequest)
		wantErr error
	}{
		{"short first name", func(r *RegisterRequest) { r.FirstName = "J" }, ErrNameTooShort},
		{"short last name", func(r *RegisterRequest) { r.LastName = " K " }, ErrNameTooShort},
		{"invalid email", func(r *RegisterRequest) { r.Email = "not-an-email" }, ErrInvalidEmail},
		{"weak password", func(r *RegisterRequest) { r.Password = "12345" }, ErrWeakPassword},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(newFakeRepository())

			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestLogin(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), "jan.kowalski@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "jan.kowalski@example.com", u.Email)

	// Email comparison is normalized.
	_, err = svc.Login(context.Background(), "  Jan.Kowalski@Example.com ", "secret1")
	assert.NoError(t, err)
}

func TestLoginRejections(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "jan.kowalski@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "unknown@example.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
