package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user User) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.users[user.Name]; ok {
		return ErrUserAlreadyExists
	}
	r.users[user.Name] = user
	return nil
}

func (r *fakeUserRepo) GetByName(_ context.Context, name string) (User, error) {
	if r.err != nil {
		return User{}, r.err
	}
	user, ok := r.users[name]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) List(_ context.Context, limit, offset int) ([]User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type staticTokens struct{ token string }

func (s staticTokens) Generate(_ context.Context, _ User) (string, error) {
	return s.token, nil
}

func newTestService(t *testing.T, repo UserRepository) AuthUseCase {
	t.Helper()
	return NewAuthService(repo, staticTokens{token: "tok"}, newTestHasher(t))
}

func TestService_Register(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := newTestService(t, repo)

	user, err := svc.Register(context.Background(), "  alice  ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Name)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	// Stored representation never includes the plaintext.
	stored := repo.users["alice"]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestService_Register_Validation(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, newFakeUserRepo())

	cases := []struct {
		name     string
		user     string
		password string
	}{
		{"empty name", "", "secret123"},
		{"blank name", "   ", "secret123"},
		{"empty password", "alice", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.user, tc.password)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Register_Duplicate(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, newFakeUserRepo())

	_, err := svc.Register(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "other")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestService_Register_StoreFailure(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	repo.err = errors.New("connection refused")
	svc := newTestService(t, repo)

	_, err := svc.Register(context.Background(), "alice", "secret123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserAlreadyExists)
}

func TestService_Login(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := newTestService(t, repo)

	_, err := svc.Register(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "tok", result.Token)
	assert.Equal(t, "alice", result.User.Name)
}

func TestService_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, newFakeUserRepo())

	_, err := svc.Register(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownUser(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, newFakeUserRepo())

	_, err := svc.Login(context.Background(), "nobody", "secret123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_List(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := newTestService(t, repo)

	_, err := svc.Register(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "bob", "hunter22")
	require.NoError(t, err)

	users, err := svc.List(context.Background(), 50, 0)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
