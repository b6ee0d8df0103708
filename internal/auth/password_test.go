package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tasknest/tasknest/internal/models"
)

// fakeUserStorage is an in-memory UserStorage for authenticator tests.
type fakeUserStorage struct {
	users []*models.User
}

func (f *fakeUserStorage) CreateUser(_ context.Context, user *models.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStorage) FindUserByEmailOrUsername(_ context.Context, email, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a bcrypt hash, not the password", func(t *testing.T) {
		storage := &fakeUserStorage{}
		a := NewPasswordAuthenticator(storage)

		user, err := a.Register(ctx, "alice@example.com", "alice", "s3cret-pass")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		storage := &fakeUserStorage{}
		a := NewPasswordAuthenticator(storage)

		_, err := a.Register(ctx, "alice@example.com", "alice", "pw")
		require.NoError(t, err)

		_, err = a.Register(ctx, "alice@example.com", "alice2", "pw")
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		storage := &fakeUserStorage{}
		a := NewPasswordAuthenticator(storage)

		_, err := a.Register(ctx, "alice@example.com", "alice", "pw")
		require.NoError(t, err)

		_, err = a.Register(ctx, "alice2@example.com", "alice", "pw")
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("allows distinct email and username pairs", func(t *testing.T) {
		storage := &fakeUserStorage{}
		a := NewPasswordAuthenticator(storage)

		_, err := a.Register(ctx, "alice@example.com", "alice", "pw")
		require.NoError(t, err)

		_, err = a.Register(ctx, "bob@example.com", "bob", "pw")
		assert.NoError(t, err)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	storage := &fakeUserStorage{}
	a := NewPasswordAuthenticator(storage)

	registered, err := a.Register(ctx, "carol@example.com", "carol", "correct-horse")
	require.NoError(t, err)

	t.Run("valid credentials return the user", func(t *testing.T) {
		user, err := a.Authenticate(ctx, "carol@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "carol@example.com", "battery-staple")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
