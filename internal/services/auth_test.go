package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glow/internal/models"
)

func TestValidateSeededUser(t *testing.T) {
	us := NewUserService(newMemStore())

	user, err := us.Validate("emma.wilson@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "Emma Wilson", user.Name)

	// E-posta harf duyarsız eşleşir
	user, err = us.Validate("EMMA.WILSON@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
}

func TestValidateFailureIsUniform(t *testing.T) {
	us := NewUserService(newMemStore())

	// Yanlış parola ve bilinmeyen e-posta aynı hatayı üretir
	_, wrongPassword := us.Validate("emma.wilson@example.com", "nope")
	_, unknownEmail := us.Validate("nobody@example.com", "password123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
}

func TestSignup(t *testing.T) {
	us := NewUserService(newMemStore())

	user, err := us.Signup("Maya", "Chen", "maya.chen@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, 3, user.ID, "IDs continue after the seeded users")
	assert.Equal(t, "Maya Chen", user.Name)

	// Yeni kullanıcı hemen giriş yapabilir
	_, err = us.Validate("maya.chen@example.com", "secret123")
	assert.NoError(t, err)
}

func TestSignupDuplicateEmail(t *testing.T) {
	us := NewUserService(newMemStore())

	_, err := us.Signup("Other", "Emma", "EMMA.WILSON@example.com", "whatever1")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestUsersPersistAcrossServices(t *testing.T) {
	store := newMemStore()

	first := NewUserService(store)
	_, err := first.Signup("Maya", "Chen", "maya.chen@example.com", "secret123")
	require.NoError(t, err)

	second := NewUserService(store)
	_, err = second.Validate("maya.chen@example.com", "secret123")
	assert.NoError(t, err)

	// ID sayacı kaldığı yerden devam eder
	user, err := second.Signup("Ava", "Brown", "ava.brown@example.com", "secret456")
	require.NoError(t, err)
	assert.Equal(t, 4, user.ID)
}

func TestSessionPersistence(t *testing.T) {
	store := newMemStore()
	us := NewUserService(store)

	assert.Nil(t, us.CurrentUser())

	user, err := us.Validate("emma.wilson@example.com", "password123")
	require.NoError(t, err)
	us.SetCurrentUser(user)

	// Yeni servis örneği oturumu kimlik sormadan geri yükler
	restored := NewUserService(store).CurrentUser()
	require.NotNil(t, restored)
	assert.Equal(t, user.ID, restored.ID)
	assert.Equal(t, user.Email, restored.Email)
}

func TestLogout(t *testing.T) {
	us := NewUserService(newMemStore())

	user, err := us.Validate("emma.wilson@example.com", "password123")
	require.NoError(t, err)
	us.SetCurrentUser(user)
	require.NotNil(t, us.CurrentUser())

	us.Logout()
	assert.Nil(t, us.CurrentUser())

	// Oturum yokken çıkış hata üretmez
	us.Logout()
	assert.Nil(t, us.CurrentUser())
}

func TestCurrentUserCorruptSession(t *testing.T) {
	store := newMemStore()
	us := NewUserService(store)

	// Bozuk oturum kaydı oturum yokmuş gibi ele alınır
	require.NoError(t, store.Set("currentUser", []byte(`"not an object"`)))
	assert.Nil(t, us.CurrentUser())

	require.NoError(t, store.Set("currentUser", []byte(`{"id":0}`)))
	assert.Nil(t, us.CurrentUser())
}

func TestSessionUserSnapshot(t *testing.T) {
	u := models.User{FirstName: "Emma", LastName: "Wilson"}
	assert.Equal(t, "Emma Wilson", u.FullName())
}
