package service_test

import (
	"encoding/json"
	"testing"

	"github.com/ecogoods/storefront/internal/core/domain"
	"github.com/ecogoods/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthServiceRegister(t *testing.T) {
	t.Run("HashesPasswordBeforePersisting", func(t *testing.T) {
		store := newMemStore()
		auth := service.NewAuthService(store)

		u, err := auth.Register("Ayu", "ayu@example.com", "rahasia123")
		require.NoError(t, err)
		assert.Equal(t, "Ayu", u.Name)
		assert.Empty(t, u.PasswordHash, "profile returns must not carry the hash")

		data, err := store.Get("ecoUser")
		require.NoError(t, err)

		var stored struct {
			PasswordHash string `json:"passwordHash"`
		}
		require.NoError(t, json.Unmarshal(data, &stored))
		assert.NotEmpty(t, stored.PasswordHash)
		assert.NotContains(t, stored.PasswordHash, "rahasia123")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rahasia123")))
	})

	t.Run("RequiredFields", func(t *testing.T) {
		auth := service.NewAuthService(newMemStore())

		_, err := auth.Register("", "ayu@example.com", "pw")
		assert.Error(t, err)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	t.Run("MatchingEmail", func(t *testing.T) {
		auth := service.NewAuthService(newMemStore())
		_, err := auth.Register("Ayu", "ayu@example.com", "pw")
		require.NoError(t, err)

		u, err := auth.Login("Ayu@Example.com", "anything")
		require.NoError(t, err)
		assert.Equal(t, "ayu@example.com", u.Email)
	})

	t.Run("NoStoredProfile", func(t *testing.T) {
		auth := service.NewAuthService(newMemStore())

		_, err := auth.Login("ayu@example.com", "pw")
		assert.ErrorIs(t, err, domain.ErrUnknownUser)
	})

	t.Run("DifferentEmail", func(t *testing.T) {
		auth := service.NewAuthService(newMemStore())
		_, err := auth.Register("Ayu", "ayu@example.com", "pw")
		require.NoError(t, err)

		_, err = auth.Login("other@example.com", "pw")
		assert.ErrorIs(t, err, domain.ErrUnknownUser)
	})
}

func TestAuthServiceProfile(t *testing.T) {
	t.Run("LoadsExistingSnapshot", func(t *testing.T) {
		store := newMemStore()
		stored := `{"name":"Ayu","email":"ayu@example.com","address":"Bandung","phone":"0812"}`
		require.NoError(t, store.Set("ecoUser", []byte(stored)))

		auth := service.NewAuthService(store)

		u, err := auth.Current()
		require.NoError(t, err)
		assert.Equal(t, "Bandung", u.Address)
	})

	t.Run("MalformedSnapshotMeansNoUser", func(t *testing.T) {
		store := newMemStore()
		require.NoError(t, store.Set("ecoUser", []byte("{oops")))

		auth := service.NewAuthService(store)

		_, err := auth.Current()
		assert.ErrorIs(t, err, domain.ErrUnknownUser)
	})

	t.Run("UpdateMergesNonEmptyFields", func(t *testing.T) {
		auth := service.NewAuthService(newMemStore())
		_, err := auth.Register("Ayu", "ayu@example.com", "pw")
		require.NoError(t, err)

		u, err := auth.UpdateProfile(domain.User{Address: "Jl. Melati 5", Phone: "0812"})
		require.NoError(t, err)
		assert.Equal(t, "Ayu", u.Name)
		assert.Equal(t, "Jl. Melati 5", u.Address)
		assert.Equal(t, "0812", u.Phone)
	})

	t.Run("UpdateWithoutUser", func(t *testing.T) {
		auth := service.NewAuthService(newMemStore())

		_, err := auth.UpdateProfile(domain.User{Address: "x"})
		assert.ErrorIs(t, err, domain.ErrUnknownUser)
	})

	t.Run("LogoutDropsProfile", func(t *testing.T) {
		store := newMemStore()
		auth := service.NewAuthService(store)
		_, err := auth.Register("Ayu", "ayu@example.com", "pw")
		require.NoError(t, err)

		auth.Logout()

		_, err = auth.Current()
		assert.ErrorIs(t, err, domain.ErrUnknownUser)
		assert.False(t, store.has("ecoUser"))
	})
}
