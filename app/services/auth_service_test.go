package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/pkg/auth"
)

func TestRegisterIssuesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, token, err := svc.Register(RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The token is valid immediately.
	identity, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.False(t, identity.IsStaff)

	// The password is stored hashed.
	assert.NotEqual(t, "correct horse", user.Password)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Register(RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secretpass"})
	require.NoError(t, err)

	_, _, err = svc.Register(RegisterInput{Name: "Imposter", Email: "alice@example.com", Password: "secretpass"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email already taken", verr.Fields["email"])
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Register(RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secretpass"})
	require.NoError(t, err)

	_, token, err := svc.Login(LoginInput{Email: "alice@example.com", Password: "secretpass"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, _, err = svc.Login(LoginInput{Email: "alice@example.com", Password: "wrong"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	// Unknown email fails the same way as a bad password.
	_, _, badEmailErr := svc.Login(LoginInput{Email: "nobody@example.com", Password: "secretpass"})
	require.ErrorAs(t, badEmailErr, &verr)
	assert.Equal(t, err.Error(), badEmailErr.Error())
}

func TestGetUserScoping(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	alice := seedUser(t, db, "alice@example.com", false)
	bob := seedUser(t, db, "bob@example.com", false)
	staff := seedUser(t, db, "staff@example.com", true)

	got, err := svc.GetUser(identityOf(alice), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	_, err = svc.GetUser(identityOf(alice), bob.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetUser(identityOf(staff), bob.ID)
	assert.NoError(t, err)
}
