package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/model"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	verifier := NewVerifier("test-secret")

	raw, err := issuer.Issue("user-1", model.RoleCustomer)
	require.NoError(t, err)

	id, err := verifier.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, model.RoleCustomer, id.Role)
}

func TestVerifyExpiredToken(t *testing.T) {
	// Correctly signed but issued more than the TTL ago.
	issuer := NewIssuer("test-secret", -time.Minute)
	verifier := NewVerifier("test-secret")

	raw, err := issuer.Issue("user-1", model.RoleCustomer)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	verifier := NewVerifier("other-secret")

	raw, err := issuer.Issue("user-1", model.RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	verifier := NewVerifier("test-secret")

	_, err := verifier.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
