package token_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/blog-platform/internal/models"
	pkgErrors "github.com/SlavaShagalov/blog-platform/internal/pkg/errors"
	"github.com/SlavaShagalov/blog-platform/internal/pkg/token"
)

func testUser() models.User {
	return models.User{
		ID:       uuid.New(),
		Username: "alice",
		Role:     models.RoleEditor,
	}
}

func TestIssueParseRoundTrip(t *testing.T) {
	manager := token.NewManager("test-secret", time.Hour)
	user := testUser()

	signed, err := manager.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := manager.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, models.RoleEditor, claims.Role)
}

func TestParseExpired(t *testing.T) {
	manager := token.NewManager("test-secret", -time.Minute)

	signed, err := manager.Issue(testUser())
	require.NoError(t, err)

	_, err = manager.Parse(signed)
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidToken)
}

func TestParseWrongSecret(t *testing.T) {
	signed, err := token.NewManager("secret-a", time.Hour).Issue(testUser())
	require.NoError(t, err)

	_, err = token.NewManager("secret-b", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	manager := token.NewManager("test-secret", time.Hour)

	_, err := manager.Parse("not.a.token")
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidToken)
}
