package quizid

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	iss := NewIssuer("test-secret")
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	iss.now = func() time.Time { return fixed }

	id, err := iss.Issue("quiz-42")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(id, "."))

	c, err := iss.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, "quiz-42", c.Seed)
	assert.Equal(t, "mindengage-quiz", c.Issuer)
	assert.Equal(t, fixed.Unix(), c.IssuedAt.Unix())
	assert.NotEmpty(t, c.ID)
}

func TestIssue_Unique(t *testing.T) {
	iss := NewIssuer("test-secret")
	a, err := iss.Issue("same")
	require.NoError(t, err)
	b, err := iss.Issue("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParse_Rejects(t *testing.T) {
	iss := NewIssuer("test-secret")
	other := NewIssuer("other-secret")
	foreign, err := other.Issue("x")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Seed: "x"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, id := range map[string]string{
		"garbage":      "not-a-token",
		"empty":        "",
		"wrong secret": foreign,
		"alg none":     unsigned,
	} {
		_, err := iss.Parse(id)
		assert.True(t, errors.Is(err, ErrInvalidID), name)
	}
}
