package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserID_Stable(t *testing.T) {
	// First 12 hex chars of md5("a@x.com"). These must never change:
	// existing rows were keyed with them.
	id := UserID("a@x.com")
	assert.Equal(t, "743173788aa9", id)
	assert.Equal(t, id, UserID("a@x.com"))
	assert.NotEqual(t, id, UserID("b@x.com"))
}

func TestHashPassword(t *testing.T) {
	// sha256("secret1"), precomputed.
	assert.Equal(t,
		"5b11618c2e44027877d0cd0921ed166b9f176f50587fc91e7534dd2946db77d6",
		HashPassword("secret1"),
	)
	assert.Equal(t, HashPassword("secret1"), HashPassword("secret1"))
	assert.Len(t, HashPassword(""), 64)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jo@x.com", NormalizeEmail("  Jo@X.Com "))
}
