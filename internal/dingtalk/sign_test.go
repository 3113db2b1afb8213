package dingtalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignDeterministic(t *testing.T) {
	first := Sign("SEC0123456789abcdef", "1700000000000")
	second := Sign("SEC0123456789abcdef", "1700000000000")
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestSignKnownValue(t *testing.T) {
	// HMAC-SHA256(key="secret", msg="1234567890123\nsecret"), base64, url-escaped.
	got := Sign("secret", "1234567890123")
	assert.Equal(t, "mOymkUsZjR786ECSrC25huJVT%2B5k9gATZlrF3SxRg4M%3D", got)
}

func TestSignSensitivity(t *testing.T) {
	base := Sign("secret-a", "1700000000000")
	assert.NotEqual(t, base, Sign("secret-b", "1700000000000"))
	assert.NotEqual(t, base, Sign("secret-a", "1700000000001"))
}

func TestSignEscapesReservedCharacters(t *testing.T) {
	// Base64 output may contain '+', '/' and '='; the signature must not.
	for _, ts := range []string{"1", "99", "1700000000000", "1234567890123"} {
		got := Sign("secret", ts)
		assert.NotContains(t, got, "+")
		assert.NotContains(t, got, "=")
	}
}
