package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))

	require.True(t, Verify("correct horse battery staple", hash))
	require.False(t, Verify("incorrect horse", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("same-password")
	require.NoError(t, err)
	second, err := Hash("same-password")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	require.True(t, Verify("same-password", first))
	require.True(t, Verify("same-password", second))
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	require.False(t, Verify("anything", ""))
	require.False(t, Verify("anything", "$argon2id$v=19$garbage"))
	require.False(t, Verify("anything", "plaintext"))
}
