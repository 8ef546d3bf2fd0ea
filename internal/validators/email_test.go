package validators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsEmailValid(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+tag@sub.example.co",
		"dev@localhost",
	}
	for _, e := range valid {
		require.True(t, IsEmailValid(e), e)
	}

	invalid := []string{
		"",
		"plainstring",
		"@example.com",
		"alice@",
		"alice@nodot",
		"Alice <alice@example.com>",
		"two@@example.com",
	}
	for _, e := range invalid {
		require.False(t, IsEmailValid(e), e)
	}
}
