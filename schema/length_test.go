package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	r := Length(0, 100)
	err := r.Validate("Grüner Weg 12")
	require.Nil(t, err)

	// Rune length, not byte length: 100 runes of a two-byte character.
	err = r.Validate(strings.Repeat("ü", 100))
	require.Nil(t, err)

	err = r.Validate(strings.Repeat("ü", 101))
	require.NotNil(t, err)
}

func TestLength_Empty(t *testing.T) {
	r := Length(3, 10)
	err := r.Validate("")
	require.Nil(t, err)
}

func TestLength_TooShort(t *testing.T) {
	r := Length(3, 10)
	err := r.Validate("ab")
	require.NotNil(t, err)
}
