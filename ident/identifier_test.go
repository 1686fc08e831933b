package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifier_Equality(t *testing.T) {
	a := Identifier{raw: 7}
	b := Identifier{raw: 7}
	c := Identifier{raw: 8}

	assert.Equal(t, a, b, "same raw value means equal identifiers")
	assert.NotEqual(t, a, c)

	// Identifiers are comparable and hash by raw value, so they work as map
	// keys.
	seen := map[Identifier]int{a: 1}
	seen[b]++
	assert.Equal(t, 2, seen[a], "a and b must hash to the same key")
}

func TestIdentifier_Compare(t *testing.T) {
	lo := Identifier{raw: 3}
	hi := Identifier{raw: 9}

	assert.Equal(t, -1, lo.Compare(hi))
	assert.Equal(t, 1, hi.Compare(lo))
	assert.Equal(t, 0, lo.Compare(Identifier{raw: 3}))
}

func TestIdentifier_String(t *testing.T) {
	assert.Equal(t, "0", Identifier{}.String())
	assert.Equal(t, "42", Identifier{raw: 42}.String())
	assert.Equal(t, "18446744073709551615", ErrorIdentifier().String())
}

func TestPrivateUse_Deterministic(t *testing.T) {
	assert.Equal(t, PrivateUse(0), PrivateUse(0))
	assert.Equal(t, PrivateUse(255), PrivateUse(255))

	// Offset 0 is the slot just below the Error value; offset 255 is the
	// first Private-Use value.
	assert.Equal(t, ErrorValue-1, PrivateUse(0).Raw())
	assert.Equal(t, PrivateLowerBound, PrivateUse(255).Raw())
}

func TestPrivateUse_DistinctAndClassified(t *testing.T) {
	seen := make(map[Identifier]struct{}, 256)
	for offset := 0; offset < 256; offset++ {
		id := PrivateUse(uint8(offset))

		_, dup := seen[id]
		require.False(t, dup, "offset %d collides", offset)
		seen[id] = struct{}{}

		require.Equal(t, RegionPrivate, id.Region(), "offset %d", offset)
	}
	assert.Len(t, seen, 256)
}

func TestErrorIdentifier_Sentinel(t *testing.T) {
	assert.Equal(t, ErrorIdentifier(), ErrorIdentifier())
	assert.Equal(t, RegionError, ErrorIdentifier().Region())
	assert.True(t, ErrorIdentifier().IsError())
	assert.False(t, Identifier{raw: 1}.IsError())
}
