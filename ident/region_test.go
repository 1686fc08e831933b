package ident

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allRegions = []Region{RegionGeneral, RegionReserved, RegionPrivate, RegionError}

// TestRegionOf_Boundaries pins the partition edges: the last value of each
// range and the first value of the next must land in different regions.
func TestRegionOf_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		raw  uint64
		want Region
	}{
		{"general lower bound", GeneralLowerBound, RegionGeneral},
		{"last general value", GeneralUpperBound - 1, RegionGeneral},
		{"first reserved value", GeneralUpperBound, RegionReserved},
		{"last reserved value", PrivateLowerBound - 1, RegionReserved},
		{"first private value", PrivateLowerBound, RegionPrivate},
		{"last private value", ErrorValue - 1, RegionPrivate},
		{"error value", ErrorValue, RegionError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RegionOf(tc.raw), "raw=%d", tc.raw)
		})
	}
}

// TestRegionOf_TotalPartition samples raw values across all four ranges and
// verifies that exactly one region contains each of them.
func TestRegionOf_TotalPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	samples := []uint64{
		GeneralLowerBound,
		GeneralUpperBound - 1,
		GeneralUpperBound,
		PrivateLowerBound - 1,
		PrivateLowerBound,
		ErrorValue - 1,
		ErrorValue,
	}
	for i := 0; i < 10000; i++ {
		samples = append(samples, rng.Uint64())
	}

	for _, raw := range samples {
		id := Identifier{raw: raw}

		containing := 0
		for _, r := range allRegions {
			if r.Contains(id) {
				containing++
			}
		}
		require.Equal(t, 1, containing, "raw=%d must be in exactly one region", raw)

		// Contains must agree with RegionOf.
		assert.True(t, RegionOf(raw).Contains(id), "raw=%d", raw)
	}
}

// TestRegion_PrivateUseSize verifies the Private-Use range holds exactly 256
// values.
func TestRegion_PrivateUseSize(t *testing.T) {
	assert.Equal(t, uint64(256), ErrorValue-PrivateLowerBound)
}

func TestRegion_String(t *testing.T) {
	assert.Equal(t, "general-use", RegionGeneral.String())
	assert.Equal(t, "reserved", RegionReserved.String())
	assert.Equal(t, "private-use", RegionPrivate.String())
	assert.Equal(t, "error", RegionError.String())
	assert.Equal(t, "unknown", Region(42).String())
}
