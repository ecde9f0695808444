package mask

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFamily_Validate_RejectsWordlistWithBounds(t *testing.T) {
	slots, err := Parse("?w1?d")
	require.NoError(t, err)

	f := Family{Slots: slots, MinLen: 1, MaxLen: 2}
	require.Error(t, f.Validate())
}

func TestFamily_Validate_RejectsInvertedBounds(t *testing.T) {
	slots, err := Parse("?d?d?d")
	require.NoError(t, err)

	f := Family{Slots: slots, MinLen: 3, MaxLen: 1}
	require.Error(t, f.Validate())
}

func TestFamily_Validate_RejectsMaxLenBeyondMask(t *testing.T) {
	slots, err := Parse("?d?d")
	require.NoError(t, err)

	f := Family{Slots: slots, MinLen: 1, MaxLen: 5}
	require.Error(t, f.Validate())
}

func TestFamily_Lengths_AscendingWithinBounds(t *testing.T) {
	slots, err := Parse("?u?l?l?l")
	require.NoError(t, err)

	f := Family{Slots: slots, MinLen: 1, MaxLen: 4}
	require.NoError(t, f.Validate())
	require.Equal(t, []int{1, 2, 3, 4}, f.Lengths())
}

func TestFamily_Lengths_NoBoundsIsFullMaskOnly(t *testing.T) {
	slots, err := Parse("?d?d")
	require.NoError(t, err)

	f := Family{Slots: slots}
	require.Equal(t, []int{2}, f.Lengths())
}
