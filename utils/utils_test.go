package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUtils(t *testing.T) {

	t.Run("Max", func(t *testing.T) {
		require.Equal(t, 7, Max(2, 7))
		require.Equal(t, 7, Max(7, 2))
		require.Equal(t, 0.0, Max(-1.5, 0.0))
	})

	t.Run("MaxSlice", func(t *testing.T) {
		require.Equal(t, 9, MaxSlice([]int{3, 9, 1}))
	})

	t.Run("EqualSlice", func(t *testing.T) {
		require.True(t, EqualSlice([]byte{1, 2}, []byte{1, 2}))
		require.False(t, EqualSlice([]byte{1, 2}, []byte{1, 3}))
		require.False(t, EqualSlice([]byte{1}, []byte{1, 2}))
		require.True(t, EqualSlice([]byte(nil), []byte{}))
	})
}
