package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "c"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.Equal(t, -1, FindIndex([]int(nil), 0))
}

func TestSum(t *testing.T) {
	require.Equal(t, 6, Sum(map[string]int{"a": 1, "b": 2, "c": 3}))
	require.Zero(t, Sum(map[int]int64{}))
}
