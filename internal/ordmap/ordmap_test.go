package ordmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/strucbio/bioutil/internal/ordmap"
)

func TestMap(t *testing.T) {
	m := ordmap.New[string, int]()
	require.NoError(t, m.Add("b", 2))
	require.NoError(t, m.Add("a", 1))
	require.ErrorIs(t, m.Add("b", 3), ordmap.ErrKeyExists)

	require.Equal(t, 2, m.Len())
	require.Equal(t, []string{"b", "a"}, m.Keys())

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = m.Get("c")
	require.False(t, ok)

	var keys []string
	var values []int
	for k, v := range m.Iter() {
		keys = append(keys, k)
		values = append(values, v)
	}
	require.Equal(t, []string{"b", "a"}, keys)
	require.Equal(t, []int{2, 1}, values)
}
