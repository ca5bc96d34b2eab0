package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, err := Parse("1.2.13")
	require.NoError(t, err)
	require.Equal(t, New("1.2.13", 0), v)

	v, err = Parse("1.2.13#2")
	require.NoError(t, err)
	require.Equal(t, New("1.2.13", 2), v)
	require.Equal(t, "1.2.13#2", v.String())

	_, err = Parse("#1")
	require.Error(t, err)
	_, err = Parse("1.0#x")
	require.Error(t, err)
	_, err = Parse("1.0#-1")
	require.Error(t, err)
}

func TestEqual(t *testing.T) {
	require.True(t, New("7.80.0", 0).Equal(New("7.80.0", 0)))
	require.False(t, New("7.80.0", 0).Equal(New("7.80.0", 1)))
	require.False(t, New("2023-01-01", 0).Equal(New("2023-01-02", 0)))
}

func TestCompare(t *testing.T) {
	c, err := Compare(New("1.2.11", 0), New("1.2.13", 0))
	require.NoError(t, err)
	require.Equal(t, -1, c)

	c, err = Compare(New("1.3.0", 0), New("1.2.13", 0))
	require.NoError(t, err)
	require.Equal(t, 1, c)

	c, err = Compare(New("1.2.13", 1), New("1.2.13", 0))
	require.NoError(t, err)
	require.Equal(t, 1, c)

	c, err = Compare(New("1.2.13", 0), New("1.2.13", 0))
	require.NoError(t, err)
	require.Zero(t, c)
}

func TestCompare_NotComparable(t *testing.T) {
	_, err := Compare(New("vs2019-preview", 0), New("1.0.0", 0))
	require.ErrorIs(t, err, ErrNotComparable)
}
