package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("accepted layouts", func(t *testing.T) {
		for _, in := range []string{"2020-01-02", "2020-1-2", "01/02/2020", "1/2/2020", " 2020-01-02 "} {
			got, err := ParseDate(in)
			require.NoError(t, err, in)
			require.Equal(t, NewDate(2020, 1, 2), got, in)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDate("next tuesday")
		require.Error(t, err)
	})

	t.Run("blank optional", func(t *testing.T) {
		got, err := ParseOptionalDate("  ")
		require.NoError(t, err)
		require.Nil(t, got)
	})
}
