// internal/cellid/address_test.go
package cellid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_RoundTrip(t *testing.T) {
	for _, raw := range []string{"A0", "B7", "M50", "Z99"} {
		t.Run(raw, func(t *testing.T) {
			addr, err := Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, addr.String())

			again, err := Parse(addr.String())
			require.NoError(t, err)
			assert.Equal(t, addr, again)
		})
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New('A', 0)
	require.NoError(t, err)

	_, err = New('a', 0)
	assert.ErrorContains(t, err, "out of range A-Z")

	_, err = New('B', Rows)
	assert.ErrorContains(t, err, "out of range 0-99")

	_, err = New('B', -1)
	assert.Error(t, err)
}

func TestSort_RowMajor(t *testing.T) {
	addrs := []Address{MustParse("B1"), MustParse("A2"), MustParse("A1"), MustParse("C0")}
	Sort(addrs)
	assert.Equal(t, []Address{MustParse("C0"), MustParse("A1"), MustParse("B1"), MustParse("A2")}, addrs)
}

func TestRange(t *testing.T) {
	t.Run("ordered corners", func(t *testing.T) {
		got := Range(MustParse("A0"), MustParse("B1"))
		assert.Equal(t, []Address{MustParse("A0"), MustParse("B0"), MustParse("A1"), MustParse("B1")}, got)
	})

	t.Run("reversed corners", func(t *testing.T) {
		got := Range(MustParse("B1"), MustParse("A0"))
		assert.Len(t, got, 4)
		assert.Equal(t, MustParse("A0"), got[0])
	})

	t.Run("whole grid", func(t *testing.T) {
		assert.Len(t, Range(MustParse("A0"), MustParse("Z99")), Count)
	})
}
