package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestPerbillMulFloor(t *testing.T) {
	p := NewPerbill(500_000_000) // 50%
	require.Equal(t, math.NewInt(50), p.MulFloor(math.NewInt(101)))
}

func TestPerbillMulCeil(t *testing.T) {
	p := NewPerbill(500_000_000) // 50%
	require.Equal(t, math.NewInt(51), p.MulCeil(math.NewInt(101)))
	require.Equal(t, math.NewInt(50), p.MulCeil(math.NewInt(100)))
}

func TestPerbillFromPercent(t *testing.T) {
	p := PerbillFromPercent(10)
	require.Equal(t, math.NewInt(10), p.MulFloor(math.NewInt(100)))
}

func TestPerbillComplement(t *testing.T) {
	p := PerbillFromPercent(30)
	c := p.Complement()
	require.Equal(t, math.NewInt(70), c.MulFloor(math.NewInt(100)))
}
