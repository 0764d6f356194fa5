package euclid_test

import (
	"testing"

	"github.com/pizzaiter/euclid"
	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	l := euclid.NewLength[int, px](12)
	require.Equal(t, 12, l.Get())
	require.Equal(t, "12", l.String())
}

func TestLengthArithmetic(t *testing.T) {
	a := euclid.NewLength[float64, mm](1.5)
	b := euclid.NewLength[float64, mm](2.25)
	require.Equal(t, 3.75, a.Add(b).Get())
	require.Equal(t, -0.75, a.Sub(b).Get())
}
