package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum64(t *testing.T) {
	a := Sum64([]byte("trace buffer a"))
	b := Sum64([]byte("trace buffer b"))

	require.NotZero(t, a)
	require.NotEqual(t, a, b)
	require.Equal(t, a, Sum64([]byte("trace buffer a")))
}
