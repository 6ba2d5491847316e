package randdata_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restful_booker/internal/randdata"
)

func onlyFrom(t *testing.T, s, alphabet string) {
	t.Helper()
	for _, r := range s {
		require.Truef(t, strings.ContainsRune(alphabet, r), "unexpected %q in %q", r, s)
	}
}

func TestGenerators_LengthAndAlphabet(t *testing.T) {
	for _, n := range []int{0, 1, 16, 500, 2001} {
		num := randdata.Numeric(n)
		alpha := randdata.Alpha(n)
		alnum := randdata.AlphaNumeric(n)

		assert.Len(t, num, n)
		assert.Len(t, alpha, n)
		assert.Len(t, alnum, n)

		onlyFrom(t, num, randdata.Digits)
		onlyFrom(t, alpha, randdata.Letters)
		onlyFrom(t, alnum, randdata.Alphanumeric)
	}
}

func TestGenerators_IndependentCalls(t *testing.T) {
	// 62^32 possibilities; a collision here means the source is not random
	assert.NotEqual(t, randdata.AlphaNumeric(32), randdata.AlphaNumeric(32))
}

func TestEmail(t *testing.T) {
	e := randdata.Email(10, 5)
	local, domain, ok := strings.Cut(e, "@")
	require.True(t, ok)
	assert.Len(t, local, 10)
	assert.Equal(t, ".com", domain[5:])
	onlyFrom(t, domain[:5], randdata.Letters)
}

func TestIntBetweenAndPick(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := randdata.IntBetween(5, 100)
		require.GreaterOrEqual(t, v, 5)
		require.LessOrEqual(t, v, 100)
	}
	opts := []string{"a", "b"}
	assert.Contains(t, opts, randdata.Pick(opts))
}
