package routespec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileRegexp(t *testing.T) {
	t.Run("compiles valid source", func(t *testing.T) {
		re, err := compileRegexp(`^[0-9]+$`)
		require.NoError(t, err)
		assert.True(t, re.MatchString("123"))
		assert.False(t, re.MatchString("abc"))
	})

	t.Run("returns cached instance", func(t *testing.T) {
		re1, err := compileRegexp(`^cached-test-[a-z]+$`)
		require.NoError(t, err)
		re2, err := compileRegexp(`^cached-test-[a-z]+$`)
		require.NoError(t, err)
		assert.Same(t, re1, re2)
	})

	t.Run("invalid source returns error", func(t *testing.T) {
		_, err := compileRegexp(`^([0-9+$`)
		assert.Error(t, err)
	})
}

func TestCached(t *testing.T) {
	t.Run("returns the same spec", func(t *testing.T) {
		s1, err := Cached("/cached/:id")
		require.NoError(t, err)
		s2, err := Cached("/cached/:id")
		require.NoError(t, err)
		assert.Same(t, s1, s2)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		_, err := Cached("/cached/(:id")
		assert.ErrorIs(t, err, ErrUnclosedGroup)

		_, ok := specCache.Load("/cached/(:id")
		assert.False(t, ok)
	})
}

// --- Benchmarks ---

func BenchmarkCachedReverse(b *testing.B) {
	params := Params{"id": "42"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		spec, err := Cached("/users/:id")
		if err != nil {
			b.Fatal(err)
		}
		spec.Reverse(params)
	}
}

func BenchmarkNewReverse(b *testing.B) {
	params := Params{"id": "42"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		spec, err := New("/users/:id")
		if err != nil {
			b.Fatal(err)
		}
		spec.Reverse(params)
	}
}
